package orbit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/brunoga/deep"
)

// BodySpec is the catalog entry a Body is built from
type BodySpec struct {
	Name         string    `json:"name"`
	Radius       float32   `json:"radius"`
	OrbitRadius  float32   `json:"orbit_radius"`
	AngularSpeed float32   `json:"angular_speed"`
	Angle        float32   `json:"angle"`
	RandomAngle  bool      `json:"random_angle"`
	TiltDegrees  float32   `json:"tilt_degrees"`
	SpinRate     float32   `json:"spin_rate"`
	Color        string    `json:"color"`
	InfoColor    string    `json:"info_color"`
	Details      string    `json:"details"`
	Rings        *Rings    `json:"rings,omitempty"`
	Moon         *BodySpec `json:"moon,omitempty"`
}

// Catalog lists the star and the planets in orbit order
type Catalog struct {
	Star    BodySpec   `json:"star"`
	Planets []BodySpec `json:"planets"`
}

var defaultCatalog = Catalog{
	Star: BodySpec{
		Name:      "Sun",
		Radius:    10,
		SpinRate:  0.002,
		Color:     "#ffcc33",
		InfoColor: "#ffff00",
		Details:   "The central star of the system. It holds 99.8% of the system's total mass.",
	},
	Planets: []BodySpec{
		{
			Name: "Mercury", Radius: 1, OrbitRadius: 15, AngularSpeed: 0.02, RandomAngle: true,
			TiltDegrees: 7, SpinRate: 0.01, Color: "#9e9a94", InfoColor: "#c3a373",
			Details: "The smallest planet and the closest to the Sun. Its rocky surface resembles the Moon.",
		},
		{
			Name: "Venus", Radius: 1.5, OrbitRadius: 20, AngularSpeed: 0.015, RandomAngle: true,
			TiltDegrees: 3, SpinRate: 0.01, Color: "#e3c07b", InfoColor: "#e0c25a",
			Details: "Earth's 'twin', but its dense CO2 atmosphere drives an extreme greenhouse effect.",
		},
		{
			Name: "Earth", Radius: 2, OrbitRadius: 25, AngularSpeed: 0.01, RandomAngle: true,
			TiltDegrees: 23.5, SpinRate: 0.01, Color: "#3a76c4", InfoColor: "#4d94ff",
			Details: "The only world known to host life. It turns on its axis in 24 hours and orbits in 365 days.",
			Moon: &BodySpec{
				Name: "Moon", Radius: 0.5, OrbitRadius: 3, AngularSpeed: 0.05,
				SpinRate: 0.005, Color: "#bfbfbf", InfoColor: "#d0d0d0",
				Details: "Earth's only natural satellite.",
			},
		},
		{
			Name: "Mars", Radius: 1.2, OrbitRadius: 30, AngularSpeed: 0.008, RandomAngle: true,
			TiltDegrees: 25, SpinRate: 0.01, Color: "#c1502e", InfoColor: "#ff6347",
			Details: "The Red Planet. Home to the tallest mountain in the solar system, Olympus Mons, and possible traces of water.",
		},
		{
			Name: "Jupiter", Radius: 4, OrbitRadius: 40, AngularSpeed: 0.005, RandomAngle: true,
			TiltDegrees: 3, SpinRate: 0.01, Color: "#c99b6b", InfoColor: "#ffb65e",
			Details: "The gas giant and the largest planet. Its Great Red Spot is a storm that has lasted for centuries.",
		},
		{
			Name: "Saturn", Radius: 3.5, OrbitRadius: 50, AngularSpeed: 0.004, RandomAngle: true,
			TiltDegrees: 26.7, SpinRate: 0.01, Color: "#e4d191", InfoColor: "#ffd700",
			Details: "Famous for its ring system, made mostly of ice and rock.",
			Rings:   &Rings{Inner: 4.5, Outer: 8, Color: "#cdb68a"},
		},
		{
			Name: "Uranus", Radius: 2.5, OrbitRadius: 60, AngularSpeed: 0.003, RandomAngle: true,
			TiltDegrees: 97, SpinRate: 0.01, Color: "#9fd8e0", InfoColor: "#a0c4ff",
			Details: "An ice giant that rotates on its side, with an axial tilt of 98 degrees that gives it extreme seasons.",
		},
		{
			Name: "Neptune", Radius: 2.5, OrbitRadius: 70, AngularSpeed: 0.0025, RandomAngle: true,
			TiltDegrees: 28, SpinRate: 0.01, Color: "#3f5fd0", InfoColor: "#3a7dff",
			Details: "The most distant planet, known for its supersonic winds and bright blue color.",
		},
	},
}

// DefaultCatalog returns a private copy of the built-in solar system
func DefaultCatalog() Catalog {
	return deep.MustCopy(defaultCatalog)
}

// LoadCatalog reads a catalog from a JSON file
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks names are unique and sizes make sense
func (c Catalog) Validate() error {
	seen := make(map[string]bool)

	var check func(s BodySpec) error
	check = func(s BodySpec) error {
		if s.Name == "" {
			return errors.New("body with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate body name %q", s.Name)
		}
		seen[s.Name] = true

		if s.Radius <= 0 {
			return fmt.Errorf("%s: radius must be positive", s.Name)
		}
		if s.OrbitRadius < 0 {
			return fmt.Errorf("%s: orbit radius must not be negative", s.Name)
		}
		if s.Rings != nil && (s.Rings.Inner <= 0 || s.Rings.Outer <= s.Rings.Inner) {
			return fmt.Errorf("%s: invalid rings %.1f-%.1f", s.Name, s.Rings.Inner, s.Rings.Outer)
		}
		if s.Moon != nil {
			if s.Moon.Moon != nil {
				return fmt.Errorf("%s: moons cannot have moons", s.Moon.Name)
			}
			return check(*s.Moon)
		}
		return nil
	}

	if err := check(c.Star); err != nil {
		return fmt.Errorf("star: %w", err)
	}
	if len(c.Planets) == 0 {
		return errors.New("no planets")
	}
	for _, p := range c.Planets {
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}
