package orbit

import (
	"fmt"
	"math/rand"
)

// Registry owns every body in the system
type Registry struct {
	star    *Body
	planets []*Body
	byName  map[string]*Body
}

// NewRegistry builds the bodies described by the catalog. Planets flagged
// with RandomAngle draw their starting angle from rng; a nil rng keeps the
// catalog angle.
func NewRegistry(c Catalog, rng *rand.Rand) (*Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	r := &Registry{
		byName: make(map[string]*Body),
	}

	r.star = newBody(c.Star, c.Star.Angle)
	r.star.star = true
	r.byName[r.star.name] = r.star

	for _, spec := range c.Planets {
		p := newBody(spec, startAngle(spec, rng))
		r.byName[p.name] = p
		r.planets = append(r.planets, p)

		if spec.Moon != nil {
			m := newBody(*spec.Moon, startAngle(*spec.Moon, rng))
			m.host = p
			p.moon = m
			r.byName[m.name] = m
		}
	}

	return r, nil
}

func startAngle(spec BodySpec, rng *rand.Rand) float32 {
	if spec.RandomAngle && rng != nil {
		return rng.Float32() * TwoPi
	}
	return spec.Angle
}

// Advance moves every planet dt ticks, then each moon relative to its host
func (r *Registry) Advance(dt float32) {
	for _, p := range r.planets {
		p.advance(dt)
	}
	for _, p := range r.planets {
		if p.moon != nil {
			p.moon.advance(dt)
		}
	}
}

// Star returns the central star
func (r *Registry) Star() *Body {
	return r.star
}

// Planets returns the planets in catalog order
func (r *Registry) Planets() []*Body {
	return r.planets
}

// Bodies returns the planets followed by their moons
func (r *Registry) Bodies() []*Body {
	bodies := make([]*Body, 0, len(r.planets)*2)
	bodies = append(bodies, r.planets...)
	for _, p := range r.planets {
		if p.moon != nil {
			bodies = append(bodies, p.moon)
		}
	}
	return bodies
}

// Lookup finds a body (star, planet or moon) by name
func (r *Registry) Lookup(name string) (*Body, bool) {
	b, ok := r.byName[name]
	return b, ok
}
