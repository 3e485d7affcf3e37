package frame

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/minimap"
	"github.com/leterax/go-orrery/pkg/orbit"
	"github.com/leterax/go-orrery/pkg/scene"
)

// World construction constants
const (
	SphereSegments   = 32
	OrbitSegments    = 64
	RingSegments     = 64
	StarCount        = 2000
	StarfieldRadius  = 900
	StarPointSize    = 1.5
	AmbientIntensity = 0.2
	SunIntensity     = 1.5
	MarkerSize       = 6
)

// World is the scene built from a registry, with handles to the nodes the
// frame loop and pick resolver need
type World struct {
	Scene    *scene.Scene
	Registry *orbit.Registry

	Sun     *scene.Node
	Planets map[*orbit.Body]*scene.Node
	Moons   map[*orbit.Body]*scene.Node
	Rings   map[*orbit.Body]*scene.Node
	Orbits  []*scene.Node
	Stars   *scene.Node
	Marker  *minimap.Indicator
}

// BuildWorld creates one node per body and binds it, adds orbit paths, the
// starfield, the lights and the minimap marker. seed drives the starfield.
func BuildWorld(reg *orbit.Registry, seed int64) (*World, error) {
	w := &World{
		Scene:    scene.New(),
		Registry: reg,
		Planets:  make(map[*orbit.Body]*scene.Node),
		Moons:    make(map[*orbit.Body]*scene.Node),
		Rings:    make(map[*orbit.Body]*scene.Node),
	}

	star := reg.Star()
	sun, err := bodyNode(star, true)
	if err != nil {
		return nil, err
	}
	star.Bind(sun)
	w.Scene.Add(sun)
	w.Sun = sun

	sunColor, err := parseOr(star.Color(), "#ffffff")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", star.Name(), err)
	}
	w.Scene.Sun = &scene.Light{Color: sunColor, Intensity: SunIntensity}
	w.Scene.Ambient = scene.Light{Color: mgl32.Vec3{1, 1, 1}, Intensity: AmbientIntensity}
	w.SyncLight()

	for _, p := range reg.Planets() {
		n, err := bodyNode(p, false)
		if err != nil {
			return nil, err
		}
		p.Bind(n)
		w.Scene.Add(n)
		w.Planets[p] = n

		if m := p.Moon(); m != nil {
			mn, err := bodyNode(m, false)
			if err != nil {
				return nil, err
			}
			m.Bind(mn)
			n.Add(mn)
			w.Moons[m] = mn
		}

		if r := p.Rings(); r != nil {
			rn, err := ringNode(p, r)
			if err != nil {
				return nil, err
			}
			n.Add(rn)
			w.Rings[p] = rn
		}

		line := scene.NewNode(p.Name()+"-orbit", scene.NewCircleLine(p.OrbitRadius(), OrbitSegments),
			scene.Material{Color: mgl32.Vec3{0.35, 0.35, 0.35}, Emissive: true})
		w.Scene.Add(line)
		w.Orbits = append(w.Orbits, line)
	}

	w.Stars = scene.NewNode("starfield", scene.NewPointCloud(starfield(seed, StarCount, StarfieldRadius)),
		scene.Material{Color: mgl32.Vec3{1, 1, 1}, Emissive: true, PointSize: StarPointSize})
	w.Scene.Add(w.Stars)

	w.Marker = minimap.NewIndicator(MarkerSize, mgl32.Vec3{1, 0.2, 0.2})
	w.Scene.Add(w.Marker.Node())

	return w, nil
}

// SyncLight moves the sun light onto the star
func (w *World) SyncLight() {
	if w.Scene.Sun != nil {
		w.Scene.Sun.Position = w.Registry.Star().Position()
	}
}

// PlanetNode returns the node bound to a planet
func (w *World) PlanetNode(b *orbit.Body) (*scene.Node, bool) {
	n, ok := w.Planets[b]
	return n, ok
}

func bodyNode(b *orbit.Body, emissive bool) (*scene.Node, error) {
	c, err := parseOr(b.Color(), "#ffffff")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	n := scene.NewNode(b.Name(), scene.NewSphereGeometry(b.Radius(), SphereSegments, SphereSegments),
		scene.Material{Color: c, Emissive: emissive})
	n.SetRotation(mgl32.QuatRotate(b.Tilt(), mgl32.Vec3{0, 0, 1}))
	return n, nil
}

// ringNode lays the ring in the body's equatorial plane
func ringNode(b *orbit.Body, r *orbit.Rings) (*scene.Node, error) {
	c, err := parseOr(r.Color, b.Color())
	if err != nil {
		return nil, fmt.Errorf("%s rings: %w", b.Name(), err)
	}
	n := scene.NewNode(b.Name()+"-rings", scene.NewRingGeometry(r.Inner, r.Outer, RingSegments),
		scene.Material{Color: c})
	tilt := mgl32.QuatRotate(b.Tilt(), mgl32.Vec3{0, 0, 1})
	n.SetRotation(tilt.Mul(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})))
	return n, nil
}

func parseOr(hex, fallback string) (mgl32.Vec3, error) {
	if hex == "" {
		hex = fallback
	}
	if hex == "" {
		return mgl32.Vec3{1, 1, 1}, nil
	}
	return scene.ParseColor(hex)
}

// starfield scatters points uniformly over a sphere
func starfield(seed int64, count int, radius float32) []mgl32.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]mgl32.Vec3, count)
	for i := range points {
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		points[i] = mgl32.Vec3{
			float32(r * math.Cos(theta)),
			float32(z),
			float32(r * math.Sin(theta)),
		}.Mul(radius)
	}
	return points
}
