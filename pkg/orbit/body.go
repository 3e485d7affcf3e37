// Package orbit holds the bodies of the solar system and advances them along
// their circular orbits.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TwoPi is one full revolution in radians
const TwoPi = 2 * math.Pi

// Handle is the render-side object bound to a body. The registry pushes
// positions and spin into it; the pick resolver asks it for its size.
type Handle interface {
	SetPosition(p mgl32.Vec3)
	Rotate(delta float32)
	BoundingRadius() float32
}

// Info is the display metadata shown when a body is selected
type Info struct {
	Color   string
	Details string
}

// Rings describes a flat ring around a body (Saturn)
type Rings struct {
	Inner float32 `json:"inner"`
	Outer float32 `json:"outer"`
	Color string  `json:"color"`
}

// Body is a sun, planet or moon. Its position is always derived from its
// angle; nothing outside this package writes it.
type Body struct {
	name         string
	radius       float32
	orbitRadius  float32
	angularSpeed float32
	angle        float32
	tilt         float32 // radians, about the orbit normal
	spinRate     float32
	color        string
	info         Info
	rings        *Rings
	star         bool

	local mgl32.Vec3 // relative to host (or origin for planets)

	host   *Body
	moon   *Body
	handle Handle
}

func newBody(spec BodySpec, angle float32) *Body {
	b := &Body{
		name:         spec.Name,
		radius:       spec.Radius,
		orbitRadius:  spec.OrbitRadius,
		angularSpeed: spec.AngularSpeed,
		angle:        wrapAngle(angle),
		tilt:         mgl32.DegToRad(spec.TiltDegrees),
		spinRate:     spec.SpinRate,
		color:        spec.Color,
		info: Info{
			Color:   spec.InfoColor,
			Details: spec.Details,
		},
	}
	if spec.Rings != nil {
		r := *spec.Rings
		b.rings = &r
	}
	b.recompute()
	return b
}

// recompute derives the local position from the current angle
func (b *Body) recompute() {
	sin, cos := math.Sincos(float64(b.angle))
	b.local = mgl32.Vec3{
		b.orbitRadius * float32(cos),
		0,
		b.orbitRadius * float32(sin),
	}
	if b.handle != nil {
		b.handle.SetPosition(b.local)
	}
}

// advance moves the body dt ticks along its orbit and spins it
func (b *Body) advance(dt float32) {
	b.angle = wrapAngle(b.angle + b.angularSpeed*dt)
	b.recompute()
	b.Rotate(b.spinRate * dt)
}

// Rotate applies a self-rotation increment to the bound handle
func (b *Body) Rotate(delta float32) {
	if b.handle != nil && delta != 0 {
		b.handle.Rotate(delta)
	}
}

// Bind attaches the render handle and pushes the current position into it
func (b *Body) Bind(h Handle) {
	b.handle = h
	if h != nil {
		h.SetPosition(b.local)
	}
}

// Name returns the unique body name
func (b *Body) Name() string { return b.name }

// Radius returns the render-scale radius
func (b *Body) Radius() float32 { return b.radius }

// OrbitRadius returns the distance from the orbit center
func (b *Body) OrbitRadius() float32 { return b.orbitRadius }

// AngularSpeed returns radians per tick
func (b *Body) AngularSpeed() float32 { return b.angularSpeed }

// Angle returns the current orbit angle in [0, 2π)
func (b *Body) Angle() float32 { return b.angle }

// Tilt returns the axial tilt in radians
func (b *Body) Tilt() float32 { return b.tilt }

// SpinRate returns the self-rotation per tick
func (b *Body) SpinRate() float32 { return b.spinRate }

// Color returns the hex render color
func (b *Body) Color() string { return b.color }

// Info returns the display metadata
func (b *Body) Info() Info { return b.info }

// Rings returns the ring description, or nil
func (b *Body) Rings() *Rings { return b.rings }

// IsStar reports whether this is the central star
func (b *Body) IsStar() bool { return b.star }

// Host returns the body this one orbits, nil for planets and the star
func (b *Body) Host() *Body { return b.host }

// Moon returns the child body, if any
func (b *Body) Moon() *Body { return b.moon }

// Handle returns the bound render handle, if any
func (b *Body) Handle() Handle { return b.handle }

// LocalPosition returns the position relative to the host
func (b *Body) LocalPosition() mgl32.Vec3 { return b.local }

// Position returns the world position
func (b *Body) Position() mgl32.Vec3 {
	if b.host != nil {
		return b.host.Position().Add(b.local)
	}
	return b.local
}

func wrapAngle(a float32) float32 {
	w := math.Mod(float64(a), TwoPi)
	if w < 0 {
		w += TwoPi
	}
	return float32(w)
}
