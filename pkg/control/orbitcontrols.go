package control

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/camera"
)

// Orbit control defaults
const (
	DefaultDampingFactor = 0.05
	DefaultDollyScale    = 0.95
	DefaultMinDistance   = 0.5
	DefaultMaxDistance   = 1500.0

	polarEpsilon = 1e-6
	idleEpsilon  = 1e-6
)

// OrbitControls orbits a camera around a target point. Drag and scroll
// input accumulates and is bled into the camera with damping on Update.
type OrbitControls struct {
	cam    *camera.Perspective
	target mgl32.Vec3

	enabled bool

	DampingFactor float32
	DollyScale    float32
	RotateSpeed   float32
	MinDistance   float32
	MaxDistance   float32

	height int

	deltaTheta float64
	deltaPhi   float64
	scale      float64
}

// NewOrbitControls creates disabled controls targeting the origin
func NewOrbitControls(cam *camera.Perspective) *OrbitControls {
	return &OrbitControls{
		cam:           cam,
		DampingFactor: DefaultDampingFactor,
		DollyScale:    DefaultDollyScale,
		RotateSpeed:   1,
		MinDistance:   DefaultMinDistance,
		MaxDistance:   DefaultMaxDistance,
		height:        600,
		scale:         1,
	}
}

// Enabled reports whether user input is accepted
func (o *OrbitControls) Enabled() bool {
	return o.enabled
}

// SetEnabled turns input handling on or off and drops pending motion
func (o *OrbitControls) SetEnabled(enabled bool) {
	o.enabled = enabled
	o.deltaTheta, o.deltaPhi, o.scale = 0, 0, 1
}

// Target returns the orbit center
func (o *OrbitControls) Target() mgl32.Vec3 {
	return o.target
}

// SetTarget moves the orbit center without moving the camera
func (o *OrbitControls) SetTarget(t mgl32.Vec3) {
	o.target = t
}

// SetViewportHeight sets the pixel height drag distances are measured
// against
func (o *OrbitControls) SetViewportHeight(h int) {
	if h > 0 {
		o.height = h
	}
}

// Rotate queues a drag of dx, dy pixels. A drag across the full viewport
// height is one full turn.
func (o *OrbitControls) Rotate(dx, dy float64) {
	if !o.enabled {
		return
	}
	h := float64(o.height)
	o.deltaTheta -= 2 * math.Pi * dx / h * float64(o.RotateSpeed)
	o.deltaPhi -= 2 * math.Pi * dy / h * float64(o.RotateSpeed)
}

// Dolly queues a zoom; positive notches move toward the target
func (o *OrbitControls) Dolly(notches float64) {
	if !o.enabled || notches == 0 {
		return
	}
	o.scale *= math.Pow(float64(o.DollyScale), notches)
}

// Pending reports whether queued rotation or zoom remains
func (o *OrbitControls) Pending() bool {
	return math.Abs(o.deltaTheta) >= idleEpsilon ||
		math.Abs(o.deltaPhi) >= idleEpsilon ||
		o.scale != 1
}

// Update applies one damped step of queued motion and aims the camera at
// the target. With nothing queued the camera position is left as is.
// Reports whether the camera moved.
func (o *OrbitControls) Update() bool {
	if !o.Pending() {
		o.deltaTheta, o.deltaPhi = 0, 0
		o.cam.LookAt(o.target)
		return false
	}

	offset := o.cam.Position().Sub(o.target)
	radius := float64(offset.Len())
	theta := math.Atan2(float64(offset.X()), float64(offset.Z()))
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(float64(mgl32.Clamp(offset.Y()/float32(radius), -1, 1)))
	}

	damping := float64(o.DampingFactor)
	theta += o.deltaTheta * damping
	phi += o.deltaPhi * damping
	phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, phi))

	radius *= o.scale
	radius = math.Max(float64(o.MinDistance), math.Min(float64(o.MaxDistance), radius))

	sinPhi := math.Sin(phi)
	offset = mgl32.Vec3{
		float32(radius * sinPhi * math.Sin(theta)),
		float32(radius * math.Cos(phi)),
		float32(radius * sinPhi * math.Cos(theta)),
	}
	o.cam.SetPosition(o.target.Add(offset))
	o.cam.LookAt(o.target)

	o.deltaTheta *= 1 - damping
	o.deltaPhi *= 1 - damping
	o.scale = 1
	return true
}
