package control

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/camera"
)

// Free-flight speeds, per tick
const (
	DefaultMoveSpeed   = 1.0
	DefaultRotateSpeed = 0.015
)

// Flight integrates keyboard look and move input into the camera
type Flight struct {
	yaw   float32
	pitch float32

	MoveSpeed   float32
	RotateSpeed float32
}

// NewFlight creates an integrator with default speeds
func NewFlight() *Flight {
	return &Flight{
		MoveSpeed:   DefaultMoveSpeed,
		RotateSpeed: DefaultRotateSpeed,
	}
}

// Capture reads yaw and pitch from an orientation, dropping roll
func (f *Flight) Capture(q mgl32.Quat) {
	f.yaw, f.pitch = camera.YawPitch(q)
	f.pitch = camera.ClampPitch(f.pitch)
}

// Yaw returns the current yaw in radians
func (f *Flight) Yaw() float32 {
	return f.yaw
}

// Pitch returns the current pitch in radians
func (f *Flight) Pitch() float32 {
	return f.pitch
}

// Orientation rebuilds the camera rotation from yaw and pitch
func (f *Flight) Orientation() mgl32.Quat {
	return camera.FromYawPitch(f.yaw, f.pitch)
}

// Apply rotates then translates the camera for one tick of input. Opposing
// keys cancel and simultaneous keys add.
func (f *Flight) Apply(in *Input, cam *camera.Perspective) {
	f.pitch += in.axis(ActionLookUp, ActionLookDown) * f.RotateSpeed
	f.yaw += in.axis(ActionLookLeft, ActionLookRight) * f.RotateSpeed
	f.pitch = camera.ClampPitch(f.pitch)

	cam.SetOrientation(f.Orientation())

	right := in.axis(ActionStrafeRight, ActionStrafeLeft) * f.MoveSpeed
	up := in.axis(ActionMoveUp, ActionMoveDown) * f.MoveSpeed
	forward := in.axis(ActionMoveForward, ActionMoveBack) * f.MoveSpeed
	if right != 0 || up != 0 || forward != 0 {
		cam.TranslateLocal(right, up, forward)
	}
}
