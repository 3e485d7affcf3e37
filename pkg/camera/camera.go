// Package camera holds the perspective main camera, the orthographic minimap
// camera and the yaw/pitch helpers shared by the control schemes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/scene"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is what the renderer needs to draw one pass
type Camera interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
	Position() mgl32.Vec3
	Layers() scene.Layers
}

// Perspective implements the main 3D camera. Orientation is a quaternion
// taking camera space (looking along -Z) to world space.
type Perspective struct {
	position    mgl32.Vec3
	orientation mgl32.Quat

	fov    float32
	aspect float32
	near   float32
	far    float32

	projection mgl32.Mat4
	layers     scene.Layers
}

// NewPerspective creates a camera at pos with sensible defaults
func NewPerspective(pos mgl32.Vec3) *Perspective {
	c := &Perspective{
		position:    pos,
		orientation: mgl32.QuatIdent(),
		fov:         DefaultFOV,
		aspect:      800.0 / 600.0,
		near:        DefaultNear,
		far:         DefaultFar,
		layers:      scene.MainLayer,
	}
	c.updateProjectionMatrix()
	return c
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Perspective) updateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Perspective) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
	c.updateProjectionMatrix()
}

// Aspect returns the width/height ratio of the projection
func (c *Perspective) Aspect() float32 {
	return c.aspect
}

// FOV returns the vertical field of view in degrees
func (c *Perspective) FOV() float32 {
	return c.fov
}

// ViewMatrix returns the current view matrix
func (c *Perspective) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Front()), c.Up())
}

// ProjectionMatrix returns the current projection matrix
func (c *Perspective) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Layers returns the layers this camera renders
func (c *Perspective) Layers() scene.Layers {
	return c.layers
}

// Position returns the current camera position
func (c *Perspective) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Perspective) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the camera rotation
func (c *Perspective) Orientation() mgl32.Quat {
	return c.orientation
}

// SetOrientation replaces the camera rotation
func (c *Perspective) SetOrientation(q mgl32.Quat) {
	c.orientation = q.Normalize()
}

// LookAt turns the camera toward target keeping world Y as up
func (c *Perspective) LookAt(target mgl32.Vec3) {
	c.orientation = lookRotation(c.position, target, worldUp)
}

// Front returns the camera's front direction vector
func (c *Perspective) Front() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the camera's right direction vector
func (c *Perspective) Right() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the camera's up direction vector
func (c *Perspective) Up() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

// TranslateLocal moves the camera along its own right, up and front axes
func (c *Perspective) TranslateLocal(right, up, forward float32) {
	d := c.Right().Mul(right).Add(c.Up().Mul(up)).Add(c.Front().Mul(forward))
	c.position = c.position.Add(d)
}

// Ray returns the world-space ray through a point in normalized device
// coordinates
func (c *Perspective) Ray(ndcX, ndcY float32) scene.Ray {
	inv := c.projection.Mul4(c.ViewMatrix()).Inv()
	p := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 0.5}, inv)
	return scene.NewRay(c.position, p.Sub(c.position))
}

// ScreenToNDC maps window pixel coordinates (origin top left) into [-1, 1]
func ScreenToNDC(x, y float64, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return float32(x/float64(width)*2 - 1), float32(-y/float64(height)*2 + 1)
}

// lookRotation builds the orientation of an object at eye whose -Z axis
// points at target
func lookRotation(eye, target, up mgl32.Vec3) mgl32.Quat {
	z := eye.Sub(target)
	if z.LenSqr() == 0 {
		z = mgl32.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LenSqr() == 0 {
		// up and view direction are parallel
		if math.Abs(float64(up.Z())) == 1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(x, y, z).Mat4()).Normalize()
}
