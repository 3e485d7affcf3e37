package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/scene"
)

// Orthographic is the top-down minimap camera. It hangs above the origin
// looking straight down with -Z at the top of the picture.
type Orthographic struct {
	position mgl32.Vec3
	extent   float32
	near     float32
	far      float32

	projection mgl32.Mat4
	layers     scene.Layers
}

// NewOrthographic creates the minimap camera covering ±extent on X and Z
func NewOrthographic(extent float32) *Orthographic {
	c := &Orthographic{
		position: mgl32.Vec3{0, MinimapHeight, 0},
		near:     DefaultNear,
		far:      DefaultFar,
		layers:   scene.MainLayer | scene.MinimapLayer,
	}
	c.SetBounds(extent)
	return c
}

// SetBounds resets the frustum to a square of ±extent
func (c *Orthographic) SetBounds(extent float32) {
	c.extent = extent
	c.projection = mgl32.Ortho(-extent, extent, -extent, extent, c.near, c.far)
}

// Bounds returns the left, right, bottom and top planes
func (c *Orthographic) Bounds() (left, right, bottom, top float32) {
	return -c.extent, c.extent, -c.extent, c.extent
}

// ViewMatrix looks down the Y axis with -Z as up
func (c *Orthographic) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, mgl32.Vec3{c.position.X(), 0, c.position.Z()}, mgl32.Vec3{0, 0, -1})
}

// ProjectionMatrix returns the orthographic projection
func (c *Orthographic) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the camera position
func (c *Orthographic) Position() mgl32.Vec3 {
	return c.position
}

// Layers returns the layers this camera renders
func (c *Orthographic) Layers() scene.Layers {
	return c.layers
}
