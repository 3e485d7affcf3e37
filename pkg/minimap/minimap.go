// Package minimap derives the top-down marker that shows where the main
// camera is and which way it faces.
package minimap

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/scene"
)

// Pose is the marker position on the ground plane and its heading. Heading
// 0 faces -Z and positive headings turn toward -X.
type Pose struct {
	X       float32
	Z       float32
	Heading float32
}

// Project computes the marker pose. Free flight uses the camera yaw;
// orbital mode points the marker at the orbit target.
func Project(cameraPos mgl32.Vec3, yaw float32, target mgl32.Vec3, mode control.Mode) Pose {
	p := Pose{X: cameraPos.X(), Z: cameraPos.Z()}
	if mode == control.FreeFlight {
		p.Heading = yaw
		return p
	}
	p.Heading = HeadingTo(p.X, p.Z, target.X(), target.Z())
	return p
}

// HeadingTo returns the heading from (x, z) toward (tx, tz), 0 when the
// points coincide
func HeadingTo(x, z, tx, tz float32) float32 {
	dx, dz := float64(tx-x), float64(tz-z)
	if dx == 0 && dz == 0 {
		return 0
	}
	return float32(math.Atan2(-dx, -dz))
}

// Indicator is the marker node drawn on the minimap layer
type Indicator struct {
	node *scene.Node
}

// NewIndicator builds a flat triangle marker pointing along -Z, visible
// only to the minimap camera
func NewIndicator(size float32, color mgl32.Vec3) *Indicator {
	// The shape lies in the XY plane with its tip at +Y; laying it flat
	// sends +Y to -Z.
	g := scene.NewShapeGeometry([]mgl32.Vec2{
		{0, size},
		{-size * 0.6, -size * 0.6},
		{size * 0.6, -size * 0.6},
	})
	n := scene.NewNode("camera-marker", g, scene.Material{Color: color, Emissive: true})
	n.Layers = scene.MinimapLayer
	return &Indicator{node: n}
}

// Node returns the marker scene node
func (ind *Indicator) Node() *scene.Node {
	return ind.node
}

// Apply writes a pose to the marker, keeping it flat on the ground plane
func (ind *Indicator) Apply(p Pose) {
	ind.node.SetPosition(mgl32.Vec3{p.X, 0, p.Z})
	ind.node.SetRotation(Orientation(p.Heading))
}

// Orientation turns by heading about Y then lays the marker flat
func Orientation(heading float32) mgl32.Quat {
	yaw := mgl32.QuatRotate(heading, mgl32.Vec3{0, 1, 0})
	flat := mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0})
	return yaw.Mul(flat)
}
