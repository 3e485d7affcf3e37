package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Layers is a bitmask of the render layers an object belongs to or a camera
// sees
type Layers uint32

const (
	MainLayer    Layers = 1 << 0
	MinimapLayer Layers = 1 << 1
)

// Material describes how the renderer shades a node's geometry
type Material struct {
	Color     mgl32.Vec3
	Emissive  bool    // unlit, drawn at full color
	PointSize float32 // for Points geometry
}

// Node is one object in the scene graph. Children inherit only their
// parent's translation; a node's rotation applies to its own geometry.
type Node struct {
	Name     string
	Geometry *Geometry
	Material Material
	Layers   Layers

	position mgl32.Vec3
	rotation mgl32.Quat // fixed base orientation (tilt)
	spin     float32    // accumulated rotation about the local Y axis

	parent   *Node
	children []*Node

	radius       float32
	radiusCached bool
}

// NewNode creates a node on the main layer
func NewNode(name string, geometry *Geometry, material Material) *Node {
	return &Node{
		Name:     name,
		Geometry: geometry,
		Material: material,
		Layers:   MainLayer,
		rotation: mgl32.QuatIdent(),
	}
}

// Add attaches a child, detaching it from any previous parent
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches a direct child
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent node, nil for roots
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children
func (n *Node) Children() []*Node {
	return n.children
}

// Position returns the position relative to the parent
func (n *Node) Position() mgl32.Vec3 {
	return n.position
}

// SetPosition sets the position relative to the parent
func (n *Node) SetPosition(p mgl32.Vec3) {
	n.position = p
}

// SetRotation replaces the base orientation
func (n *Node) SetRotation(q mgl32.Quat) {
	n.rotation = q
}

// Rotate adds to the spin about the local Y axis
func (n *Node) Rotate(delta float32) {
	n.spin += delta
}

// Spin returns the accumulated spin angle
func (n *Node) Spin() float32 {
	return n.spin
}

// Orientation returns the base orientation followed by the spin
func (n *Node) Orientation() mgl32.Quat {
	if n.spin == 0 {
		return n.rotation
	}
	return n.rotation.Mul(mgl32.QuatRotate(n.spin, mgl32.Vec3{0, 1, 0}))
}

// WorldPosition sums the translations up the parent chain
func (n *Node) WorldPosition() mgl32.Vec3 {
	p := n.position
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.position)
	}
	return p
}

// ModelMatrix is the transform applied to this node's geometry
func (n *Node) ModelMatrix() mgl32.Mat4 {
	p := n.WorldPosition()
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(n.Orientation().Mat4())
}

// BoundingRadius returns the radius of the geometry's bounding sphere. It is
// computed on first call and cached on the node.
func (n *Node) BoundingRadius() float32 {
	if !n.radiusCached {
		if n.Geometry != nil {
			n.radius = n.Geometry.BoundingSphere().Radius
		}
		n.radiusCached = true
	}
	return n.radius
}

// WorldBoundingSphere returns the geometry's bounding sphere in world space
func (n *Node) WorldBoundingSphere() (Sphere, bool) {
	if n.Geometry == nil {
		return Sphere{}, false
	}
	s := n.Geometry.BoundingSphere()
	return Sphere{
		Center: n.WorldPosition().Add(n.Orientation().Rotate(s.Center)),
		Radius: s.Radius,
	}, true
}

// Walk visits the node and its descendants depth first
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// IsAncestorOf reports whether n is other or one of its parents
func (n *Node) IsAncestorOf(other *Node) bool {
	for a := other; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}
