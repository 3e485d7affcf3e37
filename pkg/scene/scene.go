// Package scene is the scene graph the renderer draws and the pick resolver
// casts rays into.
package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Light is a point of illumination; a directional light shines from its
// position toward the origin
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Scene is the root of the graph plus its lights
type Scene struct {
	Root    *Node
	Sun     *Light
	Ambient Light
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		Root: NewNode("root", nil, Material{}),
	}
}

// Add attaches a node to the root
func (s *Scene) Add(n *Node) {
	s.Root.Add(n)
}

// Remove detaches a node from wherever it hangs
func (s *Scene) Remove(n *Node) {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// Hit is one ray intersection
type Hit struct {
	Node     *Node
	Distance float32
	Point    mgl32.Vec3
}

// Intersect tests the ray against the targets' bounding spheres, and their
// descendants when recursive is set. Hits come back nearest first.
func (s *Scene) Intersect(ray Ray, targets []*Node, recursive bool) []Hit {
	var hits []Hit

	var test func(n *Node)
	test = func(n *Node) {
		if sphere, ok := n.WorldBoundingSphere(); ok {
			if t, ok := ray.IntersectSphere(sphere); ok {
				hits = append(hits, Hit{Node: n, Distance: t, Point: ray.At(t)})
			}
		}
		if recursive {
			for _, c := range n.children {
				test(c)
			}
		}
	}
	for _, n := range targets {
		test(n)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// ParseColor converts a "#rrggbb" string into linear RGB components
func ParseColor(hex string) (mgl32.Vec3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// MustParseColor is ParseColor for literals; malformed input yields white
func MustParseColor(hex string) mgl32.Vec3 {
	c, err := ParseColor(hex)
	if err != nil {
		return mgl32.Vec3{1, 1, 1}
	}
	return c
}
