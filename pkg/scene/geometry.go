package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive selects how a geometry's indices are assembled
type Primitive int

const (
	Triangles Primitive = iota
	LineLoop
	Points
)

// Sphere is a bounding sphere in the geometry's local space
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Geometry holds vertex positions, normals and indices for one mesh
type Geometry struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
	Primitive Primitive

	bounds *Sphere
}

// BoundingSphere returns the bounding sphere, computing it on first use
func (g *Geometry) BoundingSphere() Sphere {
	if g.bounds == nil {
		g.ComputeBoundingSphere()
	}
	return *g.bounds
}

// HasBoundingSphere reports whether the bounding sphere has been computed
func (g *Geometry) HasBoundingSphere() bool {
	return g.bounds != nil
}

// ComputeBoundingSphere centers the sphere on the bounding box and takes the
// farthest vertex as the radius
func (g *Geometry) ComputeBoundingSphere() {
	if len(g.Positions) == 0 {
		g.bounds = &Sphere{}
		return
	}

	lo, hi := g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	center := lo.Add(hi).Mul(0.5)

	var r2 float32
	for _, p := range g.Positions {
		d := p.Sub(center)
		r2 = max(r2, d.Dot(d))
	}

	g.bounds = &Sphere{Center: center, Radius: float32(math.Sqrt(float64(r2)))}
}

// Interleaved packs position and normal into x, y, z, nx, ny, nz per vertex
func (g *Geometry) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Positions)*6)
	for i, p := range g.Positions {
		n := mgl32.Vec3{0, 1, 0}
		if i < len(g.Normals) {
			n = g.Normals[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// NewSphereGeometry builds a UV sphere
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	g := &Geometry{Primitive: Triangles}
	for y := 0; y <= heightSegments; y++ {
		v := float64(y) / float64(heightSegments)
		phi := v * math.Pi
		for x := 0; x <= widthSegments; x++ {
			u := float64(x) / float64(widthSegments)
			theta := u * 2 * math.Pi

			n := mgl32.Vec3{
				float32(-math.Cos(theta) * math.Sin(phi)),
				float32(math.Cos(phi)),
				float32(math.Sin(theta) * math.Sin(phi)),
			}
			g.Positions = append(g.Positions, n.Mul(radius))
			g.Normals = append(g.Normals, n)
		}
	}

	row := uint32(widthSegments + 1)
	for y := uint32(0); y < uint32(heightSegments); y++ {
		for x := uint32(0); x < uint32(widthSegments); x++ {
			a := y*row + x + 1
			b := y*row + x
			c := (y+1)*row + x
			d := (y+1)*row + x + 1
			if y != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if y != uint32(heightSegments)-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// NewRingGeometry builds a flat annulus in the XY plane facing +Z
func NewRingGeometry(inner, outer float32, segments int) *Geometry {
	segments = max(segments, 3)

	g := &Geometry{Primitive: Triangles}
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		g.Positions = append(g.Positions,
			mgl32.Vec3{inner * c, inner * s, 0},
			mgl32.Vec3{outer * c, outer * s, 0})
		g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1})
	}
	for i := uint32(0); i < uint32(segments); i++ {
		a, b := 2*i, 2*i+1
		c, d := 2*i+2, 2*i+3
		g.Indices = append(g.Indices, a, b, d, a, d, c)
	}
	return g
}

// NewCircleLine builds a closed line loop of the given radius in the XZ plane
func NewCircleLine(radius float32, segments int) *Geometry {
	segments = max(segments, 3)

	g := &Geometry{Primitive: LineLoop}
	for i := 0; i < segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		g.Positions = append(g.Positions, mgl32.Vec3{
			radius * float32(math.Cos(theta)),
			0,
			radius * float32(math.Sin(theta)),
		})
		g.Indices = append(g.Indices, uint32(i))
	}
	return g
}

// NewShapeGeometry fans a convex outline in the XY plane into triangles
func NewShapeGeometry(outline []mgl32.Vec2) *Geometry {
	g := &Geometry{Primitive: Triangles}
	for _, p := range outline {
		g.Positions = append(g.Positions, mgl32.Vec3{p[0], p[1], 0})
		g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1})
	}
	for i := 1; i+1 < len(outline); i++ {
		g.Indices = append(g.Indices, 0, uint32(i), uint32(i+1))
	}
	return g
}

// NewPointCloud builds a Points geometry
func NewPointCloud(points []mgl32.Vec3) *Geometry {
	g := &Geometry{Primitive: Points, Positions: points}
	for i := range points {
		g.Indices = append(g.Indices, uint32(i))
	}
	return g
}
