// Package render is the OpenGL backend: it draws a scene graph through a
// camera into the main window and the minimap viewport, and drives the
// window loop.
package render

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/internal/openglhelper"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/frame"
	"github.com/leterax/go-orrery/pkg/scene"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// Renderer implements frame.Renderer on the current GL context
type Renderer struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	meshes map[*scene.Geometry]*openglhelper.Mesh

	main    frame.Size
	minimap frame.Size

	lg *logging.Logger
}

var _ frame.Renderer = (*Renderer)(nil)

// NewRenderer compiles the scene shader. The window's context must be
// current.
func NewRenderer(window *openglhelper.Window, lg *logging.Logger) (*Renderer, error) {
	shader, err := openglhelper.LoadShader(shaderFS, "shaders/mesh.vert", "shaders/mesh.frag")
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	w, h := window.FramebufferSize()
	return &Renderer{
		window:  window,
		shader:  shader,
		meshes:  make(map[*scene.Geometry]*openglhelper.Mesh),
		main:    frame.Size{W: w, H: h},
		minimap: frame.MinimapSize,
		lg:      lg,
	}, nil
}

// Resize records the surface sizes used by the next passes
func (r *Renderer) Resize(main, minimap frame.Size) {
	r.main = main
	r.minimap = minimap
}

// RenderMain draws every main layer node across the whole window
func (r *Renderer) RenderMain(s *scene.Scene, cam camera.Camera) error {
	openglhelper.Scissor(false, 0, 0, 0, 0)
	openglhelper.Viewport(0, 0, r.main.W, r.main.H)
	r.window.Clear(BackgroundColor)
	return r.draw(s, cam)
}

// RenderMinimap draws the top-down view into its corner of the window
func (r *Renderer) RenderMinimap(s *scene.Scene, cam camera.Camera) error {
	x, y := MinimapOrigin(r.main, r.minimap)
	openglhelper.Viewport(x, y, r.minimap.W, r.minimap.H)
	openglhelper.Scissor(true, x, y, r.minimap.W, r.minimap.H)
	defer openglhelper.Scissor(false, 0, 0, 0, 0)

	r.window.Clear(MinimapBackground)
	return r.draw(s, cam)
}

func (r *Renderer) draw(s *scene.Scene, cam camera.Camera) error {
	r.shader.Use()
	r.shader.SetMat4("view", cam.ViewMatrix())
	r.shader.SetMat4("projection", cam.ProjectionMatrix())

	if s.Sun != nil {
		r.shader.SetVec3("lightPos", s.Sun.Position)
		r.shader.SetVec3("lightColor", s.Sun.Color)
		r.shader.SetFloat("lightIntensity", s.Sun.Intensity)
	} else {
		r.shader.SetFloat("lightIntensity", 0)
	}
	r.shader.SetVec3("ambientColor", s.Ambient.Color)
	r.shader.SetFloat("ambientIntensity", s.Ambient.Intensity)

	for _, n := range DrawList(s.Root, cam.Layers()) {
		r.shader.SetMat4("model", n.ModelMatrix())
		r.shader.SetVec3("color", n.Material.Color)
		r.shader.SetBool("emissive", n.Material.Emissive)
		r.shader.SetFloat("pointSize", max(n.Material.PointSize, 1))
		r.mesh(n.Geometry).Draw()
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// mesh uploads a geometry on first use
func (r *Renderer) mesh(g *scene.Geometry) *openglhelper.Mesh {
	if m, ok := r.meshes[g]; ok {
		return m
	}
	m := openglhelper.NewMesh(g.Interleaved(), g.Indices, primitiveMode(g.Primitive))
	r.meshes[g] = m
	r.lg.Debug("uploaded mesh",
		slog.Int("vertices", len(g.Positions)),
		slog.Int("indices", len(g.Indices)))
	return m
}

// Cleanup releases GPU resources
func (r *Renderer) Cleanup() {
	for g, m := range r.meshes {
		m.Delete()
		delete(r.meshes, g)
	}
	r.shader.Delete()
}

// DrawList returns the nodes under root that have geometry and share a
// layer with layers, in depth-first order
func DrawList(root *scene.Node, layers scene.Layers) []*scene.Node {
	var out []*scene.Node
	root.Walk(func(n *scene.Node) {
		if n.Geometry != nil && n.Layers&layers != 0 {
			out = append(out, n)
		}
	})
	return out
}

// MinimapOrigin returns the bottom-left GL pixel of the minimap viewport,
// which sits MinimapMargin pixels in from the top-right corner
func MinimapOrigin(main, minimap frame.Size) (x, y int) {
	return max(main.W-minimap.W-MinimapMargin, 0), max(main.H-minimap.H-MinimapMargin, 0)
}

func primitiveMode(p scene.Primitive) uint32 {
	switch p {
	case scene.LineLoop:
		return gl.LINE_LOOP
	case scene.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

var (
	// BackgroundColor clears the main view
	BackgroundColor = mgl32.Vec4{0, 0, 0, 1}
	// MinimapBackground clears the minimap, #0a0a0a
	MinimapBackground = mgl32.Vec4{10.0 / 255, 10.0 / 255, 10.0 / 255, 1}
)
