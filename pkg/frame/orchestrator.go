// Package frame runs the per-tick update sequence and routes input to the
// camera controller and pick resolver.
package frame

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/minimap"
	"github.com/leterax/go-orrery/pkg/pick"
	"github.com/leterax/go-orrery/pkg/scene"
)

// ClickSlop is how far, in pixels, the pointer may travel between press and
// release for the release to count as a click
const ClickSlop = 4

// MinimapSize is the fixed pixel size of the minimap surface
var MinimapSize = Size{W: 200, H: 200}

// Size is a surface size in pixels
type Size struct {
	W, H int
}

// Renderer draws the two passes of a frame
type Renderer interface {
	RenderMain(s *scene.Scene, cam camera.Camera) error
	RenderMinimap(s *scene.Scene, cam camera.Camera) error
	Resize(main, minimap Size)
}

// Options configures an Orchestrator
type Options struct {
	// TimeScale multiplies the orbital ticks advanced per frame
	TimeScale float32
}

// Orchestrator owns the tick sequence. Input callbacks and Tick must be
// called from the same goroutine.
type Orchestrator struct {
	world    *World
	ctrl     *control.Controller
	resolver *pick.Resolver
	renderer Renderer
	minimap  *camera.Orthographic
	metrics  *Metrics
	lg       *logging.Logger

	timeScale float32
	input     control.Input
	size      Size
	pose      minimap.Pose

	pressed        bool
	pressX, pressY float64
	lastX, lastY   float64
}

// New wires a world, controller and renderer together. The pick resolver is
// built here and knows the sun and every planet node.
func New(w *World, ctrl *control.Controller, r Renderer, opts Options, m *Metrics, lg *logging.Logger) *Orchestrator {
	if opts.TimeScale == 0 {
		opts.TimeScale = 1
	}
	if m == nil {
		m = NewMetrics(nil)
	}

	o := &Orchestrator{
		world:     w,
		ctrl:      ctrl,
		renderer:  r,
		minimap:   camera.NewOrthographic(camera.MinimapExtent),
		metrics:   m,
		lg:        lg,
		timeScale: opts.TimeScale,
	}

	o.resolver = pick.NewResolver(w.Scene, ctrl, ctrl.Panel(), lg)
	o.resolver.Register(w.Sun, w.Registry.Star())
	for _, p := range w.Registry.Planets() {
		if n, ok := w.PlanetNode(p); ok {
			o.resolver.Register(n, p)
		}
	}
	return o
}

// Tick runs one frame: orbits, star, camera, marker, then the main and
// minimap passes. A render error ends the tick and is returned.
func (o *Orchestrator) Tick() error {
	start := time.Now()
	defer func() {
		o.metrics.ticks.Inc()
		o.metrics.tickDuration.Observe(time.Since(start).Seconds())
	}()

	dt := o.timeScale
	reg := o.world.Registry
	reg.Advance(dt)

	star := reg.Star()
	star.Rotate(star.SpinRate() * dt)
	o.world.SyncLight()

	o.ctrl.Update(&o.input)

	cam := o.ctrl.Camera()
	o.pose = minimap.Project(cam.Position(), o.ctrl.Yaw(), o.ctrl.Target(), o.ctrl.Mode())
	o.world.Marker.Apply(o.pose)

	if err := o.renderer.RenderMain(o.world.Scene, cam); err != nil {
		o.metrics.renderErrors.Inc()
		return fmt.Errorf("main pass: %w", err)
	}
	if err := o.renderer.RenderMinimap(o.world.Scene, o.minimap); err != nil {
		o.metrics.renderErrors.Inc()
		return fmt.Errorf("minimap pass: %w", err)
	}
	return nil
}

// KeyDown marks an action held. Toggle and Reset fire once per press.
func (o *Orchestrator) KeyDown(a control.Action) {
	o.input.Press(a)
	switch a {
	case control.ActionToggle:
		mode := o.ctrl.Toggle()
		o.metrics.modeSwitches.Inc()
		o.lg.Debug("toggled", slog.String("mode", mode.String()))
	case control.ActionReset:
		o.ctrl.ResetView()
	}
}

// KeyUp releases an action
func (o *Orchestrator) KeyUp(a control.Action) {
	o.input.Release(a)
}

// PointerDown starts a potential click or drag
func (o *Orchestrator) PointerDown(x, y float64) {
	o.pressed = true
	o.pressX, o.pressY = x, y
	o.lastX, o.lastY = x, y
}

// PointerMove drags the orbit camera while the button is held
func (o *Orchestrator) PointerMove(x, y float64) {
	if !o.pressed {
		return
	}
	o.Drag(x-o.lastX, y-o.lastY)
	o.lastX, o.lastY = x, y
}

// PointerUp ends a press; one that barely moved is a click
func (o *Orchestrator) PointerUp(x, y float64) (pick.Result, bool) {
	if !o.pressed {
		return pick.Result{}, false
	}
	o.pressed = false
	if math.Hypot(x-o.pressX, y-o.pressY) >= ClickSlop {
		return pick.Result{}, false
	}
	return o.Click(x, y), true
}

// Click resolves a pick at window pixel (x, y). Before the first Resize
// there is no surface to pick on and the click is ignored.
func (o *Orchestrator) Click(x, y float64) pick.Result {
	var res pick.Result
	if o.size.W <= 0 || o.size.H <= 0 {
		res = pick.Result{Outcome: pick.Ignored}
	} else {
		res = o.resolver.Resolve(x, y, o.size.W, o.size.H)
	}
	o.metrics.picks.WithLabelValues(res.Outcome.String()).Inc()
	return res
}

// Drag rotates the orbit camera by a pointer movement in pixels
func (o *Orchestrator) Drag(dx, dy float64) {
	o.ctrl.OrbitControls().Rotate(dx, dy)
}

// Scroll zooms the orbit camera; positive is toward the target
func (o *Orchestrator) Scroll(dy float64) {
	o.ctrl.OrbitControls().Dolly(dy)
}

// Resize follows the window size. The minimap keeps its fixed size and
// bounds.
func (o *Orchestrator) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	o.size = Size{W: w, H: h}
	o.ctrl.Camera().UpdateProjectionMatrix(w, h)
	o.ctrl.OrbitControls().SetViewportHeight(h)
	o.minimap.SetBounds(camera.MinimapExtent)
	o.renderer.Resize(o.size, MinimapSize)
	o.lg.Debug("resized", slog.Int("width", w), slog.Int("height", h))
}

// Size returns the main surface size
func (o *Orchestrator) Size() Size {
	return o.size
}

// Pose returns the marker pose from the last tick
func (o *Orchestrator) Pose() minimap.Pose {
	return o.pose
}

// Controller returns the camera controller
func (o *Orchestrator) Controller() *control.Controller {
	return o.ctrl
}

// MinimapCamera returns the top-down camera
func (o *Orchestrator) MinimapCamera() *camera.Orthographic {
	return o.minimap
}

// World returns the scene and registry
func (o *Orchestrator) World() *World {
	return o.world
}
