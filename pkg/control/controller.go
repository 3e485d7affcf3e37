package control

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/info"
	"github.com/leterax/go-orrery/pkg/orbit"
)

const (
	FreeFlightHint = "Control: Free flight (keyboard: W,S,A,D, Q,E, arrows | Space for orbital)"
	OrbitalHint    = "Control: Orbital (mouse: click a planet to focus and follow | R to reset | Space for free flight)"
)

// Options configures a Controller
type Options struct {
	Mode Mode
	Home mgl32.Vec3
}

// DefaultOptions starts in free flight above the ecliptic
func DefaultOptions() Options {
	return Options{
		Mode: FreeFlight,
		Home: mgl32.Vec3{camera.HomeX, camera.HomeY, camera.HomeZ},
	}
}

// Controller is the camera state machine. It owns the active mode, the
// free-flight integrator, the orbit controls and the tracked selection.
type Controller struct {
	mode      Mode
	cam       *camera.Perspective
	orbit     *OrbitControls
	free      *Flight
	panel     info.Panel
	selection *orbit.Body
	home      mgl32.Vec3

	lg *logging.Logger
}

// New places the camera at the home position looking at the origin and
// enters the configured mode
func New(cam *camera.Perspective, panel info.Panel, opts Options, lg *logging.Logger) *Controller {
	c := &Controller{
		mode:  opts.Mode,
		cam:   cam,
		orbit: NewOrbitControls(cam),
		free:  NewFlight(),
		panel: panel,
		home:  opts.Home,
		lg:    lg,
	}

	cam.SetPosition(c.home)
	cam.LookAt(mgl32.Vec3{})

	switch c.mode {
	case Orbital:
		c.orbit.SetEnabled(true)
		c.orbit.Update()
	default:
		c.mode = FreeFlight
		c.free.Capture(cam.Orientation())
	}
	c.updateHint()
	return c
}

// Mode returns the active control scheme
func (c *Controller) Mode() Mode {
	return c.mode
}

// Selection returns the tracked body, nil when nothing is tracked
func (c *Controller) Selection() *orbit.Body {
	return c.selection
}

// Camera returns the controlled camera
func (c *Controller) Camera() *camera.Perspective {
	return c.cam
}

// Panel returns the info panel the controller writes to
func (c *Controller) Panel() info.Panel {
	return c.panel
}

// OrbitControls returns the orbit controls
func (c *Controller) OrbitControls() *OrbitControls {
	return c.orbit
}

// Target returns the orbit target
func (c *Controller) Target() mgl32.Vec3 {
	return c.orbit.Target()
}

// Yaw returns the free-flight yaw
func (c *Controller) Yaw() float32 {
	return c.free.Yaw()
}

// Pitch returns the free-flight pitch
func (c *Controller) Pitch() float32 {
	return c.free.Pitch()
}

// Toggle switches between free flight and orbital control. Any selection
// is dropped.
func (c *Controller) Toggle() Mode {
	c.selection = nil

	if c.mode == Orbital {
		c.mode = FreeFlight
		c.orbit.SetEnabled(false)
		c.panel.Hide()
		c.free.Capture(c.cam.Orientation())
		c.cam.SetOrientation(c.free.Orientation())
	} else {
		c.mode = Orbital
		c.orbit.SetEnabled(true)
		c.orbit.SetTarget(mgl32.Vec3{})
		c.orbit.Update()
	}

	c.updateHint()
	c.lg.Info("control mode changed", slog.String("mode", c.mode.String()))
	return c.mode
}

// ResetView returns the orbital camera to its home position aimed at the
// origin. It does nothing in free flight.
func (c *Controller) ResetView() bool {
	if c.mode != Orbital {
		return false
	}

	c.selection = nil
	c.orbit.SetTarget(mgl32.Vec3{})
	c.cam.SetPosition(c.home)
	c.orbit.Update()
	c.panel.Hide()

	c.lg.Info("view reset to home")
	return true
}

// Focus moves the orbit target and camera in one step and starts tracking
// body. A nil body (the star) stops tracking.
func (c *Controller) Focus(target, eye mgl32.Vec3, body *orbit.Body) {
	c.orbit.SetTarget(target)
	c.cam.SetPosition(eye)
	c.selection = body
	c.orbit.Update()
}

// Update advances the active control scheme by one tick
func (c *Controller) Update(in *Input) {
	if c.mode == FreeFlight {
		c.free.Apply(in, c.cam)
		return
	}

	if c.selection != nil {
		offset := c.cam.Position().Sub(c.orbit.Target())
		c.orbit.SetTarget(c.selection.Position())
		c.cam.SetPosition(c.orbit.Target().Add(offset))
	}
	c.orbit.Update()
}

func (c *Controller) updateHint() {
	if c.mode == FreeFlight {
		c.panel.SetControlHint(FreeFlightHint)
	} else {
		c.panel.SetControlHint(OrbitalHint)
	}
}
