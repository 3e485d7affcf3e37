package control

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/info"
	"github.com/leterax/go-orrery/pkg/orbit"
)

// near compares by distance; mgl32's ApproxEqual is too strict around zero
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

type fakePanel struct {
	visible bool
	hides   int
	fields  info.Fields
	hint    string
}

func (p *fakePanel) Show()                   { p.visible = true }
func (p *fakePanel) Hide()                   { p.visible = false; p.hides++ }
func (p *fakePanel) SetFields(f info.Fields) { p.fields = f }
func (p *fakePanel) SetControlHint(h string) { p.hint = h }

func testRegistry(t *testing.T) *orbit.Registry {
	t.Helper()
	reg, err := orbit.NewRegistry(orbit.Catalog{
		Star: orbit.BodySpec{Name: "Sun", Radius: 10},
		Planets: []orbit.BodySpec{
			{Name: "Earth", Radius: 2, OrbitRadius: 25, AngularSpeed: 0.01},
		},
	}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func newController(mode Mode) (*Controller, *fakePanel) {
	p := &fakePanel{}
	opts := DefaultOptions()
	opts.Mode = mode
	return New(camera.NewPerspective(mgl32.Vec3{}), p, opts, nil), p
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{FreeFlight, Orbital} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("hover"); err == nil {
		t.Errorf("expected error")
	}
}

func TestInput(t *testing.T) {
	var in Input
	in.Press(ActionLookUp)
	in.Press(ActionNone)
	if !in.Held(ActionLookUp) || in.Held(ActionNone) {
		t.Errorf("unexpected held state")
	}
	in.Release(ActionLookUp)
	if in.Held(ActionLookUp) {
		t.Errorf("release did not clear")
	}
	in.Press(ActionMoveUp)
	in.Press(ActionMoveDown)
	if in.axis(ActionMoveUp, ActionMoveDown) != 0 {
		t.Errorf("opposing keys should cancel")
	}
	in.Clear()
	if in.Held(ActionMoveUp) {
		t.Errorf("clear left keys held")
	}
}

func TestInitialState(t *testing.T) {
	c, p := newController(FreeFlight)
	if c.Mode() != FreeFlight || c.OrbitControls().Enabled() {
		t.Errorf("free flight start: mode %v, orbit enabled %v", c.Mode(), c.OrbitControls().Enabled())
	}
	if p.hint != FreeFlightHint {
		t.Errorf("hint = %q", p.hint)
	}
	if !near(c.Camera().Position(), mgl32.Vec3{0, 80, 160}, 1e-4) {
		t.Errorf("camera not at home: %v", c.Camera().Position())
	}

	o, _ := newController(Orbital)
	if o.Mode() != Orbital || !o.OrbitControls().Enabled() {
		t.Errorf("orbital start not enabled")
	}
}

func TestDoubleToggle(t *testing.T) {
	reg := testRegistry(t)
	earth, _ := reg.Lookup("Earth")

	c, p := newController(Orbital)
	c.Focus(earth.Position(), earth.Position().Add(mgl32.Vec3{0, 0, 8}), earth)
	if c.Selection() != earth {
		t.Fatalf("focus did not select")
	}

	if c.Toggle() != FreeFlight || c.Selection() != nil {
		t.Errorf("first toggle: mode %v selection %v", c.Mode(), c.Selection())
	}
	if p.hint != FreeFlightHint {
		t.Errorf("hint not updated")
	}

	c.Focus(earth.Position(), c.Camera().Position(), earth)
	if c.Toggle() != Orbital || c.Selection() != nil {
		t.Errorf("second toggle: mode %v selection %v", c.Mode(), c.Selection())
	}
	if !near(c.Target(), mgl32.Vec3{}, 1e-4) {
		t.Errorf("orbital target = %v, want origin", c.Target())
	}
	if p.hint != OrbitalHint {
		t.Errorf("hint not updated")
	}
}

func TestToggleWithoutSnap(t *testing.T) {
	reg := testRegistry(t)
	earth, _ := reg.Lookup("Earth")

	c, p := newController(Orbital)
	p.visible = true
	eye := earth.Position().Add(mgl32.Vec3{3, 4, 5})
	c.Focus(earth.Position(), eye, earth)

	before := c.Camera().Front()
	pos := c.Camera().Position()

	c.Toggle()

	if c.Selection() != nil {
		t.Errorf("selection not cleared")
	}
	if p.visible {
		t.Errorf("info panel still visible")
	}
	if !near(c.Camera().Front(), before, 1e-4) {
		t.Errorf("orientation snapped: %v -> %v", before, c.Camera().Front())
	}
	if !near(c.Camera().Position(), pos, 1e-4) {
		t.Errorf("position moved on toggle")
	}
	if !near(camera.Forward(c.Yaw(), c.Pitch()), before, 1e-4) {
		t.Errorf("captured yaw/pitch do not match view direction")
	}

	// The first free-flight tick with no input keeps the same view
	var in Input
	c.Update(&in)
	if !near(c.Camera().Front(), before, 1e-4) {
		t.Errorf("idle tick changed orientation")
	}
}

func TestPitchClamp(t *testing.T) {
	for _, a := range []Action{ActionLookUp, ActionLookDown} {
		c, _ := newController(FreeFlight)
		var in Input
		in.Press(a)
		for i := 0; i < 500; i++ {
			c.Update(&in)
			if p := c.Pitch(); p > camera.MaxPitch || p < camera.MinPitch {
				t.Fatalf("%v: pitch %v escaped clamp", a, p)
			}
		}
		want := float32(camera.MaxPitch)
		if a == ActionLookDown {
			want = camera.MinPitch
		}
		if math.Abs(float64(c.Pitch()-want)) > 1e-6 {
			t.Errorf("%v: pitch = %v, want %v", a, c.Pitch(), want)
		}
		if _, p := camera.YawPitch(c.Camera().Orientation()); math.Abs(float64(p)) >= math.Pi/2 {
			t.Errorf("%v: camera pitch %v reached the pole", a, p)
		}
	}
}

func TestFreeFlightMovement(t *testing.T) {
	c, _ := newController(FreeFlight)
	cam := c.Camera()
	start := cam.Position()
	front, right := cam.Front(), cam.Right()

	var in Input
	in.Press(ActionMoveForward)
	in.Press(ActionStrafeRight)
	c.Update(&in)

	want := start.Add(front.Add(right).Mul(DefaultMoveSpeed))
	if !near(cam.Position(), want, 1e-4) {
		t.Errorf("diagonal move = %v, want %v", cam.Position(), want)
	}

	in.Clear()
	in.Press(ActionMoveUp)
	c.Update(&in)
	if got := cam.Position().Sub(want); !near(got, cam.Up(), 1e-4) {
		t.Errorf("up move = %v, want %v", got, cam.Up())
	}

	in.Clear()
	in.Press(ActionLookLeft)
	yaw := c.Yaw()
	c.Update(&in)
	if math.Abs(float64(c.Yaw()-yaw-DefaultRotateSpeed)) > 1e-6 {
		t.Errorf("yaw step = %v", c.Yaw()-yaw)
	}
}

func TestTrackingKeepsOffset(t *testing.T) {
	reg := testRegistry(t)
	earth, _ := reg.Lookup("Earth")

	c, _ := newController(Orbital)
	c.Focus(earth.Position(), earth.Position().Add(mgl32.Vec3{0, 3, 7}), earth)
	offset := c.Camera().Position().Sub(c.Target())

	var in Input
	for i := 0; i < 200; i++ {
		reg.Advance(1)
		c.Update(&in)

		if !near(c.Target(), earth.Position(), 1e-4) {
			t.Fatalf("target %v does not follow %v", c.Target(), earth.Position())
		}
		got := c.Camera().Position().Sub(c.Target())
		if !near(got, offset, 1e-3) {
			t.Fatalf("offset drifted: %v -> %v", offset, got)
		}
	}

	// Without a selection the target stays put
	c.Focus(mgl32.Vec3{}, c.Camera().Position(), nil)
	reg.Advance(10)
	c.Update(&in)
	if !near(c.Target(), mgl32.Vec3{}, 1e-4) {
		t.Errorf("target moved without selection: %v", c.Target())
	}
}

func TestResetView(t *testing.T) {
	reg := testRegistry(t)
	earth, _ := reg.Lookup("Earth")

	f, _ := newController(FreeFlight)
	if f.ResetView() {
		t.Errorf("reset in free flight should be a no-op")
	}

	c, p := newController(Orbital)
	c.Focus(earth.Position(), earth.Position().Add(mgl32.Vec3{8, 0, 0}), earth)
	p.visible = true

	if !c.ResetView() {
		t.Fatalf("reset refused in orbital mode")
	}
	if c.Selection() != nil || p.visible {
		t.Errorf("reset left selection %v visible %v", c.Selection(), p.visible)
	}
	if !near(c.Target(), mgl32.Vec3{}, 1e-4) {
		t.Errorf("target = %v", c.Target())
	}
	if !near(c.Camera().Position(), mgl32.Vec3{0, 80, 160}, 1e-4) {
		t.Errorf("camera = %v", c.Camera().Position())
	}
}

func TestOrbitControls(t *testing.T) {
	cam := camera.NewPerspective(mgl32.Vec3{0, 0, 100})
	o := NewOrbitControls(cam)

	o.Rotate(100, 0)
	o.Dolly(1)
	if o.Pending() {
		t.Fatalf("disabled controls queued input")
	}

	o.SetEnabled(true)
	o.SetViewportHeight(600)
	o.Dolly(1)
	if !o.Update() {
		t.Fatalf("dolly did not move the camera")
	}
	if d := cam.Position().Len(); math.Abs(float64(d-95)) > 1e-3 {
		t.Errorf("distance after one notch = %v, want 95", d)
	}

	o.Rotate(150, 0)
	for i := 0; i < 400; i++ {
		o.Update()
	}
	if d := cam.Position().Len(); math.Abs(float64(d-95)) > 1e-2 {
		t.Errorf("rotation changed distance to %v", d)
	}
	// A quarter of the viewport height is a quarter turn, moving the camera
	// toward -X
	if !near(cam.Position(), mgl32.Vec3{-95, 0, 0}, 0.5) {
		t.Errorf("position after quarter turn = %v", cam.Position())
	}
	if !near(cam.Front(), mgl32.Vec3{1, 0, 0}, 1e-2) {
		t.Errorf("camera not aimed at target: %v", cam.Front())
	}

	// Idle updates leave the position alone
	o.SetEnabled(true)
	pos := cam.Position()
	o.Update()
	if cam.Position() != pos {
		t.Errorf("idle update moved camera")
	}
}

func TestFlightCapture(t *testing.T) {
	f := NewFlight()
	f.Capture(camera.FromYawPitch(0.4, -0.3))
	if math.Abs(float64(f.Yaw()-0.4)) > 1e-5 || math.Abs(float64(f.Pitch()+0.3)) > 1e-5 {
		t.Errorf("captured yaw %v pitch %v, want 0.4 -0.3", f.Yaw(), f.Pitch())
	}

	f.Capture(camera.FromYawPitch(0, 1.6))
	if f.Pitch() > camera.MaxPitch {
		t.Errorf("captured pitch %v above clamp", f.Pitch())
	}
}

func TestOrbitControlsPolarRotation(t *testing.T) {
	cam := camera.NewPerspective(mgl32.Vec3{0, 50, 50})
	o := NewOrbitControls(cam)
	o.SetEnabled(true)
	o.SetViewportHeight(600)

	// An eighth of the viewport height upward is a quarter of pi in polar
	// angle, bringing the camera down onto the ecliptic
	o.Rotate(0, -75)
	for i := 0; i < 400; i++ {
		o.Update()
	}

	want := float32(math.Sqrt(50*50 + 50*50))
	if d := cam.Position().Len(); math.Abs(float64(d-want)) > 1e-2 {
		t.Errorf("distance = %v, want %v", d, want)
	}
	if got := cam.Position(); got.Sub(mgl32.Vec3{0, 0, want}).Len() > 0.5 {
		t.Errorf("position = %v, want on the ecliptic at +Z", got)
	}
}
