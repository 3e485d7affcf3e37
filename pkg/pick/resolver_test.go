package pick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/info"
	"github.com/leterax/go-orrery/pkg/orbit"
	"github.com/leterax/go-orrery/pkg/scene"
)

// near compares by distance; mgl32's ApproxEqual is too strict around zero
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

type fakePanel struct {
	visible bool
	shows   int
	fields  info.Fields
}

func (p *fakePanel) Show()                   { p.visible = true; p.shows++ }
func (p *fakePanel) Hide()                   { p.visible = false }
func (p *fakePanel) SetFields(f info.Fields) { p.fields = f }
func (p *fakePanel) SetControlHint(string)   {}

type fixture struct {
	reg      *orbit.Registry
	ctrl     *control.Controller
	panel    *fakePanel
	resolver *Resolver
	nodes    map[string]*scene.Node
}

const (
	viewW = 800
	viewH = 600
)

// newFixture puts the Sun at the origin and a radius 2 planet at (25,0,0)
// with a moon, and an orbital camera looking at the origin
func newFixture(t *testing.T, mode control.Mode) *fixture {
	t.Helper()
	reg, err := orbit.NewRegistry(orbit.Catalog{
		Star: orbit.BodySpec{Name: "Sun", Radius: 10, InfoColor: "#ffff00"},
		Planets: []orbit.BodySpec{
			{
				Name: "Earth", Radius: 2, OrbitRadius: 25, AngularSpeed: 0.01,
				InfoColor: "#4d94ff", Details: "Home.",
				Moon: &orbit.BodySpec{Name: "Moon", Radius: 0.5, OrbitRadius: 3, AngularSpeed: 0.05},
			},
		},
	}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	s := scene.New()
	f := &fixture{reg: reg, panel: &fakePanel{}, nodes: map[string]*scene.Node{}}

	sun := scene.NewNode("Sun", scene.NewSphereGeometry(10, 32, 32), scene.Material{})
	reg.Star().Bind(sun)
	s.Add(sun)
	f.nodes["Sun"] = sun

	earth, _ := reg.Lookup("Earth")
	en := scene.NewNode("Earth", scene.NewSphereGeometry(2, 32, 32), scene.Material{})
	earth.Bind(en)
	s.Add(en)
	f.nodes["Earth"] = en

	mn := scene.NewNode("Moon", scene.NewSphereGeometry(0.5, 16, 16), scene.Material{})
	earth.Moon().Bind(mn)
	en.Add(mn)
	f.nodes["Moon"] = mn

	opts := control.DefaultOptions()
	opts.Mode = mode
	cam := camera.NewPerspective(mgl32.Vec3{})
	cam.UpdateProjectionMatrix(viewW, viewH)
	f.ctrl = control.New(cam, f.panel, opts, nil)

	f.resolver = NewResolver(s, f.ctrl, f.panel, nil)
	f.resolver.Register(sun, reg.Star())
	f.resolver.Register(en, earth)
	return f
}

// screenOf projects a world point to pixel coordinates
func (f *fixture) screenOf(p mgl32.Vec3) (float64, float64) {
	cam := f.ctrl.Camera()
	ndc := mgl32.TransformCoordinate(p, cam.ProjectionMatrix().Mul4(cam.ViewMatrix()))
	return float64((ndc.X() + 1) / 2 * viewW), float64((1 - ndc.Y()) / 2 * viewH)
}

func TestFocusScenario(t *testing.T) {
	f := newFixture(t, control.Orbital)
	earth, _ := f.reg.Lookup("Earth")
	if !near(earth.Position(), mgl32.Vec3{25, 0, 0}, 1e-4) {
		t.Fatalf("earth at %v", earth.Position())
	}

	before := f.ctrl.Camera().Position()
	x, y := f.screenOf(earth.Position())
	res := f.resolver.Resolve(x, y, viewW, viewH)

	if res.Outcome != Body || res.Body != earth {
		t.Fatalf("resolved %v %v, want Earth", res.Outcome, res.Body)
	}
	if f.ctrl.Selection() != earth {
		t.Errorf("selection = %v", f.ctrl.Selection())
	}
	if !near(f.ctrl.Target(), mgl32.Vec3{25, 0, 0}, 1e-4) {
		t.Errorf("target = %v, want (25,0,0)", f.ctrl.Target())
	}
	if math.Abs(float64(res.FocusDistance-8)) > 1e-3 {
		t.Errorf("focus distance = %v, want 8", res.FocusDistance)
	}

	eye := f.ctrl.Camera().Position()
	if d := eye.Sub(res.Target).Len(); math.Abs(float64(d-8)) > 1e-3 {
		t.Errorf("camera %v units from target, want 8", d)
	}
	wantDir := before.Sub(res.Target).Normalize()
	if !near(eye.Sub(res.Target).Normalize(), wantDir, 1e-4) {
		t.Errorf("view direction not preserved")
	}

	if !f.panel.visible {
		t.Errorf("info panel not shown")
	}
	want := info.Fields{
		Header:   "SELECTED BODY",
		Name:     "Earth",
		Distance: "Orbital distance: 25.0 units",
		Details:  "Home.",
		Accent:   "#4d94ff",
	}
	if f.panel.fields != want {
		t.Errorf("fields = %+v, want %+v", f.panel.fields, want)
	}
}

func TestPickStarClearsSelection(t *testing.T) {
	f := newFixture(t, control.Orbital)
	earth, _ := f.reg.Lookup("Earth")
	// Tracking Earth while looking at the origin from home
	f.ctrl.Focus(mgl32.Vec3{}, mgl32.Vec3{0, 80, 160}, earth)

	x, y := f.screenOf(mgl32.Vec3{})
	res := f.resolver.Resolve(x, y, viewW, viewH)
	if res.Outcome != Star || res.Body != nil {
		t.Fatalf("outcome = %v body = %v", res.Outcome, res.Body)
	}
	if f.ctrl.Selection() != nil {
		t.Errorf("star pick left selection %v", f.ctrl.Selection().Name())
	}
	if math.Abs(float64(res.FocusDistance-40)) > 1e-2 {
		t.Errorf("focus distance = %v, want 40", res.FocusDistance)
	}
	if f.panel.fields.Distance != "N/A" || f.panel.fields.Details != info.NoDetails {
		t.Errorf("star fields = %+v", f.panel.fields)
	}
}

func TestPickMoonResolvesToHost(t *testing.T) {
	f := newFixture(t, control.Orbital)
	earth, _ := f.reg.Lookup("Earth")
	moon := earth.Moon()

	// Look straight at the moon from beyond it so Earth is not in the way
	cam := f.ctrl.Camera()
	mp := moon.Position()
	cam.SetPosition(mp.Add(mgl32.Vec3{0, 0, 30}))
	f.ctrl.OrbitControls().SetTarget(mp)
	f.ctrl.OrbitControls().Update()

	x, y := f.screenOf(mp)
	res := f.resolver.Resolve(x, y, viewW, viewH)
	if res.Outcome != Body || res.Body != earth {
		t.Fatalf("moon pick resolved to %v", res.Body)
	}
	if res.Hit.Node != f.nodes["Moon"] {
		t.Errorf("nearest hit = %s, want Moon", res.Hit.Node.Name)
	}
}

func TestMissChangesNothing(t *testing.T) {
	f := newFixture(t, control.Orbital)
	pos := f.ctrl.Camera().Position()
	target := f.ctrl.Target()

	res := f.resolver.Resolve(2, 2, viewW, viewH)
	if res.Outcome != Miss {
		t.Fatalf("outcome = %v, want miss", res.Outcome)
	}
	if f.ctrl.Camera().Position() != pos || f.ctrl.Target() != target || f.ctrl.Selection() != nil {
		t.Errorf("miss changed camera state")
	}
	if f.panel.shows != 0 {
		t.Errorf("miss touched the info panel")
	}
}

func TestFreeFlightIgnoresPicks(t *testing.T) {
	f := newFixture(t, control.FreeFlight)
	pos := f.ctrl.Camera().Position()

	// Dead center is the Sun
	res := f.resolver.Resolve(viewW/2, viewH/2, viewW, viewH)
	if res.Outcome != Ignored {
		t.Errorf("outcome = %v, want ignored", res.Outcome)
	}
	if f.ctrl.Camera().Position() != pos || f.panel.shows != 0 {
		t.Errorf("free flight pick changed state")
	}
}

func TestLazyBoundingRadius(t *testing.T) {
	f := newFixture(t, control.Orbital)
	earth := f.nodes["Earth"]
	if earth.Geometry.HasBoundingSphere() {
		t.Fatalf("bounding sphere computed before first pick")
	}
	x, y := f.screenOf(earth.WorldPosition())
	f.resolver.Resolve(x, y, viewW, viewH)
	if !earth.Geometry.HasBoundingSphere() {
		t.Errorf("bounding sphere not computed by pick")
	}
}

func TestFocusEye(t *testing.T) {
	got := FocusEye(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 4)
	if !near(got, mgl32.Vec3{0, 0, 4}, 1e-4) {
		t.Errorf("FocusEye = %v", got)
	}
	got = FocusEye(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 2)
	if !near(got, mgl32.Vec3{1, 1, 3}, 1e-4) {
		t.Errorf("degenerate FocusEye = %v", got)
	}
}
