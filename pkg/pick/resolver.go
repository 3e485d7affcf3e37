// Package pick turns a click on the main viewport into a focused, tracked
// body.
package pick

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/info"
	"github.com/leterax/go-orrery/pkg/orbit"
	"github.com/leterax/go-orrery/pkg/scene"
)

const (
	// FocusFactor is the camera distance after a focus, in target radii
	FocusFactor = 4

	// fallbackRadius is used for targets without geometry
	fallbackRadius = 1
)

// Outcome classifies a pick
type Outcome int

const (
	Ignored Outcome = iota // not in orbital mode
	Miss
	Star
	Body
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Miss:
		return "miss"
	case Star:
		return "star"
	case Body:
		return "body"
	}
	return "unknown"
}

// Result describes a resolved pick. Body is nil for the star and for misses.
type Result struct {
	Outcome       Outcome
	Hit           *scene.Hit
	Body          *orbit.Body
	FocusDistance float32
	Target        mgl32.Vec3
	Eye           mgl32.Vec3
}

// Resolver casts rays from the main camera into the pickable nodes
type Resolver struct {
	scene   *scene.Scene
	ctrl    *control.Controller
	panel   info.Panel
	targets []*scene.Node
	owners  map[*scene.Node]*orbit.Body

	lg *logging.Logger
}

// NewResolver creates a resolver with nothing registered
func NewResolver(s *scene.Scene, ctrl *control.Controller, panel info.Panel, lg *logging.Logger) *Resolver {
	return &Resolver{
		scene:  s,
		ctrl:   ctrl,
		panel:  panel,
		owners: make(map[*scene.Node]*orbit.Body),
		lg:     lg,
	}
}

// Register makes a node and its descendants resolve to body
func (r *Resolver) Register(n *scene.Node, body *orbit.Body) {
	if _, ok := r.owners[n]; !ok {
		r.targets = append(r.targets, n)
	}
	r.owners[n] = body
}

// Resolve handles a click at pixel (x, y) of a width×height viewport. Picks
// outside orbital mode and misses change nothing.
func (r *Resolver) Resolve(x, y float64, width, height int) Result {
	if r.ctrl.Mode() != control.Orbital {
		return Result{Outcome: Ignored}
	}

	cam := r.ctrl.Camera()
	ray := cam.Ray(camera.ScreenToNDC(x, y, width, height))

	var (
		hit   *scene.Hit
		owner *scene.Node
	)
	for _, h := range r.scene.Intersect(ray, r.targets, true) {
		if n := r.owner(h.Node); n != nil {
			hit, owner = &h, n
			break
		}
	}
	if hit == nil {
		return Result{Outcome: Miss}
	}

	body := r.owners[owner]
	res := Result{
		Outcome: Body,
		Hit:     hit,
		Body:    body,
		Target:  owner.WorldPosition(),
	}
	if body.IsStar() {
		res.Outcome = Star
		res.Body = nil
	}

	radius := owner.BoundingRadius()
	if radius <= 0 {
		radius = fallbackRadius
	}
	res.FocusDistance = radius * FocusFactor
	res.Eye = FocusEye(cam.Position(), res.Target, res.FocusDistance)

	r.showInfo(body)
	r.ctrl.Focus(res.Target, res.Eye, res.Body)

	r.lg.Debug("pick resolved",
		slog.String("body", body.Name()),
		slog.String("outcome", res.Outcome.String()),
		slog.Float64("distance", float64(hit.Distance)))
	return res
}

// owner walks up from a hit node to the nearest registered ancestor
func (r *Resolver) owner(n *scene.Node) *scene.Node {
	for a := n; a != nil; a = a.Parent() {
		if _, ok := r.owners[a]; ok {
			return a
		}
	}
	return nil
}

func (r *Resolver) showInfo(body *orbit.Body) {
	meta := body.Info()
	f := info.Fields{
		Header:   info.Header,
		Name:     body.Name(),
		Distance: info.DistanceText(body.OrbitRadius()),
		Details:  meta.Details,
		Accent:   meta.Color,
	}
	if f.Details == "" {
		f.Details = info.NoDetails
	}
	if f.Accent == "" {
		f.Accent = info.DefaultAccent
	}
	r.panel.SetFields(f)
	r.panel.Show()
}

// FocusEye places the camera distance away from target on the line from
// target toward the current camera position
func FocusEye(current, target mgl32.Vec3, distance float32) mgl32.Vec3 {
	dir := current.Sub(target)
	if dir.LenSqr() == 0 {
		dir = mgl32.Vec3{0, 0, 1}
	}
	return target.Add(dir.Normalize().Mul(distance))
}
