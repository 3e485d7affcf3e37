package render

import (
	"context"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/internal/openglhelper"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/frame"
	"golang.org/x/time/rate"
)

// Loop feeds window events to an orchestrator and ticks it once per frame.
// Everything runs on the thread that owns the GL context.
type Loop struct {
	window  *openglhelper.Window
	orch    *frame.Orchestrator
	limiter *rate.Limiter
	lg      *logging.Logger
}

// NewLoop installs the window callbacks. limiter may be nil for an
// uncapped frame rate.
func NewLoop(window *openglhelper.Window, orch *frame.Orchestrator, limiter *rate.Limiter, lg *logging.Logger) *Loop {
	l := &Loop{
		window:  window,
		orch:    orch,
		limiter: limiter,
		lg:      lg,
	}

	gw := window.GLFWWindow()
	gw.SetKeyCallback(l.keyCallback)
	gw.SetCursorPosCallback(l.cursorPosCallback)
	gw.SetMouseButtonCallback(l.mouseButtonCallback)
	gw.SetScrollCallback(l.scrollCallback)
	gw.SetFramebufferSizeCallback(l.framebufferSizeCallback)
	return l
}

// Run ticks until the window closes or ctx is cancelled. Tick errors are
// logged and the loop keeps going.
func (l *Loop) Run(ctx context.Context) {
	l.orch.Resize(l.window.FramebufferSize())

	var frames uint64
	for !l.window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		if l.limiter != nil {
			if err := l.limiter.Wait(ctx); err != nil {
				break
			}
		}

		if err := l.orch.Tick(); err != nil {
			l.lg.Warn("tick failed", slog.Any("error", err), slog.Uint64("frame", frames))
		}
		frames++

		l.window.SwapBuffers()
		l.window.PollEvents()
	}
	l.lg.Info("loop stopped", slog.Uint64("frames", frames))
}

func (l *Loop) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == KeyQuit && action == glfw.Press {
		l.window.SetShouldClose(true)
		return
	}

	a := ActionFor(key)
	if a == control.ActionNone {
		return
	}
	switch action {
	case glfw.Press:
		l.orch.KeyDown(a)
	case glfw.Release:
		l.orch.KeyUp(a)
	}
}

// pixels converts screen coordinates to framebuffer pixels, which differ on
// high density displays
func (l *Loop) pixels(x, y float64) (float64, float64) {
	ww, wh := l.window.Size()
	fw, fh := l.window.FramebufferSize()
	if ww <= 0 || wh <= 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

func (l *Loop) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	l.orch.PointerMove(l.pixels(xpos, ypos))
}

func (l *Loop) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := l.pixels(w.GetCursorPos())
	switch action {
	case glfw.Press:
		l.orch.PointerDown(x, y)
	case glfw.Release:
		if res, clicked := l.orch.PointerUp(x, y); clicked {
			l.lg.Debug("pick", slog.String("outcome", res.Outcome.String()))
		}
	}
}

func (l *Loop) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	l.orch.Scroll(yoffset)
}

func (l *Loop) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	l.orch.Resize(width, height)
}
