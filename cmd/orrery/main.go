package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/leterax/go-orrery/internal/config"
	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/internal/openglhelper"
	"github.com/leterax/go-orrery/pkg/camera"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/frame"
	"github.com/leterax/go-orrery/pkg/info"
	"github.com/leterax/go-orrery/pkg/orbit"
	"github.com/leterax/go-orrery/pkg/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}

	lg := logging.New(cfg.LogLevel, cfg.LogDir)
	if err := run(cfg, lg); err != nil {
		lg.Error("orrery failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, lg *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := orbit.DefaultCatalog()
	if cfg.Catalog != "" {
		var err error
		if catalog, err = orbit.LoadCatalog(cfg.Catalog); err != nil {
			return err
		}
	}

	reg, err := orbit.NewRegistry(catalog, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return fmt.Errorf("failed to build registry: %w", err)
	}
	world, err := frame.BuildWorld(reg, cfg.Seed)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	lg.Info("world built",
		slog.Int("bodies", len(reg.Bodies())),
		slog.Int64("seed", cfg.Seed))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	metrics := frame.NewMetrics(promReg)
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, promReg, lg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync, lg)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()

	renderer, err := render.NewRenderer(window, lg)
	if err != nil {
		return err
	}
	defer renderer.Cleanup()

	opts := control.DefaultOptions()
	opts.Mode = cfg.ControlMode()
	cam := camera.NewPerspective(opts.Home)
	cam.UpdateProjectionMatrix(window.FramebufferSize())
	ctrl := control.New(cam, info.NewConsole(os.Stdout), opts, lg)

	orch := frame.New(world, ctrl, renderer, frame.Options{TimeScale: float32(cfg.TimeScale)}, metrics, lg)

	var limiter *rate.Limiter
	if cfg.MaxFPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxFPS), 1)
	}

	lg.Info("starting", slog.String("mode", ctrl.Mode().String()))
	render.NewLoop(window, orch, limiter, lg).Run(ctx)
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, lg *logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		lg.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("metrics server stopped", slog.Any("error", err))
		}
	}()
	return srv
}
