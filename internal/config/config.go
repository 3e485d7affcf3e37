// Package config holds the command line configuration of the orrery.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/leterax/go-orrery/internal/logging"
	"github.com/leterax/go-orrery/pkg/control"
)

type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	MaxFPS float64

	Mode      string
	Catalog   string
	Seed      int64
	TimeScale float64

	LogLevel    string
	LogDir      string
	MetricsAddr string
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Title:     "Orrery",
		VSync:     true,
		Mode:      control.FreeFlight.String(),
		Seed:      time.Now().UnixNano(),
		TimeScale: 1,
		LogLevel:  "info",
	}
}

// RegisterFlags binds every field to a flag, using the current values as
// defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "Synchronize buffer swaps with the display")
	fs.Float64Var(&c.MaxFPS, "max-fps", c.MaxFPS, "Frame rate cap (0 for none)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Initial control mode: free-flight or orbital")
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "JSON body catalog (empty for the built-in solar system)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for starting angles and the starfield")
	fs.Float64Var(&c.TimeScale, "time-scale", c.TimeScale, "Orbital ticks advanced per frame")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Logging level: debug, info, warn, error")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "Directory for rotating JSON logs (empty logs to stderr)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "Address to serve prometheus metrics on (empty disables)")
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("max-fps %v must not be negative", c.MaxFPS))
	}
	if c.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("time-scale %v must not be negative", c.TimeScale))
	}
	if _, err := control.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ControlMode returns the parsed initial mode
func (c Config) ControlMode() control.Mode {
	m, _ := control.ParseMode(c.Mode)
	return m
}
