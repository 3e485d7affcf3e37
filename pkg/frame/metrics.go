package frame

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the frame loop's prometheus collectors
type Metrics struct {
	tickDuration prometheus.Histogram
	ticks        prometheus.Counter
	renderErrors prometheus.Counter
	picks        *prometheus.CounterVec
	modeSwitches prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orrery_tick_duration_seconds",
				Help:    "Time spent in one frame tick, rendering included",
				Buckets: []float64{.001, .002, .004, .008, .016, .033, .066, .1},
			},
		),
		ticks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orrery_ticks_total",
				Help: "Frame ticks run",
			},
		),
		renderErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orrery_render_errors_total",
				Help: "Ticks whose render pass failed",
			},
		),
		picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_picks_total",
				Help: "Clicks on the main viewport by outcome",
			},
			[]string{"result"},
		),
		modeSwitches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orrery_mode_switches_total",
				Help: "Control mode toggles",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.tickDuration, m.ticks, m.renderErrors, m.picks, m.modeSwitches)
	}
	return m
}
