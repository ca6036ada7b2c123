package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carriertext/internal/carrier/models"
)

// Branch labels for the recompute counter.
const (
	BranchAirplane   = "airplane"
	BranchAllMissing = "all_missing"
	BranchNormal     = "normal"
)

// Metrics holds the carrier text collectors. A nil *Metrics is a no-op.
type Metrics struct {
	Recomputes      *prometheus.CounterVec
	PassDuration    prometheus.Histogram
	SimStateEvents  *prometheus.CounterVec
	DisplayFailures prometheus.Counter
	LocaleReloads   *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Recomputes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carriertext_recomputes_total",
			Help: "Total number of carrier text passes, by resolving branch",
		}, []string{"branch"}),
		PassDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carriertext_pass_duration_seconds",
			Help:    "Time spent composing and displaying one carrier text pass",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
		SimStateEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carriertext_sim_state_events_total",
			Help: "Total number of SIM state change events, by classified status",
		}, []string{"status"}),
		DisplayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "carriertext_display_failures_total",
			Help: "Total number of failed pushes to the display sink",
		}),
		LocaleReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carriertext_locale_reloads_total",
			Help: "Total number of locale catalog reloads, by outcome",
		}, []string{"outcome"}),
	}
}

// ObservePass records one pass and the branch that produced its text.
func (m *Metrics) ObservePass(result models.DisplayResult, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Recomputes.WithLabelValues(Branch(result)).Inc()
	m.PassDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementSimStateEvents(status models.Status) {
	if m == nil {
		return
	}
	m.SimStateEvents.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) IncrementDisplayFailures() {
	if m == nil {
		return
	}
	m.DisplayFailures.Inc()
}

// IncrementLocaleReloads counts a reload; ok selects the "success" or "failure" outcome.
func (m *Metrics) IncrementLocaleReloads(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.LocaleReloads.WithLabelValues(outcome).Inc()
}

// Branch names the pass branch that decided the result.
func Branch(result models.DisplayResult) string {
	switch {
	case result.AirplaneOverride:
		return BranchAirplane
	case result.AllSimsMissing:
		return BranchAllMissing
	default:
		return BranchNormal
	}
}
