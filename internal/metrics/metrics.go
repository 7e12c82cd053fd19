package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the probe and search collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	ProbeLatency  *prometheus.HistogramVec
	ProbeOutcomes *prometheus.CounterVec
	Searches      *prometheus.CounterVec
	SearchLatency *prometheus.HistogramVec
	FanOutSize    prometheus.Histogram
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ProbeLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "footprint_probe_duration_seconds",
			Help:    "Duration of a single profile existence probe by platform",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 7.5},
		}, []string{"platform"}),

		ProbeOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "footprint_probe_outcomes_total",
			Help: "Probe outcomes by platform and result (found, not_found, Timeout, NetworkError, Other)",
		}, []string{"platform", "result"}),

		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "footprint_searches_total",
			Help: "Searches by type and status (ok, invalid, error)",
		}, []string{"type", "status"}),

		SearchLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "footprint_search_duration_seconds",
			Help:    "End-to-end search duration by type",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"type"}),

		FanOutSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "footprint_fanout_targets",
			Help:    "Number of targets submitted per fan-out batch",
			Buckets: []float64{1, 3, 6, 9, 14, 27},
		}),
	}
}

func (m *Metrics) ObserveProbe(platform, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.ProbeLatency.WithLabelValues(platform).Observe(d.Seconds())
	m.ProbeOutcomes.WithLabelValues(platform, result).Inc()
}

func (m *Metrics) ObserveSearch(searchType, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(searchType, status).Inc()
	m.SearchLatency.WithLabelValues(searchType).Observe(d.Seconds())
}

func (m *Metrics) ObserveFanOut(n int) {
	if m == nil {
		return
	}
	m.FanOutSize.Observe(float64(n))
}
