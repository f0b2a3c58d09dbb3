package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by provider and completion metrics
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeDisabled    = "disabled"
	OutcomeError       = "error"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jarvis_chat_requests_total",
			Help: "Total number of chat utterances handled, by intent",
		},
		[]string{"intent"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jarvis_provider_requests_total",
			Help: "Total number of external data provider calls, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jarvis_provider_duration_seconds",
			Help:    "Duration of external data provider calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider"},
	)

	CompletionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jarvis_completion_requests_total",
			Help: "Total number of language model completions, by outcome",
		},
		[]string{"outcome"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jarvis_sessions_active",
			Help: "Number of conversation sessions currently held in memory",
		},
	)
)

// ObserveProvider records one provider call
func ObserveProvider(provider, outcome string, started time.Time) {
	ProviderRequests.WithLabelValues(provider, outcome).Inc()
	ProviderDuration.WithLabelValues(provider).Observe(time.Since(started).Seconds())
}
