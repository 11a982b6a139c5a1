package metrics

import (
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

// Metrics holds the skill's Prometheus registry and turn meters.
type Metrics struct {
	Registry     *prometheus.Registry
	TurnsTotal   *prometheus.CounterVec
	IntentsTotal *prometheus.CounterVec
	TurnDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	turns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_turns_total",
		Help: "Total number of handled turns.",
	}, []string{"request_type", "outcome"})

	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_intents_total",
		Help: "Total number of intent requests by intent name.",
	}, []string{"intent"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skill_turn_duration_seconds",
		Help:    "Duration of turn handling in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"request_type"})

	reg.MustRegister(turns, intents, duration)

	return &Metrics{
		Registry:     reg,
		TurnsTotal:   turns,
		IntentsTotal: intents,
		TurnDuration: duration,
	}
}

const unknownRequestType = "unknown"

// RequestTypeLabel maps t to a bounded label value: request types outside the platform contract
// all become "unknown".
func RequestTypeLabel(t models.RequestType) string {
	switch t {
	case models.TypeSessionStartedRequest, models.TypeLaunchRequest,
		models.TypeIntentRequest, models.TypeSessionEndedRequest:
		return string(t)
	}
	return unknownRequestType
}

// ObserveTurn records one finished turn. intent is empty for non-intent requests.
func (m *Metrics) ObserveTurn(requestType models.RequestType, intent, outcome string, elapsed time.Duration) {
	label := RequestTypeLabel(requestType)
	m.TurnsTotal.WithLabelValues(label, outcome).Inc()
	m.TurnDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	if intent != "" {
		m.IntentsTotal.WithLabelValues(intent).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
