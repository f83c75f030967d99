// Package metrics holds the Prometheus collectors for form submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "personform"

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeBlocked  = "blocked"
)

// Metrics counts submission attempts and the fields that blocked them.
type Metrics struct {
	registry *prometheus.Registry

	submissions   *prometheus.CounterVec
	invalidFields *prometheus.CounterVec
}

// New registers the collectors on a fresh registry. Each Metrics owns its
// registry so tests can build as many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submission attempts by outcome.",
		}, []string{"outcome"}),
		invalidFields: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_fields_total",
			Help:      "Required fields found blank on submission.",
		}, []string{"field"}),
	}
}

// ObserveSubmission records one attempt and every field that failed it.
func (m *Metrics) ObserveSubmission(valid bool, invalidFields []string) {
	outcome := OutcomeAccepted
	if !valid {
		outcome = OutcomeBlocked
	}
	m.submissions.WithLabelValues(outcome).Inc()

	for _, name := range invalidFields {
		m.invalidFields.WithLabelValues(name).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
