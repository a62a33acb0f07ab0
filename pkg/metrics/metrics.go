package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legaldocs", Name: "documents_generated_total", Help: "Number of successfully generated documents."},
	)
	GenerationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legaldocs", Name: "generation_failures_total", Help: "Number of failed generation requests by pipeline stage."},
		[]string{"stage"},
	)
	// PersistFailures counts record writes that failed after the artifact was
	// already produced. These are invisible in the HTTP response, so the
	// counter is the operator-facing signal.
	PersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legaldocs", Name: "persist_failures_total", Help: "Number of document record writes that failed after generation."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legaldocs", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legaldocs", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsGenerated)
	reg.MustRegister(GenerationFailures)
	reg.MustRegister(PersistFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
