// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsTotal counts generated and translated reports by outcome.
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evalreport_reports_total",
		Help: "Evaluation reports produced, by kind (generate, translate) and result.",
	}, []string{"kind", "result"})

	// ModelRequestDuration observes model round trips.
	ModelRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evalreport_model_request_duration_seconds",
		Help:    "Latency of model calls by provider and purpose.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
	}, []string{"provider", "purpose"})

	// RateLimitWait observes time spent waiting for a model call token.
	RateLimitWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evalreport_ratelimit_wait_seconds",
		Help:    "Time model calls waited on the shared rate limiter, by purpose.",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15},
	}, []string{"purpose"})

	// DocumentsTotal counts acquired documents by source and result.
	DocumentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evalreport_documents_total",
		Help: "Documents acquired, by source (upload, url, path) and result.",
	}, []string{"source", "result"})

	// EmailsTotal counts report emails by result.
	EmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evalreport_emails_total",
		Help: "Report emails sent, by result.",
	}, []string{"result"})
)

// Result maps an error to the "ok"/"failed" label value.
func Result(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}

// ObserveModel records the duration of a model call started at start.
func ObserveModel(provider, purpose string, start time.Time) {
	ModelRequestDuration.WithLabelValues(provider, purpose).Observe(time.Since(start).Seconds())
}
