// Package metrics exposes the relay's Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flashcard_relay"

// Recorder owns a registry with the relay's collectors. Each Recorder has
// its own registry so tests and multiple servers do not collide.
type Recorder struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	generateRequests *prometheus.CounterVec
	flashcards       prometheus.Counter
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the relay metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Upstream completion calls by provider, model and outcome",
			},
			[]string{"provider", "model", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of upstream completion calls",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 0.25s..64s
			},
			[]string{"provider"},
		),
		generateRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generate_requests_total",
				Help:      "Generate requests by outcome",
			},
			[]string{"outcome"},
		),
		flashcards: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flashcards_extracted_total",
				Help:      "Flashcards extracted from upstream completions",
			},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.upstreamRequests,
		r.upstreamDuration,
		r.generateRequests,
		r.flashcards,
	)
	return r
}

// ObserveCompletion records one upstream call.
func (r *Recorder) ObserveCompletion(provider domain.Provider, model, outcome string, elapsed time.Duration) {
	r.upstreamRequests.WithLabelValues(provider.String(), model, outcome).Inc()
	r.upstreamDuration.WithLabelValues(provider.String()).Observe(elapsed.Seconds())
}

// ObserveRequest records the outcome of one generate request.
func (r *Recorder) ObserveRequest(outcome string) {
	r.generateRequests.WithLabelValues(outcome).Inc()
}

// ObserveFlashcards adds n extracted flashcards.
func (r *Recorder) ObserveFlashcards(n int) {
	if n > 0 {
		r.flashcards.Add(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
