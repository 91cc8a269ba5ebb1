// Package metrics exposes Prometheus collectors for the HTTP functions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	invocations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cloud_functions",
		Name:      "invocations_total",
		Help:      "Function invocations by function and HTTP status.",
	}, []string{"function", "status"})

	duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cloud_functions",
		Name:      "invocation_duration_seconds",
		Help:      "Function invocation latency in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"function"})

	artifactBytes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cloud_functions",
		Name:      "artifact_bytes",
		Help:      "Size of the last artifact stored by a function.",
	}, []string{"function"})
)

func init() {
	prometheus.MustRegister(invocations, duration, artifactBytes)
}

// ObserveInvocation counts a completed invocation and records its latency.
func ObserveInvocation(function string, status int, elapsed time.Duration) {
	invocations.WithLabelValues(function, strconv.Itoa(status)).Inc()
	duration.WithLabelValues(function).Observe(elapsed.Seconds())
}

// RecordArtifact sets the size of the object most recently written by function.
func RecordArtifact(function string, size int) {
	artifactBytes.WithLabelValues(function).Set(float64(size))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
