package server

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	handlerPrometheusMetrics sync.Once

	handlerRequestsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "http",
			Name:      "handler_requests_duration_seconds",
			Help:      "Amount of time spent per HTTP request, in seconds.",
			Buckets:   prometheus.ExponentialBucketsRange(1e-6, 1, 19),
		},
		[]string{"name", "code", "method"})
	handlerRequestsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "http",
			Name:      "handler_requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		},
		[]string{"name"})
)

// NewMetricsHandler creates an adapter for http.Handler that records
// the duration of requests and the number of requests in flight.
func NewMetricsHandler(base http.Handler, name string) http.Handler {
	handlerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(handlerRequestsDurationSeconds)
		prometheus.MustRegister(handlerRequestsInFlight)
	})

	return promhttp.InstrumentHandlerInFlight(
		handlerRequestsInFlight.WithLabelValues(name),
		promhttp.InstrumentHandlerDuration(
			handlerRequestsDurationSeconds.MustCurryWith(prometheus.Labels{"name": name}),
			base))
}
