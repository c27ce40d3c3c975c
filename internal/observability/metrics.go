// Package observability holds the service's prometheus metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weightlog",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "weightlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// RecordRequest updates the request counter and latency histogram. The route
// label is the path template, not the raw URL, to keep cardinality bounded.
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
