package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records request and advisor metrics
type PrometheusMetrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	adviceCalls     *prometheus.CounterVec
}

// NewPrometheusMetrics creates and registers the application metrics
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		requestCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_http_requests_total",
				Help: "Total number of HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetwise_http_request_duration_seconds",
				Help:    "HTTP request latency by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		adviceCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_advice_calls_total",
				Help: "Total advisor collaborator calls by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) IncrementRequestCount(method, path string, status int) {
	m.requestCount.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func (m *PrometheusMetrics) RecordRequestDuration(method, path string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordAdviceCall(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.adviceCalls.WithLabelValues(outcome).Inc()
}
