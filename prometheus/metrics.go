package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector exported by the inventory service
type Metrics struct {
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Entity operations per resource, e.g. products/create
	OperationsCounter *prometheus.CounterVec

	// Field validation failures per resource and field
	ValidationFailuresCounter *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg using prefix for every metric name
func NewMetrics(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuthErrorsCounter: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_errors_total",
				Help: "Total number of rejected bearer tokens",
			},
		),
		DbOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
		OperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_operations_total",
				Help: "Total number of inventory operations",
			},
			[]string{"resource", "operation"},
		),
		ValidationFailuresCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_validation_failures_total",
				Help: "Total number of rejected field values",
			},
			[]string{"resource", "field"},
		),
	}
}

// ObserveRequest records a finished HTTP request
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.HttpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HttpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// TrackDBOperation returns a function that records the duration of a database operation
func (m *Metrics) TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		m.DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordOperation increments the counter for a resource operation
func (m *Metrics) RecordOperation(resource, operation string) {
	m.OperationsCounter.WithLabelValues(resource, operation).Inc()
}

// RecordValidationFailure increments the counter for a rejected field
func (m *Metrics) RecordValidationFailure(resource, field string) {
	m.ValidationFailuresCounter.WithLabelValues(resource, field).Inc()
}
