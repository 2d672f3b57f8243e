package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	Registrations    prometheus.Counter
	Drops            prometheus.Counter
	RegistrationErrs *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coursereg_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coursereg_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		Registrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursereg_registrations_total",
			Help: "Total number of successful course registrations",
		}),
		Drops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursereg_drops_total",
			Help: "Total number of dropped registrations",
		}),
		RegistrationErrs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coursereg_registration_failures_total",
			Help: "Registration attempts rejected by a business rule",
		}, []string{"reason"}),
	}
}

// IncrementRegistrations increments the successful registration counter
func (m *Metrics) IncrementRegistrations() {
	m.Registrations.Inc()
}

// IncrementDrops increments the drop counter
func (m *Metrics) IncrementDrops() {
	m.Drops.Inc()
}

// IncrementRegistrationFailure records a rejected registration attempt
func (m *Metrics) IncrementRegistrationFailure(reason string) {
	m.RegistrationErrs.WithLabelValues(reason).Inc()
}
