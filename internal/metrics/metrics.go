package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alafaq",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted and appended to the journal, by kind.",
		},
		[]string{"kind"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alafaq",
			Name:      "validation_failures_total",
			Help:      "Form submissions rejected by the validation pipeline, by reason.",
		},
		[]string{"reason"},
	)

	alertsShown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alafaq",
			Name:      "alerts_shown_total",
			Help:      "Transient alerts presented to the patient, by level.",
		},
		[]string{"level"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, validationFailures, alertsShown)
	})
}

// IncBookingCreated increments the created-bookings counter for a kind.
func IncBookingCreated(kind string) {
	bookingsCreated.WithLabelValues(kind).Inc()
}

// IncValidationFailure increments the failure counter for a reason label.
func IncValidationFailure(reason string) {
	validationFailures.WithLabelValues(reason).Inc()
}

// IncAlert increments the shown-alerts counter for a level.
func IncAlert(level string) {
	alertsShown.WithLabelValues(level).Inc()
}
