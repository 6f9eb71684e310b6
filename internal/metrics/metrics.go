package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatehub",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status class.",
		},
		[]string{"endpoint", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "estatehub",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatehub",
			Name:      "payment_webhook_events_total",
			Help:      "Payment webhook events by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, webhookEvents)
	})
}

// IncHTTP increments the request counter for an endpoint and status class.
func IncHTTP(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

// IncBookingCreated counts a successfully created booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncWebhookEvent counts a processed webhook by outcome
// (success, ignored, invalid_signature, failed).
func IncWebhookEvent(outcome string) {
	webhookEvents.WithLabelValues(outcome).Inc()
}
