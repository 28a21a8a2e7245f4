package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musiconnect_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "musiconnect_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "musiconnect_bookings_created_total",
			Help: "Booking requests created",
		},
	)

	bookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musiconnect_booking_transitions_total",
			Help: "Booking status changes",
		},
		[]string{"from", "to"},
	)

	messagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "musiconnect_messages_sent_total",
			Help: "Conversation messages stored",
		},
	)

	emailsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musiconnect_notification_emails_total",
			Help: "Notification emails by outcome",
		},
		[]string{"result"},
	)
)

func TrackBookingCreated() {
	bookingsCreated.Inc()
}

func TrackBookingTransition(from, to string) {
	bookingTransitions.WithLabelValues(from, to).Inc()
}

func TrackMessageSent() {
	messagesSent.Inc()
}

// TrackEmail records one email outcome: "sent", "failed" or "skipped".
func TrackEmail(result string) {
	emailsDispatched.WithLabelValues(result).Inc()
}
