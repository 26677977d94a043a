package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zenyourlife_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_booking_rejections_total",
			Help: "Total number of rejected booking attempts",
		},
		[]string{"reason"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_booking_transitions_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"to"},
	)

	AvailabilityQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_availability_queries_total",
			Help: "Total number of availability resolutions",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenyourlife_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zenyourlife_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	RemindersSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zenyourlife_reminders_sent_total",
			Help: "Total number of appointment reminders sent",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated(status string) {
	BookingsCreatedTotal.WithLabelValues(status).Inc()
}

func RecordBookingRejection(reason string) {
	BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordBookingTransition(to string) {
	BookingTransitionsTotal.WithLabelValues(to).Inc()
}

func RecordAvailabilityQuery(status string) {
	AvailabilityQueriesTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordReminderSent() {
	RemindersSentTotal.Inc()
}
