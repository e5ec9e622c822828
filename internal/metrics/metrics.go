package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gearshare",
		Name:      "bookings_created_total",
		Help:      "Booking requests accepted into the WAITING state.",
	})

	BookingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gearshare",
		Name:      "booking_decisions_total",
		Help:      "Owner decisions on booking requests, by resulting status.",
	}, []string{"status"})

	ItemRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gearshare",
		Name:      "item_requests_created_total",
		Help:      "Item requests posted by users looking for gear.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gearshare",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	ReminderRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gearshare",
		Name:      "pending_reminder_runs_total",
		Help:      "Pending-approval reminder job runs, by outcome.",
	}, []string{"outcome"})
)
