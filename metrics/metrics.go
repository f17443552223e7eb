// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TotalRequests counts requests by route, status code and method
var TotalRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventour_http_requests_total",
		Help: "Number of HTTP requests.",
	},
	[]string{"path", "code", "method"},
)

// HTTPDuration observes request latency by route, status code and method
var HTTPDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "adventour_http_request_duration_seconds",
		Help: "HTTP request latency.",
		Buckets: []float64{
			0.01,
			0.05,
			0.1,
			0.25,
			0.5,
			1,
			3,
			10,
		},
	},
	[]string{"path", "code", "method"},
)

// BookingsCreated counts confirmed bookings, labelled guest or member
var BookingsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventour_bookings_created_total",
		Help: "Confirmed bookings, by whether the guest was signed in.",
	},
	[]string{"account"},
)

// BookingsCancelled counts bookings cancelled by their owner
var BookingsCancelled = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "adventour_bookings_cancelled_total",
		Help: "Bookings cancelled from the account page.",
	},
)

// BookingsCompleted counts bookings closed by the completion job
var BookingsCompleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "adventour_bookings_completed_total",
		Help: "Bookings moved to Completed by the scheduler.",
	},
)

// MailsSent counts mail deliveries by kind and result
var MailsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventour_mails_total",
		Help: "Mails handed to delivery, by kind and result.",
	},
	[]string{"kind", "result"},
)

// SearchCacheLookups counts search cache hits and misses
var SearchCacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventour_search_cache_lookups_total",
		Help: "Catalog search cache lookups.",
	},
	[]string{"result"},
)
