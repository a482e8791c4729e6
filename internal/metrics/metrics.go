package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewTrackingRetriesTotal returns a Prometheus counter for tracking code
// allocation retries caused by uniqueness collisions
func NewTrackingRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracking_allocation_retries_total",
		Help: "Total number of tracking code allocation retries due to collisions",
	})
}

// NewMailRetriesTotal returns a Prometheus counter for retry attempts
// performed by the mail gateway
func NewMailRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mail_retries_total",
		Help: "Total number of retry attempts performed by the mail gateway",
	})
}

// NewNotificationsFailedTotal returns a Prometheus counter for notifications
// that were dropped after delivery failed
func NewNotificationsFailedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_failed_total",
		Help: "Total number of notifications dropped after delivery failed",
	})
}
