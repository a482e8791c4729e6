package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcelpoint/internal/metrics"
)

type metricsOut struct {
	dig.Out
	RateLimitExceeded   prometheus.Counter `name:"rate_limit_exceeded_total"`
	TrackingRetries     prometheus.Counter `name:"tracking_allocation_retries_total"`
	MailRetries         prometheus.Counter `name:"mail_retries_total"`
	NotificationsFailed prometheus.Counter `name:"notifications_failed_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		RateLimitExceeded:   registerCounter(metrics.NewRateLimitExceededTotal()),
		TrackingRetries:     registerCounter(metrics.NewTrackingRetriesTotal()),
		MailRetries:         registerCounter(metrics.NewMailRetriesTotal()),
		NotificationsFailed: registerCounter(metrics.NewNotificationsFailedTotal()),
	}
}

// registerCounter registers c with the default registry. A second container in
// the same process reuses the already registered collector instead of
// panicking.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
