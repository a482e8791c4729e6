package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcelpoint/internal/config"
	mailgw "parcelpoint/internal/gateway/mail"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
	"parcelpoint/internal/transport/kafka"
)

type dispatcherIn struct {
	dig.In
	Cfg         *config.Config
	Logger      logx.Logger
	MailRetries prometheus.Counter `name:"mail_retries_total"`
	Failed      prometheus.Counter `name:"notifications_failed_total"`
}

// newDispatcher picks the notification path. With Kafka configured the
// request path only publishes jobs and the notifier worker does the sending;
// otherwise mail goes out in-process. The returned publisher is nil unless
// Kafka is in use.
func newDispatcher(in dispatcherIn) (notify.Dispatcher, *kafka.Publisher, error) {
	pub, err := kafka.NewPublisher(in.Cfg.Kafka.Brokers, in.Cfg.Kafka.Topic, in.Logger)
	if err != nil {
		return nil, nil, err
	}
	if pub != nil {
		return pub, pub, nil
	}

	d, err := newMailDispatcher(in.Cfg.SMTP, in.Logger, in.MailRetries, in.Failed)
	if err != nil {
		return nil, nil, err
	}
	return d, nil, nil
}

func newMailDispatcher(cfg config.SMTP, logger logx.Logger, retries, failed prometheus.Counter) (notify.Dispatcher, error) {
	gw, err := mailgw.NewGateway(cfg)
	if err != nil {
		return nil, err
	}
	if gw == nil {
		logger.Warn("mail transport not configured, notifications disabled")
		return notify.NopDispatcher{}, nil
	}

	sender := mailgw.NewRetryingSender(gw, logger, retries, mailgw.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	})
	return notify.NewMailDispatcher(sender, logger, failed, 15*time.Second), nil
}
