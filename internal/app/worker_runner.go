package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcelpoint/internal/config"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
	"parcelpoint/internal/transport/kafka"
)

// WorkerRunner runs the notifier worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the notifier worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: KAFKA_BROKERS must be set for the notifier")
	}
	defer closeWorker(logger, consumer)

	logger.Info("parcelpoint-notifier started")
	return consumer.Run(ctx)
}

func closeWorker(logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Any("err", err))
	}
}

// MustBuildWorkerContainer builds the DI container for the notifier worker.
// The worker consumes notification jobs from Kafka and delivers them over
// SMTP synchronously, so failed sends stay on the topic for redelivery.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorkerContainer(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to build worker container: %w", err))
	}
	return container
}

func buildWorkerContainer(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

type workerMailIn struct {
	dig.In
	Cfg         *config.Config
	Logger      logx.Logger
	MailRetries prometheus.Counter `name:"mail_retries_total"`
	Failed      prometheus.Counter `name:"notifications_failed_total"`
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(in workerMailIn) (*notify.MailDispatcher, error) {
			d, err := newMailDispatcher(in.Cfg.SMTP, in.Logger, in.MailRetries, in.Failed)
			if err != nil {
				return nil, err
			}
			md, ok := d.(*notify.MailDispatcher)
			if !ok {
				return nil, fmt.Errorf("mail transport not configured: SMTP_HOST must be set for the notifier")
			}
			return md, nil
		},
		func(cfg *config.Config, d *notify.MailDispatcher) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, d.Deliver)
		},
	)
}
