package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
)

// Publisher hands notification jobs to the notifier worker through Kafka.
// It implements notify.Dispatcher: publish failures are logged and dropped,
// never surfaced to the request path.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

var newSyncProducer = sarama.NewSyncProducer

// NewPublisher creates a notification publisher. Returns nil when Kafka is
// not configured.
func NewPublisher(brokers []string, topic string, logger logx.Logger) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Publisher{producer: producer, topic: topic, logger: logger}, nil
}

// Dispatch publishes msg to the notification topic.
func (p *Publisher) Dispatch(_ context.Context, msg notify.Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		p.logger.Warn("notification publish skipped: bad payload", logx.Any("err", err))
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		// key by tracking code so updates for one shipment stay ordered
		Key:   sarama.StringEncoder(msg.TrackingCode),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.logger.Warn("notification publish failed",
			logx.String("kind", string(msg.Kind)),
			logx.String("tracking_code", msg.TrackingCode),
			logx.Any("err", err),
		)
	}
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

var _ notify.Dispatcher = (*Publisher)(nil)
