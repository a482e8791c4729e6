package notify

import (
	"context"
	"time"

	"parcelpoint/internal/logx"
)

// MailDispatcher renders notifications and hands them to the mail transport.
// Dispatch runs the delivery in a goroutine off the request path; Deliver is
// the synchronous form used by the notification worker.
type MailDispatcher struct {
	sender  Sender
	logger  logx.Logger
	failed  counter
	timeout time.Duration

	// replaced in tests to observe the async path
	spawn func(func())
}

// NewMailDispatcher creates a MailDispatcher.
func NewMailDispatcher(sender Sender, logger logx.Logger, failed counter, timeout time.Duration) *MailDispatcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &MailDispatcher{
		sender:  sender,
		logger:  logger,
		failed:  failed,
		timeout: timeout,
		spawn:   func(fn func()) { go fn() },
	}
}

// Dispatch delivers msg best-effort. Errors are logged and dropped; the
// primary operation has already committed by the time this is called.
func (d *MailDispatcher) Dispatch(_ context.Context, msg Message) {
	d.spawn(func() {
		// detached from the request context: the notification must not be
		// cancelled because the caller's request finished
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.Deliver(ctx, msg); err != nil {
			if d.failed != nil {
				d.failed.Inc()
			}
			d.logger.Warn("notification dropped",
				logx.String("kind", string(msg.Kind)),
				logx.String("tracking_code", msg.TrackingCode),
				logx.Any("err", err),
			)
		}
	})
}

// Deliver renders and sends msg synchronously. An empty recipient set is a
// no-op.
func (d *MailDispatcher) Deliver(ctx context.Context, msg Message) error {
	to := Normalize(msg.To)
	if len(to) == 0 {
		return nil
	}

	rendered, err := Render(msg)
	if err != nil {
		return err
	}
	return d.sender.Send(ctx, to, rendered.Subject, rendered.HTML)
}

var _ Dispatcher = (*MailDispatcher)(nil)

// NopDispatcher discards every notification. Used when neither SMTP nor the
// notification topic is configured.
type NopDispatcher struct{}

// Dispatch does nothing.
func (NopDispatcher) Dispatch(context.Context, Message) {}

var _ Dispatcher = NopDispatcher{}
