package mail

import (
	"context"
	"errors"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
)

type counter interface {
	Inc()
}

// RetryConfig describes RetryingSender behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingSender retries transient SMTP failures with exponential backoff
// before giving up.
type RetryingSender struct {
	next    notify.Sender
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingSender wraps next in retry behaviour. Returns nil if next is nil.
func NewRetryingSender(next notify.Sender, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingSender {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &RetryingSender{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Send delivers mail, retrying transient failures.
func (s *RetryingSender) Send(ctx context.Context, to []string, subject, html string) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		err := s.next.Send(ctx, to, subject, html)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == s.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(s.cfg.BaseDelay, s.cfg.MaxDelay, attempt)
		if s.retries != nil {
			s.retries.Inc()
		}
		s.logger.Warn("mail gateway retry",
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable reports whether the error is worth another attempt: a 4xx SMTP
// response or a network-level failure.
func isRetryable(err error) bool {
	var sendErr *gomail.SendError
	if errors.As(err, &sendErr) {
		return sendErr.IsTemp()
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// backoff computes the retry delay.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
