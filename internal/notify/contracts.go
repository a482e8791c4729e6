package notify

import "context"

// Dispatcher delivers notifications best-effort. Dispatch must never block the
// caller's request path on transport errors and must never surface them.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message)
}

// Sender is the outbound mail transport.
type Sender interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// counter is a subset of prometheus.Counter.
type counter interface {
	Inc()
}
