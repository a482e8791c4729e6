package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"parcelpoint/internal/config"
)

// Gateway sends notification mail over SMTP.
type Gateway struct {
	client *gomail.Client
	from   string
}

// NewGateway creates an SMTP gateway. Returns nil when no SMTP host is
// configured; callers treat a nil gateway as "mail disabled".
func NewGateway(cfg config.SMTP) (*Gateway, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Pass),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail gateway: %w", err)
	}
	return &Gateway{client: client, from: cfg.From}, nil
}

// Send delivers one HTML mail to the given recipients.
func (g *Gateway) Send(ctx context.Context, to []string, subject, html string) error {
	msg := gomail.NewMsg()
	if err := msg.From(g.from); err != nil {
		return fmt.Errorf("mail gateway: from %q: %w", g.from, err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("mail gateway: to %v: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	if err := g.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail gateway: send: %w", err)
	}
	return nil
}
