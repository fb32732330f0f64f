// Package notify sends confirmation emails through a transport chosen at
// startup.
package notify

import (
	"context"
	"errors"
	"fmt"

	"registration/internal/config"
)

// ErrDisabled is returned by transports that deliberately send nothing.
var ErrDisabled = errors.New("email delivery disabled")

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error { return ErrDisabled }

// New builds the Mailer named by cfg.Provider.
func New(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Provider {
	case "", config.ProviderNone:
		return NoopMailer{}, nil
	case config.ProviderResend:
		m, err := NewResendMailer(cfg.ResendAPIKey, cfg.From, WithBaseURL(cfg.ResendBaseURL))
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.ProviderSMTP:
		m, err := NewSMTPMailer(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
			Timeout:  cfg.SMTPTimeout,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
