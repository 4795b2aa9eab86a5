package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vasapolrittideah/corporate-site-api/internal/config"
)

// Mailer sends operator notification emails over SMTP. It implements
// usecase.Notifier.
type Mailer struct {
	config config.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer creates a Mailer, or nil if SMTP is not configured so callers
// can skip notifications entirely.
func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, nil
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("missing SMTP_FROM environment variable")
	}
	if cfg.NotifyTo == "" {
		return nil, fmt.Errorf("missing SMTP_NOTIFY_TO environment variable")
	}

	return &Mailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

// Notify sends a plain-text notification to the configured operators.
func (m *Mailer) Notify(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", m.config.NotifyTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
