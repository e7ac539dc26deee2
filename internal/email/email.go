package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
)

// Provider sends transactional mail. Email is optional on this platform:
// most users only have a phone number, so every caller must tolerate a
// missing address by simply not calling.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// NewProvider returns the SMTP provider, or a log-only one when no SMTP
// host is configured.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return &LogProvider{}
	}
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:   fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail),
	}
}

type LogProvider struct{}

func (p *LogProvider) Send(to, subject, htmlBody string) error {
	logger.Info("email (log provider)", "to", to, "subject", subject)
	return nil
}

type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
