package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/louisbranch/shepherd.church/internal/platform/config"
)

// SMTPConfig holds SMTP relay settings.
type SMTPConfig struct {
	Host     string `env:"SHEPHERD_CHURCH_SMTP_HOST"`
	Port     int    `env:"SHEPHERD_CHURCH_SMTP_PORT" envDefault:"587"`
	Username string `env:"SHEPHERD_CHURCH_SMTP_USERNAME"`
	Password string `env:"SHEPHERD_CHURCH_SMTP_PASSWORD"`
	From     string `env:"SHEPHERD_CHURCH_SMTP_FROM"`
}

// SMTPSender delivers email through an SMTP relay.
type SMTPSender struct {
	config SMTPConfig
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates an SMTP sender from relay configuration.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	return &SMTPSender{config: cfg, send: smtp.SendMail}, nil
}

// NewSMTPSenderFromEnv creates an SMTP sender from process environment settings.
func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	var cfg SMTPConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, fmt.Errorf("parse smtp config: %w", err)
	}
	return NewSMTPSender(cfg)
}

// Send delivers one message through the configured relay.
func (s *SMTPSender) Send(ctx context.Context, message Message) error {
	if s == nil || s.send == nil {
		return fmt.Errorf("smtp sender is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	to := strings.TrimSpace(message.To)
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	payload := EncodeMessage(s.config.From, to, message.Subject, message.HTMLBody)
	if err := s.send(addr, auth, s.config.From, []string{to}, payload); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// EncodeMessage renders one RFC 5322 HTML email payload.
func EncodeMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// sanitizeHeader strips CRLF to prevent header injection from user-provided
// titles, collapsing the removed characters into single spaces.
func sanitizeHeader(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
