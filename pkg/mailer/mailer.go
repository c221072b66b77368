// Package mailer provides functionality to send transactional emails.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text emails.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// SMTPMailer implements Mailer over an SMTP server via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTPMailerConfig contains options for creating a new SMTPMailer.
type NewSMTPMailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg NewSMTPMailerConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host cannot be empty")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP username and password must be provided")
	}
	sender := cfg.Sender
	if sender == "" {
		sender = cfg.Username
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: sender,
	}, nil
}

// Send delivers a plain-text email to a single recipient.
func (m *SMTPMailer) Send(recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
