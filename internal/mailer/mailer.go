// Package mailer raises email alerts for messages that could not be
// delivered to any chat platform.
package mailer

import (
	"fmt"
	"net/smtp"

	"webhookd/internal/config"
)

type Mailer struct {
	config config.EmailConfig
}

func New(config config.EmailConfig) *Mailer {
	return &Mailer{config}
}

// Alert sends a plain-text email. It is a no-op when email alerting is
// disabled in the config.
func (m *Mailer) Alert(subject, body string) error {
	if !m.config.Enable {
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.config.Server, m.config.Port)
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.config.Sender, m.config.Recipient, subject, body,
	)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Server)
	}

	return smtp.SendMail(
		addr, auth, m.config.Sender,
		[]string{m.config.Recipient}, []byte(message),
	)
}
