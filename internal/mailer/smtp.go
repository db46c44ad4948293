package mailer

import (
	"fmt"
	"time"

	mail "gopkg.in/mail.v2"

	"github.com/michellealmonte/marketing-api/internal/config"
)

// Sender delivers a rendered message to a single recipient.
type Sender interface {
	Send(to string, msg Message) error
}

// SMTPSender delivers mail over authenticated SMTP.
type SMTPSender struct {
	dialer *mail.Dialer
	from   string
}

// NewSMTPSender builds a sender from outbound mail credentials. The dial
// timeout bounds every delivery attempt so a wedged SMTP server cannot hang
// the dispatch worker.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	dialer.Timeout = 15 * time.Second
	return &SMTPSender{dialer: dialer, from: cfg.From}
}

// Send renders and delivers one message.
func (s *SMTPSender) Send(to string, msg Message) error {
	body, err := msg.Body()
	if err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject())
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

var _ Sender = (*SMTPSender)(nil)
