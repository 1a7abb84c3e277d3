package smtp

import (
	"crypto/tls"

	"github.com/csv-challenge/backend/pkg/email"

	"github.com/go-gomail/gomail"
	"github.com/pkg/errors"
)

const implicitTLSPort = 465

type SMTPSender struct {
	from string
	pass string
	host string
	port int
}

func NewSMTPSender(from, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	return &SMTPSender{from: from, pass: pass, host: host, port: port}, nil
}

// Send delivers a single HTML message. It blocks until the server accepts or rejects it.
func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return errors.Wrap(err, "invalid email input")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	dialer := gomail.NewDialer(s.host, s.port, s.from, s.pass)
	if s.port == implicitTLSPort {
		dialer.SSL = true
	}
	dialer.TLSConfig = &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}

	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "send email to %s via %s", input.To, s.host)
	}

	return nil
}
