package service

import (
	"estatehub/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email. All sends are fire-and-forget: a failed
// email is logged and never fails the operation that triggered it.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// SendAsync dispatches the email on its own goroutine.
func (m *Mailer) SendAsync(to, subject, htmlBody string) {
	if to == "" {
		return
	}
	go func() {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", htmlBody)

		if err := m.dialer.DialAndSend(msg); err != nil {
			m.log.Warnf("Failed to send email to %s (non-fatal): %+v", to, err)
		}
	}()
}
