package email

import (
	"gopkg.in/gomail.v2"

	"smartadmin_backend/internal/config"
)

// Notifier отправляет уведомления участникам. Интерфейс нужен,
// чтобы в тестах подставлять фейковую реализацию.
type Notifier interface {
	Send(to, subject, body string) error
}

type smtpNotifier struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewSMTPNotifier(cfg config.EmailConfig) Notifier {
	return &smtpNotifier{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
	}
}

func (n *smtpNotifier) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
