package notify

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends placement mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	if from == "" {
		from = user
	}
	return &Mailer{dialer: gomail.NewDialer(host, port, user, password), from: from}
}

func (m *Mailer) Send(job MailJob) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", job.To)
	msg.SetHeader("Subject", job.Subject)
	msg.SetBody("text/plain", job.Body)
	return m.dialer.DialAndSend(msg)
}
