package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers outbound account mail. Handlers depend on this interface
// so tests can substitute a fake transport.
type Mailer interface {
	SendPasswordReset(to, firstName, tempPassword string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (m *SMTPMailer) SendPasswordReset(to, firstName, tempPassword string) error {
	body := fmt.Sprintf(`Hello %s,
Your password for the HRMS portal has been reset.
Your new temporary password is: %s
Please log in with this password. You will be required to set a new password immediately.
Thank you,
HRMS System`, firstName, tempPassword)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your HRMS Password has been Reset")
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}
