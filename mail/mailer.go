package mail

import (
	"fmt"
	"net/smtp"

	"github.com/Rodrigo-Rojo/blog/config"
)

// Mailer delivers contact submissions through an authenticated SMTP relay.
type Mailer struct {
	cfg config.Mail
}

func NewMailer(cfg config.Mail) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send mails the submission details back to the submitter's address.
// SendMail upgrades the session with STARTTLS before authenticating when
// the relay advertises it. Errors are returned to the caller; swallowing
// them is the caller's policy, not the mailer's.
func (m *Mailer) Send(name, email, phone, message string) error {
	auth := smtp.PlainAuth("", m.cfg.Account, m.cfg.Password, m.cfg.Host)
	msg := Message(name, phone, message)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.Account, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send contact mail: %w", err)
	}
	return nil
}

// Message builds the plaintext contact mail body.
func Message(name, phone, message string) []byte {
	return []byte("Subject: Blog Website Contact\r\n" +
		"\r\n" +
		name + " want to hear from you\n" +
		name + " Phone Number: " + phone + "\n" +
		"message: " + message + "\n")
}
