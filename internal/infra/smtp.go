package infra

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/abdullah9786/nawab-products/internal/config"

	"github.com/jordan-wright/email"
)

// ErrMailerDisabled is returned when SMTP_HOST is not configured.
var ErrMailerDisabled = errors.New("mailer: SMTP not configured")

// ContactMessage is a storefront enquiry addressed to the shop inbox.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer wraps SMTP configuration for outbound mail.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	inbox    string
	brand    string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		inbox:    cfg.ContactInbox,
		brand:    cfg.BrandName,
	}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool { return m.host != "" }

// SendContact forwards an enquiry to the shop inbox with Reply-To set to
// the customer.
func (m *Mailer) SendContact(msg ContactMessage) error {
	if !m.Enabled() {
		return ErrMailerDisabled
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{m.inbox}
	e.ReplyTo = []string{msg.Email}
	e.Subject = fmt.Sprintf("[%s] Enquiry from %s", m.brand, msg.Name)
	e.Text = []byte(contactBody(msg))

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return e.Send(m.addr, auth)
}

func contactBody(msg ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	b.WriteString("\n")
	b.WriteString(msg.Message)
	b.WriteString("\n")
	return b.String()
}
