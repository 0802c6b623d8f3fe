// Package mailer dispatches rendered statements over SMTP as PDF attachments.
package mailer

import (
	"fmt"
	"html"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ledger-statement-service/internal/config"
	"gopkg.in/gomail.v2"
)

// Fallbacks applied when the caller leaves subject or body empty.
const (
	DefaultSubject = "Ledger Statement for the Current Financial Year"
	DefaultBody    = "Dear Sir/Madam,\n\nPlease find attached the ledger statement for the current financial year.\n\nKindly review and confirm the closing balance.\n\nRegards"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Message is one outgoing statement email.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Mailer sends statement emails through a configured SMTP server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewMailer creates a mailer from SMTP configuration. Configuration
// completeness is enforced at config load time.
func NewMailer(logger *slog.Logger, cfg *config.SMTPConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.Secure

	return &Mailer{
		dialer: dialer,
		from:   cfg.FromEmail,
		logger: logger,
	}
}

// Send delivers one message. Empty subject or body fall back to the defaults.
// The body is sent both as plain text and as an HTML alternative.
func (m *Mailer) Send(msg Message) error {
	subject := msg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	body := msg.Body
	if body == "" {
		body = DefaultBody
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", subject)
	mail.SetBody("text/plain", body)
	mail.AddAlternative("text/html", HTMLBody(body))

	if len(msg.Attachment) > 0 {
		mail.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(msg.Attachment)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(mail); err != nil {
		m.logger.Error("Failed to send statement email", "to", msg.To, "error", err)
		return fmt.Errorf("send statement email: %w", err)
	}

	m.logger.Info("Statement email sent", "to", msg.To, "attachment", msg.AttachmentName)
	return nil
}

// HTMLBody converts a plain-text body to HTML: special characters are escaped
// and newlines become line breaks.
func HTMLBody(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br />")
}

// AttachmentFilename builds the statement attachment name for a party:
// non-alphanumeric characters in the party name are replaced with
// underscores, prefixed "Ledger_" and suffixed ".pdf".
func AttachmentFilename(partyName string) string {
	return "Ledger_" + nonAlphanumeric.ReplaceAllString(partyName, "_") + ".pdf"
}
