package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

// SMTPConfig contains configuration for email delivery of contact messages.
type SMTPConfig struct {
	// Enabled indicates whether email notifications are enabled
	Enabled bool

	// Host is the SMTP server hostname
	Host string

	// Port is the SMTP server port (587 for STARTTLS)
	Port int

	// Username authenticates against the SMTP server and is used as the
	// envelope sender
	Username string

	// Password authenticates against the SMTP server
	Password string

	// To is the owner's address that receives contact submissions
	To string
}

// SMTPNotifier emails contact messages to the owner.
// Submissions are sent from the configured account with the visitor's
// address in Reply-To, so replying in a mail client reaches the visitor.
type SMTPNotifier struct {
	config SMTPConfig
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates an SMTPNotifier with the given configuration.
func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		send:   smtp.SendMail,
	}
}

// buildMessage renders the RFC 5322 message for a contact submission.
func (n *SMTPNotifier) buildMessage(msg *entity.ContactMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.config.Username)
	fmt.Fprintf(&b, "To: %s\r\n", n.config.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: Portfolio Contact: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "From: %s <%s>\r\n\r\n%s\r\n", msg.Name, msg.Email, msg.Body)
	return []byte(b.String())
}

// sanitizeHeader strips CR and LF so user input cannot inject extra headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// NotifyContact sends the contact message as an email.
// Implements the Notifier interface. A single attempt is made; SMTP servers
// queue and retry on their side, so client-side retry adds little.
func (n *SMTPNotifier) NotifyContact(ctx context.Context, msg *entity.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done before send: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	if err := n.send(addr, auth, n.config.Username, []string{n.config.To}, n.buildMessage(msg)); err != nil {
		slog.Error("contact email delivery failed",
			slog.String("host", n.config.Host),
			slog.Any("error", err))
		return fmt.Errorf("send contact email: %w", err)
	}

	slog.Info("contact email delivered",
		slog.String("to", n.config.To),
		slog.String("subject", msg.Subject))
	return nil
}
