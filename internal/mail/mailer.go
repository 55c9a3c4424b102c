// Package mail dispatches transactional email over SMTP. Templates are
// plain text; the frontend URL carried in the links comes from config.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/lunahq/accounts-api/internal/config"
)

// Template keys accepted by Send.
const (
	TemplateSignUp         = "signup-confirm"
	TemplateForgotPassword = "forgot-password"
)

// Mailer sends a transactional email by template key. Dispatch failures
// propagate to the caller; there are no retries.
type Mailer interface {
	Send(ctx context.Context, template, to string, data map[string]string) error
}

type SMTPMailer struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	fromName    string
	frontendURL string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.SMTPUser,
		password:    cfg.SMTPPassword,
		from:        cfg.MailFrom,
		fromName:    cfg.MailFromName,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
	}
}

func (m *SMTPMailer) Send(_ context.Context, template, to string, data map[string]string) error {
	subject, body, err := m.render(template, data)
	if err != nil {
		return err
	}

	msg := buildMessage(m.from, m.fromName, to, subject, body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

func (m *SMTPMailer) render(template string, data map[string]string) (subject, body string, err error) {
	switch template {
	case TemplateSignUp:
		subject = "Confirm your email"
		body = fmt.Sprintf(
			"Welcome! Confirm your email address by opening the link below.\n\n%s/confirm-email/%s\n",
			m.frontendURL, data["hash"],
		)
	case TemplateForgotPassword:
		subject = "Reset your password"
		body = fmt.Sprintf(
			"A password reset was requested for your account. Open the link below to choose a new password.\n\n%s/password-change/%s\n\nIf you did not request this, ignore this email.\n",
			m.frontendURL, data["hash"],
		)
	default:
		return "", "", fmt.Errorf("mail: unknown template %q", template)
	}
	return subject, body, nil
}

func buildMessage(from, fromName, to, subject, body string) string {
	fromHeader := from
	if strings.TrimSpace(fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", fromName, from)
	}

	headers := []string{
		"From: " + fromHeader,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	}

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}
