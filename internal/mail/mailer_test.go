package mail

import (
	"strings"
	"testing"

	"github.com/lunahq/accounts-api/internal/config"
)

func testMailer() *SMTPMailer {
	return NewSMTPMailer(&config.Config{
		SMTPHost:     "localhost",
		SMTPPort:     1025,
		MailFrom:     "no-reply@example.com",
		MailFromName: "Accounts",
		FrontendURL:  "https://app.example.com/",
	})
}

func TestRenderSignUp(t *testing.T) {
	m := testMailer()
	subject, body, err := m.render(TemplateSignUp, map[string]string{"hash": "abc123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Confirm your email" {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "https://app.example.com/confirm-email/abc123") {
		t.Errorf("confirmation link missing from body:\n%s", body)
	}
}

func TestRenderForgotPassword(t *testing.T) {
	m := testMailer()
	subject, body, err := m.render(TemplateForgotPassword, map[string]string{"hash": "abc123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Reset your password" {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "https://app.example.com/password-change/abc123") {
		t.Errorf("reset link missing from body:\n%s", body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	m := testMailer()
	if _, _, err := m.render("newsletter", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("no-reply@example.com", "Accounts", "a@x.com", "Hello", "body text")
	for _, want := range []string{
		"From: Accounts <no-reply@example.com>",
		"To: a@x.com",
		"Subject: Hello",
		`Content-Type: text/plain; charset="UTF-8"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("header %q missing from message:\n%s", want, msg)
		}
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody text") {
		t.Errorf("body not separated from headers:\n%s", msg)
	}
}

func TestBuildMessage_NoFromName(t *testing.T) {
	msg := buildMessage("no-reply@example.com", "", "a@x.com", "Hello", "x")
	if !strings.Contains(msg, "From: no-reply@example.com\r\n") {
		t.Errorf("expected bare from address:\n%s", msg)
	}
}
