package mail

import (
	"strings"
	"testing"
	"time"
)

func TestResetMessage(t *testing.T) {
	msg := ResetMessage("http://localhost:3000", "a@x.com", "abc.def+ghi", 60*time.Minute)

	if msg.To != "a@x.com" {
		t.Fatalf("unexpected recipient: %q", msg.To)
	}
	if msg.Subject == "" {
		t.Fatal("expected a subject")
	}
	if !strings.Contains(msg.HTMLBody, "http://localhost:3000/reset-password?token=abc.def%2Bghi") {
		t.Fatalf("expected URL-encoded token in reset link, got body:\n%s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "60 minutes") {
		t.Fatalf("expected expiry minutes in body, got:\n%s", msg.HTMLBody)
	}
}

func TestSMTPMailerEncode(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "app@example.com"})
	if err != nil {
		t.Fatalf("NewSMTPMailer failed: %v", err)
	}

	raw := string(m.encode(Message{To: "a@x.com", Subject: "Hi", HTMLBody: "<p>hello</p>"}))

	for _, want := range []string{
		"From: app@example.com\r\n",
		"To: a@x.com\r\n",
		"Subject: Hi\r\n",
		"Content-Type: text/html; charset=UTF-8\r\n",
		"Message-ID: <",
		"\r\n\r\n<p>hello</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("encoded message missing %q:\n%s", want, raw)
		}
	}
}

func TestNewSMTPMailerValidation(t *testing.T) {
	if _, err := NewSMTPMailer(SMTPConfig{From: "app@example.com"}); err == nil {
		t.Fatal("expected missing host to be rejected")
	}
	if _, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"}); err == nil {
		t.Fatal("expected missing from address to be rejected")
	}

	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "app@example.com"})
	if err != nil {
		t.Fatalf("NewSMTPMailer failed: %v", err)
	}
	if m.config.Port != 587 {
		t.Fatalf("expected default port 587, got %d", m.config.Port)
	}
}
