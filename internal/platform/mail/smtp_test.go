package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
)

func TestNewSMTPSenderRequiresHostAndFrom(t *testing.T) {
	t.Parallel()

	if _, err := NewSMTPSender(SMTPConfig{From: "no-reply@example.org"}); err == nil {
		t.Fatal("expected missing host error")
	}
	if _, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.org"}); err == nil {
		t.Fatal("expected missing from error")
	}
}

func TestSendUsesRelayAndEncodesMessage(t *testing.T) {
	t.Parallel()

	sender, err := NewSMTPSender(SMTPConfig{
		Host: "smtp.example.org",
		Port: 2525,
		From: "no-reply@example.org",
	})
	if err != nil {
		t.Fatalf("new smtp sender: %v", err)
	}

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	sender.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = msg
		if from != "no-reply@example.org" {
			t.Fatalf("unexpected from address %q", from)
		}
		return nil
	}

	err = sender.Send(context.Background(), Message{
		To:       "leader@example.org",
		Subject:  "New ministry task\r\nassigned",
		HTMLBody: "<p>Prepare slides</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotAddr != "smtp.example.org:2525" {
		t.Fatalf("unexpected relay address %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "leader@example.org" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	payload := string(gotMsg)
	if !strings.Contains(payload, "Subject: New ministry task assigned\r\n") {
		t.Fatalf("expected sanitized subject header, got %q", payload)
	}
	if !strings.Contains(payload, "<p>Prepare slides</p>") {
		t.Fatalf("expected html body in payload, got %q", payload)
	}
}

func TestSanitizeHeaderCollapsesInjectedBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"crlf pair", "New ministry task\r\nassigned", "New ministry task assigned"},
		{"bare newline", "roster\nupdated", "roster updated"},
		{"bare carriage return", "roster\rupdated", "roster updated"},
		{"surrounding whitespace", "  weekly digest \r\n", "weekly digest"},
		{"clean subject", "weekly digest", "weekly digest"},
	}
	for _, tc := range tests {
		if got := sanitizeHeader(tc.value); got != tc.want {
			t.Fatalf("%s: sanitizeHeader(%q) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	t.Parallel()

	sender, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.org", From: "no-reply@example.org"})
	if err != nil {
		t.Fatalf("new smtp sender: %v", err)
	}
	if err := sender.Send(context.Background(), Message{Subject: "hi"}); err == nil {
		t.Fatal("expected missing recipient error")
	}
}
