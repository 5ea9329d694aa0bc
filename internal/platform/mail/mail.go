// Package mail provides outbound email delivery for notification events.
package mail

import "context"

// Sender delivers one email message to one recipient.
type Sender interface {
	Send(ctx context.Context, message Message) error
}

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}
