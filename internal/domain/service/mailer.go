// Package service defines interfaces for infrastructure collaborators
// consumed by the use case layer.
package service

import "context"

// Mail is one outgoing message handed to the transport.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer defines the interface for the outgoing mail transport.
type Mailer interface {
	// Send delivers one message. The call blocks until the transport
	// accepts or rejects the message.
	Send(ctx context.Context, mail *Mail) error
}

// TemplateRenderer renders a named email template into a subject and an
// HTML body.
type TemplateRenderer interface {
	Render(name string, data map[string]any) (subject, htmlBody string, err error)
}
