package service

import "context"

// EmailEvent is published after every transactional email attempt so
// downstream consumers (analytics, retry workers) can observe outcomes.
type EmailEvent struct {
	MessageID string `json:"message_id"`
	Recipient string `json:"recipient"`
	Template  string `json:"template"`
	Status    string `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// PublishEmailEvent publishes one email outcome event.
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases publisher resources.
	Close() error
}
