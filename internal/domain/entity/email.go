package entity

import (
	"time"

	"github.com/google/uuid"
)

// Email delivery statuses.
const (
	EmailStatusQueued = "queued"
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// Transactional email template names.
const (
	EmailTemplateWelcome           = "welcome"
	EmailTemplateOrderConfirmation = "order_confirmation"
	EmailTemplateShippingUpdate    = "shipping_update"
)

// EmailMessage is the persisted log entry for one transactional email.
type EmailMessage struct {
	ID        uuid.UUID  `json:"id"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Template  string     `json:"template"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}
