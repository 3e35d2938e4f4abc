package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase defines the interface for transactional email operations.
// Every send attempt leaves a log entry regardless of delivery outcome.
type NotificationUsecase interface {
	SendEmail(ctx context.Context, input *SendEmailInput) (*entity.EmailMessage, error)
	ListEmailLog(ctx context.Context, input *ListEmailLogInput) (*EmailLogPage, error)
}

// --- Input DTOs ---

// SendEmailInput defines the data required to send one transactional email.
type SendEmailInput struct {
	Recipient string         `json:"recipient"`
	Template  string         `json:"template"`
	Data      map[string]any `json:"data,omitempty"`
}

// ListEmailLogInput defines the filter and paging parameters for the email log.
type ListEmailLogInput struct {
	Recipient string
	Page      int
	PerPage   int
}

// --- Output DTOs ---

// EmailLogPage is one page of email log entries plus paging metadata.
type EmailLogPage struct {
	Items      []*entity.EmailMessage `json:"items"`
	Pagination Pagination             `json:"pagination"`
}
