package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrEmailMessageNotFound is returned when an email log entry is not found.
var ErrEmailMessageNotFound = errors.New("email message not found")

// EmailMessageRepository defines access to the transactional email log.
type EmailMessageRepository interface {
	// CreateEmailMessage persists a new email log entry.
	CreateEmailMessage(ctx context.Context, message *entity.EmailMessage) error

	// UpdateEmailMessage persists the delivery outcome of an entry.
	UpdateEmailMessage(ctx context.Context, message *entity.EmailMessage) error

	// ListEmailMessagesByRecipient returns one page of log entries for a
	// recipient, newest first, plus the total match count.
	ListEmailMessagesByRecipient(ctx context.Context, recipient string, page, perPage int) ([]*entity.EmailMessage, int64, error)
}
