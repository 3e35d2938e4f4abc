package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// emailMessageRepository implements the domain.EmailMessageRepository interface.
type emailMessageRepository struct {
	db *gorm.DB
}

// NewEmailMessageRepository is the constructor for emailMessageRepository.
func NewEmailMessageRepository(db *gorm.DB) repository.EmailMessageRepository {
	return &emailMessageRepository{db: db}
}

// CreateEmailMessage persists a new email log entry.
func (repo *emailMessageRepository) CreateEmailMessage(ctx context.Context, message *entity.EmailMessage) error {
	messageM := fromEmailMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create email log entry")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// UpdateEmailMessage persists the delivery outcome of an entry.
func (repo *emailMessageRepository) UpdateEmailMessage(ctx context.Context, message *entity.EmailMessage) error {
	messageM := fromEmailMessageDomain(message)

	result := repo.db.WithContext(ctx).
		Model(&model.EmailMessageModel{}).
		Where("id = ?", messageM.ID).
		Updates(map[string]any{
			"status":  messageM.Status,
			"error":   messageM.Error,
			"sent_at": messageM.SentAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update email log entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmailMessageNotFound
	}

	return nil
}

// ListEmailMessagesByRecipient returns one page of log entries for a
// recipient, newest first, plus the total match count.
func (repo *emailMessageRepository) ListEmailMessagesByRecipient(ctx context.Context, recipient string, page, perPage int) ([]*entity.EmailMessage, int64, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.EmailMessageModel{}).
		Where("recipient = ?", recipient)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count email log entries")
	}

	var messageModels []*model.EmailMessageModel
	err := tx.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&messageModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list email log entries")
	}

	messages := make([]*entity.EmailMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toEmailMessageDomain(messageM))
	}

	return messages, total, nil
}

// --- Mapper Functions ---

// toEmailMessageDomain converts a GORM EmailMessageModel to a domain EmailMessage entity.
func toEmailMessageDomain(data *model.EmailMessageModel) *entity.EmailMessage {
	if data == nil {
		return nil
	}

	return &entity.EmailMessage{
		ID:        data.ID,
		Recipient: data.Recipient,
		Subject:   data.Subject,
		Template:  data.Template,
		Status:    data.Status,
		Error:     data.Error,
		CreatedAt: data.CreatedAt,
		SentAt:    data.SentAt,
	}
}

// fromEmailMessageDomain converts a domain EmailMessage entity to a GORM EmailMessageModel.
func fromEmailMessageDomain(data *entity.EmailMessage) *model.EmailMessageModel {
	if data == nil {
		return nil
	}

	return &model.EmailMessageModel{
		ID:        data.ID,
		Recipient: data.Recipient,
		Subject:   data.Subject,
		Template:  data.Template,
		Status:    data.Status,
		Error:     data.Error,
		CreatedAt: data.CreatedAt,
		SentAt:    data.SentAt,
	}
}
