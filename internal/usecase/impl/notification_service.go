package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliveryctx "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager repository.TransactionManager
	mailer    service.Mailer
	renderer  service.TemplateRenderer
	publisher service.EventPublisher
	cfg       *config.Config
	logger    *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	txManager repository.TransactionManager,
	mailer service.Mailer,
	renderer service.TemplateRenderer,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		mailer:    mailer,
		renderer:  renderer,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// SendEmail renders the template, logs a queued entry, attempts delivery and
// records the outcome. Every attempt leaves a log row; a transport failure
// still returns an error to the caller after the row is marked failed.
func (srv *notificationService) SendEmail(ctx context.Context, input *usecase.SendEmailInput) (*entity.EmailMessage, error) {
	subject, htmlBody, err := srv.renderer.Render(input.Template, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render email template")
	}

	message := &entity.EmailMessage{
		Recipient: input.Recipient,
		Subject:   subject,
		Template:  input.Template,
		Status:    entity.EmailStatusQueued,
	}

	// The queued row is committed before the SMTP call so a crash mid-send
	// still leaves a trace of the attempt.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EmailRepo().CreateEmailMessage(ctx, message)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log email attempt")
	}

	sendErr := srv.mailer.Send(ctx, &service.Mail{
		To:       input.Recipient,
		Subject:  subject,
		HTMLBody: htmlBody,
	})

	if sendErr != nil {
		message.Status = entity.EmailStatusFailed
		message.Error = sendErr.Error()
		srv.logger.Error("Email delivery failed",
			"messageID", message.ID,
			"template", input.Template,
			"error", sendErr,
		)
	} else {
		now := time.Now().UTC()
		message.Status = entity.EmailStatusSent
		message.SentAt = &now
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EmailRepo().UpdateEmailMessage(ctx, message)
	})
	if err != nil {
		// The delivery outcome is already known; losing the status update
		// must not mask it.
		srv.logger.Error("Failed to record email outcome", "messageID", message.ID, "error", err)
	}

	srv.publishOutcome(ctx, message)

	if sendErr != nil {
		return nil, errors.Wrap(domainerrors.ErrEmailDeliveryFailed, sendErr.Error())
	}

	return message, nil
}

// ListEmailLog returns one page of log entries for a recipient, newest first.
func (srv *notificationService) ListEmailLog(ctx context.Context, input *usecase.ListEmailLogInput) (*usecase.EmailLogPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = srv.cfg.Catalog.DefaultPerPage
	}
	if perPage > srv.cfg.Catalog.MaxPerPage {
		perPage = srv.cfg.Catalog.MaxPerPage
	}

	var messages []*entity.EmailMessage
	var total int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.EmailRepo().ListEmailMessagesByRecipient(ctx, input.Recipient, page, perPage)
		if err != nil {
			return errors.Wrap(err, "failed to list email log entries")
		}
		messages = found
		total = count

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list email log")
	}

	return &usecase.EmailLogPage{
		Items: messages,
		Pagination: usecase.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalCount: total,
		},
	}, nil
}

// publishOutcome emits the email event best-effort; a broker failure is
// logged and never surfaced to the sender.
func (srv *notificationService) publishOutcome(ctx context.Context, message *entity.EmailMessage) {
	event := &service.EmailEvent{
		MessageID: message.ID.String(),
		Recipient: message.Recipient,
		Template:  message.Template,
		Status:    message.Status,
		RequestID: deliveryctx.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishEmailEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish email event", "messageID", message.ID, "error", err)
	}
}
