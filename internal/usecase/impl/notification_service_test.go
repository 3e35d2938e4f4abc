package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification
// service tests.
type notificationServiceFixtures struct {
	t         *testing.T
	service   usecase.NotificationUsecase
	txManager *mockRepo.MockTransactionManager
	mailer    *mockService.MockMailer
	renderer  *mockService.MockTemplateRenderer
	publisher *mockService.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mailer := mockService.NewMockMailer(t)
	renderer := mockService.NewMockTemplateRenderer(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewNotificationService(txManager, mailer, renderer, publisher, newTestConfig(), newDiscardLogger())

	return notificationServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		mailer:    mailer,
		renderer:  renderer,
		publisher: publisher,
	}
}

// expectEmailRepo routes every transaction to the same email repository mock,
// so the queued insert and the outcome update land on one set of expectations.
func (f notificationServiceFixtures) expectEmailRepo(ctx context.Context, times int) *mockRepo.MockEmailMessageRepository {
	emailRepo := mockRepo.NewMockEmailMessageRepository(f.t)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			factory.EXPECT().EmailRepo().Return(emailRepo)

			return fn(factory)
		}).
		Times(times)

	return emailRepo
}

func TestNotificationService_SendEmail_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.SendEmailInput{
		Recipient: "buyer@example.com",
		Template:  entity.EmailTemplateWelcome,
		Data:      map[string]any{"first_name": "Mei"},
	}

	fx.renderer.EXPECT().
		Render(entity.EmailTemplateWelcome, input.Data).
		Return("Welcome aboard", "<p>Hello Mei</p>", nil)

	emailRepo := fx.expectEmailRepo(ctx, 2)
	emailRepo.EXPECT().
		CreateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).
		RunAndReturn(func(ctx context.Context, message *entity.EmailMessage) error {
			assert.Equal(t, entity.EmailStatusQueued, message.Status)
			message.ID = uuid.New()

			return nil
		}).
		Once()
	emailRepo.EXPECT().
		UpdateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).
		Run(func(ctx context.Context, message *entity.EmailMessage) {
			assert.Equal(t, entity.EmailStatusSent, message.Status)
			assert.NotNil(t, message.SentAt)
		}).
		Return(nil).
		Once()

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(ctx context.Context, mail *service.Mail) {
			assert.Equal(t, "buyer@example.com", mail.To)
			assert.Equal(t, "Welcome aboard", mail.Subject)
			assert.Equal(t, "<p>Hello Mei</p>", mail.HTMLBody)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.AnythingOfType("*service.EmailEvent")).
		Run(func(ctx context.Context, event *service.EmailEvent) {
			assert.Equal(t, entity.EmailStatusSent, event.Status)
			assert.Equal(t, entity.EmailTemplateWelcome, event.Template)
			assert.Equal(t, "buyer@example.com", event.Recipient)
		}).
		Return(nil)

	message, err := fx.service.SendEmail(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.EmailStatusSent, message.Status)
	assert.NotNil(t, message.SentAt)
}

func TestNotificationService_SendEmail_DeliveryFailureLeavesFailedRow(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.SendEmailInput{
		Recipient: "buyer@example.com",
		Template:  entity.EmailTemplateOrderConfirmation,
		Data:      map[string]any{"order_number": "SO-1042"},
	}

	fx.renderer.EXPECT().
		Render(entity.EmailTemplateOrderConfirmation, input.Data).
		Return("Order SO-1042", "<p>Thanks</p>", nil)

	emailRepo := fx.expectEmailRepo(ctx, 2)
	emailRepo.EXPECT().
		CreateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).
		Return(nil).
		Once()
	emailRepo.EXPECT().
		UpdateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).
		Run(func(ctx context.Context, message *entity.EmailMessage) {
			assert.Equal(t, entity.EmailStatusFailed, message.Status)
			assert.Contains(t, message.Error, "connection refused")
			assert.Nil(t, message.SentAt)
		}).
		Return(nil).
		Once()

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("dial tcp: connection refused"))

	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.AnythingOfType("*service.EmailEvent")).
		Run(func(ctx context.Context, event *service.EmailEvent) {
			assert.Equal(t, entity.EmailStatusFailed, event.Status)
		}).
		Return(nil)

	message, err := fx.service.SendEmail(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailDeliveryFailed))
}

func TestNotificationService_SendEmail_UnknownTemplate(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.SendEmailInput{
		Recipient: "buyer@example.com",
		Template:  "password_reset",
	}

	fx.renderer.EXPECT().
		Render("password_reset", mock.Anything).
		Return("", "", domainerrors.ErrEmailTemplateUnknown.WithDetails("template: password_reset"))

	message, err := fx.service.SendEmail(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, message)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "EMAIL_TEMPLATE_UNKNOWN", appErr.ErrorCode())
	// Nothing is logged or sent for a template that cannot render.
	fx.mailer.AssertNotCalled(t, "Send")
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestNotificationService_SendEmail_LogWriteFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.SendEmailInput{
		Recipient: "buyer@example.com",
		Template:  entity.EmailTemplateWelcome,
	}

	fx.renderer.EXPECT().
		Render(entity.EmailTemplateWelcome, mock.Anything).
		Return("Welcome aboard", "<p>Hello</p>", nil)

	emailRepo := fx.expectEmailRepo(ctx, 1)
	emailRepo.EXPECT().
		CreateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).
		Return(errors.New("db error")).
		Once()

	message, err := fx.service.SendEmail(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.Contains(t, err.Error(), "failed to log email attempt")
	// The SMTP call never happens without a queued row.
	fx.mailer.AssertNotCalled(t, "Send")
}

// A broker outage is logged, never surfaced to the caller.
func TestNotificationService_SendEmail_PublishFailureIgnored(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.SendEmailInput{
		Recipient: "buyer@example.com",
		Template:  entity.EmailTemplateShippingUpdate,
		Data:      map[string]any{"tracking_number": "TW123", "carrier": "Chunghwa Post"},
	}

	fx.renderer.EXPECT().
		Render(entity.EmailTemplateShippingUpdate, input.Data).
		Return("Your order shipped", "<p>On the way</p>", nil)

	emailRepo := fx.expectEmailRepo(ctx, 2)
	emailRepo.EXPECT().CreateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).Return(nil).Once()
	emailRepo.EXPECT().UpdateEmailMessage(ctx, mock.AnythingOfType("*entity.EmailMessage")).Return(nil).Once()

	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).Return(nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.AnythingOfType("*service.EmailEvent")).
		Return(errors.New("broker unavailable"))

	message, err := fx.service.SendEmail(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.EmailStatusSent, message.Status)
}

func TestNotificationService_ListEmailLog_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.ListEmailLogInput{
		Recipient: "buyer@example.com",
		Page:      1,
		PerPage:   10,
	}

	expected := []*entity.EmailMessage{
		{ID: uuid.New(), Recipient: "buyer@example.com", Status: entity.EmailStatusSent},
		{ID: uuid.New(), Recipient: "buyer@example.com", Status: entity.EmailStatusFailed},
	}

	emailRepo := fx.expectEmailRepo(ctx, 1)
	emailRepo.EXPECT().
		ListEmailMessagesByRecipient(ctx, "buyer@example.com", 1, 10).
		Return(expected, int64(2), nil)

	page, err := fx.service.ListEmailLog(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expected, page.Items)
	assert.Equal(t, int64(2), page.Pagination.TotalCount)
}

func TestNotificationService_ListEmailLog_ClampsPaging(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.ListEmailLogInput{
		Recipient: "buyer@example.com",
		Page:      0,
		PerPage:   9999,
	}

	emailRepo := fx.expectEmailRepo(ctx, 1)
	emailRepo.EXPECT().
		ListEmailMessagesByRecipient(ctx, "buyer@example.com", 1, 100).
		Return([]*entity.EmailMessage{}, int64(0), nil)

	page, err := fx.service.ListEmailLog(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 100, page.Pagination.PerPage)
}

func TestNotificationService_ListEmailLog_RepoError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.ListEmailLogInput{
		Recipient: "buyer@example.com",
	}

	emailRepo := fx.expectEmailRepo(ctx, 1)
	emailRepo.EXPECT().
		ListEmailMessagesByRecipient(ctx, "buyer@example.com", 1, 20).
		Return(nil, int64(0), errors.New("db error"))

	page, err := fx.service.ListEmailLog(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "failed to list email log")
}
