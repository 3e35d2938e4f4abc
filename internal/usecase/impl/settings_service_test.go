package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	cache        *mockService.MockCacheStore
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	cache := mockService.NewMockCacheStore(t)
	service := NewSettingsService(settingsRepo, cache, newTestConfig(), newDiscardLogger())

	return settingsServiceFixtures{
		service:      service,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

func TestSettingsService_GetSettings_UnknownScope(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	payload, err := fx.service.GetSettings(ctx, "loyalty")

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsScopeInvalid))
}

func TestSettingsService_GetSettings_NeverWrittenReturnsDefaults(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.cache.EXPECT().GetJSON(ctx, "settings:tax", mock.AnythingOfType("*json.RawMessage")).Return(false, nil)
	fx.settingsRepo.EXPECT().FindByScope(ctx, "tax").Return(nil, repository.ErrSettingsNotFound)

	payload, err := fx.service.GetSettings(ctx, "tax")

	require.NoError(t, err)
	assert.JSONEq(t, `{"inclusive":false,"rates":[]}`, string(payload))
}

func TestSettingsService_GetSettings_StoredDocument(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	stored := []byte(`{"margin_percent":30,"round_to_cents":50}`)

	fx.cache.EXPECT().GetJSON(ctx, "settings:pricing", mock.AnythingOfType("*json.RawMessage")).Return(false, nil)
	fx.settingsRepo.EXPECT().FindByScope(ctx, "pricing").Return(&entity.ShopSettings{
		Scope:   "pricing",
		Payload: stored,
	}, nil)
	fx.cache.EXPECT().SetJSON(ctx, "settings:pricing", json.RawMessage(stored), 5*time.Minute).Return(nil)

	payload, err := fx.service.GetSettings(ctx, "pricing")

	require.NoError(t, err)
	assert.JSONEq(t, string(stored), string(payload))
}

func TestSettingsService_GetSettings_CacheHit(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	cached := json.RawMessage(`{"margin_percent":25,"round_to_cents":0}`)

	fx.cache.EXPECT().
		GetJSON(ctx, "settings:pricing", mock.AnythingOfType("*json.RawMessage")).
		RunAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
			*dest.(*json.RawMessage) = cached

			return true, nil
		})

	payload, err := fx.service.GetSettings(ctx, "pricing")

	require.NoError(t, err)
	assert.JSONEq(t, string(cached), string(payload))
	fx.settingsRepo.AssertNotCalled(t, "FindByScope")
}

func TestSettingsService_UpdateSettings_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"margin_percent":35,"round_to_cents":100}`),
	}

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ShopSettings")).
		Run(func(ctx context.Context, settings *entity.ShopSettings) {
			assert.Equal(t, "pricing", settings.Scope)
			assert.JSONEq(t, `{"margin_percent":35,"round_to_cents":100}`, string(settings.Payload))
		}).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, "settings:pricing").Return(nil)

	payload, err := fx.service.UpdateSettings(ctx, "pricing", input)

	require.NoError(t, err)
	assert.JSONEq(t, `{"margin_percent":35,"round_to_cents":100}`, string(payload))
}

// Unknown fields are dropped during canonicalization, never persisted.
func TestSettingsService_UpdateSettings_DropsUnknownFields(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"margin_percent":10,"round_to_cents":0,"surprise":true}`),
	}

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ShopSettings")).
		Run(func(ctx context.Context, settings *entity.ShopSettings) {
			assert.NotContains(t, string(settings.Payload), "surprise")
		}).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, "settings:pricing").Return(nil)

	payload, err := fx.service.UpdateSettings(ctx, "pricing", input)

	require.NoError(t, err)
	assert.NotContains(t, string(payload), "surprise")
}

func TestSettingsService_UpdateSettings_UnknownScope(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{}`),
	}

	payload, err := fx.service.UpdateSettings(ctx, "loyalty", input)

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsScopeInvalid))
}

func TestSettingsService_UpdateSettings_MalformedPayload(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"margin_percent":`),
	}

	payload, err := fx.service.UpdateSettings(ctx, "pricing", input)

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSettingsService_UpdateSettings_OutOfRangeValue(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"margin_percent":250,"round_to_cents":0}`),
	}

	payload, err := fx.service.UpdateSettings(ctx, "pricing", input)

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSettingsService_UpdateSettings_ShippingMethodMissingCode(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"methods":[{"label":"Standard","price_cents":500,"estimated_days":5}]}`),
	}

	payload, err := fx.service.UpdateSettings(ctx, "shipping", input)

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSettingsService_UpdateSettings_UpsertError(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"inclusive":true,"rates":[{"country":"TW","percent":5}]}`),
	}

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ShopSettings")).
		Return(errors.New("db error"))

	payload, err := fx.service.UpdateSettings(ctx, "tax", input)

	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.Contains(t, err.Error(), "failed to upsert settings")
}

// A broken cache delete is logged but never fails the write.
func TestSettingsService_UpdateSettings_CacheDeleteFailureIgnored(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	input := &usecase.UpdateSettingsInput{
		Payload: json.RawMessage(`{"inclusive":false,"rates":[]}`),
	}

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ShopSettings")).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, "settings:tax").Return(errors.New("redis down"))

	payload, err := fx.service.UpdateSettings(ctx, "tax", input)

	require.NoError(t, err)
	assert.JSONEq(t, `{"inclusive":false,"rates":[]}`, string(payload))
}
