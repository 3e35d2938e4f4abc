package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	cache        service.CacheStore
	validate     *validator.Validate
	cfg          *config.Config
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	cache service.CacheStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
		validate:     validator.New(),
		cfg:          cfg,
		logger:       logger,
	}
}

// GetSettings returns the document for one scope. A scope that has never
// been written reads back as its built-in defaults instead of a 404.
func (srv *settingsService) GetSettings(ctx context.Context, scope string) (json.RawMessage, error) {
	if !entity.ValidSettingsScope(scope) {
		return nil, errors.Wrap(domainerrors.ErrSettingsScopeInvalid, "unknown settings scope")
	}

	cacheKey := "settings:" + scope

	var cached json.RawMessage
	hit, err := srv.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		srv.logger.Warn("Cache read failed", "key", cacheKey, "error", err)
	}
	if hit {
		return cached, nil
	}

	settings, err := srv.settingsRepo.FindByScope(ctx, scope)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return defaultSettingsPayload(scope)
		}

		return nil, errors.Wrap(err, "failed to find settings")
	}

	payload := json.RawMessage(settings.Payload)
	if err := srv.cache.SetJSON(ctx, cacheKey, payload, srv.cfg.Redis.CacheTTL); err != nil {
		srv.logger.Warn("Cache write failed", "key", cacheKey, "error", err)
	}

	return payload, nil
}

// UpdateSettings replaces the whole document for one scope. The payload is
// checked against the scope's typed shape before it is stored, and the
// cached copy is dropped so the next read sees the new document.
func (srv *settingsService) UpdateSettings(ctx context.Context, scope string, input *usecase.UpdateSettingsInput) (json.RawMessage, error) {
	if !entity.ValidSettingsScope(scope) {
		return nil, errors.Wrap(domainerrors.ErrSettingsScopeInvalid, "unknown settings scope")
	}

	canonical, err := srv.validatePayload(scope, input.Payload)
	if err != nil {
		return nil, err
	}

	settings := &entity.ShopSettings{
		Scope:     scope,
		Payload:   canonical,
		UpdatedAt: time.Now().UTC(),
	}
	if err := srv.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to upsert settings")
	}

	cacheKey := "settings:" + scope
	if err := srv.cache.Delete(ctx, cacheKey); err != nil {
		srv.logger.Warn("Cache invalidation failed", "key", cacheKey, "error", err)
	}

	srv.logger.Info("Settings updated", "scope", scope)

	return json.RawMessage(canonical), nil
}

// validatePayload parses the payload into the scope's typed view, validates
// it and re-marshals the canonical form so unknown fields never persist.
func (srv *settingsService) validatePayload(scope string, payload json.RawMessage) ([]byte, error) {
	var doc any
	switch scope {
	case entity.SettingsScopePricing:
		doc = &entity.PricingSettings{}
	case entity.SettingsScopeTax:
		doc = &entity.TaxSettings{}
	case entity.SettingsScopeShipping:
		doc = &entity.ShippingSettings{}
	}

	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed settings payload")
	}

	if err := srv.validate.Struct(doc); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal settings payload")
	}

	return canonical, nil
}

// defaultSettingsPayload builds the built-in document for a never-written scope.
func defaultSettingsPayload(scope string) (json.RawMessage, error) {
	var doc any
	switch scope {
	case entity.SettingsScopePricing:
		doc = entity.PricingSettings{}
	case entity.SettingsScopeTax:
		doc = entity.TaxSettings{Rates: []entity.TaxRate{}}
	case entity.SettingsScopeShipping:
		doc = entity.ShippingSettings{Methods: []entity.ShippingMethod{}}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal default settings")
	}

	return payload, nil
}
