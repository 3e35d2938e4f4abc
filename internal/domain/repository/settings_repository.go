package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingsNotFound is returned when no document exists for a scope.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines access to the per-scope settings documents.
type SettingsRepository interface {
	// FindByScope retrieves the settings document for one scope.
	// Returns ErrSettingsNotFound if the scope has never been written.
	FindByScope(ctx context.Context, scope string) (*entity.ShopSettings, error)

	// Upsert creates or replaces the settings document for its scope.
	Upsert(ctx context.Context, settings *entity.ShopSettings) error
}
