package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
// This function will be used as an Fx provider.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindByScope retrieves the settings document for one scope.
func (repo *settingsRepository) FindByScope(ctx context.Context, scope string) (*entity.ShopSettings, error) {
	var settingsM model.ShopSettingsModel
	err := repo.db.WithContext(ctx).First(&settingsM, "scope = ?", scope).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings by scope")
	}

	return toSettingsDomain(&settingsM), nil
}

// Upsert creates or replaces the settings document for its scope.
func (repo *settingsRepository) Upsert(ctx context.Context, settings *entity.ShopSettings) error {
	settingsM := fromSettingsDomain(settings)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(settingsM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM ShopSettingsModel to a domain ShopSettings entity.
func toSettingsDomain(data *model.ShopSettingsModel) *entity.ShopSettings {
	if data == nil {
		return nil
	}

	return &entity.ShopSettings{
		Scope:     data.Scope,
		Payload:   []byte(data.Payload),
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSettingsDomain converts a domain ShopSettings entity to a GORM ShopSettingsModel.
func fromSettingsDomain(data *entity.ShopSettings) *model.ShopSettingsModel {
	if data == nil {
		return nil
	}

	return &model.ShopSettingsModel{
		Scope:     data.Scope,
		Payload:   datatypes.JSON(data.Payload),
		UpdatedAt: data.UpdatedAt,
	}
}
