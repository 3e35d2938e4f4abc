package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// designRepository implements the domain.DesignRepository interface.
type designRepository struct {
	db *gorm.DB
}

// NewDesignRepository is the constructor for designRepository.
// This function will be used as an Fx provider.
func NewDesignRepository(db *gorm.DB) repository.DesignRepository {
	return &designRepository{db: db}
}

// ListDesigns returns one page of designs plus the total match count.
func (repo *designRepository) ListDesigns(ctx context.Context, query *repository.DesignQuery) ([]*entity.Design, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.DesignModel{})

	if query.Artist != nil {
		tx = tx.Where("artist = ?", *query.Artist)
	}
	if query.Tag != nil {
		// jsonb containment on the tags array
		tx = tx.Where("tags @> ?", datatypes.JSON(mustMarshalTag(*query.Tag)))
	}
	if query.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count designs")
	}

	var designModels []*model.DesignModel
	err := tx.Order("created_at DESC").
		Offset((query.Page - 1) * query.PerPage).
		Limit(query.PerPage).
		Find(&designModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list designs")
	}

	designs := make([]*entity.Design, 0, len(designModels))
	for _, designM := range designModels {
		design, err := toDesignDomain(designM)
		if err != nil {
			return nil, 0, err
		}
		designs = append(designs, design)
	}

	return designs, total, nil
}

// FindDesignByID retrieves a design by its unique ID.
func (repo *designRepository) FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.Design, error) {
	var designM model.DesignModel
	err := repo.db.WithContext(ctx).First(&designM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to find design by ID")
	}

	return toDesignDomain(&designM)
}

func mustMarshalTag(tag string) []byte {
	// A single string is always marshalable; the error path is unreachable.
	payload, _ := json.Marshal([]string{tag})

	return payload
}

// --- Mapper Functions ---

// toDesignDomain converts a GORM DesignModel to a domain Design entity.
func toDesignDomain(data *model.DesignModel) (*entity.Design, error) {
	if data == nil {
		return nil, nil
	}

	var tags []string
	if len(data.Tags) > 0 {
		if err := json.Unmarshal(data.Tags, &tags); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal design tags")
		}
	}

	return &entity.Design{
		ID:         data.ID,
		Title:      data.Title,
		Artist:     data.Artist,
		PreviewURL: data.PreviewURL,
		Tags:       tags,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
