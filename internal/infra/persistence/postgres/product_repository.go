package postgres

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// This function will be used as an Fx provider.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts returns one page of products plus the total match count.
// Filtering, sorting and pagination all happen in the database.
func (repo *productRepository) ListProducts(ctx context.Context, query *repository.ProductQuery) ([]*entity.Product, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.Category != nil {
		tx = tx.Where("category = ?", *query.Category)
	}
	if query.Search != nil {
		tx = tx.Where("name ILIKE ?", "%"+*query.Search+"%")
	}
	if query.MinPriceCents != nil {
		tx = tx.Where("price_cents >= ?", *query.MinPriceCents)
	}
	if query.MaxPriceCents != nil {
		tx = tx.Where("price_cents <= ?", *query.MaxPriceCents)
	}
	if query.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}

	// The count runs against the filtered set, before paging.
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	err := tx.Order(productOrderClause(query)).
		Offset((query.Page - 1) * query.PerPage).
		Limit(query.PerPage).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// productOrderClause builds the ORDER BY column from a whitelist so the sort
// key never reaches SQL unvalidated.
func productOrderClause(query *repository.ProductQuery) string {
	column := repository.ProductSortCreatedAt
	switch query.SortBy {
	case repository.ProductSortPrice, repository.ProductSortName, repository.ProductSortCreatedAt:
		column = query.SortBy
	}

	direction := "ASC"
	if query.SortDesc {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Category:    data.Category,
		PriceCents:  data.PriceCents,
		Currency:    data.Currency,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
