package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDesignNotFound is returned when a design is not found.
	ErrDesignNotFound = errors.New("design not found")
)

// Product sort keys accepted by ListProducts. Anything else falls back to
// ProductSortCreatedAt.
const (
	ProductSortCreatedAt = "created_at"
	ProductSortPrice     = "price_cents"
	ProductSortName      = "name"
)

// ProductQuery carries the filter, sort and paging parameters for product
// listing. Filtering, sorting and pagination are delegated to the database.
type ProductQuery struct {
	Category      *string
	Search        *string // matched against name, case-insensitive
	MinPriceCents *int64
	MaxPriceCents *int64
	ActiveOnly    bool

	SortBy   string
	SortDesc bool

	Page    int // 1-based
	PerPage int
}

// DesignQuery carries the filter and paging parameters for design listing.
type DesignQuery struct {
	Artist     *string
	Tag        *string
	ActiveOnly bool

	Page    int // 1-based
	PerPage int
}

// ProductRepository defines read access to the product catalog.
type ProductRepository interface {
	// ListProducts returns one page of products plus the total match count.
	ListProducts(ctx context.Context, query *ProductQuery) ([]*entity.Product, int64, error)

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// DesignRepository defines read access to the design catalog.
type DesignRepository interface {
	// ListDesigns returns one page of designs plus the total match count.
	ListDesigns(ctx context.Context, query *DesignQuery) ([]*entity.Design, int64, error)

	// FindDesignByID retrieves a design by its unique ID.
	FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.Design, error)
}
