package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for catalog browsing operations.
// Reads go through a best-effort cache; the database stays authoritative.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListDesigns(ctx context.Context, input *ListDesignsInput) (*DesignPage, error)
	GetDesign(ctx context.Context, designID uuid.UUID) (*entity.Design, error)
}

// --- Input DTOs ---

// ListProductsInput defines the filter, sort and paging parameters for
// product listing. Out-of-range paging values are clamped, not rejected.
type ListProductsInput struct {
	Category      *string
	Search        *string
	MinPriceCents *int64
	MaxPriceCents *int64
	ActiveOnly    bool

	SortBy   string
	SortDesc bool

	Page    int
	PerPage int
}

// ListDesignsInput defines the filter and paging parameters for design listing.
type ListDesignsInput struct {
	Artist     *string
	Tag        *string
	ActiveOnly bool

	Page    int
	PerPage int
}

// --- Output DTOs ---

// Pagination describes one page of a listing result.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalCount int64 `json:"total_count"`
}

// ProductPage is one page of products plus paging metadata.
type ProductPage struct {
	Items      []*entity.Product `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// DesignPage is one page of designs plus paging metadata.
type DesignPage struct {
	Items      []*entity.Design `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
