package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
// Single-item reads go through the cache; list queries always hit the
// database because their filter space makes keys useless.
type catalogService struct {
	productRepo repository.ProductRepository
	designRepo  repository.DesignRepository
	cache       service.CacheStore
	cfg         *config.Config
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	designRepo repository.DesignRepository,
	cache service.CacheStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		designRepo:  designRepo,
		cache:       cache,
		cfg:         cfg,
		logger:      logger,
	}
}

// ListProducts returns one page of products matching the filters.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page, perPage := srv.clampPaging(input.Page, input.PerPage)

	query := &repository.ProductQuery{
		Category:      input.Category,
		Search:        input.Search,
		MinPriceCents: input.MinPriceCents,
		MaxPriceCents: input.MaxPriceCents,
		ActiveOnly:    input.ActiveOnly,
		SortBy:        input.SortBy,
		SortDesc:      input.SortDesc,
		Page:          page,
		PerPage:       perPage,
	}

	products, total, err := srv.productRepo.ListProducts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items: products,
		Pagination: usecase.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalCount: total,
		},
	}, nil
}

// GetProduct retrieves one product, read-through cached.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	cacheKey := "catalog:product:" + productID.String()

	var cached entity.Product
	if hit := srv.cacheGet(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	srv.cacheSet(ctx, cacheKey, product)

	return product, nil
}

// ListDesigns returns one page of designs matching the filters.
func (srv *catalogService) ListDesigns(ctx context.Context, input *usecase.ListDesignsInput) (*usecase.DesignPage, error) {
	page, perPage := srv.clampPaging(input.Page, input.PerPage)

	query := &repository.DesignQuery{
		Artist:     input.Artist,
		Tag:        input.Tag,
		ActiveOnly: input.ActiveOnly,
		Page:       page,
		PerPage:    perPage,
	}

	designs, total, err := srv.designRepo.ListDesigns(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list designs")
	}

	return &usecase.DesignPage{
		Items: designs,
		Pagination: usecase.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalCount: total,
		},
	}, nil
}

// GetDesign retrieves one design, read-through cached.
func (srv *catalogService) GetDesign(ctx context.Context, designID uuid.UUID) (*entity.Design, error) {
	cacheKey := "catalog:design:" + designID.String()

	var cached entity.Design
	if hit := srv.cacheGet(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	design, err := srv.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repository.ErrDesignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDesignNotFound, "design not found")
		}

		return nil, errors.Wrap(err, "failed to find design")
	}

	srv.cacheSet(ctx, cacheKey, design)

	return design, nil
}

// clampPaging normalizes paging parameters instead of rejecting them.
func (srv *catalogService) clampPaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = srv.cfg.Catalog.DefaultPerPage
	}
	if perPage > srv.cfg.Catalog.MaxPerPage {
		perPage = srv.cfg.Catalog.MaxPerPage
	}

	return page, perPage
}

// cacheGet is best-effort: a cache failure is logged and treated as a miss.
func (srv *catalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	hit, err := srv.cache.GetJSON(ctx, key, dest)
	if err != nil {
		srv.logger.Warn("Cache read failed", "key", key, "error", err)

		return false
	}

	return hit
}

// cacheSet is best-effort: a cache failure is logged, never surfaced.
func (srv *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if err := srv.cache.SetJSON(ctx, key, value, srv.cfg.Redis.CacheTTL); err != nil {
		srv.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}
