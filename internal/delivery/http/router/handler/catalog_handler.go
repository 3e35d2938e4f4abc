package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles GET /catalog/products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Category:   optionalQueryParam(c, "category"),
		Search:     optionalQueryParam(c, "search"),
		ActiveOnly: c.QueryParam("active") != "false",
		SortBy:     c.QueryParam("sort_by"),
		SortDesc:   c.QueryParam("sort_dir") == "desc",
	}

	minPrice, err := optionalInt64QueryParam(c, "min_price_cents")
	if err != nil {
		return err
	}
	input.MinPriceCents = minPrice

	maxPrice, err := optionalInt64QueryParam(c, "max_price_cents")
	if err != nil {
		return err
	}
	input.MaxPriceCents = maxPrice

	input.Page, input.PerPage, err = parsePaging(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetProduct handles GET /catalog/products/:productId.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListDesigns handles GET /catalog/designs.
func (h *CatalogHandler) ListDesigns(c echo.Context) error {
	input := &usecase.ListDesignsInput{
		Artist:     optionalQueryParam(c, "artist"),
		Tag:        optionalQueryParam(c, "tag"),
		ActiveOnly: c.QueryParam("active") != "false",
	}

	var err error
	input.Page, input.PerPage, err = parsePaging(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListDesigns(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetDesign handles GET /catalog/designs/:designId.
func (h *CatalogHandler) GetDesign(c echo.Context) error {
	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid design ID")
	}

	design, err := h.uc.GetDesign(c.Request().Context(), designID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, design, "")
}

// optionalQueryParam returns nil for an absent or empty query parameter.
func optionalQueryParam(c echo.Context, name string) *string {
	value := c.QueryParam(name)
	if value == "" {
		return nil
	}

	return &value
}

func optionalInt64QueryParam(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &value, nil
}

// parsePaging reads page/per_page query parameters. Values out of range are
// clamped downstream, only non-numeric input is rejected here.
func parsePaging(c echo.Context) (page, perPage int, err error) {
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerrors.ErrValidationFailed.WithDetails("invalid page")
		}
	}

	if raw := c.QueryParam("per_page"); raw != "" {
		perPage, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerrors.ErrValidationFailed.WithDetails("invalid per_page")
		}
	}

	return page, perPage, nil
}
