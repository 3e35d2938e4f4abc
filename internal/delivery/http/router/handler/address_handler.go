// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAddressRequest is the payload for creating an address.
type CreateAddressRequest struct {
	AddressType   string `json:"address_type" validate:"required,oneof=shipping billing"`
	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required,len=2"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateAddressRequest is the payload for a partial address update.
// Absent fields stay nil and leave the stored value untouched.
type UpdateAddressRequest struct {
	AddressType   *string `json:"address_type" validate:"omitempty,oneof=shipping billing"`
	StreetAddress *string `json:"street_address" validate:"omitempty,min=1"`
	City          *string `json:"city" validate:"omitempty,min=1"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,min=1"`
	Country       *string `json:"country" validate:"omitempty,len=2"`
	IsDefault     *bool   `json:"is_default"`
}

// AddressResponse is the outward view of an address. The owner ID is implied
// by the URL and never echoed back.
type AddressResponse struct {
	ID            uuid.UUID `json:"id"`
	AddressType   string    `json:"address_type"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state,omitempty"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateAddress handles POST /users/:userId/addresses.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddAddress(c.Request().Context(), userID, &usecase.AddAddressInput{
		AddressType:   req.AddressType,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address), "Address created successfully")
}

// ListAddresses handles GET /users/:userId/addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		items = append(items, toAddressResponse(address))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetAddress handles GET /users/:userId/addresses/:addressId.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, addressID, err := parseAddressPath(c)
	if err != nil {
		return err
	}

	address, err := h.uc.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "")
}

// UpdateAddress handles PATCH /users/:userId/addresses/:addressId.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, addressID, err := parseAddressPath(c)
	if err != nil {
		return err
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, &usecase.UpdateAddressInput{
		AddressType:   req.AddressType,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "Address updated successfully")
}

// DeleteAddress handles DELETE /users/:userId/addresses/:addressId.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, addressID, err := parseAddressPath(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseUserID rejects malformed owner IDs before they reach the use case.
func parseUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid user ID")
	}

	return userID, nil
}

func parseAddressPath(c echo.Context) (userID, addressID uuid.UUID, err error) {
	userID, err = parseUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	addressID, err = uuid.Parse(c.Param("addressId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid address ID")
	}

	return userID, addressID, nil
}

func toAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:            address.ID,
		AddressType:   address.AddressType,
		StreetAddress: address.StreetAddress,
		City:          address.City,
		State:         address.State,
		PostalCode:    address.PostalCode,
		Country:       address.Country,
		IsDefault:     address.IsDefault,
		CreatedAt:     address.CreatedAt,
		UpdatedAt:     address.UpdatedAt,
	}
}
