// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase defines the interface for address-book business operations.
// At most one address per user carries the default flag; the implementations
// enforce this inside a single transaction.
type AddressUsecase interface {
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddAddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}

// --- Input DTOs ---

// AddAddressInput defines the data required to create an address.
type AddAddressInput struct {
	AddressType   string `json:"address_type"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateAddressInput defines a partial address update. Nil fields are left
// untouched; IsDefault distinguishes "not sent" (nil) from "clear" (false).
type UpdateAddressInput struct {
	AddressType   *string `json:"address_type,omitempty"`
	StreetAddress *string `json:"street_address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Country       *string `json:"country,omitempty"`
	IsDefault     *bool   `json:"is_default,omitempty"`
}
