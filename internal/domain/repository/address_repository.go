package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found for the
// requested owner. A foreign owner's address is reported the same way so
// callers cannot probe other users' data.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-book database operations.
// Every lookup and mutation is scoped by the owning user.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressesByOwner retrieves all addresses of a user, ordered by
	// creation time ascending. Returns an empty slice for an unknown user.
	FindAddressesByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindAddressByOwnerAndID retrieves one address scoped by (owner, id).
	// Returns ErrAddressNotFound on a miss or an ownership mismatch.
	FindAddressByOwnerAndID(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)

	// UpdateAddress persists an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddressByOwnerAndID removes one address scoped by (owner, id).
	// Returns ErrAddressNotFound if no row was deleted.
	DeleteAddressByOwnerAndID(ctx context.Context, userID, addressID uuid.UUID) error

	// ClearDefaultByOwner clears the default flag on every address of the
	// user in one bulk UPDATE. Inside a transaction the touched rows stay
	// locked, which serializes concurrent default-setting writers per owner.
	ClearDefaultByOwner(ctx context.Context, userID uuid.UUID) error
}
