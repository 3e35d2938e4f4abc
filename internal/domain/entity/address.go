package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping or billing address in a user's address book.
//
// Invariant: among all addresses belonging to one user, at most one may
// have IsDefault set. The rule is enforced procedurally by the address
// usecase (clear-then-set inside one transaction), not by a storage
// constraint.
type Address struct {
	ID            uuid.UUID // The unique identifier for the address.
	UserID        uuid.UUID // The ID of the user that owns this address.
	AddressType   string    // A user-facing kind, e.g., "shipping", "billing".
	StreetAddress string    // Street line(s).
	City          string
	State         string
	PostalCode    string
	Country       string
	IsDefault     bool      // Indicates if this is the user's default address.
	CreatedAt     time.Time // Immutable after creation.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
