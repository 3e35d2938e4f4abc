// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindByID retrieves a user by its unique ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Update persists the given user record.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by its ID. Owned addresses are removed by
	// the storage layer's ON DELETE CASCADE.
	// Returns ErrUserNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
