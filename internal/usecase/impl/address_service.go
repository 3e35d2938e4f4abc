// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// AddAddress creates a new address for the user. When the new address is
// flagged default, every existing default of the same user is cleared in the
// same transaction, so the single-default rule holds even across concurrent
// requests.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddAddressInput) (*entity.Address, error) {
	srv.logger.Info("Adding address", "userID", userID, "isDefault", input.IsDefault)

	address := &entity.Address{
		UserID:        userID,
		AddressType:   input.AddressType,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		PostalCode:    input.PostalCode,
		Country:       input.Country,
		IsDefault:     input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireUser(ctx, repoFactory, userID); err != nil {
			return err
		}

		addressRepo := repoFactory.AddressRepo()

		// Clear before insert so the new row is the only default.
		if input.IsDefault {
			if err := addressRepo.ClearDefaultByOwner(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear existing default addresses")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add address")
	}

	return address, nil
}

// ListAddresses returns all addresses of the user, oldest first. No owner
// existence check runs here: an unknown user simply lists as empty.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	srv.logger.Debug("Listing addresses", "userID", userID)

	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAddressesByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		addresses = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns one address of the user. An address owned by someone
// else is indistinguishable from a missing one.
func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	srv.logger.Debug("Getting address", "userID", userID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAddressByOwnerAndID(ctx, userID, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		address = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

// UpdateAddress applies a partial update. A nil field is left untouched,
// so omitting is_default never changes the current default. Setting
// is_default true demotes any other default in the same transaction;
// setting it false just clears this address and may leave the user with
// no default at all.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.logger.Info("Updating address", "userID", userID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := addressRepo.FindAddressByOwnerAndID(ctx, userID, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		applyAddressUpdates(found, input)

		if input.IsDefault != nil && *input.IsDefault {
			// Clears every default of the user, this row included; the
			// save below re-sets it as the only one.
			if err := addressRepo.ClearDefaultByOwner(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear existing default addresses")
			}
			found.IsDefault = true
		}

		if err := addressRepo.UpdateAddress(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		address = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes one address of the user. Deleting the default does
// not promote another address; the user simply has no default until one is
// set again.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.logger.Info("Deleting address", "userID", userID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.AddressRepo().DeleteAddressByOwnerAndID(ctx, userID, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// requireUser fails with ErrUserNotFound when the owner does not exist.
func (srv *addressService) requireUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	exists, err := repoFactory.UserRepo().ExistsByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	}

	return nil
}

// applyAddressUpdates copies the non-nil scalar fields onto the entity.
// The default flag is handled separately by the caller.
func applyAddressUpdates(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.AddressType != nil {
		address.AddressType = *input.AddressType
	}
	if input.StreetAddress != nil {
		address.StreetAddress = *input.StreetAddress
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.IsDefault != nil {
		address.IsDefault = *input.IsDefault
	}
}
