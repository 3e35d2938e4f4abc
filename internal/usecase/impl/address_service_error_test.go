package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddressService_AddAddress_UserNotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		AddressType:   "shipping",
		StreetAddress: "1 Nowhere Ln",
		City:          "Taipei",
		PostalCode:    "100",
		Country:       "TW",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(false, nil)
	})

	address, err := fx.service.AddAddress(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAddressService_AddAddress_ClearDefaultError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		AddressType: "shipping",
		Country:     "TW",
		IsDefault:   true,
	}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to clear existing default addresses"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(true, nil)
		mockAddressRepo.EXPECT().ClearDefaultByOwner(ctx, userID).Return(errors.New("db error"))
	})

	address, err := fx.service.AddAddress(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.Contains(t, err.Error(), "failed to clear existing default addresses")
}

func TestAddressService_AddAddress_CreateError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		AddressType: "billing",
		Country:     "TW",
	}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to create address"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(true, nil)
		mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(errors.New("db error"))
	})

	address, err := fx.service.AddAddress(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.Contains(t, err.Error(), "failed to create address")
}

func TestAddressService_ListAddresses_FindError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to find addresses"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindAddressesByOwner(ctx, userID).Return(nil, errors.New("db error"))
	})

	addresses, err := fx.service.ListAddresses(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, addresses)
	assert.Contains(t, err.Error(), "failed to find addresses")
}

func TestAddressService_GetAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	address, err := fx.service.GetAddress(ctx, userID, addressID)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

// A foreign owner's address reads back exactly like a missing one; the
// repository already collapses the two cases into ErrAddressNotFound.
func TestAddressService_GetAddress_ForeignOwnerLooksMissing(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	requester := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, requester, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	_, err := fx.service.GetAddress(ctx, requester, addressID)

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newCity := "Keelung"
	input := &usecase.UpdateAddressInput{City: &newCity}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_UpdateAddress_SaveError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newCity := "Keelung"
	input := &usecase.UpdateAddressInput{City: &newCity}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to update address"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).
			Return(&entity.Address{ID: addressID, UserID: userID, City: "Taipei"}, nil)
		mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(errors.New("db error"))
	})

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.Contains(t, err.Error(), "failed to update address")
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().DeleteAddressByOwnerAndID(ctx, userID, addressID).Return(repository.ErrAddressNotFound)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_AddAddress_ExistsCheckError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{AddressType: "shipping", Country: "TW"}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to check user existence"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(false, errors.New("db error"))
	})

	address, err := fx.service.AddAddress(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.Contains(t, err.Error(), "failed to check user existence")
}
