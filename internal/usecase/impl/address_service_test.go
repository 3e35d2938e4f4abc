package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	t         *testing.T
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAddressService(txManager, newDiscardLogger())

	return addressServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute stubs one transaction round-trip: setup arranges the repos on the
// factory, the captured function runs against it, and result is what the
// transaction manager reports back.
func (f addressServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)

			return result
		})
}

func TestAddressService_AddAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		AddressType:   "shipping",
		StreetAddress: "1 Queensway",
		City:          "Taipei",
		State:         "TW-TPE",
		PostalCode:    "100",
		Country:       "TW",
		IsDefault:     false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(true, nil)
			mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.Equal(t, "shipping", address.AddressType)
	assert.False(t, address.IsDefault)
}

func TestAddressService_AddAddress_DefaultClearsExisting(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		AddressType:   "shipping",
		StreetAddress: "99 Harbor Rd",
		City:          "Kaohsiung",
		PostalCode:    "800",
		Country:       "TW",
		IsDefault:     true,
	}

	cleared := false

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockUserRepo.EXPECT().ExistsByID(ctx, userID).Return(true, nil)
			mockAddressRepo.EXPECT().ClearDefaultByOwner(ctx, userID).
				Run(func(ctx context.Context, userID uuid.UUID) {
					cleared = true
				}).
				Return(nil)
			mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					// The old default must already be gone when the new row lands.
					assert.True(t, cleared)
					assert.True(t, address.IsDefault)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.True(t, address.IsDefault)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Address{
		{ID: uuid.New(), UserID: userID, City: "Taipei", IsDefault: true},
		{ID: uuid.New(), UserID: userID, City: "Tainan"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressesByOwner(ctx, userID).Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

// Listing never checks owner existence; an unknown user lists as empty.
func TestAddressService_ListAddresses_UnknownOwnerIsEmpty(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressesByOwner(ctx, userID).Return([]*entity.Address{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddressService_GetAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	expected := &entity.Address{
		ID:     addressID,
		UserID: userID,
		City:   "Taichung",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.GetAddress(ctx, userID, addressID)

	require.NoError(t, err)
	assert.Equal(t, expected, address)
}

func TestAddressService_UpdateAddress_PartialFields(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newCity := "Hsinchu"
	input := &usecase.UpdateAddressInput{
		City: &newCity,
		// IsDefault omitted: the current flag must survive the update.
	}

	existing := &entity.Address{
		ID:            addressID,
		UserID:        userID,
		AddressType:   "shipping",
		StreetAddress: "5 Science Park Rd",
		City:          "Taipei",
		IsDefault:     true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(existing, nil)
			mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, "Hsinchu", address.City)
	assert.Equal(t, "5 Science Park Rd", address.StreetAddress)
	assert.True(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_SetDefaultDemotesOthers(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	makeDefault := true
	input := &usecase.UpdateAddressInput{
		IsDefault: &makeDefault,
	}

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(existing, nil)
			mockAddressRepo.EXPECT().ClearDefaultByOwner(ctx, userID).Return(nil)
			mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					assert.True(t, address.IsDefault)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_UnsetDefaultLeavesNoDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	makeDefault := false
	input := &usecase.UpdateAddressInput{
		IsDefault: &makeDefault,
	}

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(existing, nil)
			// No ClearDefaultByOwner here: unsetting never promotes a sibling.
			mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

// Repeating the same partial payload settles on the same final state.
func TestAddressService_UpdateAddress_Idempotent(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newCity := "Hualien"
	input := &usecase.UpdateAddressInput{City: &newCity}

	existing := &entity.Address{
		ID:            addressID,
		UserID:        userID,
		StreetAddress: "7 Coastal Hwy",
		City:          "Taitung",
	}

	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockAddressRepo.EXPECT().FindAddressByOwnerAndID(ctx, userID, addressID).Return(existing, nil).Times(2)
	mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil).Times(2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			return fn(mockFactory)
		}).
		Times(2)

	first, err := fx.service.UpdateAddress(ctx, userID, addressID, input)
	require.NoError(t, err)

	second, err := fx.service.UpdateAddress(ctx, userID, addressID, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Hualien", second.City)
	assert.Equal(t, "7 Coastal Hwy", second.StreetAddress)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().DeleteAddressByOwnerAndID(ctx, userID, addressID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.NoError(t, err)
}
