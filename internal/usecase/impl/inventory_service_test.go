package impl

import (
	"context"
	"testing"

	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/domain/repository"
	"medlocator/internal/domain/service"
	mockRepo "medlocator/internal/mocks/repository"
	mockSvc "medlocator/internal/mocks/service"
	"medlocator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	clinicRepo    *mockRepo.MockClinicRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	clinicRepo := mockRepo.NewMockClinicRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewInventoryService(InventoryServiceParams{
		ClinicRepo:    clinicRepo,
		InventoryRepo: inventoryRepo,
		Publisher:     publisher,
	})

	return inventoryServiceFixtures{
		service:       service,
		clinicRepo:    clinicRepo,
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestInventoryService_AddInventoryItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := &usecase.AddInventoryItemInput{
		MedicineName: "Paracetamol",
		Dosage:       "500mg",
		Quantity:     20,
		Price:        ptr(3.5),
	}

	fx.clinicRepo.EXPECT().
		FindClinicByID(ctx, "clinic-1").
		Return(&entity.Clinic{ID: "clinic-1"}, nil)
	fx.inventoryRepo.EXPECT().
		CreateInventoryItem(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		RunAndReturn(func(_ context.Context, item *entity.InventoryItem) error {
			item.ID = "item-1"

			return nil
		})
	fx.publisher.EXPECT().
		PublishInventoryEvent(ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
			return event.Type == service.InventoryEventCreated &&
				event.ClinicID == "clinic-1" &&
				event.ItemID == "item-1" &&
				event.EventID != ""
		})).
		Return(nil)

	item, err := fx.service.AddInventoryItem(ctx, "clinic-1", input)
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "clinic-1", item.ClinicID)
	assert.Equal(t, 20, item.Quantity)
	assert.InDelta(t, 3.5, *item.Price, 1e-9)
	assert.False(t, item.LastUpdated.IsZero())
}

func TestInventoryService_AddInventoryItem_UnknownClinic(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.clinicRepo.EXPECT().
		FindClinicByID(ctx, "missing").
		Return(nil, repository.ErrClinicNotFound)

	_, err := fx.service.AddInventoryItem(ctx, "missing", &usecase.AddInventoryItemInput{MedicineName: "x", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrClinicNotFound)
}

func TestInventoryService_AddInventoryItem_RejectsNegativeStock(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.AddInventoryItemInput
	}{
		{name: "negative quantity", input: &usecase.AddInventoryItemInput{MedicineName: "x", Quantity: -1}},
		{name: "negative price", input: &usecase.AddInventoryItemInput{MedicineName: "x", Quantity: 1, Price: ptr(-0.01)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestInventoryService(t)

			ctx := context.Background()
			fx.clinicRepo.EXPECT().
				FindClinicByID(ctx, "clinic-1").
				Return(&entity.Clinic{ID: "clinic-1"}, nil)

			_, err := fx.service.AddInventoryItem(ctx, "clinic-1", tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestInventoryService_AddInventoryItem_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.clinicRepo.EXPECT().
		FindClinicByID(ctx, "clinic-1").
		Return(&entity.Clinic{ID: "clinic-1"}, nil)
	fx.inventoryRepo.EXPECT().
		CreateInventoryItem(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishInventoryEvent(ctx, mock.Anything).
		Return(errors.New("topic not found"))

	item, err := fx.service.AddInventoryItem(ctx, "clinic-1", &usecase.AddInventoryItemInput{MedicineName: "Zinc", Quantity: 2})
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestInventoryService_GetClinicInventory(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	items := []*entity.InventoryItem{{ID: "1", ClinicID: "clinic-1"}}

	fx.clinicRepo.EXPECT().
		FindClinicByID(ctx, "clinic-1").
		Return(&entity.Clinic{ID: "clinic-1"}, nil)
	fx.inventoryRepo.EXPECT().
		FindInventoryByClinic(ctx, "clinic-1").
		Return(items, nil)

	result, err := fx.service.GetClinicInventory(ctx, "clinic-1")
	require.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestInventoryService_UpdateInventoryItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	existing := &entity.InventoryItem{
		ID:           "item-1",
		ClinicID:     "clinic-1",
		MedicineName: "Ibuprofen",
		Dosage:       "200mg",
		Quantity:     5,
	}

	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, "item-1").
		Return(existing, nil)
	fx.inventoryRepo.EXPECT().
		UpdateInventoryItem(ctx, existing).
		Return(nil)
	fx.publisher.EXPECT().
		PublishInventoryEvent(ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
			return event.Type == service.InventoryEventUpdated && event.Quantity == 0
		})).
		Return(nil)

	item, err := fx.service.UpdateInventoryItem(ctx, "clinic-1", "item-1", &usecase.UpdateInventoryItemInput{
		Quantity: ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, "200mg", item.Dosage)
	assert.False(t, item.InStock())
}

func TestInventoryService_UpdateInventoryItem_OtherClinic(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, "item-1").
		Return(&entity.InventoryItem{ID: "item-1", ClinicID: "clinic-2"}, nil)

	_, err := fx.service.UpdateInventoryItem(ctx, "clinic-1", "item-1", &usecase.UpdateInventoryItemInput{Quantity: ptr(3)})
	assert.ErrorIs(t, err, domainerrors.ErrInventoryOwnershipViolation)
}

func TestInventoryService_UpdateInventoryItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, "item-1").
		Return(nil, repository.ErrInventoryItemNotFound)

	_, err := fx.service.UpdateInventoryItem(ctx, "clinic-1", "item-1", &usecase.UpdateInventoryItemInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInventoryItemNotFound)
}

func TestInventoryService_DeleteInventoryItem(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, "item-1").
		Return(&entity.InventoryItem{ID: "item-1", ClinicID: "clinic-1"}, nil)
	fx.inventoryRepo.EXPECT().
		DeleteInventoryItem(ctx, "item-1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishInventoryEvent(ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
			return event.Type == service.InventoryEventDeleted
		})).
		Return(nil)

	err := fx.service.DeleteInventoryItem(ctx, "clinic-1", "item-1")
	require.NoError(t, err)
}

func TestInventoryService_DeleteInventoryItem_RepoError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, "item-1").
		Return(&entity.InventoryItem{ID: "item-1", ClinicID: "clinic-1"}, nil)
	fx.inventoryRepo.EXPECT().
		DeleteInventoryItem(ctx, "item-1").
		Return(errors.New("disk full"))

	err := fx.service.DeleteInventoryItem(ctx, "clinic-1", "item-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete inventory item")
}
