package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "medlocator/internal/delivery/context"
	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/domain/repository"
	"medlocator/internal/domain/service"
	"medlocator/internal/errors"
	"medlocator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// InventoryServiceParams holds dependencies for the inventory service, injected by Fx
type InventoryServiceParams struct {
	fx.In

	ClinicRepo    repository.ClinicRepository
	InventoryRepo repository.InventoryRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger `optional:"true"`
}

type inventoryService struct {
	clinicRepo    repository.ClinicRepository
	inventoryRepo repository.InventoryRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &inventoryService{
		clinicRepo:    params.ClinicRepo,
		inventoryRepo: params.InventoryRepo,
		publisher:     params.Publisher,
		logger:        logger,
	}
}

// AddInventoryItem adds a stock entry to an existing clinic
func (s *inventoryService) AddInventoryItem(ctx context.Context, clinicID string, input *usecase.AddInventoryItemInput) (*entity.InventoryItem, error) {
	if err := s.ensureClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	if err := validateStock(input.Quantity, input.Price); err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		ClinicID:     clinicID,
		MedicineName: input.MedicineName,
		Dosage:       input.Dosage,
		Quantity:     input.Quantity,
		Price:        input.Price,
		LastUpdated:  time.Now().UTC(),
	}

	if err := s.inventoryRepo.CreateInventoryItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.publish(ctx, service.InventoryEventCreated, item)

	return item, nil
}

// GetClinicInventory lists a clinic's inventory
func (s *inventoryService) GetClinicInventory(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error) {
	if err := s.ensureClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	items, err := s.inventoryRepo.FindInventoryByClinic(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory by clinic: %w", err)
	}

	return items, nil
}

// UpdateInventoryItem applies a partial update and refreshes LastUpdated
func (s *inventoryService) UpdateInventoryItem(ctx context.Context, clinicID, itemID string, input *usecase.UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.findOwnedItem(ctx, clinicID, itemID)
	if err != nil {
		return nil, err
	}

	applyInventoryUpdates(item, input)

	if err := validateStock(item.Quantity, item.Price); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.UpdateInventoryItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.publish(ctx, service.InventoryEventUpdated, item)

	return item, nil
}

func applyInventoryUpdates(item *entity.InventoryItem, input *usecase.UpdateInventoryItemInput) {
	if input.MedicineName != nil {
		item.MedicineName = *input.MedicineName
	}
	if input.Dosage != nil {
		item.Dosage = *input.Dosage
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		item.Price = input.Price
	}
	item.LastUpdated = time.Now().UTC()
}

// DeleteInventoryItem removes a stock entry owned by the clinic
func (s *inventoryService) DeleteInventoryItem(ctx context.Context, clinicID, itemID string) error {
	item, err := s.findOwnedItem(ctx, clinicID, itemID)
	if err != nil {
		return err
	}

	if err := s.inventoryRepo.DeleteInventoryItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return domainerrors.ErrInventoryItemNotFound
		}

		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	s.publish(ctx, service.InventoryEventDeleted, item)

	return nil
}

func (s *inventoryService) ensureClinic(ctx context.Context, clinicID string) error {
	if _, err := s.clinicRepo.FindClinicByID(ctx, clinicID); err != nil {
		if errors.Is(err, repository.ErrClinicNotFound) {
			return domainerrors.ErrClinicNotFound
		}

		return fmt.Errorf("failed to find clinic by ID: %w", err)
	}

	return nil
}

func (s *inventoryService) findOwnedItem(ctx context.Context, clinicID, itemID string) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.FindInventoryItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, fmt.Errorf("failed to find inventory item by ID: %w", err)
	}

	if item.ClinicID != clinicID {
		return nil, domainerrors.ErrInventoryOwnershipViolation
	}

	return item, nil
}

func validateStock(quantity int, price *float64) error {
	if quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	if price != nil && *price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}

// publish is best effort; the mutation has already been stored
func (s *inventoryService) publish(ctx context.Context, eventType service.InventoryEventType, item *entity.InventoryItem) {
	event := &service.InventoryEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.New().String(),
		Type:         eventType,
		ClinicID:     item.ClinicID,
		ItemID:       item.ID,
		MedicineName: item.MedicineName,
		Quantity:     item.Quantity,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishInventoryEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish inventory event",
			slog.String("event_type", string(eventType)),
			slog.String("item_id", item.ID),
			slog.Any("error", err),
		)
	}
}
