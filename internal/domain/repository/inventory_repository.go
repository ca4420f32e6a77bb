package repository

import (
	"context"

	"medlocator/internal/domain/entity"
	"medlocator/internal/errors"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrInventoryItemNotFound is returned when an inventory item is not found.
	ErrInventoryItemNotFound = errors.New("inventory item not found")
)

// InventoryRepository defines the interface for clinic inventory storage operations.
type InventoryRepository interface {
	// CreateInventoryItem persists a new inventory item. The store assigns the ID when it is empty.
	CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error

	// FindInventoryItemByID retrieves an inventory item by its ID.
	FindInventoryItemByID(ctx context.Context, id string) (*entity.InventoryItem, error)

	// FindInventoryByClinic retrieves every inventory item of one clinic.
	FindInventoryByClinic(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error)

	// ListInventory retrieves the full inventory across all clinics.
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)

	// UpdateInventoryItem overwrites an existing inventory item.
	UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) error

	// DeleteInventoryItem removes an inventory item by its ID.
	DeleteInventoryItem(ctx context.Context, id string) error
}
