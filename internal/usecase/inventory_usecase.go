package usecase

import (
	"context"

	"medlocator/internal/domain/entity"
)

// AddInventoryItemInput represents the input for adding stock to a clinic
type AddInventoryItemInput struct {
	MedicineName string   `json:"medicine_name"`
	Dosage       string   `json:"dosage"`
	Quantity     int      `json:"quantity"`
	Price        *float64 `json:"price,omitempty"`
}

// UpdateInventoryItemInput represents a partial update of an inventory item
type UpdateInventoryItemInput struct {
	MedicineName *string  `json:"medicine_name,omitempty"`
	Dosage       *string  `json:"dosage,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	Price        *float64 `json:"price,omitempty"`
}

// InventoryUsecase defines the interface for clinic inventory management use cases
type InventoryUsecase interface {
	AddInventoryItem(ctx context.Context, clinicID string, input *AddInventoryItemInput) (*entity.InventoryItem, error)
	GetClinicInventory(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, clinicID, itemID string, input *UpdateInventoryItemInput) (*entity.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, clinicID, itemID string) error
}
