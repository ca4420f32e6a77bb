package repository

import (
	"context"

	"medlocator/internal/domain/entity"
)

// RecordStore is the read-only view the medicine locator searches.
// Every backend satisfies it by composing its clinic and inventory repositories.
type RecordStore interface {
	// ListInventory returns a full inventory snapshot; filtering happens in the caller.
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)

	// FindClinicByID returns ErrClinicNotFound when the clinic does not exist.
	FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error)
}
