package persistence

import (
	"context"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
)

type recordStore struct {
	clinics   repository.ClinicRepository
	inventory repository.InventoryRepository
}

// NewRecordStore composes a backend's repositories into the locator's read view.
func NewRecordStore(clinics repository.ClinicRepository, inventory repository.InventoryRepository) repository.RecordStore {
	return &recordStore{
		clinics:   clinics,
		inventory: inventory,
	}
}

func (s *recordStore) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	return s.inventory.ListInventory(ctx)
}

func (s *recordStore) FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error) {
	return s.clinics.FindClinicByID(ctx, id)
}
