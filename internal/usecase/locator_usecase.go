package usecase

import (
	"context"

	"medlocator/internal/domain/entity"
)

// DefaultSearchRadiusKm is the radius callers apply when the searcher does not pick one.
const DefaultSearchRadiusKm = 50.0

// MedicineLocatorUsecase defines the interface for finding medicine stock across clinics
type MedicineLocatorUsecase interface {
	// FindNearbyMedicine returns in-stock matches for query within maxDistanceKm of the
	// given position, nearest first. An empty result is not an error.
	FindNearbyMedicine(ctx context.Context, query string, userLat, userLon, maxDistanceKm float64) ([]*entity.MedicineLocation, error)

	// SearchMedicine returns in-stock matches for medicineName joined to their clinics,
	// in store order and without distances.
	SearchMedicine(ctx context.Context, medicineName string) ([]*entity.MedicineLocation, error)
}
