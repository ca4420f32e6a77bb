package firestore

import (
	"math"
	"testing"
	"time"

	"medlocator/config"
	"medlocator/internal/domain/entity"
	"medlocator/internal/errors"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCollectionsFromConfig(t *testing.T) {
	assert.Equal(t, Collections{Clinics: "clinics", Inventory: "clinicInventory"}, CollectionsFromConfig(&config.Config{}))

	cfg := &config.Config{Firestore: &config.FirestoreConfig{InventoryCollection: "stock"}}
	assert.Equal(t, Collections{Clinics: "clinics", Inventory: "stock"}, CollectionsFromConfig(cfg))
}

func TestValidDocID(t *testing.T) {
	assert.True(t, validDocID("abc123"))
	assert.False(t, validDocID(""))
	assert.False(t, validDocID("clinics/abc"))
}

func TestIsNotFound(t *testing.T) {
	notFound := status.Error(codes.NotFound, "no such document")

	assert.True(t, isNotFound(notFound))
	assert.True(t, isNotFound(errors.Wrap(notFound, "lookup")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "down")))
	assert.False(t, isNotFound(errors.New("plain")))
}

func TestQuantityFromDoc(t *testing.T) {
	assert.Equal(t, 0, quantityFromDoc(-3))
	assert.Equal(t, 0, quantityFromDoc(math.NaN()))
	assert.Equal(t, 7, quantityFromDoc(7))
	assert.Equal(t, 2, quantityFromDoc(2.9))
}

func TestInventoryDocMapping(t *testing.T) {
	price := 12.5
	item := &entity.InventoryItem{
		ID:           "doc-1",
		ClinicID:     "clinic-1",
		MedicineName: "Amoxicillin",
		Dosage:       "250mg",
		Quantity:     14,
		Price:        &price,
		LastUpdated:  time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, item, fromInventoryDomain(item).toDomain("doc-1"))
}

func TestClinicDocMapping(t *testing.T) {
	clinic := &entity.Clinic{
		ID:             "doc-9",
		Name:           "North Clinic",
		Latitude:       59.33,
		Longitude:      18.06,
		OperatingHours: "08-16",
		Verified:       true,
		CreatedAt:      time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, clinic, fromClinicDomain(clinic).toDomain("doc-9"))
}
