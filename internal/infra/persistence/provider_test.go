package persistence

import (
	"context"
	"log/slog"
	"testing"

	"medlocator/config"
	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	mockRepo "medlocator/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestRecordStore_Delegates(t *testing.T) {
	clinics := mockRepo.NewMockClinicRepository(t)
	inventory := mockRepo.NewMockInventoryRepository(t)
	store := NewRecordStore(clinics, inventory)

	ctx := context.Background()
	items := []*entity.InventoryItem{{ID: "i1", ClinicID: "c1", Quantity: 1}}
	inventory.EXPECT().ListInventory(ctx).Return(items, nil)
	clinics.EXPECT().FindClinicByID(ctx, "c2").Return(nil, repository.ErrClinicNotFound)

	got, err := store.ListInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = store.FindClinicByID(ctx, "c2")
	assert.ErrorIs(t, err, repository.ErrClinicNotFound)
}

func TestNewRepositories_SQLiteBackend(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{
		Store:  &config.StoreConfig{Backend: config.StoreBackendSQLite, AutoMigrate: true},
		SQLite: &config.SQLiteConfig{DSN: ":memory:"},
	}

	repos, err := NewRepositories(RepositoriesParams{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	ctx := context.Background()
	clinic := &entity.Clinic{Name: "Riverside", Latitude: 1, Longitude: 2}
	require.NoError(t, repos.Clinics.CreateClinic(ctx, clinic))
	require.NoError(t, repos.Inventory.CreateInventoryItem(ctx, &entity.InventoryItem{
		ClinicID:     clinic.ID,
		MedicineName: "Cetirizine",
		Quantity:     4,
	}))

	store := NewRecordStore(repos.Clinics, repos.Inventory)
	items, err := store.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	found, err := store.FindClinicByID(ctx, items[0].ClinicID)
	require.NoError(t, err)
	assert.Equal(t, "Riverside", found.Name)

	lc.RequireStart().RequireStop()
}

func TestNewRepositories_UnknownBackend(t *testing.T) {
	_, err := NewRepositories(RepositoriesParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Store: &config.StoreConfig{Backend: "appwrite"}},
		Logger:    slog.New(slog.DiscardHandler),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
}
