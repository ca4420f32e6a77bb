package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"medlocator/config"
	deliverycontext "medlocator/internal/delivery/context"
	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/domain/geo"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"
	"medlocator/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	defaultLookupWorkers = 10
	defaultStoreTimeout  = 10 * time.Second
)

// MedicineLocatorParams holds dependencies for the locator, injected by Fx
type MedicineLocatorParams struct {
	fx.In

	Store  repository.RecordStore
	Config *config.Config `optional:"true"`
	Logger *slog.Logger   `optional:"true"`
}

type medicineLocatorService struct {
	store         repository.RecordStore
	lookupWorkers int
	storeTimeout  time.Duration
	logger        *slog.Logger
}

// NewMedicineLocatorService creates a new medicine locator instance
func NewMedicineLocatorService(params MedicineLocatorParams) usecase.MedicineLocatorUsecase {
	workers := defaultLookupWorkers
	timeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Locator != nil {
		if params.Config.Locator.LookupWorkers > 0 {
			workers = params.Config.Locator.LookupWorkers
		}
		if params.Config.Locator.StoreTimeout > 0 {
			timeout = params.Config.Locator.StoreTimeout
		}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &medicineLocatorService{
		store:         params.Store,
		lookupWorkers: workers,
		storeTimeout:  timeout,
		logger:        logger,
	}
}

func (s *medicineLocatorService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindNearbyMedicine ranks in-stock matches by great-circle distance from the user
func (s *medicineLocatorService) FindNearbyMedicine(
	ctx context.Context,
	query string,
	userLat, userLon, maxDistanceKm float64,
) ([]*entity.MedicineLocation, error) {
	locations, err := s.SearchMedicine(ctx, query)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{userLon, userLat}
	nearby := make([]*entity.MedicineLocation, 0, len(locations))
	for _, location := range locations {
		location.DistanceKm = geo.HaversineKm(origin, location.Clinic.Location())
		if location.DistanceKm <= maxDistanceKm {
			nearby = append(nearby, location)
		}
	}

	// Stable: equal distances keep store order
	slices.SortStableFunc(nearby, func(a, b *entity.MedicineLocation) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return nearby, nil
}

// SearchMedicine scans the inventory and joins each in-stock match to its clinic
func (s *medicineLocatorService) SearchMedicine(ctx context.Context, medicineName string) ([]*entity.MedicineLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	inventory, err := s.store.ListInventory(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list inventory")
	}

	matches := filterInStock(inventory, medicineName)
	if len(matches) == 0 {
		return []*entity.MedicineLocation{}, nil
	}

	return s.joinClinics(ctx, matches)
}

// filterInStock keeps items with stock whose name contains medicineName, ignoring case
func filterInStock(items []*entity.InventoryItem, medicineName string) []*entity.InventoryItem {
	needle := strings.ToLower(medicineName)

	matches := make([]*entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if item == nil || !item.InStock() {
			continue
		}
		if strings.Contains(strings.ToLower(item.MedicineName), needle) {
			matches = append(matches, item)
		}
	}

	return matches
}

// joinClinics looks up the owning clinic of every item with a bounded worker pool.
// Output keeps the order of items; items whose clinic cannot be loaded are dropped.
func (s *medicineLocatorService) joinClinics(ctx context.Context, items []*entity.InventoryItem) ([]*entity.MedicineLocation, error) {
	joined := make([]*entity.MedicineLocation, len(items))

	itemCh := make(chan int, len(items))
	for idx := range items {
		itemCh <- idx
	}
	close(itemCh)

	var workerGroup sync.WaitGroup
	for range s.workerCount(len(items)) {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range itemCh {
				if ctx.Err() != nil {
					return
				}

				joined[idx] = s.lookupClinic(ctx, items[idx])
			}
		}()
	}
	workerGroup.Wait()

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.NewStoreUnavailableError(err, "clinic lookups timed out")
		}

		return nil, errors.Wrap(err, "clinic lookup canceled")
	}

	locations := make([]*entity.MedicineLocation, 0, len(joined))
	for _, location := range joined {
		if location != nil {
			locations = append(locations, location)
		}
	}

	return locations, nil
}

// lookupClinic returns nil when the clinic is missing or the lookup fails
func (s *medicineLocatorService) lookupClinic(ctx context.Context, item *entity.InventoryItem) *entity.MedicineLocation {
	clinic, err := s.store.FindClinicByID(ctx, item.ClinicID)
	if err == nil && clinic == nil {
		err = repository.ErrClinicNotFound
	}
	if err != nil {
		s.loggerFrom(ctx).LogAttrs(ctx, slog.LevelWarn, "Skipping inventory item without clinic",
			slog.String("inventory_id", item.ID),
			slog.String("clinic_id", item.ClinicID),
			slog.Any("error", fmt.Errorf("%w: %w", domainerrors.ErrClinicLookupFailed, err)),
		)

		return nil
	}

	return &entity.MedicineLocation{
		Clinic:    clinic,
		Inventory: item,
	}
}

func (s *medicineLocatorService) workerCount(itemCount int) int {
	if itemCount < s.lookupWorkers {
		return itemCount
	}

	return s.lookupWorkers
}
