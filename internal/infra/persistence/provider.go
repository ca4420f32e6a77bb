// Package persistence selects the configured record store backend and
// exposes its repositories to the rest of the application.
package persistence

import (
	"log/slog"

	"medlocator/config"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"
	"medlocator/internal/infra/persistence/firestore"
	"medlocator/internal/infra/persistence/postgres"
	"medlocator/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Module provides the repositories of the configured backend and the record store view.
var Module = fx.Options(
	fx.Provide(
		NewRepositories,
		NewRecordStore,
	),
)

// RepositoriesParams defines the required parameters
type RepositoriesParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories groups the backend-specific repository implementations.
type Repositories struct {
	fx.Out

	Clinics   repository.ClinicRepository
	Inventory repository.InventoryRepository
}

// NewRepositories opens only the backend named by store.backend.
func NewRepositories(params RepositoriesParams) (Repositories, error) {
	backend := config.StoreBackendSQLite
	if params.Config.Store != nil && params.Config.Store.Backend != "" {
		backend = params.Config.Store.Backend
	}

	params.Logger.Info("Selecting record store backend", slog.String("backend", backend))

	switch backend {
	case config.StoreBackendPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Clinics:   postgres.NewClinicRepository(db),
			Inventory: postgres.NewInventoryRepository(db),
		}, nil

	case config.StoreBackendFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		cols := firestore.CollectionsFromConfig(params.Config)

		return Repositories{
			Clinics:   firestore.NewClinicRepository(client, cols),
			Inventory: firestore.NewInventoryRepository(client, cols),
		}, nil

	case config.StoreBackendSQLite:
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Clinics:   sqlite.NewClinicRepository(db),
			Inventory: sqlite.NewInventoryRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store backend: %s", backend)
	}
}
