// Package sqlite implements the clinic and inventory repositories on an
// embedded SQLite database through sqlx and the pure-Go modernc driver.
package sqlite

import (
	"context"
	"log/slog"
	"strings"

	"medlocator/config"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/domain/lifecycle"
	"medlocator/internal/errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS clinics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		operating_hours TEXT NOT NULL DEFAULT '',
		verified INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS clinic_inventory (
		id TEXT PRIMARY KEY,
		clinic_id TEXT NOT NULL,
		medicine_name TEXT NOT NULL,
		dosage TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		price REAL CHECK (price IS NULL OR price >= 0),
		last_updated TEXT NOT NULL,
		FOREIGN KEY(clinic_id) REFERENCES clinics(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_clinic_inventory_on_clinic ON clinic_inventory(clinic_id);`,
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite database and closes it on shutdown.
func New(params Params) (*sqlx.DB, error) {
	dsn := ""
	if params.Config.SQLite != nil {
		dsn = params.Config.SQLite.DSN
	}
	autoMigrate := params.Config.Store != nil && params.Config.Store.AutoMigrate

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	db, err := Open(ctx, dsn, autoMigrate)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("SQLite record store opened",
		slog.String("dsn", dsn),
		slog.Bool("auto_migrate", autoMigrate),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}

// Open connects to dsn with foreign keys enforced, optionally creating the schema.
func Open(ctx context.Context, dsn string, migrate bool) (*sqlx.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite dsn is required")
	}

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to SQLite")
	}
	// SQLite serialises writers; one connection also keeps :memory: databases alive.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to enable SQLite foreign keys")
	}

	if migrate {
		if err := Migrate(ctx, db); err != nil {
			_ = db.Close()

			return nil, err
		}
	}

	return db, nil
}

// Migrate creates the clinic and inventory tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "sqlite migration failed")
		}
	}

	return nil
}

// translateWriteError maps SQLite constraint failures to domain errors.
func translateWriteError(err error, details string) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domainerrors.ErrClinicNotFound.WrapMessage(details)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domainerrors.ErrValidationFailed.WithDetails("record already exists")
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return domainerrors.ErrValidationFailed.WithDetails("missing required field")
	case strings.Contains(msg, "CHECK constraint failed"):
		return domainerrors.ErrValidationFailed.WithDetails("quantity and price must not be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
