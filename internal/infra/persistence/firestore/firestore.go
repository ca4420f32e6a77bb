// Package firestore implements the clinic and inventory repositories on Cloud
// Firestore, reading the same collections the mobile app writes.
package firestore

import (
	"context"
	"log/slog"
	"strings"

	"medlocator/config"
	"medlocator/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultClinicsCollection   = "clinics"
	defaultInventoryCollection = "clinicInventory"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Collections names the Firestore collections holding clinics and inventory.
type Collections struct {
	Clinics   string
	Inventory string
}

// New initialises a Firebase app and returns its Firestore client.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		return nil, errors.New("firestore config section is required for the firestore backend")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Logger.Info("Firestore record store initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// CollectionsFromConfig resolves collection names, defaulting to the mobile app's.
func CollectionsFromConfig(cfg *config.Config) Collections {
	cols := Collections{
		Clinics:   defaultClinicsCollection,
		Inventory: defaultInventoryCollection,
	}
	if cfg.Firestore == nil {
		return cols
	}
	if cfg.Firestore.ClinicsCollection != "" {
		cols.Clinics = cfg.Firestore.ClinicsCollection
	}
	if cfg.Firestore.InventoryCollection != "" {
		cols.Inventory = cfg.Firestore.InventoryCollection
	}

	return cols
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}

// validDocID reports whether id can address a single document; Doc would
// return nil for anything else.
func validDocID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}
