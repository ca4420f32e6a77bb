package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"medlocator/config"
	"medlocator/internal/domain/service"
	"medlocator/internal/infra/auth"
	logs "medlocator/internal/infra/log"
	"medlocator/internal/infra/persistence"
	"medlocator/internal/infra/pubsub"
	"medlocator/internal/infra/qrcode"
	"medlocator/internal/usecase"
	"medlocator/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// components are the use cases a command needs, resolved from the same
// providers the API server uses.
type components struct {
	Config    *config.Config
	Locator   usecase.MedicineLocatorUsecase
	Clinics   usecase.ClinicUsecase
	Inventory usecase.InventoryUsecase
	Tokens    service.TokenService
}

type rootOptions struct {
	backend string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "medctl",
		Short:         "Operator tooling for the medicine locator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "Override store.backend (postgres, firestore, sqlite)")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newSeedCmd(opts))
	rootCmd.AddCommand(newTokenCmd(opts))

	return rootCmd
}

// withComponents starts a short-lived fx app, hands its use cases to fn, and
// stops the app again so database clients are closed.
func withComponents(ctx context.Context, opts *rootOptions, fn func(*components) error) error {
	var c components
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			impl.NewMedicineLocatorService,
			impl.NewClinicService,
			impl.NewInventoryService,
		),
		fx.Decorate(func(cfg *config.Config) *config.Config {
			return applyBackendOverride(cfg, opts.backend)
		}),
		persistence.Module,
		pubsub.Module,
		fx.Populate(&c.Config, &c.Locator, &c.Clinics, &c.Inventory, &c.Tokens),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(&c)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func applyBackendOverride(cfg *config.Config, backend string) *config.Config {
	if backend == "" {
		return cfg
	}
	if cfg.Store == nil {
		cfg.Store = &config.StoreConfig{}
	}
	cfg.Store.Backend = backend

	return cfg
}
