package pubsub

import (
	"context"
	"log/slog"

	"medlocator/config"
	"medlocator/internal/domain/service"
	"medlocator/internal/errors"

	"go.uber.org/fx"
)

// Module provides the inventory event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// connector is implemented by publishers that dial their broker on start.
type connector interface {
	connect(ctx context.Context) error
}

// NewEventPublisher picks the publisher for the configured provider. Settings
// are checked here; any broker round trip happens in the OnStart hook.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Inventory events disabled")

		return &noopPublisher{logger: logger}, nil
	}
	if err := checkPubSubConfig(cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case config.PubSubProviderGoogle:
		publisher = newGooglePubSubPublisher(cfg.ProjectID, cfg.TopicID, logger)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if c, ok := publisher.(connector); ok {
				return c.connect(ctx)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("Inventory events enabled", slog.String("provider", cfg.Provider))

	return publisher, nil
}

func checkPubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishInventoryEvent(ctx context.Context, event *service.InventoryEvent) error {
	p.logger.DebugContext(ctx, "Inventory event dropped",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }
