package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"medlocator/internal/domain/service"
	"medlocator/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes to an existing Cloud Pub/Sub topic. The
// client is opened by connect, so the topic must exist when the app starts.
type googlePubSubPublisher struct {
	projectID string
	topicID   string
	logger    *slog.Logger

	client    *pubsub.Client
	publisher *pubsub.Publisher
}

func newGooglePubSubPublisher(projectID, topicID string, logger *slog.Logger) *googlePubSubPublisher {
	return &googlePubSubPublisher{
		projectID: projectID,
		topicID:   topicID,
		logger:    logger,
	}
}

func (p *googlePubSubPublisher) connect(ctx context.Context) error {
	client, err := pubsub.NewClient(ctx, p.projectID)
	if err != nil {
		return errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", p.projectID, p.topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return errors.Wrapf(err, "topic %s is not available", topic)
	}

	p.client = client
	p.publisher = client.Publisher(p.topicID)
	p.logger.InfoContext(ctx, "Connected to Pub/Sub topic", slog.String("topic", topic))

	return nil
}

// PublishInventoryEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishInventoryEvent(ctx context.Context, event *service.InventoryEvent) error {
	if p.publisher == nil {
		return errors.New("pubsub publisher is not connected")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish event %s", event.EventID)
	}

	p.logger.DebugContext(ctx, "Inventory event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client == nil {
		return nil
	}

	return errors.WithStack(p.client.Close())
}

// eventAttributes lets subscriptions filter on clinic or event type without
// decoding the payload.
func eventAttributes(event *service.InventoryEvent) map[string]string {
	attrs := make(map[string]string, 5)
	attrs["event_id"] = event.EventID
	attrs["event_type"] = string(event.Type)
	attrs["clinic_id"] = event.ClinicID
	attrs["item_id"] = event.ItemID
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
