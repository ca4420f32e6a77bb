package service

import (
	"context"
)

// InventoryEventType describes what happened to an inventory item
type InventoryEventType string

const (
	InventoryEventCreated InventoryEventType = "created"
	InventoryEventUpdated InventoryEventType = "updated"
	InventoryEventDeleted InventoryEventType = "deleted"
)

// InventoryEvent is emitted after a clinic changes its stock
type InventoryEvent struct {
	RequestID    string             `json:"request_id,omitempty"` // For distributed tracing
	EventID      string             `json:"event_id"`
	Type         InventoryEventType `json:"type"`
	ClinicID     string             `json:"clinic_id"`
	ItemID       string             `json:"item_id"`
	MedicineName string             `json:"medicine_name"`
	Quantity     int                `json:"quantity"`
	OccurredAt   string             `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInventoryEvent publishes an inventory change for downstream consumers
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
