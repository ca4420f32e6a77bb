// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"medlocator/internal/domain/entity"
	"medlocator/internal/errors"
)

// Domain-specific errors for clinic persistence.
var (
	// ErrClinicNotFound is returned when a clinic is not found.
	ErrClinicNotFound = errors.New("clinic not found")
)

// ClinicRepository defines the interface for clinic-related storage operations.
type ClinicRepository interface {
	// CreateClinic persists a new clinic. The store assigns the ID when it is empty.
	CreateClinic(ctx context.Context, clinic *entity.Clinic) error

	// FindClinicByID retrieves a clinic by its ID.
	// Returns ErrClinicNotFound if no clinic exists.
	FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error)

	// ListClinics retrieves all clinics.
	ListClinics(ctx context.Context) ([]*entity.Clinic, error)

	// UpdateClinic overwrites an existing clinic record.
	UpdateClinic(ctx context.Context, clinic *entity.Clinic) error
}
