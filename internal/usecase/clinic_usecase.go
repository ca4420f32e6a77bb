package usecase

import (
	"context"

	"medlocator/internal/domain/entity"
)

// CreateClinicInput represents the input for registering a clinic
type CreateClinicInput struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	OperatingHours string  `json:"operating_hours"`
}

// UpdateClinicInput represents a partial update of a clinic
type UpdateClinicInput struct {
	Name           *string  `json:"name,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	OperatingHours *string  `json:"operating_hours,omitempty"`
}

// ClinicUsecase defines the interface for clinic management use cases
type ClinicUsecase interface {
	CreateClinic(ctx context.Context, input *CreateClinicInput) (*entity.Clinic, error)
	GetClinic(ctx context.Context, clinicID string) (*entity.Clinic, error)
	ListClinics(ctx context.Context) ([]*entity.Clinic, error)
	UpdateClinic(ctx context.Context, clinicID string, input *UpdateClinicInput) (*entity.Clinic, error)

	// GenerateClinicQR renders a PNG QR code linking to the clinic's public page
	GenerateClinicQR(ctx context.Context, clinicID string) ([]byte, error)
}
