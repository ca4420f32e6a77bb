package impl

import (
	"context"
	"fmt"
	"time"

	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/domain/repository"
	"medlocator/internal/domain/service"
	"medlocator/internal/errors"
	"medlocator/internal/usecase"
)

type clinicService struct {
	clinicRepo repository.ClinicRepository
	qrcodeSvc  service.QRCodeService
}

// NewClinicService creates a new clinic service instance
func NewClinicService(clinicRepo repository.ClinicRepository, qrcodeSvc service.QRCodeService) usecase.ClinicUsecase {
	return &clinicService{
		clinicRepo: clinicRepo,
		qrcodeSvc:  qrcodeSvc,
	}
}

// CreateClinic registers a new, unverified clinic
func (s *clinicService) CreateClinic(ctx context.Context, input *usecase.CreateClinicInput) (*entity.Clinic, error) {
	clinic := &entity.Clinic{
		Name:           input.Name,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		OperatingHours: input.OperatingHours,
		Verified:       false,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.clinicRepo.CreateClinic(ctx, clinic); err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	return clinic, nil
}

// GetClinic retrieves a single clinic
func (s *clinicService) GetClinic(ctx context.Context, clinicID string) (*entity.Clinic, error) {
	clinic, err := s.clinicRepo.FindClinicByID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, repository.ErrClinicNotFound) {
			return nil, domainerrors.ErrClinicNotFound
		}

		return nil, fmt.Errorf("failed to find clinic by ID: %w", err)
	}

	return clinic, nil
}

// ListClinics retrieves every clinic
func (s *clinicService) ListClinics(ctx context.Context) ([]*entity.Clinic, error) {
	clinics, err := s.clinicRepo.ListClinics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}

	return clinics, nil
}

// UpdateClinic applies a partial update to a clinic
func (s *clinicService) UpdateClinic(ctx context.Context, clinicID string, input *usecase.UpdateClinicInput) (*entity.Clinic, error) {
	clinic, err := s.GetClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	applyClinicUpdates(clinic, input)

	if err := s.clinicRepo.UpdateClinic(ctx, clinic); err != nil {
		if errors.Is(err, repository.ErrClinicNotFound) {
			return nil, domainerrors.ErrClinicNotFound
		}

		return nil, fmt.Errorf("failed to update clinic: %w", err)
	}

	return clinic, nil
}

func applyClinicUpdates(clinic *entity.Clinic, input *usecase.UpdateClinicInput) {
	if input.Name != nil {
		clinic.Name = *input.Name
	}
	if input.Address != nil {
		clinic.Address = *input.Address
	}
	if input.Phone != nil {
		clinic.Phone = *input.Phone
	}
	if input.Email != nil {
		clinic.Email = *input.Email
	}
	if input.Latitude != nil {
		clinic.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		clinic.Longitude = *input.Longitude
	}
	if input.OperatingHours != nil {
		clinic.OperatingHours = *input.OperatingHours
	}
}

// GenerateClinicQR renders the clinic's QR code; the clinic must exist
func (s *clinicService) GenerateClinicQR(ctx context.Context, clinicID string) ([]byte, error) {
	if _, err := s.GetClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateClinicQR(clinicID)
	if err != nil {
		return nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}
