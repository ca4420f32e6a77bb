package postgres

import (
	"context"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"
	"medlocator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clinicRepository implements the repository.ClinicRepository interface.
type clinicRepository struct {
	db *gorm.DB
}

// NewClinicRepository is the constructor for clinicRepository.
func NewClinicRepository(db *gorm.DB) repository.ClinicRepository {
	return &clinicRepository{db: db}
}

// CreateClinic persists a new clinic, assigning its ID.
func (repo *clinicRepository) CreateClinic(ctx context.Context, clinic *entity.Clinic) error {
	if clinic.ID == "" {
		clinic.ID = uuid.New().String()
	}
	clinicM := fromClinicDomain(clinic)

	if err := repo.db.WithContext(ctx).Create(clinicM).Error; err != nil {
		return translateWriteError(err, "failed to create clinic")
	}

	return nil
}

// FindClinicByID retrieves a clinic by its unique ID.
func (repo *clinicRepository) FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error) {
	// The column is uuid typed; anything else can never match.
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrClinicNotFound
	}

	var clinicM model.ClinicModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&clinicM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClinicNotFound
		}

		return nil, errors.Wrap(err, "failed to find clinic by ID")
	}

	return toClinicDomain(&clinicM), nil
}

// ListClinics retrieves every clinic, oldest first.
func (repo *clinicRepository) ListClinics(ctx context.Context) ([]*entity.Clinic, error) {
	var clinicModels []*model.ClinicModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&clinicModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clinics")
	}

	clinics := make([]*entity.Clinic, 0, len(clinicModels))
	for _, clinicM := range clinicModels {
		clinics = append(clinics, toClinicDomain(clinicM))
	}

	return clinics, nil
}

// UpdateClinic overwrites the mutable clinic fields.
func (repo *clinicRepository) UpdateClinic(ctx context.Context, clinic *entity.Clinic) error {
	if _, err := uuid.Parse(clinic.ID); err != nil {
		return repository.ErrClinicNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ClinicModel{}).
		Where("id = ?", clinic.ID).
		Updates(map[string]any{
			"name":            clinic.Name,
			"address":         clinic.Address,
			"phone":           clinic.Phone,
			"email":           clinic.Email,
			"latitude":        clinic.Latitude,
			"longitude":       clinic.Longitude,
			"operating_hours": clinic.OperatingHours,
			"verified":        clinic.Verified,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update clinic")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClinicNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toClinicDomain(data *model.ClinicModel) *entity.Clinic {
	if data == nil {
		return nil
	}

	return &entity.Clinic{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		Phone:          data.Phone,
		Email:          data.Email,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		OperatingHours: data.OperatingHours,
		Verified:       data.Verified,
		CreatedAt:      data.CreatedAt,
	}
}

func fromClinicDomain(data *entity.Clinic) *model.ClinicModel {
	if data == nil {
		return nil
	}

	return &model.ClinicModel{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		Phone:          data.Phone,
		Email:          data.Email,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		OperatingHours: data.OperatingHours,
		Verified:       data.Verified,
		CreatedAt:      data.CreatedAt,
	}
}
