package firestore

import (
	"context"
	"time"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"

	"cloud.google.com/go/firestore"
)

// clinicDoc is the document shape of the clinics collection.
type clinicDoc struct {
	Name           string    `firestore:"name"`
	Address        string    `firestore:"address"`
	Phone          string    `firestore:"phone"`
	Email          string    `firestore:"email"`
	Latitude       float64   `firestore:"latitude"`
	Longitude      float64   `firestore:"longitude"`
	OperatingHours string    `firestore:"operatingHours"`
	Verified       bool      `firestore:"verified"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

type clinicRepository struct {
	client     *firestore.Client
	collection string
}

// NewClinicRepository is the constructor for clinicRepository.
func NewClinicRepository(client *firestore.Client, cols Collections) repository.ClinicRepository {
	return &clinicRepository{client: client, collection: cols.Clinics}
}

func (repo *clinicRepository) CreateClinic(ctx context.Context, clinic *entity.Clinic) error {
	doc := fromClinicDomain(clinic)

	if clinic.ID != "" {
		if _, err := repo.client.Collection(repo.collection).Doc(clinic.ID).Create(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to create clinic")
		}

		return nil
	}

	ref, _, err := repo.client.Collection(repo.collection).Add(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to create clinic")
	}
	clinic.ID = ref.ID

	return nil
}

func (repo *clinicRepository) FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error) {
	if !validDocID(id) {
		return nil, repository.ErrClinicNotFound
	}

	snap, err := repo.client.Collection(repo.collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrClinicNotFound
		}

		return nil, errors.Wrap(err, "failed to find clinic by ID")
	}

	var doc clinicDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "clinic %s has an unexpected shape", id)
	}

	return doc.toDomain(snap.Ref.ID), nil
}

func (repo *clinicRepository) ListClinics(ctx context.Context) ([]*entity.Clinic, error) {
	snaps, err := repo.client.Collection(repo.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clinics")
	}

	clinics := make([]*entity.Clinic, 0, len(snaps))
	for _, snap := range snaps {
		var doc clinicDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "clinic %s has an unexpected shape", snap.Ref.ID)
		}
		clinics = append(clinics, doc.toDomain(snap.Ref.ID))
	}

	return clinics, nil
}

func (repo *clinicRepository) UpdateClinic(ctx context.Context, clinic *entity.Clinic) error {
	if !validDocID(clinic.ID) {
		return repository.ErrClinicNotFound
	}

	// Update fails with NotFound instead of creating the document.
	_, err := repo.client.Collection(repo.collection).Doc(clinic.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: clinic.Name},
		{Path: "address", Value: clinic.Address},
		{Path: "phone", Value: clinic.Phone},
		{Path: "email", Value: clinic.Email},
		{Path: "latitude", Value: clinic.Latitude},
		{Path: "longitude", Value: clinic.Longitude},
		{Path: "operatingHours", Value: clinic.OperatingHours},
		{Path: "verified", Value: clinic.Verified},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrClinicNotFound
		}

		return errors.Wrap(err, "failed to update clinic")
	}

	return nil
}

func (d *clinicDoc) toDomain(id string) *entity.Clinic {
	return &entity.Clinic{
		ID:             id,
		Name:           d.Name,
		Address:        d.Address,
		Phone:          d.Phone,
		Email:          d.Email,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		OperatingHours: d.OperatingHours,
		Verified:       d.Verified,
		CreatedAt:      d.CreatedAt,
	}
}

func fromClinicDomain(c *entity.Clinic) *clinicDoc {
	return &clinicDoc{
		Name:           c.Name,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		OperatingHours: c.OperatingHours,
		Verified:       c.Verified,
		CreatedAt:      c.CreatedAt,
	}
}
