package sqlite

import (
	"context"
	"database/sql"
	"time"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const clinicColumns = `id, name, address, phone, email, latitude, longitude, operating_hours, verified, created_at`

// clinicRow is the column layout of the clinics table.
type clinicRow struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Address        string  `db:"address"`
	Phone          string  `db:"phone"`
	Email          string  `db:"email"`
	Latitude       float64 `db:"latitude"`
	Longitude      float64 `db:"longitude"`
	OperatingHours string  `db:"operating_hours"`
	Verified       bool    `db:"verified"`
	CreatedAt      string  `db:"created_at"`
}

type clinicRepository struct {
	db *sqlx.DB
}

// NewClinicRepository is the constructor for clinicRepository.
func NewClinicRepository(db *sqlx.DB) repository.ClinicRepository {
	return &clinicRepository{db: db}
}

func (repo *clinicRepository) CreateClinic(ctx context.Context, clinic *entity.Clinic) error {
	if clinic.ID == "" {
		clinic.ID = uuid.New().String()
	}

	_, err := repo.db.NamedExecContext(ctx,
		`INSERT INTO clinics (`+clinicColumns+`)
		VALUES (:id, :name, :address, :phone, :email, :latitude, :longitude, :operating_hours, :verified, :created_at)`,
		fromClinicDomain(clinic),
	)
	if err != nil {
		return translateWriteError(err, "failed to create clinic")
	}

	return nil
}

func (repo *clinicRepository) FindClinicByID(ctx context.Context, id string) (*entity.Clinic, error) {
	var row clinicRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+clinicColumns+` FROM clinics WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrClinicNotFound
		}

		return nil, errors.Wrap(err, "failed to find clinic by ID")
	}

	return row.toDomain()
}

func (repo *clinicRepository) ListClinics(ctx context.Context) ([]*entity.Clinic, error) {
	var rows []clinicRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+clinicColumns+` FROM clinics ORDER BY created_at ASC, id ASC`); err != nil {
		return nil, errors.Wrap(err, "failed to list clinics")
	}

	clinics := make([]*entity.Clinic, 0, len(rows))
	for i := range rows {
		clinic, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		clinics = append(clinics, clinic)
	}

	return clinics, nil
}

func (repo *clinicRepository) UpdateClinic(ctx context.Context, clinic *entity.Clinic) error {
	result, err := repo.db.NamedExecContext(ctx,
		`UPDATE clinics SET
			name = :name, address = :address, phone = :phone, email = :email,
			latitude = :latitude, longitude = :longitude,
			operating_hours = :operating_hours, verified = :verified
		WHERE id = :id`,
		fromClinicDomain(clinic),
	)
	if err != nil {
		return translateWriteError(err, "failed to update clinic")
	}

	return requireAffected(result, repository.ErrClinicNotFound)
}

func (r *clinicRow) toDomain() (*entity.Clinic, error) {
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "clinic %s has malformed created_at", r.ID)
	}

	return &entity.Clinic{
		ID:             r.ID,
		Name:           r.Name,
		Address:        r.Address,
		Phone:          r.Phone,
		Email:          r.Email,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		OperatingHours: r.OperatingHours,
		Verified:       r.Verified,
		CreatedAt:      createdAt,
	}, nil
}

func fromClinicDomain(c *entity.Clinic) *clinicRow {
	return &clinicRow{
		ID:             c.ID,
		Name:           c.Name,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		OperatingHours: c.OperatingHours,
		Verified:       c.Verified,
		CreatedAt:      formatTime(c.CreatedAt),
	}
}

// Timestamps are stored as RFC 3339 text in UTC so they sort lexically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return t, nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
