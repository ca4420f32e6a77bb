package sqlite

import (
	"context"
	"database/sql"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const inventoryColumns = `id, clinic_id, medicine_name, dosage, quantity, price, last_updated`

// inventoryRow is the column layout of the clinic_inventory table.
type inventoryRow struct {
	ID           string          `db:"id"`
	ClinicID     string          `db:"clinic_id"`
	MedicineName string          `db:"medicine_name"`
	Dosage       string          `db:"dosage"`
	Quantity     int             `db:"quantity"`
	Price        sql.NullFloat64 `db:"price"`
	LastUpdated  string          `db:"last_updated"`
}

type inventoryRepository struct {
	db *sqlx.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *sqlx.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (repo *inventoryRepository) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := repo.db.NamedExecContext(ctx,
		`INSERT INTO clinic_inventory (`+inventoryColumns+`)
		VALUES (:id, :clinic_id, :medicine_name, :dosage, :quantity, :price, :last_updated)`,
		fromInventoryDomain(item),
	)
	if err != nil {
		return translateWriteError(err, "failed to create inventory item")
	}

	return nil
}

func (repo *inventoryRepository) FindInventoryItemByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var row inventoryRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+inventoryColumns+` FROM clinic_inventory WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by ID")
	}

	return row.toDomain()
}

func (repo *inventoryRepository) FindInventoryByClinic(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error) {
	return repo.selectItems(ctx, "failed to find inventory by clinic",
		`SELECT `+inventoryColumns+` FROM clinic_inventory WHERE clinic_id = ? ORDER BY medicine_name ASC, id ASC`, clinicID)
}

func (repo *inventoryRepository) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	return repo.selectItems(ctx, "failed to list inventory",
		`SELECT `+inventoryColumns+` FROM clinic_inventory ORDER BY rowid ASC`)
}

func (repo *inventoryRepository) UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	result, err := repo.db.NamedExecContext(ctx,
		`UPDATE clinic_inventory SET
			medicine_name = :medicine_name, dosage = :dosage, quantity = :quantity,
			price = :price, last_updated = :last_updated
		WHERE id = :id`,
		fromInventoryDomain(item),
	)
	if err != nil {
		return translateWriteError(err, "failed to update inventory item")
	}

	return requireAffected(result, repository.ErrInventoryItemNotFound)
}

func (repo *inventoryRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM clinic_inventory WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete inventory item")
	}

	return requireAffected(result, repository.ErrInventoryItemNotFound)
}

func (repo *inventoryRepository) selectItems(ctx context.Context, failure, query string, args ...any) ([]*entity.InventoryItem, error) {
	var rows []inventoryRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, failure)
	}

	items := make([]*entity.InventoryItem, 0, len(rows))
	for i := range rows {
		item, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *inventoryRow) toDomain() (*entity.InventoryItem, error) {
	lastUpdated, err := parseTime(r.LastUpdated)
	if err != nil {
		return nil, errors.Wrapf(err, "inventory item %s has malformed last_updated", r.ID)
	}

	var price *float64
	if r.Price.Valid {
		p := r.Price.Float64
		price = &p
	}

	return &entity.InventoryItem{
		ID:           r.ID,
		ClinicID:     r.ClinicID,
		MedicineName: r.MedicineName,
		Dosage:       r.Dosage,
		Quantity:     r.Quantity,
		Price:        price,
		LastUpdated:  lastUpdated,
	}, nil
}

func fromInventoryDomain(item *entity.InventoryItem) *inventoryRow {
	row := &inventoryRow{
		ID:           item.ID,
		ClinicID:     item.ClinicID,
		MedicineName: item.MedicineName,
		Dosage:       item.Dosage,
		Quantity:     item.Quantity,
		LastUpdated:  formatTime(item.LastUpdated),
	}
	if item.Price != nil {
		row.Price = sql.NullFloat64{Float64: *item.Price, Valid: true}
	}

	return row
}
