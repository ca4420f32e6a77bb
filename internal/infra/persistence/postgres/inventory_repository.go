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

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// CreateInventoryItem persists a stock entry, assigning its ID.
func (repo *inventoryRepository) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	itemM := fromInventoryDomain(item)

	if err := repo.db.WithContext(ctx).Omit("Clinic").Create(itemM).Error; err != nil {
		return translateWriteError(err, "failed to create inventory item")
	}

	return nil
}

// FindInventoryItemByID retrieves one stock entry.
func (repo *inventoryRepository) FindInventoryItemByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrInventoryItemNotFound
	}

	var itemM model.InventoryItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by ID")
	}

	return toInventoryDomain(&itemM), nil
}

// FindInventoryByClinic retrieves a clinic's stock entries.
func (repo *inventoryRepository) FindInventoryByClinic(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error) {
	if _, err := uuid.Parse(clinicID); err != nil {
		return []*entity.InventoryItem{}, nil
	}

	var itemModels []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Order("medicine_name ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by clinic")
	}

	return toInventoryDomains(itemModels), nil
}

// ListInventory returns the full inventory snapshot.
func (repo *inventoryRepository) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return toInventoryDomains(itemModels), nil
}

// UpdateInventoryItem overwrites the mutable stock fields.
func (repo *inventoryRepository) UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	if _, err := uuid.Parse(item.ID); err != nil {
		return repository.ErrInventoryItemNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"medicine_name": item.MedicineName,
			"dosage":        item.Dosage,
			"quantity":      item.Quantity,
			"price":         item.Price,
			"last_updated":  item.LastUpdated,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update inventory item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryItemNotFound
	}

	return nil
}

// DeleteInventoryItem removes a stock entry by its ID.
func (repo *inventoryRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrInventoryItemNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete inventory item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInventoryDomain(data *model.InventoryItemModel) *entity.InventoryItem {
	if data == nil {
		return nil
	}

	return &entity.InventoryItem{
		ID:           data.ID,
		ClinicID:     data.ClinicID,
		MedicineName: data.MedicineName,
		Dosage:       data.Dosage,
		Quantity:     data.Quantity,
		Price:        data.Price,
		LastUpdated:  data.LastUpdated,
	}
}

func toInventoryDomains(models []*model.InventoryItemModel) []*entity.InventoryItem {
	items := make([]*entity.InventoryItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toInventoryDomain(itemM))
	}

	return items
}

func fromInventoryDomain(data *entity.InventoryItem) *model.InventoryItemModel {
	if data == nil {
		return nil
	}

	return &model.InventoryItemModel{
		ID:           data.ID,
		ClinicID:     data.ClinicID,
		MedicineName: data.MedicineName,
		Dosage:       data.Dosage,
		Quantity:     data.Quantity,
		Price:        data.Price,
		LastUpdated:  data.LastUpdated,
	}
}
