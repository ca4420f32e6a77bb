package firestore

import (
	"context"
	"math"
	"time"

	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/repository"
	"medlocator/internal/errors"

	"cloud.google.com/go/firestore"
)

// inventoryDoc is the document shape of the clinicInventory collection.
// Quantity is decoded as a float because clients may write it as a double.
type inventoryDoc struct {
	ClinicID     string    `firestore:"clinicId"`
	MedicineName string    `firestore:"medicineName"`
	Dosage       string    `firestore:"dosage"`
	Quantity     float64   `firestore:"quantity"`
	Price        *float64  `firestore:"price"`
	LastUpdated  time.Time `firestore:"lastUpdated"`
}

type inventoryRepository struct {
	client     *firestore.Client
	collection string
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(client *firestore.Client, cols Collections) repository.InventoryRepository {
	return &inventoryRepository{client: client, collection: cols.Inventory}
}

func (repo *inventoryRepository) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	doc := fromInventoryDomain(item)

	if item.ID != "" {
		if _, err := repo.client.Collection(repo.collection).Doc(item.ID).Create(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to create inventory item")
		}

		return nil
	}

	ref, _, err := repo.client.Collection(repo.collection).Add(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to create inventory item")
	}
	item.ID = ref.ID

	return nil
}

func (repo *inventoryRepository) FindInventoryItemByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if !validDocID(id) {
		return nil, repository.ErrInventoryItemNotFound
	}

	snap, err := repo.client.Collection(repo.collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by ID")
	}

	return decodeInventory(snap)
}

func (repo *inventoryRepository) FindInventoryByClinic(ctx context.Context, clinicID string) ([]*entity.InventoryItem, error) {
	snaps, err := repo.client.Collection(repo.collection).
		Where("clinicId", "==", clinicID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by clinic")
	}

	return decodeInventories(snaps)
}

// ListInventory reads the whole collection; matching happens in the locator.
func (repo *inventoryRepository) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	snaps, err := repo.client.Collection(repo.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return decodeInventories(snaps)
}

func (repo *inventoryRepository) UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	if !validDocID(item.ID) {
		return repository.ErrInventoryItemNotFound
	}

	_, err := repo.client.Collection(repo.collection).Doc(item.ID).Update(ctx, []firestore.Update{
		{Path: "medicineName", Value: item.MedicineName},
		{Path: "dosage", Value: item.Dosage},
		{Path: "quantity", Value: int64(item.Quantity)},
		{Path: "price", Value: item.Price},
		{Path: "lastUpdated", Value: item.LastUpdated},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrInventoryItemNotFound
		}

		return errors.Wrap(err, "failed to update inventory item")
	}

	return nil
}

func (repo *inventoryRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	if !validDocID(id) {
		return repository.ErrInventoryItemNotFound
	}

	if _, err := repo.client.Collection(repo.collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrInventoryItemNotFound
		}

		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}

func decodeInventory(snap *firestore.DocumentSnapshot) (*entity.InventoryItem, error) {
	var doc inventoryDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "inventory item %s has an unexpected shape", snap.Ref.ID)
	}

	return doc.toDomain(snap.Ref.ID), nil
}

func decodeInventories(snaps []*firestore.DocumentSnapshot) ([]*entity.InventoryItem, error) {
	items := make([]*entity.InventoryItem, 0, len(snaps))
	for _, snap := range snaps {
		item, err := decodeInventory(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (d *inventoryDoc) toDomain(id string) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:           id,
		ClinicID:     d.ClinicID,
		MedicineName: d.MedicineName,
		Dosage:       d.Dosage,
		Quantity:     quantityFromDoc(d.Quantity),
		Price:        d.Price,
		LastUpdated:  d.LastUpdated,
	}
}

// quantityFromDoc truncates fractional stock and clamps negatives to zero.
func quantityFromDoc(q float64) int {
	if q <= 0 || math.IsNaN(q) {
		return 0
	}

	return int(math.Floor(q))
}

func fromInventoryDomain(item *entity.InventoryItem) *inventoryDoc {
	return &inventoryDoc{
		ClinicID:     item.ClinicID,
		MedicineName: item.MedicineName,
		Dosage:       item.Dosage,
		Quantity:     float64(item.Quantity),
		Price:        item.Price,
		LastUpdated:  item.LastUpdated,
	}
}
