package entity

// MedicineLocation pairs a matching inventory entry with the clinic that holds it.
// It is produced per search and never persisted.
type MedicineLocation struct {
	Clinic     *Clinic        `json:"clinic"`
	Inventory  *InventoryItem `json:"inventory"`
	DistanceKm float64        `json:"distance_km"` // Great-circle distance from the searcher, 0 when not computed.
}
