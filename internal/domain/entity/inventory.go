package entity

import "time"

// InventoryItem is one stocked medicine entry of a clinic.
type InventoryItem struct {
	ID           string    `json:"id"`              // Store-assigned identifier.
	ClinicID     string    `json:"clinic_id"`       // The clinic that owns this entry.
	MedicineName string    `json:"medicine_name"`   // Medicine name as entered by the clinic.
	Dosage       string    `json:"dosage"`          // Dosage description, e.g. "500mg".
	Quantity     int       `json:"quantity"`        // Units in stock, never negative.
	Price        *float64  `json:"price,omitempty"` // Optional unit price.
	LastUpdated  time.Time `json:"last_updated"`    // Timestamp of the last stock change.
}

// InStock reports whether at least one unit is available.
func (i *InventoryItem) InStock() bool {
	return i.Quantity > 0
}
