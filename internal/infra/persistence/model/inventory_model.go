package model

import (
	"time"
)

// InventoryItemModel is the GORM-specific struct for the 'clinic_inventory' table.
type InventoryItemModel struct {
	ID           string       `gorm:"type:uuid;primaryKey"`
	ClinicID     string       `gorm:"type:uuid;not null;index:idx_clinic_inventory_on_clinic"`
	Clinic       *ClinicModel `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	MedicineName string       `gorm:"type:varchar(255);not null"`
	Dosage       string       `gorm:"type:varchar(100);not null;default:''"`
	Quantity     int          `gorm:"not null;default:0;check:chk_clinic_inventory_quantity,quantity >= 0"`
	Price        *float64     `gorm:"type:decimal(10,2);check:chk_clinic_inventory_price,price IS NULL OR price >= 0"`
	LastUpdated  time.Time    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "clinic_inventory"
}
