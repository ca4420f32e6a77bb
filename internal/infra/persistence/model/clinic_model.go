package model

import (
	"time"
)

// ClinicModel is the GORM-specific struct for the 'clinics' table.
type ClinicModel struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:text;not null;default:''"`
	Phone          string    `gorm:"type:varchar(50);not null;default:''"`
	Email          string    `gorm:"type:varchar(255);not null;default:''"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	OperatingHours string    `gorm:"type:text;not null;default:''"`
	Verified       bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ClinicModel) TableName() string {
	return "clinics"
}
