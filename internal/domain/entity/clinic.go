// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Clinic is a facility that stocks medicines and publishes its inventory.
type Clinic struct {
	ID             string    `json:"id"`              // Store-assigned identifier.
	Name           string    `json:"name"`            // Display name of the clinic.
	Address        string    `json:"address"`         // Full, human-readable street address.
	Phone          string    `json:"phone"`           // Contact phone number.
	Email          string    `json:"email"`           // Contact email address.
	Latitude       float64   `json:"latitude"`        // The geographic latitude in degrees.
	Longitude      float64   `json:"longitude"`       // The geographic longitude in degrees.
	OperatingHours string    `json:"operating_hours"` // Free-form opening hours, e.g. "Mon-Fri 9-17".
	Verified       bool      `json:"verified"`        // Set by operators once the clinic is vetted.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of when this clinic was registered.
}

// Location returns the clinic position as an orb point (longitude, latitude).
func (c *Clinic) Location() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
