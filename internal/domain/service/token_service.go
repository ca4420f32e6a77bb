package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by clinic access tokens.
type Claims struct {
	ClinicID string `json:"clinic_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating clinic access tokens.
type TokenService interface {
	// GenerateClinicToken issues a signed access token scoped to one clinic.
	GenerateClinicToken(clinicID string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
