// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"medlocator/config"
	"medlocator/internal/domain/service"
	"medlocator/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "medlocator"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Secret key for signing clinic tokens.
	ttl    time.Duration // Time-to-live for clinic tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}
	if ttl <= 0 {
		return nil, errors.New("auth token TTL must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateClinicToken signs a token whose clinic_id claim scopes it to one clinic.
func (s *jwtService) GenerateClinicToken(clinicID string) (string, error) {
	if clinicID == "" {
		return "", errors.New("clinic ID is required")
	}

	issuedAt := s.now()
	claims := service.Claims{
		ClinicID: clinicID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    tokenIssuer,
			Subject:   clinicID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign clinic token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid clinic token")
	}
	if !token.Valid {
		return nil, errors.New("invalid clinic token")
	}

	return claims, nil
}

// TokenDuration returns the configured clinic token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
