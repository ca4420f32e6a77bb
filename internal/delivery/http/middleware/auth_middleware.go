package middleware

import (
	"strings"

	"medlocator/internal/delivery/http/response"
	"medlocator/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const contextKeyClinicID = "clinicID"

// AuthMiddleware provides middleware for clinic token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its clinic ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.ClinicID == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Clinic ID missing from token")
		}

		c.Set(contextKeyClinicID, claims.ClinicID)

		return next(c)
	}
}

// RequireClinic checks that the authenticated clinic matches the named path parameter.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireClinic(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clinicID, ok := GetClinicID(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "Clinic ID not found in context")
			}

			if clinicID != c.Param(param) {
				return response.Forbidden(c, "CLINIC_ACCESS_DENIED", "Token does not grant access to this clinic")
			}

			return next(c)
		}
	}
}

// GetClinicID returns the clinic ID set by Authenticate.
func GetClinicID(c echo.Context) (string, bool) {
	clinicID, ok := c.Get(contextKeyClinicID).(string)

	return clinicID, ok && clinicID != ""
}
