package handler

import (
	"net/http"

	"medlocator/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness only; it does not touch the record store.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
