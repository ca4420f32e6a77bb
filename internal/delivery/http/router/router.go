// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medlocator/internal/delivery/http/middleware"
	"medlocator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const clinicIDParam = "clinicId"

type RouterParams struct {
	fx.In

	LocatorHandler   *handler.LocatorHandler
	ClinicHandler    *handler.ClinicHandler
	InventoryHandler *handler.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locatorHandler   *handler.LocatorHandler
	clinicHandler    *handler.ClinicHandler
	inventoryHandler *handler.InventoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locatorHandler:   params.LocatorHandler,
		clinicHandler:    params.ClinicHandler,
		inventoryHandler: params.InventoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public medicine search
	medicineGroup := e.Group("/medicines")
	{
		medicineGroup.GET("/nearby", r.locatorHandler.FindNearby)
		medicineGroup.GET("/nearby.geojson", r.locatorHandler.FindNearbyGeoJSON)
		medicineGroup.GET("/search", r.locatorHandler.Search)
	}

	// Writes need a token issued for the clinic in the path
	ownerOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireClinic(clinicIDParam),
	}

	clinicGroup := e.Group("/clinics")
	{
		clinicGroup.GET("", r.clinicHandler.ListClinics)
		clinicGroup.POST("", r.clinicHandler.CreateClinic)
		clinicGroup.GET("/:clinicId", r.clinicHandler.GetClinic)
		clinicGroup.PATCH("/:clinicId", r.clinicHandler.UpdateClinic, ownerOnly...)
		clinicGroup.GET("/:clinicId/qrcode", r.clinicHandler.GetClinicQRCode)
	}

	inventoryGroup := e.Group("/clinics/:clinicId/inventory")
	{
		inventoryGroup.GET("", r.inventoryHandler.GetClinicInventory)
		inventoryGroup.POST("", r.inventoryHandler.AddInventoryItem, ownerOnly...)
		inventoryGroup.PATCH("/:itemId", r.inventoryHandler.UpdateInventoryItem, ownerOnly...)
		inventoryGroup.DELETE("/:itemId", r.inventoryHandler.DeleteInventoryItem, ownerOnly...)
	}
}
