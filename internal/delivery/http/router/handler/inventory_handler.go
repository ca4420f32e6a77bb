package handler

import (
	"log/slog"
	"net/http"

	"medlocator/internal/delivery/http/response"
	"medlocator/internal/domain/entity"
	"medlocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for clinic inventory handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// AddInventoryItemRequest represents the request body for adding stock
type AddInventoryItemRequest struct {
	MedicineName string   `json:"medicine_name" validate:"notblank"`
	Dosage       string   `json:"dosage"`
	Quantity     int      `json:"quantity" validate:"gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// UpdateInventoryItemRequest represents the request body for a partial stock update
type UpdateInventoryItemRequest struct {
	MedicineName *string  `json:"medicine_name,omitempty" validate:"omitempty,notblank"`
	Dosage       *string  `json:"dosage,omitempty"`
	Quantity     *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// GetClinicInventory handles GET /clinics/:clinicId/inventory
func (h *InventoryHandler) GetClinicInventory(c echo.Context) error {
	items, err := h.inventoryUC.GetClinicInventory(c.Request().Context(), c.Param("clinicId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if items == nil {
		items = []*entity.InventoryItem{}
	}

	return response.Success(c, http.StatusOK, items, "Inventory retrieved successfully")
}

// AddInventoryItem handles POST /clinics/:clinicId/inventory
func (h *InventoryHandler) AddInventoryItem(c echo.Context) error {
	var req AddInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid inventory input", err.Error())
	}

	item, err := h.inventoryUC.AddInventoryItem(c.Request().Context(), c.Param("clinicId"), &usecase.AddInventoryItemInput{
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Quantity:     req.Quantity,
		Price:        req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Inventory item added successfully")
}

// UpdateInventoryItem handles PATCH /clinics/:clinicId/inventory/:itemId
func (h *InventoryHandler) UpdateInventoryItem(c echo.Context) error {
	var req UpdateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid inventory input", err.Error())
	}

	item, err := h.inventoryUC.UpdateInventoryItem(c.Request().Context(), c.Param("clinicId"), c.Param("itemId"), &usecase.UpdateInventoryItemInput{
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Quantity:     req.Quantity,
		Price:        req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Inventory item updated successfully")
}

// DeleteInventoryItem handles DELETE /clinics/:clinicId/inventory/:itemId
func (h *InventoryHandler) DeleteInventoryItem(c echo.Context) error {
	if err := h.inventoryUC.DeleteInventoryItem(c.Request().Context(), c.Param("clinicId"), c.Param("itemId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Inventory item deleted successfully")
}
