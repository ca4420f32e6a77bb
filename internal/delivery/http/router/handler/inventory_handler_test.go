package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	mockUsecase "medlocator/internal/mocks/usecase"
	"medlocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInventoryHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockInventoryUsecase) {
	inventoryUC := mockUsecase.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(InventoryHandlerParams{
		InventoryUC: inventoryUC,
		Logger:      slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/clinics/:clinicId/inventory", h.GetClinicInventory)
	e.POST("/clinics/:clinicId/inventory", h.AddInventoryItem)
	e.PATCH("/clinics/:clinicId/inventory/:itemId", h.UpdateInventoryItem)
	e.DELETE("/clinics/:clinicId/inventory/:itemId", h.DeleteInventoryItem)

	return e, inventoryUC
}

func TestInventoryHandler_AddInventoryItem(t *testing.T) {
	e, inventoryUC := createTestInventoryHandler(t)

	inventoryUC.EXPECT().
		AddInventoryItem(mock.Anything, "clinic-1", mock.MatchedBy(func(input *usecase.AddInventoryItemInput) bool {
			return input.MedicineName == "Paracetamol" && input.Quantity == 12 && input.Price != nil && *input.Price == 2.5
		})).
		Return(&entity.InventoryItem{ID: "item-1", ClinicID: "clinic-1", MedicineName: "Paracetamol", Quantity: 12}, nil)

	rec := doRequest(e, http.MethodPost, "/clinics/clinic-1/inventory",
		`{"medicine_name":"Paracetamol","dosage":"500mg","quantity":12,"price":2.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data entity.InventoryItem
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &data))
	assert.Equal(t, "item-1", data.ID)
}

func TestInventoryHandler_AddInventoryItem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "negative quantity", body: `{"medicine_name":"x","quantity":-1}`},
		{name: "negative price", body: `{"medicine_name":"x","quantity":1,"price":-3}`},
		{name: "missing name", body: `{"quantity":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestInventoryHandler(t)

			rec := doRequest(e, http.MethodPost, "/clinics/clinic-1/inventory", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decodeResponse(t, rec).Error.Code)
		})
	}
}

func TestInventoryHandler_GetClinicInventory(t *testing.T) {
	e, inventoryUC := createTestInventoryHandler(t)

	inventoryUC.EXPECT().
		GetClinicInventory(mock.Anything, "clinic-1").
		Return([]*entity.InventoryItem{{ID: "a"}, {ID: "b"}}, nil)

	rec := doRequest(e, http.MethodGet, "/clinics/clinic-1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data []*entity.InventoryItem
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &data))
	assert.Len(t, data, 2)
}

func TestInventoryHandler_UpdateInventoryItem_OwnershipViolation(t *testing.T) {
	e, inventoryUC := createTestInventoryHandler(t)

	inventoryUC.EXPECT().
		UpdateInventoryItem(mock.Anything, "clinic-1", "item-9", mock.AnythingOfType("*usecase.UpdateInventoryItemInput")).
		Return(nil, domainerrors.ErrInventoryOwnershipViolation.WithDetails("item-9 belongs to clinic-2"))

	rec := doRequest(e, http.MethodPatch, "/clinics/clinic-1/inventory/item-9", `{"quantity":0}`)
	require.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "INVENTORY_OWNERSHIP_VIOLATION", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}

func TestInventoryHandler_DeleteInventoryItem(t *testing.T) {
	e, inventoryUC := createTestInventoryHandler(t)

	inventoryUC.EXPECT().DeleteInventoryItem(mock.Anything, "clinic-1", "item-1").Return(nil)

	rec := doRequest(e, http.MethodDelete, "/clinics/clinic-1/inventory/item-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestInventoryHandler_DeleteInventoryItem_NotFound(t *testing.T) {
	e, inventoryUC := createTestInventoryHandler(t)

	inventoryUC.EXPECT().
		DeleteInventoryItem(mock.Anything, "clinic-1", "gone").
		Return(domainerrors.ErrInventoryItemNotFound)

	rec := doRequest(e, http.MethodDelete, "/clinics/clinic-1/inventory/gone", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVENTORY_ITEM_NOT_FOUND", decodeResponse(t, rec).Error.Code)
}
