package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medlocator/config"
	"medlocator/internal/delivery/http/middleware"
	"medlocator/internal/delivery/http/router/handler"
	"medlocator/internal/delivery/http/validator"
	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/service"
	mockSvc "medlocator/internal/mocks/service"
	mockUsecase "medlocator/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	e           *echo.Echo
	clinicUC    *mockUsecase.MockClinicUsecase
	inventoryUC *mockUsecase.MockInventoryUsecase
	tokenSvc    *mockSvc.MockTokenService
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.DiscardHandler)
	locatorUC := mockUsecase.NewMockMedicineLocatorUsecase(t)
	clinicUC := mockUsecase.NewMockClinicUsecase(t)
	inventoryUC := mockUsecase.NewMockInventoryUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	r := NewRouter(RouterParams{
		LocatorHandler: handler.NewLocatorHandler(handler.LocatorHandlerParams{
			LocatorUC: locatorUC,
			Config:    &config.Config{},
			Logger:    logger,
		}),
		ClinicHandler: handler.NewClinicHandler(handler.ClinicHandlerParams{
			ClinicUC: clinicUC,
			TokenSvc: tokenSvc,
			Logger:   logger,
		}),
		InventoryHandler: handler.NewInventoryHandler(handler.InventoryHandlerParams{
			InventoryUC: inventoryUC,
			Logger:      logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return routerFixtures{e: e, clinicUC: clinicUC, inventoryUC: inventoryUC, tokenSvc: tokenSvc}
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	fx := createTestRouter(t)

	rec := serve(fx.e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_PublicClinicRead(t *testing.T) {
	fx := createTestRouter(t)

	fx.inventoryUC.EXPECT().GetClinicInventory(mock.Anything, "clinic-1").Return(nil, nil)

	rec := serve(fx.e, http.MethodGet, "/clinics/clinic-1/inventory", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_OwnerRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{method: http.MethodPatch, target: "/clinics/clinic-1"},
		{method: http.MethodPost, target: "/clinics/clinic-1/inventory"},
		{method: http.MethodPatch, target: "/clinics/clinic-1/inventory/item-1"},
		{method: http.MethodDelete, target: "/clinics/clinic-1/inventory/item-1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			fx := createTestRouter(t)

			rec := serve(fx.e, route.method, route.target, "", `{}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
		})
	}
}

func TestRouter_OwnerRoutes_TokenForOtherClinic(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{ClinicID: "clinic-2"}, nil)

	rec := serve(fx.e, http.MethodDelete, "/clinics/clinic-1/inventory/item-1", "tok", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "CLINIC_ACCESS_DENIED")
}

func TestRouter_OwnerRoutes_InvalidToken(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

	rec := serve(fx.e, http.MethodPatch, "/clinics/clinic-1", "forged", `{"name":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestRouter_OwnerRoutes_MatchingToken(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{ClinicID: "clinic-1"}, nil)
	fx.clinicUC.EXPECT().
		UpdateClinic(mock.Anything, "clinic-1", mock.Anything).
		Return(&entity.Clinic{ID: "clinic-1", Name: "x"}, nil)

	rec := serve(fx.e, http.MethodPatch, "/clinics/clinic-1", "tok", `{"name":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
