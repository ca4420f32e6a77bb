package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"medlocator/config"
	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	mockUsecase "medlocator/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocatorTestServer(t *testing.T, locatorCfg *config.LocatorConfig) (*echo.Echo, *mockUsecase.MockMedicineLocatorUsecase) {
	locatorUC := mockUsecase.NewMockMedicineLocatorUsecase(t)
	h := NewLocatorHandler(LocatorHandlerParams{
		LocatorUC: locatorUC,
		Config:    &config.Config{Locator: locatorCfg},
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/medicines/nearby", h.FindNearby)
	e.GET("/medicines/nearby.geojson", h.FindNearbyGeoJSON)
	e.GET("/medicines/search", h.Search)

	return e, locatorUC
}

func sampleLocations() []*entity.MedicineLocation {
	price := 4.2

	return []*entity.MedicineLocation{
		{
			Clinic:     &entity.Clinic{ID: "c1", Name: "Near", Latitude: 10, Longitude: 20},
			Inventory:  &entity.InventoryItem{ID: "i1", ClinicID: "c1", MedicineName: "Amoxicillin", Quantity: 3, Price: &price},
			DistanceKm: 1.5,
		},
		{
			Clinic:     &entity.Clinic{ID: "c2", Name: "Far", Latitude: 11, Longitude: 21},
			Inventory:  &entity.InventoryItem{ID: "i2", ClinicID: "c2", MedicineName: "Amoxicillin", Quantity: 9},
			DistanceKm: 7.25,
		},
	}
}

func TestLocatorHandler_FindNearby(t *testing.T) {
	e, locatorUC := newLocatorTestServer(t, nil)

	locatorUC.EXPECT().
		FindNearbyMedicine(mock.Anything, "amox", 10.0, 20.0, 12.5).
		Return(sampleLocations(), nil)

	rec := doRequest(e, http.MethodGet, "/medicines/nearby?q=amox&lat=10&lng=20&radius=12.5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	var data []*entity.MedicineLocation
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "c1", data[0].Clinic.ID)
	assert.InDelta(t, 1.5, data[0].DistanceKm, 1e-9)
}

func TestLocatorHandler_FindNearby_DefaultRadius(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.LocatorConfig
		wantRadius float64
	}{
		{name: "built-in default", cfg: nil, wantRadius: 50},
		{name: "configured default", cfg: &config.LocatorConfig{DefaultRadiusKm: 5}, wantRadius: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, locatorUC := newLocatorTestServer(t, tt.cfg)
			locatorUC.EXPECT().
				FindNearbyMedicine(mock.Anything, "zinc", 1.0, 2.0, tt.wantRadius).
				Return(nil, nil)

			rec := doRequest(e, http.MethodGet, "/medicines/nearby?q=zinc&lat=1&lng=2", "")
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decodeResponse(t, rec)
			assert.JSONEq(t, `[]`, string(resp.Data))
		})
	}
}

func TestLocatorHandler_FindNearby_InvalidQuery(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantCode    string
		wantDetails string
	}{
		{name: "missing lat", target: "/medicines/nearby?q=x&lng=2", wantCode: "VALIDATION_FAILED", wantDetails: "lat is required"},
		{name: "non-numeric lng", target: "/medicines/nearby?q=x&lat=1&lng=east", wantCode: "VALIDATION_FAILED", wantDetails: "lng must be a number"},
		{name: "latitude out of range", target: "/medicines/nearby?q=x&lat=91&lng=2", wantCode: "VALIDATION_FAILED", wantDetails: "Latitude must be <= 90"},
		{name: "blank query", target: "/medicines/nearby?q=%20%20&lat=1&lng=2", wantCode: "VALIDATION_FAILED", wantDetails: "Query is required"},
		{name: "negative radius", target: "/medicines/nearby?q=x&lat=1&lng=2&radius=-1", wantCode: "VALIDATION_FAILED", wantDetails: "RadiusKm must be >= 0"},
		{name: "radius above maximum", target: "/medicines/nearby?q=x&lat=1&lng=2&radius=500", wantCode: "RADIUS_TOO_LARGE", wantDetails: "radius must be <= 100 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newLocatorTestServer(t, &config.LocatorConfig{MaxRadiusKm: 100})

			rec := doRequest(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, tt.wantDetails)
		})
	}
}

func TestLocatorHandler_FindNearby_StoreUnavailable(t *testing.T) {
	e, locatorUC := newLocatorTestServer(t, nil)

	locatorUC.EXPECT().
		FindNearbyMedicine(mock.Anything, "x", 1.0, 2.0, 50.0).
		Return(nil, domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "failed to list inventory"))

	rec := doRequest(e, http.MethodGet, "/medicines/nearby?q=x&lat=1&lng=2", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
	assert.Empty(t, resp.Data)
}

func TestLocatorHandler_FindNearbyGeoJSON(t *testing.T) {
	e, locatorUC := newLocatorTestServer(t, nil)

	locatorUC.EXPECT().
		FindNearbyMedicine(mock.Anything, "amox", 10.0, 20.0, 50.0).
		Return(sampleLocations(), nil)

	rec := doRequest(e, http.MethodGet, "/medicines/nearby.geojson?q=amox&lat=10&lng=20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeGeoJSON, rec.Header().Get(echo.HeaderContentType))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, orb.Point{20, 10}, first.Geometry)
	assert.Equal(t, "Near", first.Properties["clinic_name"])
	assert.InDelta(t, 4.2, first.Properties["price"], 1e-9)
	assert.Equal(t, "c2", fc.Features[1].Properties["clinic_id"])
	assert.NotContains(t, fc.Features[1].Properties, "price")
}

func TestLocatorHandler_FindNearbyGeoJSON_InvalidQuery(t *testing.T) {
	e, _ := newLocatorTestServer(t, nil)

	rec := doRequest(e, http.MethodGet, "/medicines/nearby.geojson?q=amox", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocatorHandler_Search(t *testing.T) {
	e, locatorUC := newLocatorTestServer(t, nil)

	locatorUC.EXPECT().
		SearchMedicine(mock.Anything, "ibu").
		Return(sampleLocations()[:1], nil)

	rec := doRequest(e, http.MethodGet, "/medicines/search?q=ibu", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data []*entity.MedicineLocation
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &data))
	assert.Len(t, data, 1)
}

func TestLocatorHandler_Search_BlankQuery(t *testing.T) {
	e, _ := newLocatorTestServer(t, nil)

	rec := doRequest(e, http.MethodGet, "/medicines/search?q=", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeResponse(t, rec).Error.Code)
}
