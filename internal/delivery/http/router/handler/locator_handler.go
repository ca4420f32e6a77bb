package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"medlocator/config"
	"medlocator/internal/delivery/http/response"
	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// LocatorHandlerParams holds dependencies for LocatorHandler, injected by Fx.
type LocatorHandlerParams struct {
	fx.In

	LocatorUC usecase.MedicineLocatorUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// LocatorHandler serves the public medicine search endpoints
type LocatorHandler struct {
	locatorUC       usecase.MedicineLocatorUsecase
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// NewLocatorHandler is the constructor for LocatorHandler
func NewLocatorHandler(params LocatorHandlerParams) *LocatorHandler {
	h := &LocatorHandler{
		locatorUC:       params.LocatorUC,
		defaultRadiusKm: usecase.DefaultSearchRadiusKm,
		logger:          params.Logger,
	}
	if cfg := params.Config.Locator; cfg != nil {
		if cfg.DefaultRadiusKm > 0 {
			h.defaultRadiusKm = cfg.DefaultRadiusKm
		}
		h.maxRadiusKm = cfg.MaxRadiusKm
	}

	return h
}

// NearbyQuery holds the validated query parameters of a nearby search
type NearbyQuery struct {
	Query     string  `validate:"notblank"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
	RadiusKm  float64 `validate:"gte=0"`
}

// SearchQuery holds the validated query parameters of a name-only search
type SearchQuery struct {
	Query string `validate:"notblank"`
}

// FindNearby handles GET /medicines/nearby
func (h *LocatorHandler) FindNearby(c echo.Context) error {
	results, err := h.findNearby(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Nearby medicines retrieved successfully")
}

// FindNearbyGeoJSON handles GET /medicines/nearby.geojson. Each match becomes a
// Point feature at its clinic, in the same nearest-first order.
func (h *LocatorHandler) FindNearbyGeoJSON(c echo.Context) error {
	results, err := h.findNearby(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := toFeatureCollection(results).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode GeoJSON")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// Search handles GET /medicines/search
func (h *LocatorHandler) Search(c echo.Context) error {
	var req SearchQuery
	if err := echo.QueryParamsBinder(c).String("q", &req.Query).BindError(); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid search parameters")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid search parameters", err.Error())
	}

	results, err := h.locatorUC.SearchMedicine(c.Request().Context(), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(results), "Medicines retrieved successfully")
}

func (h *LocatorHandler) findNearby(c echo.Context) ([]*entity.MedicineLocation, error) {
	req, err := h.parseNearbyQuery(c)
	if err != nil {
		return nil, err
	}

	results, err := h.locatorUC.FindNearbyMedicine(c.Request().Context(), req.Query, req.Latitude, req.Longitude, req.RadiusKm)
	if err != nil {
		return nil, err
	}

	return nonNil(results), nil
}

// parseNearbyQuery applies the default radius before binding, so radius stays optional.
func (h *LocatorHandler) parseNearbyQuery(c echo.Context) (*NearbyQuery, error) {
	req := &NearbyQuery{RadiusKm: h.defaultRadiusKm}
	err := echo.QueryParamsBinder(c).
		String("q", &req.Query).
		MustFloat64("lat", &req.Latitude).
		MustFloat64("lng", &req.Longitude).
		Float64("radius", &req.RadiusKm).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(bindingDetails(err))
	}

	if err := c.Validate(req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if h.maxRadiusKm > 0 && req.RadiusKm > h.maxRadiusKm {
		return nil, domainerrors.ErrSearchRadiusTooLarge.WithDetails(
			fmt.Sprintf("radius must be <= %g km", h.maxRadiusKm),
		)
	}

	return req, nil
}

func toFeatureCollection(results []*entity.MedicineLocation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range results {
		f := geojson.NewFeature(r.Clinic.Location())
		f.ID = r.Inventory.ID
		f.Properties = geojson.Properties{
			"clinic_id":     r.Clinic.ID,
			"clinic_name":   r.Clinic.Name,
			"address":       r.Clinic.Address,
			"phone":         r.Clinic.Phone,
			"medicine_name": r.Inventory.MedicineName,
			"dosage":        r.Inventory.Dosage,
			"quantity":      r.Inventory.Quantity,
			"distance_km":   r.DistanceKm,
		}
		if r.Inventory.Price != nil {
			f.Properties["price"] = *r.Inventory.Price
		}
		fc.Append(f)
	}

	return fc
}

// nonNil keeps empty results encoded as [] rather than null.
func nonNil(results []*entity.MedicineLocation) []*entity.MedicineLocation {
	if results == nil {
		return []*entity.MedicineLocation{}
	}

	return results
}

func bindingDetails(err error) string {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		if len(bindErr.Values) == 0 {
			return bindErr.Field + " is required"
		}

		return bindErr.Field + " must be a number"
	}

	return err.Error()
}
