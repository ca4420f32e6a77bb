package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "medlocator/internal/delivery/context"
	"medlocator/internal/delivery/http/response"
	"medlocator/internal/domain/entity"
	"medlocator/internal/domain/service"
	"medlocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimePNG = "image/png"

// ClinicHandlerParams holds dependencies for ClinicHandler, injected by Fx.
type ClinicHandlerParams struct {
	fx.In

	ClinicUC usecase.ClinicUsecase
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// ClinicHandler holds dependencies for clinic-related handlers
type ClinicHandler struct {
	clinicUC usecase.ClinicUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewClinicHandler is the constructor for ClinicHandler
func NewClinicHandler(params ClinicHandlerParams) *ClinicHandler {
	return &ClinicHandler{
		clinicUC: params.ClinicUC,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// CreateClinicRequest represents the request body for registering a clinic
type CreateClinicRequest struct {
	Name           string  `json:"name" validate:"notblank"`
	Address        string  `json:"address" validate:"notblank"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	OperatingHours string  `json:"operating_hours"`
}

// UpdateClinicRequest represents the request body for a partial clinic update
type UpdateClinicRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,notblank"`
	Address        *string  `json:"address,omitempty" validate:"omitempty,notblank"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	OperatingHours *string  `json:"operating_hours,omitempty"`
}

// CreateClinicResponse carries the new clinic and the token that manages it
type CreateClinicResponse struct {
	Clinic      *entity.Clinic `json:"clinic"`
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"` // seconds
}

// ListClinics handles GET /clinics
func (h *ClinicHandler) ListClinics(c echo.Context) error {
	clinics, err := h.clinicUC.ListClinics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if clinics == nil {
		clinics = []*entity.Clinic{}
	}

	return response.Success(c, http.StatusOK, clinics, "Clinics retrieved successfully")
}

// CreateClinic handles POST /clinics and issues the clinic's first access token
func (h *ClinicHandler) CreateClinic(c echo.Context) error {
	var req CreateClinicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clinic input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid clinic input", err.Error())
	}

	ctx := c.Request().Context()
	clinic, err := h.clinicUC.CreateClinic(ctx, &usecase.CreateClinicInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		OperatingHours: req.OperatingHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.tokenSvc.GenerateClinicToken(clinic.ID)
	if err != nil {
		// The clinic exists; an operator can still issue a token with medctl.
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to issue clinic token",
			slog.String("clinic_id", clinic.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to issue clinic token")
	}

	return response.Success(c, http.StatusCreated, &CreateClinicResponse{
		Clinic:      clinic,
		AccessToken: token,
		ExpiresIn:   int64(h.tokenSvc.TokenDuration().Seconds()),
	}, "Clinic created successfully")
}

// GetClinic handles GET /clinics/:clinicId
func (h *ClinicHandler) GetClinic(c echo.Context) error {
	clinic, err := h.clinicUC.GetClinic(c.Request().Context(), c.Param("clinicId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clinic, "Clinic retrieved successfully")
}

// UpdateClinic handles PATCH /clinics/:clinicId
func (h *ClinicHandler) UpdateClinic(c echo.Context) error {
	var req UpdateClinicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clinic input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid clinic input", err.Error())
	}

	clinic, err := h.clinicUC.UpdateClinic(c.Request().Context(), c.Param("clinicId"), &usecase.UpdateClinicInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		OperatingHours: req.OperatingHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clinic, "Clinic updated successfully")
}

// GetClinicQRCode handles GET /clinics/:clinicId/qrcode
func (h *ClinicHandler) GetClinicQRCode(c echo.Context) error {
	png, err := h.clinicUC.GenerateClinicQR(c.Request().Context(), c.Param("clinicId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimePNG, png)
}
