package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"medlocator/internal/domain/entity"
	domainerrors "medlocator/internal/domain/errors"
	mockSvc "medlocator/internal/mocks/service"
	mockUsecase "medlocator/internal/mocks/usecase"
	"medlocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clinicHandlerFixtures struct {
	e        *echo.Echo
	clinicUC *mockUsecase.MockClinicUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestClinicHandler(t *testing.T) clinicHandlerFixtures {
	clinicUC := mockUsecase.NewMockClinicUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewClinicHandler(ClinicHandlerParams{
		ClinicUC: clinicUC,
		TokenSvc: tokenSvc,
		Logger:   slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/clinics", h.ListClinics)
	e.POST("/clinics", h.CreateClinic)
	e.GET("/clinics/:clinicId", h.GetClinic)
	e.PATCH("/clinics/:clinicId", h.UpdateClinic)
	e.GET("/clinics/:clinicId/qrcode", h.GetClinicQRCode)

	return clinicHandlerFixtures{e: e, clinicUC: clinicUC, tokenSvc: tokenSvc}
}

func TestClinicHandler_CreateClinic(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().
		CreateClinic(mock.Anything, mock.MatchedBy(func(input *usecase.CreateClinicInput) bool {
			return input.Name == "Harbor Clinic" && input.Latitude == 25.03 && input.Longitude == 121.56
		})).
		Return(&entity.Clinic{ID: "clinic-1", Name: "Harbor Clinic"}, nil)
	fx.tokenSvc.EXPECT().GenerateClinicToken("clinic-1").Return("signed.jwt.token", nil)
	fx.tokenSvc.EXPECT().TokenDuration().Return(time.Hour)

	rec := doRequest(fx.e, http.MethodPost, "/clinics",
		`{"name":"Harbor Clinic","address":"1 Pier Rd","latitude":25.03,"longitude":121.56}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data CreateClinicResponse
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &data))
	assert.Equal(t, "clinic-1", data.Clinic.ID)
	assert.Equal(t, "signed.jwt.token", data.AccessToken)
	assert.Equal(t, int64(3600), data.ExpiresIn)
}

func TestClinicHandler_CreateClinic_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "malformed json", body: `{"name":`, wantCode: "INVALID_INPUT"},
		{name: "blank name", body: `{"name":" ","address":"a"}`, wantCode: "VALIDATION_ERROR"},
		{name: "bad email", body: `{"name":"n","address":"a","email":"nope"}`, wantCode: "VALIDATION_ERROR"},
		{name: "longitude out of range", body: `{"name":"n","address":"a","longitude":200}`, wantCode: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClinicHandler(t)

			rec := doRequest(fx.e, http.MethodPost, "/clinics", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeResponse(t, rec).Error.Code)
		})
	}
}

func TestClinicHandler_CreateClinic_TokenFailure(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().
		CreateClinic(mock.Anything, mock.Anything).
		Return(&entity.Clinic{ID: "clinic-1"}, nil)
	fx.tokenSvc.EXPECT().GenerateClinicToken("clinic-1").Return("", errors.New("signing key unavailable"))

	rec := doRequest(fx.e, http.MethodPost, "/clinics", `{"name":"n","address":"a"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeResponse(t, rec).Error.Code)
}

func TestClinicHandler_ListClinics_Empty(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().ListClinics(mock.Anything).Return(nil, nil)

	rec := doRequest(fx.e, http.MethodGet, "/clinics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeResponse(t, rec).Data))
}

func TestClinicHandler_GetClinic_NotFound(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().GetClinic(mock.Anything, "missing").Return(nil, domainerrors.ErrClinicNotFound)

	rec := doRequest(fx.e, http.MethodGet, "/clinics/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CLINIC_NOT_FOUND", decodeResponse(t, rec).Error.Code)
}

func TestClinicHandler_UpdateClinic(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().
		UpdateClinic(mock.Anything, "clinic-1", mock.MatchedBy(func(input *usecase.UpdateClinicInput) bool {
			return input.Name != nil && *input.Name == "Renamed" && input.Address == nil
		})).
		Return(&entity.Clinic{ID: "clinic-1", Name: "Renamed"}, nil)

	rec := doRequest(fx.e, http.MethodPatch, "/clinics/clinic-1", `{"name":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data entity.Clinic
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &data))
	assert.Equal(t, "Renamed", data.Name)
}

func TestClinicHandler_UpdateClinic_InvalidLatitude(t *testing.T) {
	fx := createTestClinicHandler(t)

	rec := doRequest(fx.e, http.MethodPatch, "/clinics/clinic-1", `{"latitude":-95}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClinicHandler_GetClinicQRCode(t *testing.T) {
	fx := createTestClinicHandler(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.clinicUC.EXPECT().GenerateClinicQR(mock.Anything, "clinic-1").Return(png, nil)

	rec := doRequest(fx.e, http.MethodGet, "/clinics/clinic-1/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimePNG, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestClinicHandler_GetClinicQRCode_EncoderFailure(t *testing.T) {
	fx := createTestClinicHandler(t)

	fx.clinicUC.EXPECT().
		GenerateClinicQR(mock.Anything, "clinic-1").
		Return(nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage("content too long"))

	rec := doRequest(fx.e, http.MethodGet, "/clinics/clinic-1/qrcode", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "QRCODE_GENERATION_FAILED", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
