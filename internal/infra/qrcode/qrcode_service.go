package qrcode

import (
	"net/url"
	"strings"

	"medlocator/config"
	"medlocator/internal/domain/service"
	"medlocator/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	clinicPathToken = "/clinics/"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.BaseURL, qrCfg.Size, qrCfg.ErrorCorrectionLevel)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateClinicQR encodes the clinic's public URL as a PNG
func (s *qrcodeService) GenerateClinicQR(clinicID string) ([]byte, error) {
	if clinicID == "" {
		return nil, errors.New("clinic ID is required")
	}

	content := s.baseURL + clinicPathToken + url.PathEscape(clinicID)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseClinicQR extracts the clinic ID from scanned QR content
func (s *qrcodeService) ParseClinicQR(qrData string) (string, error) {
	idx := strings.LastIndex(qrData, clinicPathToken)
	if idx < 0 {
		return "", errors.Errorf("QR content is not a clinic link: %q", qrData)
	}

	escaped := strings.TrimRight(qrData[idx+len(clinicPathToken):], "/")
	if escaped == "" || strings.Contains(escaped, "/") {
		return "", errors.Errorf("QR content has no clinic ID: %q", qrData)
	}

	clinicID, err := url.PathUnescape(escaped)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode clinic ID")
	}

	return clinicID, nil
}
