package service

// QRCodeService defines the interface for clinic QR code generation and parsing
type QRCodeService interface {
	// GenerateClinicQR renders a PNG QR code pointing at the clinic's public page
	GenerateClinicQR(clinicID string) ([]byte, error)

	// ParseClinicQR extracts the clinic ID from QR code content
	ParseClinicQR(qrData string) (string, error)
}
