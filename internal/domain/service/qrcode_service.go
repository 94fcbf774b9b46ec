package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateResumeQR generates a QR code image encoding a resume link
	// for a boarding session.
	GenerateResumeQR(resumeURL string) ([]byte, error)
}
