package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePNG encodes content as a QR code PNG
	GeneratePNG(content string) ([]byte, error)
}
