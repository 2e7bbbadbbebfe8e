package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
