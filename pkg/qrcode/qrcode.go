package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Generate renders a registration code as a PNG. The payload is the bare
// code string; the check-in scanner looks the registration up by code.
func Generate(registrationCode string, size int) ([]byte, error) {
	png, err := qrcode.Encode(registrationCode, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
