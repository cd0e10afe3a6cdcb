package services

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// TipURL is the link baked into a room's QR code.
func TipURL(baseURL string, roomID uint) string {
	return fmt.Sprintf("%s/tip/%d", baseURL, roomID)
}

// GenerateRoomQR renders the tip link for a room as a PNG.
func GenerateRoomQR(baseURL string, roomID uint, size int) ([]byte, error) {
	if size <= 0 {
		size = 512
	}
	return qrcode.Encode(TipURL(baseURL, roomID), qrcode.Medium, size)
}
