package services

import (
	"encoding/base64"

	"catatan/app/apperrors"
)

// MaxImageBytes caps embedded images at 2 MiB of raw input.
const MaxImageBytes = 2 << 20

// EncodeImage base64-encodes raw upload bytes for storage in the note row.
// Bytes are accepted as-is; no format sniffing is performed.
func EncodeImage(data []byte) (string, error) {
	if len(data) > MaxImageBytes {
		return "", apperrors.ErrPayloadTooLarge
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
