package ingest

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Image is a decoded, type-checked image upload.
type Image struct {
	Data     []byte
	MimeType string
}

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

// DecodeImage decodes a base64 image payload, with or without a data
// URL prefix, and verifies it is an image format the vision models
// accept. The content type is sniffed from the bytes; a data URL's
// declared type is ignored.
func DecodeImage(encoded string) (*Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, &ErrUnreadableInput{Reason: "empty image upload"}
	}

	if strings.HasPrefix(encoded, "data:") {
		_, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, &ErrUnreadableInput{Reason: "malformed data URL"}
		}
		encoded = rest
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, &ErrUnreadableInput{Reason: "invalid base64 encoding", Err: err}
	}

	mime := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if mime.Is(allowed) {
			return &Image{Data: data, MimeType: allowed}, nil
		}
	}
	return nil, &ErrUnreadableInput{
		Reason: fmt.Sprintf("unsupported image type %s (want PNG, JPEG or WebP)", mime.String()),
	}
}
