package ingest

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// Minimal byte prefixes that content sniffing recognizes.
var (
	pngBytes  = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)
)

func TestDecodeImage_PNG(t *testing.T) {
	img, err := DecodeImage(base64.StdEncoding.EncodeToString(pngBytes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MimeType != "image/png" {
		t.Errorf("mime type = %s, want image/png", img.MimeType)
	}
	if len(img.Data) != len(pngBytes) {
		t.Errorf("decoded %d bytes, want %d", len(img.Data), len(pngBytes))
	}
}

func TestDecodeImage_DataURL(t *testing.T) {
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegBytes)
	img, err := DecodeImage(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MimeType != "image/jpeg" {
		t.Errorf("mime type = %s, want image/jpeg", img.MimeType)
	}
}

func TestDecodeImage_SniffsRealType(t *testing.T) {
	// The data URL claims PNG but the bytes are JPEG. The sniffed type
	// wins so the vision call gets an accurate content type.
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(jpegBytes)
	img, err := DecodeImage(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MimeType != "image/jpeg" {
		t.Errorf("mime type = %s, want image/jpeg", img.MimeType)
	}
}

func TestDecodeImage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"malformed data url", "data:image/png;base64"},
		{"unsupported type", base64.StdEncoding.EncodeToString([]byte("plain text, not an image"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImage(tt.encoded)
			var unreadable *ErrUnreadableInput
			if !errors.As(err, &unreadable) {
				t.Fatalf("expected ErrUnreadableInput, got %v", err)
			}
		})
	}
}

func TestPDFText_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a pdf", []byte("hello, I am definitely not a PDF document")},
		{"truncated header", []byte("%PDF-1.4\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PDFText(tt.data)
			var unreadable *ErrUnreadableInput
			if !errors.As(err, &unreadable) {
				t.Fatalf("expected ErrUnreadableInput, got %v", err)
			}
		})
	}
}

func TestErrUnreadableInput_Message(t *testing.T) {
	err := &ErrUnreadableInput{Reason: "empty PDF upload"}
	if !strings.Contains(err.Error(), "empty PDF upload") {
		t.Errorf("message missing reason: %q", err.Error())
	}
}
