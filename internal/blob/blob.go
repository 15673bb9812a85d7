// Package blob persists uploaded images and hands back stable
// references. The clone pipeline stores the source image before any
// model call so a later failure never loses the upload.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists binary blobs and returns a reference the API can hand
// to clients.
type Store interface {
	Put(ctx context.Context, data []byte, mimeType string) (string, error)
}

// FSStore writes blobs under a directory on the local filesystem.
// References are URLs rooted at the configured base URL.
type FSStore struct {
	dir     string
	baseURL string
}

// NewFSStore creates a filesystem store rooted at dir. References take
// the form <baseURL>/<name>.
func NewFSStore(dir, baseURL string) *FSStore {
	return &FSStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Put writes the blob under a fresh UUID name and returns its URL.
func (s *FSStore) Put(_ context.Context, data []byte, mimeType string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating blob directory: %w", err)
	}

	name := uuid.NewString() + extensionFor(mimeType)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob %s: %w", name, err)
	}

	return s.baseURL + "/" + name, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
