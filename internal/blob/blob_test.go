package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir, "http://localhost:8000/uploads/questions/")

	ref, err := store.Put(context.Background(), []byte("image bytes"), "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "http://localhost:8000/uploads/questions/"), "ref %q missing base URL", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "ref %q missing extension", ref)

	name := ref[strings.LastIndex(ref, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err, "blob file not written")
	assert.Equal(t, "image bytes", string(data))
}

func TestFSStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewFSStore(dir, "http://localhost")

	_, err := store.Put(context.Background(), []byte("x"), "image/jpeg")
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err, "directory not created")
}

func TestFSStore_UniqueNames(t *testing.T) {
	store := NewFSStore(t.TempDir(), "http://localhost")

	a, err := store.Put(context.Background(), []byte("a"), "image/png")
	require.NoError(t, err)
	b, err := store.Put(context.Background(), []byte("b"), "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two puts returned the same ref")
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"application/octet-stream", ".bin"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionFor(tt.mime), "extensionFor(%s)", tt.mime)
	}
}

func TestMemoryStore_RecordsWrites(t *testing.T) {
	store := NewMemoryStore()

	ref, err := store.Put(context.Background(), []byte("data"), "image/png")
	require.NoError(t, err)

	require.Equal(t, 1, store.WriteCount())
	assert.Equal(t, ref, store.Writes[0].Ref)
	assert.Equal(t, "image/png", store.Writes[0].MimeType)
}
