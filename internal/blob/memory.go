package blob

import (
	"context"
	"fmt"
	"sync"
)

// Write records one Put call.
type Write struct {
	Data     []byte
	MimeType string
	Ref      string
}

// MemoryStore keeps blobs in memory and records every write. Used in
// tests; Err makes the next Put fail.
type MemoryStore struct {
	mu     sync.Mutex
	Writes []Write
	Err    error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Put(_ context.Context, data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}

	ref := fmt.Sprintf("mem://blob/%d", len(s.Writes))
	s.Writes = append(s.Writes, Write{Data: data, MimeType: mimeType, Ref: ref})
	return ref, nil
}

// WriteCount returns how many blobs were stored.
func (s *MemoryStore) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Writes)
}
