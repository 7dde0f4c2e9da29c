package elementstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/summarize-console/internal/domain/page"
)

// MemoryStore keeps elements in process memory. Used for dev and as the fallback.
type MemoryStore struct {
	mu       sync.RWMutex
	elements map[string]page.Element
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		elements: make(map[string]page.Element),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Text implements page.ElementStore.
func (s *MemoryStore) Text(_ context.Context, id string) (page.Element, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.elements[id]
	return el, ok, nil
}

// SetText implements page.ElementStore.
func (s *MemoryStore) SetText(_ context.Context, id, text string) (page.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el := page.Element{ID: id, Text: text, UpdatedAt: s.now()}
	s.elements[id] = el
	return el, nil
}

var _ page.ElementStore = (*MemoryStore)(nil)
