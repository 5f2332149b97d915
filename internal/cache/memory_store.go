package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
)

// MemoryStore implements listing.SessionStore in process memory. It is used
// in tests and single-instance deployments without Redis or a drafts table.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string][]byte)}
}

// Get returns the open draft for sender, or nil when none exists.
func (s *MemoryStore) Get(_ context.Context, sender string) (*listing.Draft, error) {
	s.mu.RLock()
	payload, ok := s.drafts[sender]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	draft := &listing.Draft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Put stores a snapshot of the draft. The payload is serialized so later
// mutations of the caller's copy do not leak into the store.
func (s *MemoryStore) Put(_ context.Context, draft *listing.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[draft.Sender] = payload
	s.mu.Unlock()
	return nil
}

// Delete removes the draft for sender.
func (s *MemoryStore) Delete(_ context.Context, sender string) error {
	s.mu.Lock()
	delete(s.drafts, sender)
	s.mu.Unlock()
	return nil
}
