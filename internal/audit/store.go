package audit

import (
	"context"
	"sync"
)

// Store persists audit events. Swap with concrete storage without touching
// the emitting services.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// MemoryStore keeps events in process. Used in tests and as the default sink
// when no database is configured.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryStore builds an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *MemoryStore) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
