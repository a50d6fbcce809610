// Package session persists per-conversation state between requests.
// Each session is isolated; concurrent writes to the same session are
// serialized with last-writer-wins semantics.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ProjetoPAA/projetoPAA/internal/engine"
)

// ErrNotFound indicates no stored state for the session ID.
var ErrNotFound = errors.New("session not found")

// Store persists SessionState keyed by session ID.
type Store interface {
	Get(ctx context.Context, id string) (engine.SessionState, error)
	Put(ctx context.Context, id string, state engine.SessionState) error
	Close() error
}

// MemoryStore keeps sessions in process memory with a TTL. Suitable for
// a single-instance deployment and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	state     engine.SessionState
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store. A non-positive TTL
// means sessions never expire.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

// Get retrieves session state, expiring stale entries on read.
func (s *MemoryStore) Get(_ context.Context, id string) (engine.SessionState, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return engine.SessionState{}, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return engine.SessionState{}, ErrNotFound
	}
	return entry.state, nil
}

// Put stores session state, resetting the TTL.
func (s *MemoryStore) Put(_ context.Context, id string, state engine.SessionState) error {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[id] = memoryEntry{state: state, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
