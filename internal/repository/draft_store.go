package repository

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps opaque builder drafts under a caller-chosen key.
type DraftStore interface {
	Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time // zero means no expiry
}

type memoryDraftStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryDraftStore is used when no Redis address is configured.
func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (s *memoryDraftStore) Save(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	e := memoryEntry{payload: append([]byte(nil), payload...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *memoryDraftStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	if s.expired(e) {
		// Re-read under the write lock: a Save may have replaced the entry meanwhile.
		s.mu.Lock()
		e, ok = s.entries[key]
		if ok && s.expired(e) {
			delete(s.entries, key)
			ok = false
		}
		s.mu.Unlock()
		if !ok {
			return nil, ErrDraftNotFound
		}
	}
	return append([]byte(nil), e.payload...), nil
}

func (s *memoryDraftStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

func (s *memoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}
