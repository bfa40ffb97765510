package memstore

import (
	"context"
	"sync"
	"time"

	"runway.app/api/internal/store"
)

// RevocationStore keeps revoked token ids in process memory. Entries are
// dropped lazily once the token would have expired anyway.
type RevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

var _ store.RevocationStore = (*RevocationStore)(nil)

type RevocationOption func(*RevocationStore)

// WithRevocationClock overrides the clock used to expire entries.
func WithRevocationClock(now func() time.Time) RevocationOption {
	return func(s *RevocationStore) {
		s.now = now
	}
}

func NewRevocationStore(opts ...RevocationOption) *RevocationStore {
	s := &RevocationStore{revoked: make(map[string]time.Time), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until.After(s.now()) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *RevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
