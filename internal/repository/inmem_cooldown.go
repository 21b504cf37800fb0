package repository

import (
	"context"
	"sync"
	"time"
)

// InMemoryCooldownStore keeps cooldown expiries in a map. The clock is
// injectable so tests can advance time without sleeping.
type InMemoryCooldownStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewInMemoryCooldownStore(now func() time.Time) *InMemoryCooldownStore {
	if now == nil {
		now = time.Now
	}
	return &InMemoryCooldownStore{
		expires: make(map[string]time.Time),
		now:     now,
	}
}

func (s *InMemoryCooldownStore) Active(_ context.Context, symbol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.expires[symbol]
	if !ok {
		return false, nil
	}
	if s.now().After(expiry) {
		delete(s.expires, symbol)
		return false, nil
	}
	return true, nil
}

func (s *InMemoryCooldownStore) Mark(_ context.Context, symbol string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[symbol] = s.now().Add(ttl)
	return nil
}
