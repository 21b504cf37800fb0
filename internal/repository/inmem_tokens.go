package repository

import (
	"context"
	"sync"
)

// InMemoryTokenRepository keeps device tokens in process memory. Used when no
// database is configured; tokens are lost on restart.
type InMemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
	order  []string
}

func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{tokens: make(map[string]string)}
}

func (r *InMemoryTokenRepository) Register(ctx context.Context, token, platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if platform == "" {
		platform = "android"
	}
	if _, exists := r.tokens[token]; !exists {
		r.order = append(r.order, token)
	}
	r.tokens[token] = platform
	return nil
}

func (r *InMemoryTokenRepository) Unregister(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token]; !exists {
		return nil
	}
	delete(r.tokens, token)
	for i, t := range r.order {
		if t == token {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryTokenRepository) All(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out, nil
}

func (r *InMemoryTokenRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens), nil
}
