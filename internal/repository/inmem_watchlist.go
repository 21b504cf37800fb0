package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// InMemoryWatchlistRepository keeps the watchlist in process memory. Used when
// no database is configured.
type InMemoryWatchlistRepository struct {
	mu    sync.RWMutex
	items map[string]domain.WatchlistItem
	order []string
}

func NewInMemoryWatchlistRepository() *InMemoryWatchlistRepository {
	return &InMemoryWatchlistRepository{items: make(map[string]domain.WatchlistItem)}
}

func (r *InMemoryWatchlistRepository) Add(ctx context.Context, item domain.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToUpper(item.Symbol)
	item.Symbol = key
	if item.Currency == "" {
		item.Currency = "USD"
	}
	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = item
	return nil
}

func (r *InMemoryWatchlistRepository) Remove(ctx context.Context, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToUpper(symbol)
	if _, exists := r.items[key]; !exists {
		return nil
	}
	delete(r.items, key)
	for i, s := range r.order {
		if s == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryWatchlistRepository) List(ctx context.Context) ([]domain.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.WatchlistItem, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.items[key])
	}
	return items, nil
}
