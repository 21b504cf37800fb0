package repository

import (
	"fmt"
	"sync"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// InMemoryTradeRepository stores journal entries in memory. Used in tests
// and when no database is configured.
type InMemoryTradeRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.TradeEntry
	order   []string
}

func NewInMemoryTradeRepository() *InMemoryTradeRepository {
	return &InMemoryTradeRepository{
		entries: make(map[string]*domain.TradeEntry),
	}
}

func (r *InMemoryTradeRepository) CreateEntry(entry *domain.TradeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return fmt.Errorf("entry with ID %s already exists", entry.ID)
	}
	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *InMemoryTradeRepository) GetOpenEntries() []*domain.TradeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	open := make([]*domain.TradeEntry, 0)
	for _, id := range r.order {
		if e := r.entries[id]; e != nil && e.Status == "open" {
			open = append(open, e)
		}
	}
	return open
}

func (r *InMemoryTradeRepository) GetEntryByID(id string) (*domain.TradeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	if !exists {
		return nil, fmt.Errorf("entry not found")
	}
	return entry, nil
}

func (r *InMemoryTradeRepository) UpdateEntry(entry *domain.TradeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; !exists {
		return fmt.Errorf("entry not found")
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *InMemoryTradeRepository) GetEntryHistory() []*domain.TradeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]*domain.TradeEntry, 0)
	for _, id := range r.order {
		if e := r.entries[id]; e != nil && e.Status != "open" {
			history = append(history, e)
		}
	}
	return history
}

func (r *InMemoryTradeRepository) DeleteEntry(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return fmt.Errorf("entry not found")
	}
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
