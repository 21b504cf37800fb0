package repository

import (
	"sync"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// InMemoryScanResultRepository holds the latest ranked scan results. The
// scheduler replaces the whole list each cycle.
type InMemoryScanResultRepository struct {
	results []domain.ScanResult
	mu      sync.RWMutex
}

func NewInMemoryScanResultRepository() *InMemoryScanResultRepository {
	return &InMemoryScanResultRepository{results: []domain.ScanResult{}}
}

func (r *InMemoryScanResultRepository) SaveResults(results []domain.ScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = results
}

func (r *InMemoryScanResultRepository) GetResults() []domain.ScanResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ScanResult, len(r.results))
	copy(out, r.results)
	return out
}
