package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// Scheduler runs the watchlist scan on a fixed interval, stores the ranked
// results and feeds them to the notifier.
type Scheduler struct {
	scanner   *WatchlistScanner
	watchlist domain.WatchlistRepository
	results   domain.ScanResultRepository
	notifier  *Notifier
	interval  time.Duration
	log       zerolog.Logger
}

func NewScheduler(
	scanner *WatchlistScanner,
	watchlist domain.WatchlistRepository,
	results domain.ScanResultRepository,
	notifier *Notifier,
	interval time.Duration,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		scanner:   scanner,
		watchlist: watchlist,
		results:   results,
		notifier:  notifier,
		interval:  interval,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Run blocks until ctx is cancelled, scanning once immediately and then on
// every tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.process(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.process(ctx)
		}
	}
}

func (s *Scheduler) process(ctx context.Context) {
	items, err := s.watchlist.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("loading watchlist")
		return
	}
	if len(items) == 0 {
		return
	}

	symbols := make([]string, len(items))
	for i, item := range items {
		symbols[i] = item.Symbol
	}

	results := s.scanner.Scan(ctx, symbols)
	s.results.SaveResults(results)
	s.notifier.Notify(ctx, results)
}
