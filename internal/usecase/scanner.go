package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// Candle fetch tokens for the two horizons.
const (
	dailyRange       = "1y"
	dailyInterval    = "1d"
	intradayRange    = "5d"
	intradayInterval = "15m"
)

// scanBatchSize bounds concurrent outbound candle fetches.
const scanBatchSize = 5

// WatchlistScanner scores a list of instruments. It is shared by the
// scheduled scan loop and the on-demand HTTP endpoint so thresholds and
// weights have a single home.
type WatchlistScanner struct {
	source domain.CandleSource
	log    zerolog.Logger
}

func NewWatchlistScanner(source domain.CandleSource, log zerolog.Logger) *WatchlistScanner {
	return &WatchlistScanner{
		source: source,
		log:    log.With().Str("component", "scanner").Logger(),
	}
}

// Scan fetches candles and scores every symbol, issuing fetches in batches
// of scanBatchSize and awaiting each batch fully before the next. A failed
// fetch becomes a zero-score result carrying the error message instead of
// aborting the batch. Results are sorted descending by the blended rank key;
// ties keep input order, so the final order is deterministic regardless of
// fetch timing.
func (s *WatchlistScanner) Scan(ctx context.Context, symbols []string) []domain.ScanResult {
	start := time.Now()
	results := make([]domain.ScanResult, len(symbols))

	for batchStart := 0; batchStart < len(symbols); batchStart += scanBatchSize {
		end := batchStart + scanBatchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		var wg sync.WaitGroup
		for i := batchStart; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = s.scanSymbol(ctx, symbols[idx])
			}(i)
		}
		wg.Wait()
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RankKey() > results[j].RankKey()
	})

	s.log.Info().
		Int("symbols", len(symbols)).
		Dur("elapsed", time.Since(start)).
		Msg("scan cycle completed")

	return results
}

func (s *WatchlistScanner) scanSymbol(ctx context.Context, symbol string) domain.ScanResult {
	result := domain.ScanResult{Symbol: symbol, ScannedAt: time.Now()}

	daily, meta, err := s.source.FetchCandles(ctx, symbol, dailyRange, dailyInterval)
	if err != nil {
		s.log.Warn().Str("symbol", symbol).Err(err).Msg("daily fetch failed")
		result.Swing = domain.CompositeScore{Error: err.Error()}
		result.Intraday = domain.CompositeScore{Error: err.Error()}
		return result
	}
	result.DisplaySymbol = meta.DisplaySymbol
	result.Currency = meta.Currency
	if len(daily) > 0 {
		result.Price = daily[len(daily)-1].Close
	}

	result.Swing = ComputeSwingScore(daily)

	intraday, _, err := s.source.FetchCandles(ctx, symbol, intradayRange, intradayInterval)
	if err != nil {
		s.log.Warn().Str("symbol", symbol).Err(err).Msg("intraday fetch failed")
		result.Intraday = domain.CompositeScore{Error: err.Error()}
		return result
	}
	result.Intraday = ComputeIntradayScore(intraday, daily)

	return result
}

// AutoFill runs the questionnaire auto-fill engine for one symbol, fetching
// its daily candles and the leading index's daily candles for breadth
// context. Index fetch failure degrades the breadth item only.
func (s *WatchlistScanner) AutoFill(ctx context.Context, symbol string) ([]domain.AutoFillResult, error) {
	daily, meta, err := s.source.FetchCandles(ctx, symbol, dailyRange, dailyInterval)
	if err != nil {
		return nil, err
	}

	indexSymbol := LeadingIndexFor(meta.Currency)
	indexDaily, _, err := s.source.FetchCandles(ctx, indexSymbol, dailyRange, dailyInterval)
	if err != nil {
		s.log.Warn().Str("index", indexSymbol).Err(err).Msg("leading index fetch failed")
		indexDaily = nil
	}

	return AutoFillQuestionnaire(daily, indexDaily), nil
}
