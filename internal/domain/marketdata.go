package domain

import "context"

// ChartMeta is metadata returned alongside a candle series.
type ChartMeta struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Currency      string `json:"currency"`
}

// CandleSource fetches candles for a symbol. Range and interval use the
// provider's tokens ("1y"/"1d", "5d"/"15m"). Implementations own their
// timeouts; callers degrade to insufficient-data results on error.
type CandleSource interface {
	FetchCandles(ctx context.Context, symbol, rng, interval string) ([]Candle, ChartMeta, error)
}
