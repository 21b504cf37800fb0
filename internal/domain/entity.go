package domain

import "time"

// Candle is a single OHLCV observation. Sequences are ordered ascending by
// timestamp; missing bars are simply absent, never interpolated.
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Closes extracts the close series from a candle slice.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high series from a candle slice.
func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low series from a candle slice.
func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts the volume series from a candle slice as floats.
func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = float64(c.Volume)
	}
	return out
}

// FactorScore is the result of one factor scorer. Weights within one
// composite sum to 1.0.
type FactorScore struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Score  int     `json:"score"`
	Value  string  `json:"value"`
}

// CompositeScore is a weighted combination of factor scores. When input is
// insufficient, Error is set and Total is 0 with empty factors/signals.
type CompositeScore struct {
	Total   int           `json:"total"`
	Factors []FactorScore `json:"factors"`
	Signals []string      `json:"signals"`
	Error   string        `json:"error,omitempty"`
}

// ScanResult is the per-symbol output of a watchlist scan.
type ScanResult struct {
	Symbol        string         `json:"symbol"`
	DisplaySymbol string         `json:"displaySymbol,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Price         float64        `json:"price"`
	Swing         CompositeScore `json:"swing"`
	Intraday      CompositeScore `json:"intraday"`
	ScannedAt     time.Time      `json:"scannedAt"`
}

// RankKey is the blended ordering key used to sort scan results. It is only
// an ordering key and is never persisted.
func (r ScanResult) RankKey() float64 {
	return float64(r.Swing.Total)*0.6 + float64(r.Intraday.Total)*0.4
}

// WatchlistItem is one tracked instrument. Currency selects the leading
// index used for breadth context (S&P 500 for USD, DAX for EUR).
type WatchlistItem struct {
	Symbol   string    `json:"symbol"`
	Currency string    `json:"currency"`
	AddedAt  time.Time `json:"addedAt"`
}
