package usecase

import (
	"math"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/indicators"
)

// Minimum data requirements for the composites.
const (
	MinSwingCandles    = 60
	MinIntradayCandles = 10
)

// ComputeSwingScore scores a multi-day setup from daily candles. Below
// MinSwingCandles the result carries only an error so batch scans keep one
// uniform shape to handle.
func ComputeSwingScore(daily []domain.Candle) domain.CompositeScore {
	if len(daily) < MinSwingCandles {
		return domain.CompositeScore{Error: "insufficient data: need at least 60 daily candles"}
	}

	closes := domain.Closes(daily)
	price := closes[len(closes)-1]

	rsi := indicators.Last(indicators.CalculateRSI(closes, 14), 50)

	factors := make([]domain.FactorScore, 0, 6)
	var signals []string

	collect := func(f domain.FactorScore, signal string) {
		factors = append(factors, f)
		if signal != "" {
			signals = append(signals, signal)
		}
	}

	collect(scoreRSIFactor(rsi))
	collect(scoreSupportFactor(domain.Lows(daily), price))
	collect(scoreEMAFactor(closes))
	collect(scoreBollingerFactor(closes, price))
	collect(scoreVolumeFactor(domain.Volumes(daily)))
	collect(scoreTrendFactor(closes))

	return domain.CompositeScore{
		Total:   weightedTotal(factors),
		Factors: factors,
		Signals: signals,
	}
}

// ComputeIntradayScore scores a same-session setup from intraday candles,
// with daily candles supplying the gap, relative-strength and ATR context.
func ComputeIntradayScore(intraday, daily []domain.Candle) domain.CompositeScore {
	if len(intraday) < MinIntradayCandles {
		return domain.CompositeScore{Error: "insufficient data: need at least 10 intraday candles"}
	}

	factors := make([]domain.FactorScore, 0, 5)
	var signals []string

	collect := func(f domain.FactorScore, signal string) {
		factors = append(factors, f)
		if signal != "" {
			signals = append(signals, signal)
		}
	}

	collect(scoreVolumeSpikeFactor(domain.Volumes(intraday)))
	collect(scoreGapFactor(daily))
	collect(scoreRelStrengthFactor(daily))
	collect(scoreATRFactor(daily))
	collect(scoreVWAPFactor(intraday))

	return domain.CompositeScore{
		Total:   weightedTotal(factors),
		Factors: factors,
		Signals: signals,
	}
}

// weightedTotal rounds the weighted factor sum half-up to the nearest
// integer. Scores in [0,100] with weights summing to 1 keep the total in
// [0,100].
func weightedTotal(factors []domain.FactorScore) int {
	sum := 0.0
	for _, f := range factors {
		sum += float64(f.Score) * f.Weight
	}
	total := int(math.Round(sum))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return total
}
