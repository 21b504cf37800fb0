package usecase

import (
	"fmt"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/indicators"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/patterns"
)

// Factor names as they appear in composite breakdowns.
const (
	FactorRSI         = "RSI"
	FactorSupport     = "Support"
	FactorEMA         = "EMA"
	FactorBollinger   = "Bollinger"
	FactorVolume      = "Volume"
	FactorTrend       = "Trend"
	FactorVolumeSpike = "Volume Spike"
	FactorGap         = "Gap"
	FactorRelStrength = "Relative Strength"
	FactorATR         = "ATR"
	FactorVWAP        = "VWAP"
)

// Swing composite weights. Must sum to 1.0.
var swingWeights = map[string]float64{
	FactorRSI:       0.25,
	FactorSupport:   0.20,
	FactorEMA:       0.15,
	FactorBollinger: 0.15,
	FactorVolume:    0.15,
	FactorTrend:     0.10,
}

// Intraday composite weights. Must sum to 1.0.
var intradayWeights = map[string]float64{
	FactorVolumeSpike: 0.30,
	FactorGap:         0.25,
	FactorRelStrength: 0.20,
	FactorATR:         0.15,
	FactorVWAP:        0.10,
}

// neutralScore is used when a factor cannot be computed (for example EMA200
// ordering below 200 closes).
const neutralScore = 50

// scoreRSIFactor maps the current RSI(14) onto the swing ladder. The 30-45
// buy zone is the notable outcome.
func scoreRSIFactor(rsi float64) (domain.FactorScore, string) {
	var score int
	var signal string
	switch {
	case rsi >= 30 && rsi <= 45:
		score = 100
		signal = fmt.Sprintf("RSI in buy zone (%.1f)", rsi)
	case rsi > 45 && rsi <= 55:
		score = 60
	case rsi < 30:
		score = 40
	case rsi > 70:
		score = 10
	default:
		score = 20
	}
	return domain.FactorScore{
		Name:   FactorRSI,
		Weight: swingWeights[FactorRSI],
		Score:  score,
		Value:  fmt.Sprintf("%.1f", rsi),
	}, signal
}

// scoreSupportFactor counts swing-low bounces within ±3% of the current
// price.
func scoreSupportFactor(lows []float64, price float64) (domain.FactorScore, string) {
	swings := patterns.FindSwingLows(lows)
	bounces := patterns.CountBounces(swings, price, 0.03)

	var score int
	var signal string
	switch {
	case bounces >= 3:
		score = 100
		signal = fmt.Sprintf("Strong support: %d bounces near price", bounces)
	case bounces == 2:
		score = 70
	case bounces == 1:
		score = 40
	default:
		score = 0
	}
	return domain.FactorScore{
		Name:   FactorSupport,
		Weight: swingWeights[FactorSupport],
		Score:  score,
		Value:  fmt.Sprintf("%d bounces", bounces),
	}, signal
}

// emaOrdering classifies the EMA 20/50/200 stack.
func emaOrdering(ema20, ema50, ema200 float64) (int, string, string) {
	switch {
	case ema20 > ema50 && ema50 > ema200:
		return 100, "20>50>200", "EMA 20>50>200"
	case ema200 > ema50 && ema50 > ema20:
		return 0, "200>50>20", ""
	case (ema20 > ema200) != (ema50 > ema200):
		// The 200 line sits between the short EMAs: price is crossing it.
		return 60, "crossing 200", ""
	default:
		return 30, "mixed", ""
	}
}

// scoreEMAFactor scores the EMA 20/50/200 ordering. Below 200 closes the
// long EMA is undefined and the factor degrades to a neutral score.
func scoreEMAFactor(closes []float64) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorEMA, Weight: swingWeights[FactorEMA]}

	ema200 := indicators.CalculateEMA(closes, 200)
	if len(ema200) == 0 {
		factor.Score = neutralScore
		factor.Value = "insufficient data (<200 bars)"
		return factor, ""
	}

	ema20 := indicators.CalculateEMA(closes, 20)
	ema50 := indicators.CalculateEMA(closes, 50)

	score, value, signal := emaOrdering(
		indicators.Last(ema20, 0),
		indicators.Last(ema50, 0),
		indicators.Last(ema200, 0),
	)
	factor.Score = score
	factor.Value = value
	return factor, signal
}

// scoreBollingerFactor scores the position of price within the bands.
func scoreBollingerFactor(closes []float64, price float64) (domain.FactorScore, string) {
	bb := indicators.CalculateBollingerBands(closes, 20, 2.0)
	pos := bb.RelativePosition(price)

	var score int
	var signal string
	switch {
	case pos < 0:
		score = 100
		signal = "Price below lower Bollinger band"
	case pos < 0.25:
		score = 70
	case pos < 0.5:
		score = 40
	default:
		score = 15
	}
	return domain.FactorScore{
		Name:   FactorBollinger,
		Weight: swingWeights[FactorBollinger],
		Score:  score,
		Value:  fmt.Sprintf("%.2f", pos),
	}, signal
}

// volumeRatio compares the final bar's volume to the average of the 20 bars
// preceding it (or all preceding bars when fewer are available).
func volumeRatio(volumes []float64) float64 {
	n := len(volumes)
	if n < 2 {
		return 1
	}
	start := n - 21
	if start < 0 {
		start = 0
	}
	window := volumes[start : n-1]
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	avg := sum / float64(len(window))
	if avg == 0 {
		return 1
	}
	return volumes[n-1] / avg
}

// scoreVolumeFactor scores the swing volume ratio ladder.
func scoreVolumeFactor(volumes []float64) (domain.FactorScore, string) {
	ratio := volumeRatio(volumes)

	var score int
	var signal string
	switch {
	case ratio >= 2:
		score = 100
		signal = fmt.Sprintf("Volume %.1fx above average", ratio)
	case ratio >= 1.5:
		score = 70
	case ratio >= 1:
		score = 40
	default:
		score = 20
	}
	return domain.FactorScore{
		Name:   FactorVolume,
		Weight: swingWeights[FactorVolume],
		Score:  score,
		Value:  fmt.Sprintf("%.2fx", ratio),
	}, signal
}

// scoreTrendFactor scores the EMA50 slope over the last 10 bars.
func scoreTrendFactor(closes []float64) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorTrend, Weight: swingWeights[FactorTrend]}

	ema50 := indicators.CalculateEMA(closes, 50)
	if len(ema50) < 11 {
		factor.Score = neutralScore
		factor.Value = "insufficient data"
		return factor, ""
	}

	last := ema50[len(ema50)-1]
	ref := ema50[len(ema50)-11]
	change := 0.0
	if ref != 0 {
		change = (last - ref) / ref * 100
	}

	var score int
	var signal string
	switch {
	case change > 3:
		score = 100
		signal = fmt.Sprintf("Strong uptrend: EMA50 +%.1f%% over 10 bars", change)
	case change > 1:
		score = 70
	case change > -1:
		score = 40
	default:
		score = 10
	}
	factor.Score = score
	factor.Value = fmt.Sprintf("%+.2f%%", change)
	return factor, signal
}

// scoreVolumeSpikeFactor scores the intraday volume spike ladder.
func scoreVolumeSpikeFactor(volumes []float64) (domain.FactorScore, string) {
	ratio := volumeRatio(volumes)

	var score int
	var signal string
	switch {
	case ratio >= 5:
		score = 100
		signal = fmt.Sprintf("Extreme volume spike %.1fx", ratio)
	case ratio >= 3:
		score = 80
		signal = fmt.Sprintf("Volume spike %.1fx", ratio)
	case ratio >= 2:
		score = 50
	default:
		score = 20
	}
	return domain.FactorScore{
		Name:   FactorVolumeSpike,
		Weight: intradayWeights[FactorVolumeSpike],
		Score:  score,
		Value:  fmt.Sprintf("%.2fx", ratio),
	}, signal
}

// scoreGapFactor scores the open gap versus the previous daily close.
func scoreGapFactor(daily []domain.Candle) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorGap, Weight: intradayWeights[FactorGap]}

	n := len(daily)
	if n < 2 || daily[n-2].Close == 0 {
		factor.Score = 0
		factor.Value = "n/a"
		return factor, ""
	}

	prevClose := daily[n-2].Close
	gap := (daily[n-1].Open - prevClose) / prevClose * 100
	absGap := gap
	if absGap < 0 {
		absGap = -absGap
	}

	var score int
	var signal string
	switch {
	case absGap >= 3:
		score = 100
		signal = fmt.Sprintf("Strong gap %+.1f%%", gap)
	case absGap >= 2:
		score = 70
		signal = fmt.Sprintf("Gap %+.1f%%", gap)
	case absGap >= 1:
		score = 40
	default:
		score = 0
	}
	factor.Score = score
	factor.Value = fmt.Sprintf("%+.2f%%", gap)
	return factor, signal
}

// scoreRelStrengthFactor scores the daily percent change.
func scoreRelStrengthFactor(daily []domain.Candle) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorRelStrength, Weight: intradayWeights[FactorRelStrength]}

	n := len(daily)
	if n < 2 || daily[n-2].Close == 0 {
		factor.Score = neutralScore
		factor.Value = "n/a"
		return factor, ""
	}

	change := (daily[n-1].Close - daily[n-2].Close) / daily[n-2].Close * 100

	var score int
	var signal string
	switch {
	case change > 2:
		score = 100
		signal = fmt.Sprintf("Strong daily move %+.1f%%", change)
	case change > 1:
		score = 70
	case change > 0:
		score = 40
	case change > -1:
		score = 20
	default:
		score = 0
	}
	factor.Score = score
	factor.Value = fmt.Sprintf("%+.2f%%", change)
	return factor, signal
}

// scoreATRFactor scores today's daily range against ATR(14).
func scoreATRFactor(daily []domain.Candle) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorATR, Weight: intradayWeights[FactorATR]}

	atr := indicators.Last(indicators.CalculateATR(domain.Highs(daily), domain.Lows(daily), domain.Closes(daily), 14), 0)
	if atr == 0 {
		factor.Score = neutralScore
		factor.Value = "n/a"
		return factor, ""
	}

	last := daily[len(daily)-1]
	ratio := (last.High - last.Low) / atr

	var score int
	var signal string
	switch {
	case ratio >= 2:
		score = 100
		signal = fmt.Sprintf("Range expansion %.1fx ATR", ratio)
	case ratio >= 1.5:
		score = 70
	case ratio >= 1:
		score = 30
	default:
		score = 10
	}
	factor.Score = score
	factor.Value = fmt.Sprintf("%.2fx ATR", ratio)
	return factor, signal
}

// scoreVWAPFactor scores the distance between the last close and the session
// VWAP of the intraday series.
func scoreVWAPFactor(intraday []domain.Candle) (domain.FactorScore, string) {
	factor := domain.FactorScore{Name: FactorVWAP, Weight: intradayWeights[FactorVWAP]}

	vwap := indicators.CalculateVWAP(
		domain.Highs(intraday), domain.Lows(intraday),
		domain.Closes(intraday), domain.Volumes(intraday),
	)
	v := indicators.Last(vwap, 0)
	if v == 0 {
		factor.Score = neutralScore
		factor.Value = "n/a"
		return factor, ""
	}

	price := intraday[len(intraday)-1].Close
	dist := (price - v) / v * 100
	absDist := dist
	if absDist < 0 {
		absDist = -absDist
	}

	var score int
	var signal string
	switch {
	case absDist <= 0.5:
		score = 100
		signal = fmt.Sprintf("Price at VWAP (%.2f%% away)", absDist)
	case absDist <= 1:
		score = 60
	default:
		score = 20
	}
	factor.Score = score
	factor.Value = fmt.Sprintf("%+.2f%%", dist)
	return factor, signal
}
