package usecase

import (
	"fmt"
	"strings"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/indicators"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/patterns"
)

// LeadingIndexFor resolves the breadth-context index for an instrument's
// currency: S&P 500 for USD instruments, DAX for EUR.
func LeadingIndexFor(currency string) string {
	if strings.EqualFold(currency, "EUR") {
		return "^GDAXI"
	}
	return "^GSPC"
}

// AutoFillQuestionnaire answers the automatic questionnaire items for one
// instrument. indexDaily is the leading index's daily series and may be
// empty, in which case the breadth item degrades to a low-confidence
// neutral. The chart-pattern item is intentionally not answered.
func AutoFillQuestionnaire(daily, indexDaily []domain.Candle) []domain.AutoFillResult {
	return []domain.AutoFillResult{
		autoFillSupportZone(daily),
		autoFillVolumeProfile(daily),
		autoFillCandlePattern(daily),
		autoFillTrend(daily),
		autoFillMomentum(daily),
		autoFillEMAOrder(daily),
		autoFillIndexBreadth(indexDaily),
		autoFillBollinger(daily),
	}
}

func autoFillSupportZone(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionSupportZone}
	if len(daily) < 5 {
		res.Confidence = 0.2
		res.Detail = "not enough bars to detect swing lows"
		return res
	}

	price := daily[len(daily)-1].Close
	swings := patterns.FindSwingLows(domain.Lows(daily))
	bounces := patterns.CountBounces(swings, price, 0.03)

	idx := bounces
	if idx > 3 {
		idx = 3
	}
	res.OptionIndex = idx
	res.RawValue = float64(bounces)
	res.Detail = fmt.Sprintf("%d swing-low bounces within 3%% of price", bounces)
	if len(daily) >= 40 {
		res.Confidence = 0.85
	} else {
		res.Confidence = 0.5
	}
	return res
}

func autoFillVolumeProfile(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionVolumeProfile}

	profile := patterns.BuildVolumeProfile(daily)
	if profile == nil {
		res.Confidence = 0.2
		res.Detail = "no candles for volume profile"
		return res
	}

	price := daily[len(daily)-1].Close
	dist := profile.BinFor(price) - profile.POCIndex
	if dist < 0 {
		dist = -dist
	}

	switch {
	case dist == 0:
		res.OptionIndex = 3
	case dist == 1:
		res.OptionIndex = 2
	case dist <= 3:
		res.OptionIndex = 1
	default:
		res.OptionIndex = 0
	}
	res.RawValue = float64(dist)
	res.Confidence = 0.8
	res.Detail = fmt.Sprintf("price %d bins from POC at %.2f", dist, profile.POCPrice())
	return res
}

func autoFillCandlePattern(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionCandlePattern}

	p := patterns.DetectCandlePattern(daily)
	if p == nil {
		res.Confidence = 0.7
		res.Detail = "no bullish reversal pattern in recent bars"
		return res
	}

	switch p.Name {
	case patterns.PatternBullishEngulfing:
		res.OptionIndex = 4
	case patterns.PatternMorningStar:
		res.OptionIndex = 3
	case patterns.PatternHammer, patterns.PatternPinBar:
		res.OptionIndex = 2
	case patterns.PatternDoji:
		res.OptionIndex = 1
	}
	res.RawValue = float64(res.OptionIndex)
	if p.Confirmed {
		res.Confidence = 0.9
		res.Detail = p.Name + " (confirmed)"
	} else {
		res.Confidence = 0.6
		res.Detail = p.Name + " (unconfirmed)"
	}
	return res
}

func autoFillTrend(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionTrend, OptionIndex: 1}

	highs := patterns.FindSwingHighs(domain.Highs(daily))
	lows := patterns.FindSwingLows(domain.Lows(daily))
	if len(highs) < 2 || len(lows) < 2 {
		res.Confidence = 0.4
		res.Detail = "too few swing points for a trend read"
		return res
	}

	higherHighs := highs[len(highs)-1].Price > highs[len(highs)-2].Price
	higherLows := lows[len(lows)-1].Price > lows[len(lows)-2].Price

	switch {
	case higherHighs && higherLows:
		res.OptionIndex = 3
		res.Detail = "higher highs and higher lows"
	case higherHighs || higherLows:
		res.OptionIndex = 2
		res.Detail = "one of highs/lows rising"
	case !higherHighs && !higherLows:
		res.OptionIndex = 0
		res.Detail = "lower highs and lower lows"
	}
	res.Confidence = 0.75
	res.RawValue = float64(res.OptionIndex)
	return res
}

func autoFillMomentum(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionMomentum, OptionIndex: 2}

	closes := domain.Closes(daily)
	rsiSeries := indicators.CalculateRSI(closes, 14)
	if len(rsiSeries) == 0 {
		res.Confidence = 0.3
		res.Detail = "not enough bars for RSI(14)"
		return res
	}

	rsi := rsiSeries[len(rsiSeries)-1]
	switch {
	case rsi > 70:
		res.OptionIndex = 0
	case rsi >= 55:
		res.OptionIndex = 1
	case rsi >= 45:
		res.OptionIndex = 2
	case rsi >= 30:
		res.OptionIndex = 4
	default:
		res.OptionIndex = 3
	}
	res.RawValue = rsi
	res.Confidence = 0.85
	res.Detail = fmt.Sprintf("RSI(14) at %.1f", rsi)

	// Bullish divergence strengthens the momentum read.
	aligned := closes[len(closes)-len(rsiSeries):]
	if patterns.HasBullishRSIDivergence(aligned, rsiSeries) {
		res.Confidence = 0.95
		res.Detail += ", bullish RSI divergence"
	}
	return res
}

func autoFillEMAOrder(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionEMAOrder, OptionIndex: 1}

	closes := domain.Closes(daily)
	ema200 := indicators.CalculateEMA(closes, 200)
	if len(ema200) == 0 {
		res.Confidence = 0.3
		res.Detail = "fewer than 200 bars, EMA200 undefined"
		return res
	}

	ema20 := indicators.Last(indicators.CalculateEMA(closes, 20), 0)
	ema50 := indicators.Last(indicators.CalculateEMA(closes, 50), 0)
	score, value, _ := emaOrdering(ema20, ema50, indicators.Last(ema200, 0))

	switch score {
	case 100:
		res.OptionIndex = 3
	case 60:
		res.OptionIndex = 2
	case 30:
		res.OptionIndex = 1
	default:
		res.OptionIndex = 0
	}
	res.RawValue = float64(score)
	res.Confidence = 0.9
	res.Detail = "EMA ordering " + value
	return res
}

func autoFillIndexBreadth(indexDaily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionIndexBreadth, OptionIndex: 2}

	n := len(indexDaily)
	if n < 2 {
		res.Confidence = 0.2
		res.Detail = "no leading-index data"
		return res
	}

	closes := domain.Closes(indexDaily)
	last := closes[n-1]
	change := 0.0
	if closes[n-2] != 0 {
		change = (last - closes[n-2]) / closes[n-2] * 100
	}
	ema50 := indicators.Last(indicators.CalculateEMA(closes, 50), last)
	aboveEMA := last > ema50

	switch {
	case !aboveEMA && change < 0:
		res.OptionIndex = 0
	case !aboveEMA:
		res.OptionIndex = 1
	case change > 0:
		res.OptionIndex = 3
	default:
		res.OptionIndex = 2
	}
	res.RawValue = change
	res.Confidence = 0.8
	res.Detail = fmt.Sprintf("index %+.2f%% today, above EMA50: %t", change, aboveEMA)
	return res
}

func autoFillBollinger(daily []domain.Candle) domain.AutoFillResult {
	res := domain.AutoFillResult{Question: domain.QuestionBollinger}

	closes := domain.Closes(daily)
	bb := indicators.CalculateBollingerBands(closes, 20, 2.0)
	if len(bb.Upper) == 0 {
		res.Confidence = 0.3
		res.Detail = "not enough bars for Bollinger(20)"
		return res
	}

	pos := bb.RelativePosition(closes[len(closes)-1])
	switch {
	case pos < 0:
		res.OptionIndex = 3
	case pos < 0.25:
		res.OptionIndex = 2
	case pos < 0.5:
		res.OptionIndex = 1
	default:
		res.OptionIndex = 0
	}
	res.RawValue = pos
	res.Confidence = 0.85
	res.Detail = fmt.Sprintf("band position %.2f", pos)
	return res
}

// AutoAnswers converts auto-fill results into tagged questionnaire answers.
func AutoAnswers(results []domain.AutoFillResult) []domain.Answer {
	answers := make([]domain.Answer, 0, len(results))
	for _, r := range results {
		answers = append(answers, domain.Answer{
			Question:    r.Question,
			Source:      domain.AnswerSourceAuto,
			OptionIndex: r.OptionIndex,
			Confidence:  r.Confidence,
			Detail:      r.Detail,
		})
	}
	return answers
}
