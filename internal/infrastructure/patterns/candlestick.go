package patterns

import "github.com/nilsnoeller-tech/trading-sub000/internal/domain"

// Candle pattern names, strongest first.
const (
	PatternBullishEngulfing = "Bullish Engulfing"
	PatternMorningStar      = "Morning Star"
	PatternHammer           = "Hammer"
	PatternPinBar           = "Pin Bar"
	PatternDoji             = "Doji"
)

// CandlePattern is a recognized candlestick pattern. Confirmed means the bar
// immediately after the pattern bar closed above the pattern bar's close.
type CandlePattern struct {
	Name      string
	Index     int
	Confirmed bool
}

// DetectCandlePattern inspects the most recent bars of the series for a
// bullish reversal pattern. Candidate pattern bars are the last bar and the
// one before it; the more recent candidate wins, and within one bar patterns
// are ranked engulfing > morning star > hammer > pin bar > doji.
func DetectCandlePattern(candles []domain.Candle) *CandlePattern {
	n := len(candles)
	if n < 2 {
		return nil
	}

	for offset := 1; offset <= 2; offset++ {
		i := n - offset
		if i < 1 {
			break
		}
		name := classifyAt(candles, i)
		if name == "" {
			continue
		}
		confirmed := i+1 < n && candles[i+1].Close > candles[i].Close
		return &CandlePattern{Name: name, Index: i, Confirmed: confirmed}
	}

	return nil
}

func classifyAt(candles []domain.Candle, i int) string {
	cur := candles[i]

	if i >= 1 && isBullishEngulfing(candles[i-1], cur) {
		return PatternBullishEngulfing
	}
	if i >= 2 && isMorningStar(candles[i-2], candles[i-1], cur) {
		return PatternMorningStar
	}
	if isHammer(cur) {
		return PatternHammer
	}
	if isPinBar(cur) {
		return PatternPinBar
	}
	if isDoji(cur) {
		return PatternDoji
	}
	return ""
}

func body(c domain.Candle) float64 {
	b := c.Close - c.Open
	if b < 0 {
		return -b
	}
	return b
}

func isBullishEngulfing(prev, cur domain.Candle) bool {
	prevBearish := prev.Close < prev.Open
	curBullish := cur.Close > cur.Open
	return prevBearish && curBullish && cur.Open <= prev.Close && cur.Close >= prev.Open
}

func isMorningStar(first, second, third domain.Candle) bool {
	firstBearish := first.Close < first.Open
	smallMiddle := body(second) < 0.3*body(first)
	thirdBullish := third.Close > third.Open
	midpoint := (first.Open + first.Close) / 2
	return firstBearish && smallMiddle && thirdBullish && third.Close > midpoint
}

func isHammer(c domain.Candle) bool {
	b := body(c)
	if b == 0 {
		return false
	}
	lowerWick := min(c.Open, c.Close) - c.Low
	upperWick := c.High - max(c.Open, c.Close)
	return lowerWick >= 2*b && upperWick <= 0.5*b
}

func isPinBar(c domain.Candle) bool {
	rng := c.High - c.Low
	if rng == 0 {
		return false
	}
	lowerWick := min(c.Open, c.Close) - c.Low
	return lowerWick >= 0.6*rng && body(c) <= 0.25*rng
}

func isDoji(c domain.Candle) bool {
	rng := c.High - c.Low
	if rng == 0 {
		return false
	}
	return body(c) < 0.1*rng
}
