package patterns

import (
	"testing"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

func TestIsBullishEngulfing(t *testing.T) {
	prev := domain.Candle{Open: 100, High: 102, Low: 98, Close: 99}
	cur := domain.Candle{Open: 98.5, High: 105, Low: 97, Close: 101}

	if !isBullishEngulfing(prev, cur) {
		t.Error("should detect bullish engulfing")
	}

	notBearish := domain.Candle{Open: 99, High: 102, Low: 98, Close: 100}
	if isBullishEngulfing(notBearish, cur) {
		t.Error("should require a bearish first candle")
	}

	noEngulf := domain.Candle{Open: 99.5, High: 101, Low: 99, Close: 99.8}
	if isBullishEngulfing(prev, noEngulf) {
		t.Error("should require the body to engulf the previous one")
	}
}

func TestIsMorningStar(t *testing.T) {
	first := domain.Candle{Open: 100, High: 101, Low: 94, Close: 95}
	second := domain.Candle{Open: 95, High: 96, Low: 94, Close: 95.5}
	third := domain.Candle{Open: 96, High: 100, Low: 95, Close: 99}

	if !isMorningStar(first, second, third) {
		t.Error("should detect morning star")
	}

	bigMiddle := domain.Candle{Open: 95, High: 99, Low: 94, Close: 98.5}
	if isMorningStar(first, bigMiddle, third) {
		t.Error("should require a small middle body")
	}

	weakThird := domain.Candle{Open: 95, High: 97, Low: 94.5, Close: 96}
	if isMorningStar(first, second, weakThird) {
		t.Error("should require the third close above the first body midpoint")
	}
}

func TestIsHammer(t *testing.T) {
	hammer := domain.Candle{Open: 100, High: 101.2, Low: 96, Close: 101}
	if !isHammer(hammer) {
		t.Error("should detect hammer")
	}

	longUpper := domain.Candle{Open: 100, High: 104, Low: 96, Close: 101}
	if isHammer(longUpper) {
		t.Error("should reject a long upper wick")
	}

	flat := domain.Candle{Open: 100, High: 101, Low: 99, Close: 100}
	if isHammer(flat) {
		t.Error("should reject a zero body")
	}
}

func TestIsPinBarAndDoji(t *testing.T) {
	pin := domain.Candle{Open: 99.5, High: 100, Low: 95, Close: 100}
	if !isPinBar(pin) {
		t.Error("should detect pin bar")
	}

	doji := domain.Candle{Open: 100, High: 102, Low: 98, Close: 100.1}
	if !isDoji(doji) {
		t.Error("should detect doji")
	}

	trend := domain.Candle{Open: 100, High: 106, Low: 99, Close: 105}
	if isDoji(trend) {
		t.Error("should reject a large body")
	}
}

func TestDetectCandlePatternPriority(t *testing.T) {
	// Last bar is both a doji and part of a bullish engulfing; the stronger
	// name must win.
	candles := []domain.Candle{
		{Open: 100, High: 101, Low: 99, Close: 100.5},
		{Open: 100, High: 102, Low: 98, Close: 99},
		{Open: 98.5, High: 105, Low: 97, Close: 101},
	}

	p := DetectCandlePattern(candles)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	if p.Name != PatternBullishEngulfing {
		t.Errorf("pattern = %s, want %s", p.Name, PatternBullishEngulfing)
	}
	if p.Index != 2 {
		t.Errorf("pattern index = %d, want 2", p.Index)
	}
	if p.Confirmed {
		t.Error("last bar cannot be confirmed")
	}
}

func TestDetectCandlePatternConfirmation(t *testing.T) {
	// Hammer on the second-to-last bar, confirmed by a higher close after it.
	candles := []domain.Candle{
		{Open: 100, High: 101, Low: 99, Close: 100.5},
		{Open: 100, High: 101.2, Low: 96, Close: 101},
		{Open: 101, High: 104, Low: 100, Close: 103},
	}

	p := DetectCandlePattern(candles)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	if p.Name != PatternHammer {
		t.Errorf("pattern = %s, want %s", p.Name, PatternHammer)
	}
	if !p.Confirmed {
		t.Error("expected confirmation from the following close")
	}
}

func TestDetectCandlePatternPrefersRecentBar(t *testing.T) {
	// Hammer at the second-to-last bar and a doji at the last: the more
	// recent candidate wins even though the hammer ranks higher.
	candles := []domain.Candle{
		{Open: 100, High: 101, Low: 99, Close: 100.5},
		{Open: 100, High: 101.2, Low: 96, Close: 101},
		{Open: 101, High: 103, Low: 99, Close: 101.1},
	}

	p := DetectCandlePattern(candles)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	if p.Name != PatternDoji || p.Index != 2 {
		t.Errorf("pattern = %s at %d, want %s at 2", p.Name, p.Index, PatternDoji)
	}
}

func TestDetectCandlePatternTooFewBars(t *testing.T) {
	if p := DetectCandlePattern([]domain.Candle{{Open: 1, High: 2, Low: 0, Close: 1}}); p != nil {
		t.Errorf("expected nil for a single bar, got %+v", p)
	}
}
