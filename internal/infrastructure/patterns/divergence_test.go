package patterns

import "testing"

func TestHasBullishRSIDivergence(t *testing.T) {
	prices := make([]float64, 20)
	rsi := make([]float64, 20)
	for i := range prices {
		prices[i] = 100
		rsi[i] = 50
	}
	// First-half low at bar 5, deeper second-half low at bar 15 with a
	// stronger RSI.
	prices[5] = 90
	rsi[5] = 25
	prices[15] = 88
	rsi[15] = 35

	if !HasBullishRSIDivergence(prices, rsi) {
		t.Error("should detect lower low with higher RSI")
	}

	// Same lows but momentum also weaker: no divergence.
	rsi[15] = 20
	if HasBullishRSIDivergence(prices, rsi) {
		t.Error("should require RSI to hold up at the lower low")
	}

	// Second-half low not lower: no divergence.
	rsi[15] = 35
	prices[15] = 92
	if HasBullishRSIDivergence(prices, rsi) {
		t.Error("should require a lower price low")
	}
}

func TestHasBullishRSIDivergenceShortSeries(t *testing.T) {
	prices := make([]float64, 10)
	rsi := make([]float64, 10)
	if HasBullishRSIDivergence(prices, rsi) {
		t.Error("should require a full window")
	}
}
