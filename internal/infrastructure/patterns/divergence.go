package patterns

// divergenceWindow is the number of most recent bars inspected for a
// bullish RSI divergence.
const divergenceWindow = 20

// HasBullishRSIDivergence reports whether the most recent 20 bars show a
// bullish divergence: the second half made a lower price low than the first
// half while the RSI at that low is higher. prices and rsi must be aligned
// bar for bar.
func HasBullishRSIDivergence(prices, rsi []float64) bool {
	n := len(prices)
	if n < divergenceWindow || len(rsi) < n {
		return false
	}

	start := n - divergenceWindow
	half := start + divergenceWindow/2

	firstIdx := minIndex(prices, start, half)
	secondIdx := minIndex(prices, half, n)

	lowerLow := prices[secondIdx] < prices[firstIdx]
	higherRSI := rsi[secondIdx] > rsi[firstIdx]

	return lowerLow && higherRSI
}

func minIndex(values []float64, start, end int) int {
	idx := start
	for i := start + 1; i < end; i++ {
		if values[i] < values[idx] {
			idx = i
		}
	}
	return idx
}
