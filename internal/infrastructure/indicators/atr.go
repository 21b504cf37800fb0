package indicators

import "math"

// CalculateATR computes the Average True Range with Wilder's smoothing. The
// first true range is high-low (no prior close); the output is trimmed to
// length len(closes)-period+1, so the last element is the current ATR.
func CalculateATR(highs, lows, closes []float64, period int) []float64 {
	length := len(closes)
	if period <= 0 || length < period || len(highs) != length || len(lows) != length {
		return nil
	}

	trs := make([]float64, length)
	trs[0] = highs[0] - lows[0]
	for i := 1; i < length; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		trs[i] = math.Max(hl, math.Max(hc, lc))
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += trs[i]
	}

	out := make([]float64, 0, length-period+1)
	atr := sum / float64(period)
	out = append(out, atr)

	for i := period; i < length; i++ {
		atr = (atr*float64(period-1) + trs[i]) / float64(period)
		out = append(out, atr)
	}

	return out
}
