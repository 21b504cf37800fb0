package indicators

// CalculateVWAP computes the cumulative volume-weighted average price over
// the supplied session. Output length matches the input; bars before any
// volume has traded carry a zero.
func CalculateVWAP(highs, lows, closes, volumes []float64) []float64 {
	length := len(closes)
	if len(highs) != length || len(lows) != length || len(volumes) != length {
		return nil
	}

	vwap := make([]float64, length)
	cumulativeTPV := 0.0
	cumulativeVol := 0.0

	for i := 0; i < length; i++ {
		typicalPrice := (highs[i] + lows[i] + closes[i]) / 3.0
		cumulativeTPV += typicalPrice * volumes[i]
		cumulativeVol += volumes[i]
		if cumulativeVol > 0 {
			vwap[i] = cumulativeTPV / cumulativeVol
		}
	}

	return vwap
}
