package indicators

import "math"

// BollingerBands holds the three band series. All slices share the trimmed
// length len(closes)-period+1.
type BollingerBands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// CalculateBollingerBands computes Bollinger bands using the population
// standard deviation of each trailing window. Empty bands when there is not
// enough data.
func CalculateBollingerBands(closes []float64, period int, multiplier float64) BollingerBands {
	if period <= 0 || len(closes) < period {
		return BollingerBands{}
	}

	n := len(closes) - period + 1
	bb := BollingerBands{
		Upper:  make([]float64, n),
		Middle: make([]float64, n),
		Lower:  make([]float64, n),
	}

	for i := 0; i < n; i++ {
		window := closes[i : i+period]

		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)

		sumSq := 0.0
		for _, v := range window {
			diff := v - mean
			sumSq += diff * diff
		}
		sigma := math.Sqrt(sumSq / float64(period))

		bb.Middle[i] = mean
		bb.Upper[i] = mean + multiplier*sigma
		bb.Lower[i] = mean - multiplier*sigma
	}

	return bb
}

// RelativePosition reports where price sits between the last lower and upper
// band, 0 at the lower band and 1 at the upper. A zero-width band (flat
// series) reports 0.5.
func (bb BollingerBands) RelativePosition(price float64) float64 {
	n := len(bb.Upper)
	if n == 0 || len(bb.Lower) != n {
		return 0.5
	}
	upper := bb.Upper[n-1]
	lower := bb.Lower[n-1]
	width := upper - lower
	if width == 0 {
		return 0.5
	}
	return (price - lower) / width
}
