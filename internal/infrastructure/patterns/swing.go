package patterns

// SwingPoint marks a swing low or high in a candle series.
type SwingPoint struct {
	Index int
	Price float64
}

// FindSwingLows returns the bars whose low is less than or equal to the lows
// of the two bars on each side. The first and last two bars are excluded.
func FindSwingLows(lows []float64) []SwingPoint {
	var swings []SwingPoint
	for i := 2; i < len(lows)-2; i++ {
		if lows[i] <= lows[i-1] && lows[i] <= lows[i-2] &&
			lows[i] <= lows[i+1] && lows[i] <= lows[i+2] {
			swings = append(swings, SwingPoint{Index: i, Price: lows[i]})
		}
	}
	return swings
}

// FindSwingHighs returns the bars whose high is greater than or equal to the
// highs of the two bars on each side. The first and last two bars are
// excluded.
func FindSwingHighs(highs []float64) []SwingPoint {
	var swings []SwingPoint
	for i := 2; i < len(highs)-2; i++ {
		if highs[i] >= highs[i-1] && highs[i] >= highs[i-2] &&
			highs[i] >= highs[i+1] && highs[i] >= highs[i+2] {
			swings = append(swings, SwingPoint{Index: i, Price: highs[i]})
		}
	}
	return swings
}

// CountBounces counts swing lows within the given relative tolerance of the
// reference price (±tolerance, e.g. 0.03 for 3%).
func CountBounces(swings []SwingPoint, price, tolerance float64) int {
	if price <= 0 {
		return 0
	}
	count := 0
	for _, s := range swings {
		diff := s.Price - price
		if diff < 0 {
			diff = -diff
		}
		if diff/price <= tolerance {
			count++
		}
	}
	return count
}
