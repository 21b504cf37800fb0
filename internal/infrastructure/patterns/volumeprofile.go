package patterns

import "github.com/nilsnoeller-tech/trading-sub000/internal/domain"

// ProfileBins is the fixed number of price bins in a volume profile.
const ProfileBins = 50

// VolumeProfile is a histogram of traded volume over price bins.
type VolumeProfile struct {
	Low      float64   // bottom of the observed price range
	High     float64   // top of the observed price range
	Bins     []float64 // accumulated volume per bin
	POCIndex int       // bin with the highest accumulated volume
}

// BuildVolumeProfile partitions the observed price range into ProfileBins
// bins and distributes each candle's volume evenly across the bins its
// high-low range overlaps.
func BuildVolumeProfile(candles []domain.Candle) *VolumeProfile {
	if len(candles) == 0 {
		return nil
	}

	low := candles[0].Low
	high := candles[0].High
	for _, c := range candles[1:] {
		if c.Low < low {
			low = c.Low
		}
		if c.High > high {
			high = c.High
		}
	}
	if high <= low {
		// Flat range: all volume in one bin.
		bins := make([]float64, ProfileBins)
		for _, c := range candles {
			bins[0] += float64(c.Volume)
		}
		return &VolumeProfile{Low: low, High: high, Bins: bins, POCIndex: 0}
	}

	bins := make([]float64, ProfileBins)
	binSize := (high - low) / ProfileBins

	for _, c := range candles {
		first := priceBin(c.Low, low, binSize)
		last := priceBin(c.High, low, binSize)
		span := last - first + 1
		share := float64(c.Volume) / float64(span)
		for b := first; b <= last; b++ {
			bins[b] += share
		}
	}

	poc := 0
	for i := 1; i < len(bins); i++ {
		if bins[i] > bins[poc] {
			poc = i
		}
	}

	return &VolumeProfile{Low: low, High: high, Bins: bins, POCIndex: poc}
}

// BinFor returns the bin index for a price, clamped to the histogram range.
func (p *VolumeProfile) BinFor(price float64) int {
	if p.High <= p.Low {
		return 0
	}
	binSize := (p.High - p.Low) / ProfileBins
	return priceBin(price, p.Low, binSize)
}

// POCPrice is the midpoint price of the point-of-control bin.
func (p *VolumeProfile) POCPrice() float64 {
	if p.High <= p.Low {
		return p.Low
	}
	binSize := (p.High - p.Low) / ProfileBins
	return p.Low + (float64(p.POCIndex)+0.5)*binSize
}

// NearPOC reports whether a price falls within one bin of the point of
// control.
func (p *VolumeProfile) NearPOC(price float64) bool {
	diff := p.BinFor(price) - p.POCIndex
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

func priceBin(price, low, binSize float64) int {
	if binSize <= 0 {
		return 0
	}
	idx := int((price - low) / binSize)
	if idx < 0 {
		return 0
	}
	if idx >= ProfileBins {
		return ProfileBins - 1
	}
	return idx
}
