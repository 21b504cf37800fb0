package patterns

import "testing"

func TestFindSwingLows(t *testing.T) {
	lows := []float64{5, 4, 3, 4, 5, 4, 3.5, 4, 5, 6}

	swings := FindSwingLows(lows)
	if len(swings) != 2 {
		t.Fatalf("expected 2 swing lows, got %d", len(swings))
	}
	if swings[0].Index != 2 || swings[0].Price != 3 {
		t.Errorf("first swing = %+v, want index 2 price 3", swings[0])
	}
	if swings[1].Index != 6 || swings[1].Price != 3.5 {
		t.Errorf("second swing = %+v, want index 6 price 3.5", swings[1])
	}
}

func TestFindSwingLowsTiesCount(t *testing.T) {
	// Equal neighbors still qualify.
	lows := []float64{5, 4, 3, 3, 4, 5, 6}

	swings := FindSwingLows(lows)
	if len(swings) != 2 {
		t.Fatalf("expected both tied bars as swing lows, got %d", len(swings))
	}
	if swings[0].Index != 2 || swings[1].Index != 3 {
		t.Errorf("swing indexes = %d, %d, want 2, 3", swings[0].Index, swings[1].Index)
	}
}

func TestFindSwingLowsExcludesEdges(t *testing.T) {
	// Global minimum at the last bar must not register.
	lows := []float64{5, 4, 3, 2, 1}
	if swings := FindSwingLows(lows); len(swings) != 0 {
		t.Errorf("expected no swings at series edges, got %v", swings)
	}
}

func TestFindSwingHighs(t *testing.T) {
	highs := []float64{1, 2, 5, 2, 1, 2, 4, 2, 1, 1}

	swings := FindSwingHighs(highs)
	if len(swings) != 2 {
		t.Fatalf("expected 2 swing highs, got %d", len(swings))
	}
	if swings[0].Price != 5 || swings[1].Price != 4 {
		t.Errorf("swing prices = %f, %f, want 5, 4", swings[0].Price, swings[1].Price)
	}
}

func TestCountBounces(t *testing.T) {
	swings := []SwingPoint{
		{Index: 2, Price: 100},
		{Index: 8, Price: 102},
		{Index: 14, Price: 98},
		{Index: 20, Price: 110},
	}

	if got := CountBounces(swings, 100, 0.03); got != 3 {
		t.Errorf("expected 3 bounces within 3%%, got %d", got)
	}
	if got := CountBounces(swings, 100, 0.001); got != 1 {
		t.Errorf("expected 1 bounce within 0.1%%, got %d", got)
	}
	if got := CountBounces(swings, 0, 0.03); got != 0 {
		t.Errorf("expected 0 bounces for zero price, got %d", got)
	}
}
