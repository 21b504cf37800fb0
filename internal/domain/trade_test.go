package domain

import "testing"

func TestRealizedPL(t *testing.T) {
	long := TradeEntry{IsLong: true, EntryPrice: 100, Quantity: 10}
	if got := long.RealizedPL(110); got != 100 {
		t.Errorf("long win = %f, want 100", got)
	}
	if got := long.RealizedPL(95); got != -50 {
		t.Errorf("long loss = %f, want -50", got)
	}

	short := TradeEntry{IsLong: false, EntryPrice: 100, Quantity: 10}
	if got := short.RealizedPL(90); got != 100 {
		t.Errorf("short win = %f, want 100", got)
	}
	if got := short.RealizedPL(105); got != -50 {
		t.Errorf("short loss = %f, want -50", got)
	}
}

func TestRankKeyBlendsBothHorizons(t *testing.T) {
	r := ScanResult{
		Swing:    CompositeScore{Total: 80},
		Intraday: CompositeScore{Total: 50},
	}
	if got := r.RankKey(); got != 68 {
		t.Errorf("rank key = %f, want 68", got)
	}

	swingOnly := ScanResult{Swing: CompositeScore{Total: 100}}
	intradayOnly := ScanResult{Intraday: CompositeScore{Total: 100}}
	if swingOnly.RankKey() <= intradayOnly.RankKey() {
		t.Error("swing must weigh more than intraday in the blend")
	}
}
