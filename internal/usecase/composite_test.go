package usecase

import (
	"math"
	"reflect"
	"testing"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range swingWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("swing weights sum to %f", sum)
	}

	sum = 0.0
	for _, w := range intradayWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("intraday weights sum to %f", sum)
	}
}

func risingCandles(n int) []domain.Candle {
	candles := make([]domain.Candle, n)
	for i := range candles {
		price := 100 + float64(i)*0.5
		candles[i] = domain.Candle{
			Open:   price - 0.2,
			High:   price + 0.5,
			Low:    price - 0.5,
			Close:  price,
			Volume: 100000,
		}
	}
	return candles
}

func TestComputeSwingScoreInsufficientData(t *testing.T) {
	score := ComputeSwingScore(risingCandles(59))
	if score.Error == "" {
		t.Fatal("expected an error below 60 candles")
	}
	if score.Total != 0 || len(score.Factors) != 0 {
		t.Errorf("error result should be empty, got %+v", score)
	}

	if score := ComputeSwingScore(risingCandles(60)); score.Error != "" {
		t.Errorf("60 candles should score, got error %q", score.Error)
	}
}

func TestComputeSwingScoreRisingSeries(t *testing.T) {
	score := ComputeSwingScore(risingCandles(250))
	if score.Error != "" {
		t.Fatalf("unexpected error: %s", score.Error)
	}
	if score.Total < 0 || score.Total > 100 {
		t.Errorf("total = %d outside [0,100]", score.Total)
	}
	if len(score.Factors) != 6 {
		t.Fatalf("expected 6 factors, got %d", len(score.Factors))
	}

	found := false
	for _, s := range score.Signals {
		if s == "EMA 20>50>200" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected EMA stack signal in %v", score.Signals)
	}

	for _, f := range score.Factors {
		if f.Name == FactorEMA && f.Score != 100 {
			t.Errorf("EMA factor = %d, want 100 in a steady uptrend", f.Score)
		}
	}
}

func TestComputeSwingScoreDeterministic(t *testing.T) {
	candles := risingCandles(120)
	a := ComputeSwingScore(candles)
	b := ComputeSwingScore(candles)
	if !reflect.DeepEqual(a, b) {
		t.Error("same input must produce the same score")
	}
}

func TestComputeIntradayScoreInsufficientData(t *testing.T) {
	score := ComputeIntradayScore(risingCandles(9), risingCandles(30))
	if score.Error == "" {
		t.Fatal("expected an error below 10 intraday candles")
	}

	score = ComputeIntradayScore(risingCandles(10), risingCandles(30))
	if score.Error != "" {
		t.Errorf("10 candles should score, got error %q", score.Error)
	}
	if len(score.Factors) != 5 {
		t.Fatalf("expected 5 factors, got %d", len(score.Factors))
	}
}

func TestComputeIntradayScoreEmptyDaily(t *testing.T) {
	// Daily context missing: gap and strength degrade, the score still
	// computes from intraday factors.
	score := ComputeIntradayScore(risingCandles(20), nil)
	if score.Error != "" {
		t.Fatalf("unexpected error: %s", score.Error)
	}
	if score.Total < 0 || score.Total > 100 {
		t.Errorf("total = %d outside [0,100]", score.Total)
	}
}

func TestWeightedTotalClamps(t *testing.T) {
	factors := []domain.FactorScore{{Score: 100, Weight: 1.0}}
	if got := weightedTotal(factors); got != 100 {
		t.Errorf("total = %d, want 100", got)
	}

	factors = []domain.FactorScore{{Score: 100, Weight: 1.2}}
	if got := weightedTotal(factors); got != 100 {
		t.Errorf("overweight total = %d, want clamped 100", got)
	}

	factors = []domain.FactorScore{
		{Score: 50, Weight: 0.5},
		{Score: 51, Weight: 0.5},
	}
	if got := weightedTotal(factors); got != 51 {
		t.Errorf("total = %d, want rounded 51", got)
	}
}
