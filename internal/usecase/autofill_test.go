package usecase

import (
	"testing"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

func TestLeadingIndexFor(t *testing.T) {
	cases := []struct {
		currency string
		want     string
	}{
		{"USD", "^GSPC"},
		{"EUR", "^GDAXI"},
		{"eur", "^GDAXI"},
		{"", "^GSPC"},
		{"GBP", "^GSPC"},
	}
	for _, c := range cases {
		if got := LeadingIndexFor(c.currency); got != c.want {
			t.Errorf("LeadingIndexFor(%q) = %q, want %q", c.currency, got, c.want)
		}
	}
}

func TestAutoFillQuestionnaireCoversAutoQuestions(t *testing.T) {
	daily := risingCandles(250)
	results := AutoFillQuestionnaire(daily, risingCandles(250))

	if len(results) != 8 {
		t.Fatalf("expected 8 auto-filled items, got %d", len(results))
	}

	seen := map[domain.QuestionID]bool{}
	for _, r := range results {
		seen[r.Question] = true

		options, ok := domain.QuestionOptions[r.Question]
		if !ok {
			t.Errorf("unknown question %q", r.Question)
			continue
		}
		if r.OptionIndex < 0 || r.OptionIndex >= len(options) {
			t.Errorf("%s: option index %d out of range (%d options)", r.Question, r.OptionIndex, len(options))
		}
		if r.Confidence <= 0 || r.Confidence > 1 {
			t.Errorf("%s: confidence %f outside (0,1]", r.Question, r.Confidence)
		}
		if r.Detail == "" {
			t.Errorf("%s: missing detail", r.Question)
		}
	}

	if seen[domain.QuestionChartPattern] {
		t.Error("chart pattern must stay manual")
	}
	for _, q := range []domain.QuestionID{
		domain.QuestionSupportZone, domain.QuestionVolumeProfile, domain.QuestionCandlePattern,
		domain.QuestionTrend, domain.QuestionMomentum, domain.QuestionEMAOrder,
		domain.QuestionIndexBreadth, domain.QuestionBollinger,
	} {
		if !seen[q] {
			t.Errorf("question %q not answered", q)
		}
	}
}

func TestAutoFillEMAOrderBullishStack(t *testing.T) {
	results := AutoFillQuestionnaire(risingCandles(250), nil)

	for _, r := range results {
		if r.Question != domain.QuestionEMAOrder {
			continue
		}
		if r.OptionIndex != 3 {
			t.Errorf("steady uptrend EMA order index = %d, want 3", r.OptionIndex)
		}
		if r.Confidence < 0.8 {
			t.Errorf("confidence = %f, want high", r.Confidence)
		}
	}
}

func TestAutoFillDegradesWithoutIndexData(t *testing.T) {
	results := AutoFillQuestionnaire(risingCandles(250), nil)

	for _, r := range results {
		if r.Question != domain.QuestionIndexBreadth {
			continue
		}
		if r.OptionIndex != 2 {
			t.Errorf("breadth without index data index = %d, want neutral 2", r.OptionIndex)
		}
		if r.Confidence > 0.3 {
			t.Errorf("breadth without index data confidence = %f, want low", r.Confidence)
		}
	}
}

func TestAutoFillShortSeriesStaysInRange(t *testing.T) {
	results := AutoFillQuestionnaire(risingCandles(3), nil)
	if len(results) != 8 {
		t.Fatalf("expected 8 items even on short data, got %d", len(results))
	}
	for _, r := range results {
		options := domain.QuestionOptions[r.Question]
		if r.OptionIndex < 0 || r.OptionIndex >= len(options) {
			t.Errorf("%s: option index %d out of range", r.Question, r.OptionIndex)
		}
	}
}

func TestAutoAnswersTaggedAuto(t *testing.T) {
	answers := AutoAnswers(AutoFillQuestionnaire(risingCandles(100), nil))
	if len(answers) != 8 {
		t.Fatalf("expected 8 answers, got %d", len(answers))
	}
	for _, a := range answers {
		if a.Source != domain.AnswerSourceAuto {
			t.Errorf("%s: source = %q, want auto", a.Question, a.Source)
		}
	}
}
