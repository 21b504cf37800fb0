package domain

import "testing"

func TestMergeAnswersManualWins(t *testing.T) {
	auto := []Answer{
		{Question: QuestionSupportZone, Source: AnswerSourceAuto, OptionIndex: 3, Confidence: 0.85},
		{Question: QuestionMomentum, Source: AnswerSourceAuto, OptionIndex: 4, Confidence: 0.9},
	}
	manual := []Answer{
		{Question: QuestionSupportZone, Source: AnswerSourceManual, OptionIndex: 1},
		{Question: QuestionChartPattern, Source: AnswerSourceManual, OptionIndex: 2},
	}

	merged := MergeAnswers(auto, manual)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged answers, got %d", len(merged))
	}

	byQ := map[QuestionID]Answer{}
	for _, a := range merged {
		byQ[a.Question] = a
	}

	if got := byQ[QuestionSupportZone]; got.Source != AnswerSourceManual || got.OptionIndex != 1 {
		t.Errorf("manual override lost: %+v", got)
	}
	if got := byQ[QuestionMomentum]; got.Source != AnswerSourceAuto || got.OptionIndex != 4 {
		t.Errorf("auto answer changed: %+v", got)
	}
	if got := byQ[QuestionChartPattern]; got.Source != AnswerSourceManual {
		t.Errorf("manual-only answer missing: %+v", got)
	}
}

func TestMergeAnswersIgnoresMislabeledManual(t *testing.T) {
	auto := []Answer{
		{Question: QuestionMomentum, Source: AnswerSourceAuto, OptionIndex: 4},
	}
	// An answer in the manual list without the manual tag must not override.
	manual := []Answer{
		{Question: QuestionMomentum, Source: AnswerSourceAuto, OptionIndex: 0},
	}

	merged := MergeAnswers(auto, manual)
	if len(merged) != 1 || merged[0].OptionIndex != 4 {
		t.Errorf("untagged answer overrode auto: %+v", merged)
	}
}

func TestMergeAnswersKeepsOrder(t *testing.T) {
	auto := []Answer{
		{Question: QuestionSupportZone, Source: AnswerSourceAuto},
		{Question: QuestionTrend, Source: AnswerSourceAuto},
		{Question: QuestionMomentum, Source: AnswerSourceAuto},
	}
	manual := []Answer{
		{Question: QuestionTrend, Source: AnswerSourceManual, OptionIndex: 2},
	}

	merged := MergeAnswers(auto, manual)
	want := []QuestionID{QuestionSupportZone, QuestionTrend, QuestionMomentum}
	for i, q := range want {
		if merged[i].Question != q {
			t.Errorf("position %d = %q, want %q", i, merged[i].Question, q)
		}
	}
}

func TestQuestionOptionsWeakestFirst(t *testing.T) {
	for q, options := range QuestionOptions {
		if len(options) < 3 {
			t.Errorf("%s: only %d options", q, len(options))
		}
	}
}
