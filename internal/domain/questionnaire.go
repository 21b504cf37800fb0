package domain

// QuestionID identifies one item of the trade-quality questionnaire.
type QuestionID string

const (
	QuestionSupportZone   QuestionID = "support_zone"
	QuestionVolumeProfile QuestionID = "volume_profile"
	QuestionCandlePattern QuestionID = "candle_pattern"
	QuestionTrend         QuestionID = "trend_structure"
	QuestionMomentum      QuestionID = "rsi_momentum"
	QuestionEMAOrder      QuestionID = "ema_order"
	QuestionIndexBreadth  QuestionID = "index_breadth"
	QuestionBollinger     QuestionID = "bollinger_position"
	QuestionChartPattern  QuestionID = "chart_pattern" // always answered manually
)

// QuestionOptions holds the fixed answer options per question, ordered from
// weakest (index 0) to strongest. Option indexes emitted by the auto-fill
// engine index into these lists, so order here is a contract.
var QuestionOptions = map[QuestionID][]string{
	QuestionSupportZone: {
		"No support nearby",
		"Weak support (1 bounce)",
		"Solid support (2 bounces)",
		"Strong support (3+ bounces)",
	},
	QuestionVolumeProfile: {
		"Far from point of control",
		"Approaching point of control",
		"Near point of control",
		"At point of control",
	},
	QuestionCandlePattern: {
		"No reversal pattern",
		"Doji / indecision",
		"Hammer or pin bar",
		"Morning star",
		"Bullish engulfing",
	},
	QuestionTrend: {
		"Downtrend (lower highs and lows)",
		"Sideways / unclear",
		"Early uptrend",
		"Established uptrend (higher highs and lows)",
	},
	QuestionMomentum: {
		"Overbought (RSI > 70)",
		"Elevated (RSI 55-70)",
		"Neutral (RSI 45-55)",
		"Oversold (RSI < 30)",
		"Buy zone (RSI 30-45)",
	},
	QuestionEMAOrder: {
		"Bearish stack (200 > 50 > 20)",
		"Mixed ordering",
		"Crossing the 200",
		"Bullish stack (20 > 50 > 200)",
	},
	QuestionIndexBreadth: {
		"Leading index falling",
		"Leading index below EMA50",
		"Leading index flat above EMA50",
		"Leading index rising above EMA50",
	},
	QuestionBollinger: {
		"Upper half of the bands",
		"Lower half of the bands",
		"Lower quartile",
		"Below the lower band",
	},
	QuestionChartPattern: {
		"No pattern",
		"Pattern forming",
		"Pattern confirmed",
	},
}

// AutoFillResult is the auto-fill engine's answer for one question.
type AutoFillResult struct {
	Question    QuestionID `json:"question"`
	OptionIndex int        `json:"optionIndex"`
	Confidence  float64    `json:"confidence"`
	Detail      string     `json:"detail"`
	RawValue    float64    `json:"rawValue"`
}

// AnswerSource tags where a questionnaire answer came from.
type AnswerSource string

const (
	AnswerSourceAuto   AnswerSource = "auto"
	AnswerSourceManual AnswerSource = "manual"
)

// Answer is one tagged questionnaire answer. Override precedence is a pure
// function of the Source tag: manual always wins over auto.
type Answer struct {
	Question    QuestionID   `json:"question"`
	Source      AnswerSource `json:"source"`
	OptionIndex int          `json:"optionIndex"`
	Confidence  float64      `json:"confidence"`
	Detail      string       `json:"detail,omitempty"`
}

// MergeAnswers combines auto-filled answers with manual ones. A manual answer
// for a question replaces the auto answer; auto answers never overwrite
// manual ones.
func MergeAnswers(auto, manual []Answer) []Answer {
	merged := make(map[QuestionID]Answer, len(auto)+len(manual))
	order := make([]QuestionID, 0, len(auto)+len(manual))

	for _, a := range auto {
		if _, seen := merged[a.Question]; !seen {
			order = append(order, a.Question)
		}
		merged[a.Question] = a
	}
	for _, m := range manual {
		if m.Source != AnswerSourceManual {
			continue
		}
		if _, seen := merged[m.Question]; !seen {
			order = append(order, m.Question)
		}
		merged[m.Question] = m
	}

	out := make([]Answer, 0, len(order))
	for _, q := range order {
		out = append(out, merged[q])
	}
	return out
}
