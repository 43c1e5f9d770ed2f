package sentiment

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Scorer maps free text to a sentiment label and a value in [-1, 1].
// Implementations are total: any input, including the empty string,
// yields a well-defined result and never an error.
type Scorer interface {
	Score(text string) (string, float64)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func labelFor(score float64) string {
	switch {
	case score >= 0.2:
		return LabelPositive
	case score <= -0.2:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
