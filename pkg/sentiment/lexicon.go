package sentiment

import (
	"strings"
	"unicode"
)

// LexiconScorer is the default strategy: a deterministic weighted word
// lookup. The value is the mean weight of matched words, which keeps it
// inside [-1, 1] without normalization.
type LexiconScorer struct {
	weights map[string]float64
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{weights: defaultWeights}
}

func (s *LexiconScorer) Score(text string) (string, float64) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var sum float64
	var matched int
	for _, token := range tokens {
		if w, ok := s.weights[token]; ok {
			sum += w
			matched++
		}
	}

	if matched == 0 {
		return LabelNeutral, 0
	}

	score := clamp(sum / float64(matched))
	return labelFor(score), score
}

var defaultWeights = map[string]float64{
	"gain":         0.6,
	"gains":        0.6,
	"growth":       0.7,
	"surge":        0.8,
	"surged":       0.8,
	"rally":        0.7,
	"rallied":      0.7,
	"record":       0.5,
	"strong":       0.6,
	"stronger":     0.6,
	"beat":         0.6,
	"beats":        0.6,
	"success":      0.8,
	"successful":   0.8,
	"win":          0.7,
	"wins":         0.7,
	"winner":       0.7,
	"profit":       0.6,
	"profits":      0.6,
	"boost":        0.6,
	"boosted":      0.6,
	"improve":      0.5,
	"improved":     0.5,
	"improvement":  0.5,
	"recovery":     0.5,
	"rebound":      0.5,
	"optimism":     0.7,
	"optimistic":   0.7,
	"breakthrough": 0.8,
	"innovative":   0.5,
	"expand":       0.4,
	"expansion":    0.4,
	"hire":         0.4,
	"hiring":       0.4,
	"upgrade":      0.5,
	"upgraded":     0.5,
	"positive":     0.6,
	"soar":         0.8,
	"soared":       0.8,
	"best":         0.6,
	"top":          0.3,
	"advance":      0.4,
	"advanced":     0.4,

	"loss":        -0.6,
	"losses":      -0.6,
	"decline":     -0.6,
	"declined":    -0.6,
	"drop":        -0.5,
	"dropped":     -0.5,
	"fall":        -0.5,
	"fell":        -0.5,
	"falls":       -0.5,
	"crash":       -0.9,
	"crashed":     -0.9,
	"crisis":      -0.8,
	"fail":        -0.7,
	"failed":      -0.7,
	"failure":     -0.7,
	"fraud":       -0.9,
	"scandal":     -0.8,
	"lawsuit":     -0.6,
	"layoff":      -0.7,
	"layoffs":     -0.7,
	"cut":         -0.4,
	"cuts":        -0.4,
	"weak":        -0.5,
	"weaker":      -0.5,
	"worst":       -0.8,
	"plunge":      -0.8,
	"plunged":     -0.8,
	"slump":       -0.7,
	"slumped":     -0.7,
	"recession":   -0.8,
	"bankruptcy":  -0.9,
	"bankrupt":    -0.9,
	"debt":        -0.4,
	"risk":        -0.3,
	"risks":       -0.3,
	"fear":        -0.6,
	"fears":       -0.6,
	"warning":     -0.5,
	"warn":        -0.5,
	"warned":      -0.5,
	"downgrade":   -0.5,
	"downgraded":  -0.5,
	"negative":    -0.6,
	"concern":     -0.4,
	"concerns":    -0.4,
	"uncertainty": -0.4,
	"tumble":      -0.7,
	"tumbled":     -0.7,
	"miss":        -0.5,
	"missed":      -0.5,
}
