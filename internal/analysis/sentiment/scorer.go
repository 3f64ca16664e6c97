package sentiment

import (
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/jonreiter/govader"
)

// vaderLexicon loads the VADER word valences once; the map is shared read-only.
var vaderLexicon = sync.OnceValue(func() map[string]float64 {
	return govader.NewSentimentIntensityAnalyzer().Lexicon
})

// Scorer sums per-word valences and rounds the total to an integer.
type Scorer struct {
	lexicon map[string]float64
}

// NewScorer returns a Scorer backed by the VADER lexicon (valences in [-4, 4]).
func NewScorer() *Scorer {
	return &Scorer{lexicon: vaderLexicon()}
}

// NewScorerWithLexicon copies the supplied weights so later mutation of the map has no effect.
func NewScorerWithLexicon(lexicon map[string]float64) *Scorer {
	copied := make(map[string]float64, len(lexicon))
	for word, weight := range lexicon {
		copied[strings.ToLower(word)] = weight
	}
	return &Scorer{lexicon: copied}
}

// Score returns the summed polarity of text. Text without lexicon words scores 0.
// No negation or intensity handling is applied.
func (s *Scorer) Score(text string) int {
	total := 0.0
	for _, token := range Tokenize(text) {
		total += s.lexicon[token]
	}
	return int(math.Round(total))
}

// Tokenize lower-cases text, drops punctuation except apostrophes and splits on whitespace.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'':
			return unicode.ToLower(r)
		case unicode.IsSpace(r), r == '-', r == '/':
			return ' '
		default:
			return -1
		}
	}, text)
	return strings.Fields(cleaned)
}
