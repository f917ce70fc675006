package sentiment

import (
	"fmt"

	"github.com/drankou/go-vader/vader"
)

// Analyzer wraps the VADER sentiment analyzer for the optional comparison
// between the fixed-lexicon mean and a rule-based polarity score.
type Analyzer struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewAnalyzer initializes a VADER analyzer with its bundled lexicon.
func NewAnalyzer() (*Analyzer, error) {
	a := &Analyzer{}
	if err := a.sia.Init(); err != nil {
		return nil, fmt.Errorf("initializing vader analyzer: %w", err)
	}
	return a, nil
}

// Compound returns the VADER compound polarity of text, in [-1, 1].
func (a *Analyzer) Compound(text string) float64 {
	scores := a.sia.PolarityScores(text)
	return scores["compound"]
}
