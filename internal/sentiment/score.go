package sentiment

import (
	"gonum.org/v1/gonum/stat"

	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/errors"
)

// UnknownWordPolicy controls how tokens without a lexicon entry enter the
// mean. The two reference treatments disagree, and the choice materially
// changes the reported value, so it is always explicit configuration.
type UnknownWordPolicy string

const (
	// PolicyZero includes unknown words in the mean with score 0.
	PolicyZero UnknownWordPolicy = "zero"
	// PolicyExclude drops unknown words before averaging.
	PolicyExclude UnknownWordPolicy = "exclude"
)

// Mean computes the arithmetic mean sentiment of the given tokens against the
// lexicon under the given policy. Returns an empty-input error when no scores
// remain to average, never NaN.
func Mean(tokens []domain.Token, lex domain.Lexicon, policy UnknownWordPolicy) (float64, error) {
	scores := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		score, known := lex[tok.Word]
		if !known && policy == PolicyExclude {
			continue
		}
		scores = append(scores, float64(score))
	}

	if len(scores) == 0 {
		return 0, errors.EmptyInputError("no tokens to average").
			WithContext("policy", string(policy))
	}
	return stat.Mean(scores, nil), nil
}
