// Package tokenize splits titles into normalized word tokens.
package tokenize

import (
	"regexp"
	"strings"

	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/stopwords"
)

// Words are maximal runs of lowercase letters and digits; everything else
// separates. Numbers are deliberately kept as tokens in their own right.
var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Title normalizes a single title into its word tokens: lowercase, punctuation
// stripped, hyphens treated as separators. "Co-op: The Game!" yields
// ["co", "op", "the", "game"].
func Title(title string) []string {
	return wordRe.FindAllString(strings.ToLower(title), -1)
}

// Records tokenizes every record title into a flat token sequence, each token
// keeping a back-reference to its source record. The sequence preserves record
// order and, within a record, word order.
func Records(records []domain.Record) []domain.Token {
	var tokens []domain.Token
	for i := range records {
		for _, w := range Title(records[i].Title) {
			tokens = append(tokens, domain.Token{Word: w, Source: &records[i]})
		}
	}
	return tokens
}

// FilterStopwords returns the tokens whose words are not in the given set,
// preserving order. The input is left untouched.
func FilterStopwords(tokens []domain.Token, stops stopwords.Set) []domain.Token {
	var out []domain.Token
	for _, tok := range tokens {
		if !stops.Contains(tok.Word) {
			out = append(out, tok)
		}
	}
	return out
}
