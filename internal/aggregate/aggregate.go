// Package aggregate turns the filtered token sequence into the word table
// handed to rendering.
package aggregate

import (
	"sort"

	"github.com/nrennie/sentiment-analysis/internal/domain"
)

// WordStats counts occurrences per unique word, left-joins each word against
// the lexicon, drops words seen fewer than minCount times, and returns the
// result ordered by count descending, ties by first appearance in the token
// sequence. Words without a lexicon entry keep a nil score; they are
// rendered in a neutral color downstream, not dropped.
func WordStats(tokens []domain.Token, lex domain.Lexicon, minCount int) []domain.WordStat {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	var order []string

	for i, tok := range tokens {
		if _, seen := counts[tok.Word]; !seen {
			firstSeen[tok.Word] = i
			order = append(order, tok.Word)
		}
		counts[tok.Word]++
	}

	stats := make([]domain.WordStat, 0, len(order))
	for _, word := range order {
		if counts[word] < minCount {
			continue
		}
		stat := domain.WordStat{Word: word, Count: counts[word]}
		if score, ok := lex[word]; ok {
			s := score
			stat.Score = &s
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return firstSeen[stats[i].Word] < firstSeen[stats[j].Word]
	})
	return stats
}
