package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrennie/sentiment-analysis/internal/domain"
)

func tokens(words ...string) []domain.Token {
	out := make([]domain.Token, len(words))
	for i, w := range words {
		out[i] = domain.Token{Word: w}
	}
	return out
}

func repeat(word string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = word
	}
	return out
}

func TestWordStats_ThresholdAndOrder(t *testing.T) {
	var words []string
	words = append(words, repeat("love", 5)...)
	words = append(words, "hate")
	words = append(words, repeat("joy", 3)...)

	stats := WordStats(tokens(words...), domain.Lexicon{}, 3)
	require.Len(t, stats, 2)

	assert.Equal(t, "love", stats[0].Word)
	assert.Equal(t, 5, stats[0].Count)
	assert.Equal(t, "joy", stats[1].Word)
	assert.Equal(t, 3, stats[1].Count)
}

func TestWordStats_TiesByFirstAppearance(t *testing.T) {
	words := []string{"night", "day", "night", "day", "dawn", "dawn"}

	stats := WordStats(tokens(words...), domain.Lexicon{}, 1)
	require.Len(t, stats, 3)
	assert.Equal(t, "night", stats[0].Word)
	assert.Equal(t, "day", stats[1].Word)
	assert.Equal(t, "dawn", stats[2].Word)
}

func TestWordStats_LeftJoinScores(t *testing.T) {
	words := []string{"love", "love", "river", "river"}
	lex := domain.Lexicon{"love": 3}

	stats := WordStats(tokens(words...), lex, 2)
	require.Len(t, stats, 2)

	require.NotNil(t, stats[0].Score)
	assert.Equal(t, 3, *stats[0].Score)

	assert.Equal(t, "river", stats[1].Word)
	assert.Nil(t, stats[1].Score)
}

func TestWordStats_MinCountOne_KeepsEverything(t *testing.T) {
	stats := WordStats(tokens("one", "two"), domain.Lexicon{}, 1)
	assert.Len(t, stats, 2)
}

func TestWordStats_Empty(t *testing.T) {
	assert.Empty(t, WordStats(nil, domain.Lexicon{}, 3))
}

func TestWordStats_Deterministic(t *testing.T) {
	words := []string{"a1", "b2", "a1", "b2", "c3", "c3", "c3"}
	lex := domain.Lexicon{"a1": 1}

	first := WordStats(tokens(words...), lex, 2)
	second := WordStats(tokens(words...), lex, 2)
	assert.Equal(t, first, second)
}
