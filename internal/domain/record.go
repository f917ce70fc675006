package domain

import "time"

// Record is one bestseller-list entry as loaded from the dataset.
// Immutable once loaded; one Record per data row, in input order.
type Record struct {
	Title      string
	Author     string
	Year       int
	TotalWeeks int
	FirstWeek  time.Time
	DebutRank  int
	BestRank   int
}

// Token is a single normalized word extracted from a title. Normalization is
// lossy: case and punctuation are discarded and cannot be recovered. Source
// points back at the originating record.
type Token struct {
	Word   string
	Source *Record
}

// Lexicon maps a lowercase word to its sentiment score in [-5, 5].
// Loaded once, read-only for the lifetime of the run.
type Lexicon map[string]int

// WordStat is the aggregated view of one unique word across the selected
// records. Score is nil when the word has no lexicon entry (left join);
// downstream rendering shows those in a neutral color rather than dropping them.
type WordStat struct {
	Word  string
	Count int
	Score *int
}
