// Package stopwords provides the pluggable stopword set used to drop
// semantically uninformative words before scoring and aggregation.
//
// The set in use is configuration: Default returns the embedded English list,
// FromFile loads a replacement from a newline-delimited file. Which list is
// active changes the reported mean sentiment, so it is never hardcoded into
// the pipeline stages.
package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default.txt
var defaultList string

// Set is a read-only set of lowercase stopwords.
type Set map[string]struct{}

// New builds a set from the given words, lowercasing each.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Default returns the embedded English stopword list.
func Default() Set {
	s, err := FromReader(strings.NewReader(defaultList))
	if err != nil {
		// The embedded list is read from memory; this cannot fail.
		panic(err)
	}
	return s
}

// FromFile loads a newline-delimited stopword list from path.
func FromFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stopword list: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader reads one lowercase word per line, skipping blanks and
// #-prefixed comment lines.
func FromReader(r io.Reader) (Set, error) {
	s := make(Set)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s[strings.ToLower(w)] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("reading stopword list: %w", err)
	}
	return s, nil
}

// Contains reports whether word is in the set. The word is expected to be
// lowercase already.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s)
}
