package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/errors"
)

// LexiconMin and LexiconMax bound valid sentiment scores.
const (
	LexiconMin = -5
	LexiconMax = 5
)

// LoadLexicon reads an AFINN-format lexicon file: one entry per line,
// word TAB integer score.
func LoadLexicon(path string) (domain.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	defer f.Close()
	return ParseLexicon(f)
}

// ParseLexicon parses AFINN-format lexicon data. Scores outside
// [LexiconMin, LexiconMax] or lines without exactly two tab-separated fields
// are data-format errors. Blank lines are skipped.
func ParseLexicon(r io.Reader) (domain.Lexicon, error) {
	lex := make(domain.Lexicon)
	scan := bufio.NewScanner(r)
	line := 0
	for scan.Scan() {
		line++
		text := scan.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		parts := strings.Split(text, "\t")
		if len(parts) != 2 {
			return nil, errors.DataFormatError("lexicon line is not word TAB score").
				WithContext("line", line)
		}

		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.DataFormatError("lexicon score is not an integer").
				WithContext("line", line).WithContext("value", parts[1])
		}
		if score < LexiconMin || score > LexiconMax {
			return nil, errors.DataFormatError("lexicon score out of range").
				WithContext("line", line).WithContext("score", score)
		}

		lex[strings.ToLower(parts[0])] = score
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	return lex, nil
}
