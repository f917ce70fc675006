// Package dataset loads the bestseller TSV and selects the records the rest
// of the pipeline operates on.
package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/errors"
)

var header = []string{"title", "author", "year", "total_weeks", "first_week", "debut_rank", "best_rank"}

const firstWeekLayout = "2006-01-02"

// Load reads the tab-separated dataset from a filesystem path or an http(s)
// URL and returns the records in input order. Malformed rows fail the load
// with a data-format error; network reads honor the context deadline and
// surface a timeout error when it is exceeded. There are no retries.
func Load(ctx context.Context, source string) ([]domain.Record, error) {
	r, closeFn, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	records, err := parse(r)
	if err != nil {
		// A deadline can also fire mid-body while the parser is reading.
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.TimeoutError("reading dataset", ctx.Err()).WithContext("source", source)
		}
		return nil, err
	}
	return records, nil
}

func open(ctx context.Context, source string) (io.Reader, func(), error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return openURL(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openURL(ctx context.Context, url string) (io.Reader, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("building dataset request: %w", err)
	}

	client := &http.Client{Timeout: 0} // deadline comes from ctx
	resp, err := client.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, nil, errors.TimeoutError("fetching dataset", err).WithContext("url", url)
		}
		return nil, nil, fmt.Errorf("fetching dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("fetching dataset: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, func() { _ = resp.Body.Close() }, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return stderrors.As(err, &t) && t.Timeout()
}

func parse(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.Comma = '\t'
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err == io.EOF {
		return nil, errors.DataFormatError("dataset is empty, expected a header row")
	}
	if err != nil {
		return nil, errors.DataFormatError("reading header").WithContext("cause", err.Error())
	}
	if err := checkHeader(head); err != nil {
		return nil, err
	}

	var records []domain.Record
	row := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			var pe *csv.ParseError
			if stderrors.As(err, &pe) && stderrors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, errors.DataFormatError("row has wrong column count").
					WithContext("row", row).WithContext("want", len(header))
			}
			return nil, err
		}

		rec, err := parseRow(fields, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func checkHeader(head []string) error {
	if len(head) != len(header) {
		return errors.DataFormatError("header has wrong column count").
			WithContext("got", len(head)).WithContext("want", len(header))
	}
	for i, name := range header {
		if strings.TrimSpace(head[i]) != name {
			return errors.DataFormatError("unexpected header column").
				WithContext("column", i).WithContext("got", head[i]).WithContext("want", name)
		}
	}
	return nil
}

func parseRow(fields []string, row int) (domain.Record, error) {
	year, err := parseInt(fields[2], "year", row)
	if err != nil {
		return domain.Record{}, err
	}
	totalWeeks, err := parseInt(fields[3], "total_weeks", row)
	if err != nil {
		return domain.Record{}, err
	}
	firstWeek, err := time.Parse(firstWeekLayout, fields[4])
	if err != nil {
		return domain.Record{}, errors.DataFormatError("unparseable date field").
			WithContext("row", row).WithContext("column", "first_week").WithContext("value", fields[4])
	}
	debutRank, err := parseInt(fields[5], "debut_rank", row)
	if err != nil {
		return domain.Record{}, err
	}
	bestRank, err := parseInt(fields[6], "best_rank", row)
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		Title:      fields[0],
		Author:     fields[1],
		Year:       year,
		TotalWeeks: totalWeeks,
		FirstWeek:  firstWeek,
		DebutRank:  debutRank,
		BestRank:   bestRank,
	}, nil
}

func parseInt(s, column string, row int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.DataFormatError("unparseable numeric field").
			WithContext("row", row).WithContext("column", column).WithContext("value", s)
	}
	return v, nil
}

// skipBOM returns a reader with a leading UTF-8 byte-order mark removed.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	b, err := br.Peek(3)
	if err == nil && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	return br
}
