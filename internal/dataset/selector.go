package dataset

import (
	"sort"

	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/errors"
)

// SelectTop returns the k records with the largest TotalWeeks. Ties break by
// original input order (first seen wins) so repeated runs select the same
// population. Fewer than k input records is an insufficient-data error; the
// selection never silently degrades to "all available".
func SelectTop(records []domain.Record, k int) ([]domain.Record, error) {
	if len(records) < k {
		return nil, errors.InsufficientDataError("not enough records to select from").
			WithContext("records", len(records)).WithContext("requested", k)
	}

	selected := make([]domain.Record, len(records))
	copy(selected, records)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].TotalWeeks > selected[j].TotalWeeks
	})
	return selected[:k], nil
}
