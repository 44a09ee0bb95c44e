// Package scale turns raw feature vectors into a representation fit for
// distance comparison: per-dimension descriptive statistics first, then a
// two-stage transform of every value.
package scale

import (
	"errors"
	"fmt"

	"github.com/ashiwatari/cohort/stats"
)

var (
	ErrEmptyDataset      = errors.New("no records to scale")
	ErrDegenerateFeature = errors.New("feature has no spread")
	ErrMissingStats      = errors.New("no statistics for feature")
)

// Stats computes descriptive statistics for every feature dimension across
// records. The dimension count is taken from the first record; callers are
// expected to have validated that all records share it.
func Stats(records [][]float64) (map[int]stats.Numeric, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	dims := len(records[0])
	byDim := make(map[int]stats.Numeric, dims)
	for d := 0; d < dims; d++ {
		column := make([]float64, len(records))
		for i, rec := range records {
			column[i] = rec[d]
		}
		n, err := stats.Describe(column)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", d, err)
		}
		byDim[d] = n
	}
	return byDim, nil
}

// Value applies the two-stage transform: min-max normalize into [0, 1],
// then shift and scale by the mean and standard deviation of the raw
// (unnormalized) values. Stage two deliberately uses the raw moments, not
// the moments of the normalized distribution.
//
// A dimension with no spread (max == min, or a zero standard deviation)
// cannot be scaled; Value fails with ErrDegenerateFeature rather than
// letting a division by zero leak NaN or Inf into distance computations.
func Value(raw float64, st stats.Numeric) (float64, error) {
	if st.Max == st.Min || st.StdDev == 0 {
		return 0, ErrDegenerateFeature
	}
	normalized := (raw - st.Min) / (st.Max - st.Min)
	return (normalized - st.Mean) / st.StdDev, nil
}

// Dataset applies Value to every value of every record using the
// per-dimension statistics in byDim.
func Dataset(records [][]float64, byDim map[int]stats.Numeric) ([][]float64, error) {
	scaled := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for d, raw := range rec {
			st, ok := byDim[d]
			if !ok {
				return nil, fmt.Errorf("%w: dimension %d", ErrMissingStats, d)
			}
			v, err := Value(raw, st)
			if err != nil {
				return nil, fmt.Errorf("dimension %d: %w", d, err)
			}
			row[d] = v
		}
		scaled[i] = row
	}
	return scaled, nil
}

// Fit composes Stats and Dataset: the single entry point for callers that
// want both the per-dimension statistics and the scaled records.
func Fit(records [][]float64) (map[int]stats.Numeric, [][]float64, error) {
	byDim, err := Stats(records)
	if err != nil {
		return nil, nil, err
	}
	scaled, err := Dataset(records, byDim)
	if err != nil {
		return nil, nil, err
	}
	return byDim, scaled, nil
}
