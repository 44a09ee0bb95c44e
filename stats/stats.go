// Package stats computes descriptive statistics for numeric and categorical
// sequences and for the columns of schema-free tabular rows. All variance
// and standard deviation figures are population moments (divisor n, not n-1).
package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyInput    = errors.New("no values to analyze")
	ErrNoValidValues = errors.New("no finite values after filtering")
)

// Numeric is the descriptive summary of one numeric sequence.
type Numeric struct {
	Count    int
	Min      float64
	Max      float64
	Range    float64
	Mean     float64
	Sum      float64
	Median   float64
	Mode     float64
	Variance float64
	StdDev   float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Describe summarizes values. Non-finite entries (NaN, ±Inf) are dropped
// before any computation. Returns ErrEmptyInput for an empty slice and
// ErrNoValidValues when filtering removes every entry.
func Describe(values []float64) (Numeric, error) {
	if len(values) == 0 {
		return Numeric{}, ErrEmptyInput
	}
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Numeric{}, ErrNoValidValues
	}

	sorted := make([]float64, len(finite))
	copy(sorted, finite)
	sort.Float64s(sorted)

	n := Numeric{
		Count:    len(finite),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Mean:     stat.Mean(finite, nil),
		Sum:      floats.Sum(finite),
		Median:   median(sorted),
		Mode:     mode(finite),
		Variance: stat.PopVariance(finite, nil),
		StdDev:   stat.PopStdDev(finite, nil),
	}
	n.Range = n.Max - n.Min
	return n, nil
}

// median expects its input ascending. Even-length sequences take the
// average of the two central values.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// mode returns the most frequent value. When several values tie at the
// maximum frequency, the first to reach that count in encounter order wins.
func mode(values []float64) float64 {
	counts := make(map[float64]int, len(values))
	best := values[0]
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			bestCount = counts[v]
			best = v
		}
	}
	return best
}
