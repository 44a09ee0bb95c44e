package stats

import (
	"sort"

	"go.uber.org/zap"
)

// Kind classifies a column for dataset-wide analysis.
type Kind int

const (
	KindCategorical Kind = iota
	KindNumeric
)

// numericShare is the fraction of present values that must coerce to finite
// numbers for a column to count as numeric.
const numericShare = 0.8

// Classify inspects the named column across rows: numeric when at least 80%
// of the present values coerce to finite numbers, categorical otherwise.
// A column with no present values defaults to categorical.
func Classify(rows []Row, key string) Kind {
	var present, numeric int
	for _, row := range rows {
		v := row[key]
		if v == nil {
			continue
		}
		present++
		if _, ok := toFloat(v); ok {
			numeric++
		}
	}
	if present == 0 {
		return KindCategorical
	}
	if float64(numeric)/float64(present) >= numericShare {
		return KindNumeric
	}
	return KindCategorical
}

// Report is the dataset-wide analysis result. A column appears in exactly
// one of the two maps; columns whose analysis failed appear in neither.
type Report struct {
	Numeric     map[string]Numeric
	Categorical map[string]Categorical
}

// AnalyzeDataset classifies every column present on the first row and runs
// the matching analysis. A column that fails to analyze is dropped with a
// warning instead of failing the whole report, so one bad column cannot
// take down the rest. Columns are visited in sorted key order to keep the
// report and its warnings deterministic.
func AnalyzeDataset(rows []Row, logger *zap.Logger) (Report, error) {
	if len(rows) == 0 {
		return Report{}, ErrEmptyInput
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	report := Report{
		Numeric:     make(map[string]Numeric, len(keys)),
		Categorical: make(map[string]Categorical),
	}
	for _, key := range keys {
		switch Classify(rows, key) {
		case KindNumeric:
			n, err := NumericColumn(rows, key)
			if err != nil {
				logger.Warn("skipping column", zap.String("column", key), zap.Error(err))
				continue
			}
			report.Numeric[key] = n
		default:
			c, err := CategoricalColumn(rows, key)
			if err != nil {
				logger.Warn("skipping column", zap.String("column", key), zap.Error(err))
				continue
			}
			report.Categorical[key] = c
		}
	}
	return report, nil
}
