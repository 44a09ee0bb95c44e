package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoNumericValues = errors.New("column has no numeric values")
	ErrNoValues        = errors.New("column has no values")
)

// Row is a schema-free tabular record as it arrives from a loader. Cell
// values may be native numbers, strings, or nil for absent cells.
type Row = map[string]any

// NumericColumn extracts the named field from every row, drops entries that
// do not coerce to a finite number, and describes the rest.
func NumericColumn(rows []Row, key string) (Numeric, error) {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := toFloat(row[key]); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Numeric{}, fmt.Errorf("%w: %q", ErrNoNumericValues, key)
	}
	return Describe(values)
}

// toFloat coerces a cell value to a finite float64. Native numeric types
// convert directly; strings go through ParseFloat, matching how dynamic
// tabular sources deliver numbers.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, isFinite(x)
	case float32:
		f := float64(x)
		return f, isFinite(f)
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || !isFinite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
