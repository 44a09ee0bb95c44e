// Package tabular loads CSV sources into the record and row shapes the
// statistics and clustering stages consume. All file-format knowledge
// lives here; the core packages never see a file.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ashiwatari/cohort"
	"github.com/ashiwatari/cohort/stats"
)

var (
	ErrNoHeader = errors.New("source has no header row")
	ErrNoData   = errors.New("source has no data rows")
)

// Records reads a CSV source with a header row into clustering records.
// The column at idCol supplies identities; every other cell must parse as
// a number. Parse failures name the offending row and column.
func Records(r io.Reader, idCol int) ([]cohort.Record, error) {
	header, rows, err := read(r)
	if err != nil {
		return nil, err
	}
	if idCol < 0 || idCol >= len(header) {
		return nil, fmt.Errorf("identity column %d out of range (%d columns)", idCol, len(header))
	}
	records := make([]cohort.Record, 0, len(rows))
	for n, row := range rows {
		rec := cohort.Record{Features: make([]float64, 0, len(row)-1)}
		for c, cell := range row {
			if c == idCol {
				rec.ID = cell
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				// n is zero-based and the header occupies line 1.
				return nil, fmt.Errorf("row %d, column %q: %w", n+2, header[c], err)
			}
			rec.Features = append(rec.Features, v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Rows reads a CSV source into schema-free rows for dataset analysis.
// Cells stay strings; the analyzer decides per column what is numeric.
// Empty cells are treated as absent values, not empty categories.
func Rows(r io.Reader) ([]stats.Row, error) {
	header, rows, err := read(r)
	if err != nil {
		return nil, err
	}
	out := make([]stats.Row, len(rows))
	for i, row := range rows {
		m := make(stats.Row, len(header))
		for c, cell := range row {
			if cell == "" {
				continue
			}
			m[header[c]] = cell
		}
		out[i] = m
	}
	return out, nil
}

func read(r io.Reader) ([]string, [][]string, error) {
	all, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, ErrNoHeader
	}
	if len(all) < 2 {
		return nil, nil, ErrNoData
	}
	return all[0], all[1:], nil
}
