package stats

import (
	"fmt"
	"sort"
)

// FrequencyEntry is one row of a categorical frequency table.
type FrequencyEntry struct {
	Value      string
	Count      int
	Percentage float64
}

// Categorical is the summary of one categorical sequence.
type Categorical struct {
	Count       int
	Unique      int
	Modes       []string
	ModeCount   int
	Frequencies []FrequencyEntry
}

// tally counts occurrences and remembers first-encounter order, which every
// tie-break below is defined against.
func tally(values []string) (map[string]int, []string) {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	return counts, order
}

// UniqueCount returns the number of distinct values.
func UniqueCount(values []string) int {
	counts, _ := tally(values)
	return len(counts)
}

// Modes returns every value tied at the maximum frequency, in encounter
// order, along with that frequency. Unlike the numeric mode, ties are not
// collapsed to a single value.
func Modes(values []string) ([]string, int) {
	if len(values) == 0 {
		return nil, 0
	}
	counts, order := tally(values)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	modes := make([]string, 0, 1)
	for _, v := range order {
		if counts[v] == max {
			modes = append(modes, v)
		}
	}
	return modes, max
}

// FrequencyTable returns one entry per distinct value with its count and
// percentage of the total, sorted by descending count. Values with equal
// counts keep their encounter order.
func FrequencyTable(values []string) []FrequencyEntry {
	counts, order := tally(values)
	total := float64(len(values))
	entries := make([]FrequencyEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, FrequencyEntry{
			Value:      v,
			Count:      counts[v],
			Percentage: 100 * float64(counts[v]) / total,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// CategoricalColumn extracts the named field from every row, drops absent
// (nil) entries, and summarizes the rest as categories. Non-string values
// are categorized by their printed form.
func CategoricalColumn(rows []Row, key string) (Categorical, error) {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v := row[key]
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			values = append(values, s)
		} else {
			values = append(values, fmt.Sprint(v))
		}
	}
	if len(values) == 0 {
		return Categorical{}, fmt.Errorf("%w: %q", ErrNoValues, key)
	}
	modes, modeCount := Modes(values)
	return Categorical{
		Count:       len(values),
		Unique:      UniqueCount(values),
		Modes:       modes,
		ModeCount:   modeCount,
		Frequencies: FrequencyTable(values),
	}, nil
}
