package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorical(t *testing.T) {
	values := []string{"a", "b", "a", "c", "b", "a"}

	t.Run("unique count", func(t *testing.T) {
		assert.Equal(t, 3, UniqueCount(values))
		assert.Equal(t, 0, UniqueCount(nil))
	})

	t.Run("modes", func(t *testing.T) {
		modes, count := Modes(values)
		assert.Equal(t, []string{"a"}, modes)
		assert.Equal(t, 3, count)
	})

	t.Run("modes return every tie", func(t *testing.T) {
		modes, count := Modes([]string{"x", "y", "x", "y", "z"})
		assert.Equal(t, []string{"x", "y"}, modes)
		assert.Equal(t, 2, count)
	})

	t.Run("frequency table", func(t *testing.T) {
		table := FrequencyTable(values)
		require.Len(t, table, 3)
		assert.Equal(t, FrequencyEntry{Value: "a", Count: 3, Percentage: 50}, table[0])
		assert.Equal(t, "b", table[1].Value)
		assert.Equal(t, 2, table[1].Count)
		assert.InDelta(t, 33.33, table[1].Percentage, 0.01)
		assert.Equal(t, "c", table[2].Value)
		assert.Equal(t, 1, table[2].Count)
		assert.InDelta(t, 16.67, table[2].Percentage, 0.01)

		var sum float64
		var total int
		for _, e := range table {
			sum += e.Percentage
			total += e.Count
		}
		assert.InDelta(t, 100, sum, 1e-9)
		assert.Equal(t, len(values), total)
	})

	t.Run("frequency ties keep encounter order", func(t *testing.T) {
		table := FrequencyTable([]string{"b", "a", "b", "a"})
		require.Len(t, table, 2)
		assert.Equal(t, "b", table[0].Value)
		assert.Equal(t, "a", table[1].Value)
	})
}

func TestCategoricalColumn(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		rows := []Row{
			{"pos": "gk"},
			{"pos": "fw"},
			{"pos": nil},
			{"pos": "gk"},
		}
		c, err := CategoricalColumn(rows, "pos")
		require.NoError(t, err)
		assert.Equal(t, 3, c.Count)
		assert.Equal(t, 2, c.Unique)
		assert.Equal(t, []string{"gk"}, c.Modes)
		assert.Equal(t, 2, c.ModeCount)
		require.Len(t, c.Frequencies, 2)
		assert.Equal(t, "gk", c.Frequencies[0].Value)
	})

	t.Run("non-string values categorize by printed form", func(t *testing.T) {
		rows := []Row{{"flag": true}, {"flag": true}, {"flag": false}}
		c, err := CategoricalColumn(rows, "flag")
		require.NoError(t, err)
		assert.Equal(t, []string{"true"}, c.Modes)
	})

	t.Run("all absent", func(t *testing.T) {
		rows := []Row{{"pos": nil}, {"other": "x"}}
		_, err := CategoricalColumn(rows, "pos")
		assert.ErrorIs(t, err, ErrNoValues)
		assert.Contains(t, err.Error(), `"pos"`)
	})
}
