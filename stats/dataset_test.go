package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestClassify(t *testing.T) {
	test := []struct {
		name string
		rows []Row
		key  string
		want Kind
	}{
		{
			name: "all numeric",
			rows: []Row{{"v": 1.0}, {"v": 2}, {"v": "3.5"}},
			key:  "v",
			want: KindNumeric,
		},
		{
			name: "exactly 80 percent numeric",
			rows: []Row{{"v": 1}, {"v": 2}, {"v": 3}, {"v": 4}, {"v": "n/a"}},
			key:  "v",
			want: KindNumeric,
		},
		{
			name: "below threshold",
			rows: []Row{{"v": 1}, {"v": 2}, {"v": 3}, {"v": "n/a"}, {"v": "n/a"}},
			key:  "v",
			want: KindCategorical,
		},
		{
			name: "absent values do not count",
			rows: []Row{{"v": nil}, {"v": 10}, {}},
			key:  "v",
			want: KindNumeric,
		},
		{
			name: "empty column defaults to categorical",
			rows: []Row{{"other": 1}, {"other": 2}},
			key:  "v",
			want: KindCategorical,
		},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rows, tt.key))
		})
	}
}

func TestNumericColumn(t *testing.T) {
	t.Run("drops non-numeric cells", func(t *testing.T) {
		rows := []Row{
			{"score": 10},
			{"score": "20"},
			{"score": "n/a"},
			{"score": nil},
			{"score": 30.0},
		}
		n, err := NumericColumn(rows, "score")
		require.NoError(t, err)
		assert.Equal(t, 3, n.Count)
		assert.Equal(t, 60.0, n.Sum)
	})

	t.Run("nothing numeric", func(t *testing.T) {
		rows := []Row{{"score": "low"}, {"score": "high"}}
		_, err := NumericColumn(rows, "score")
		assert.ErrorIs(t, err, ErrNoNumericValues)
		assert.Contains(t, err.Error(), `"score"`)
	})
}

func TestAnalyzeDataset(t *testing.T) {
	t.Run("splits columns by kind", func(t *testing.T) {
		rows := []Row{
			{"name": "ada", "score": 90, "team": "red"},
			{"name": "bob", "score": 70, "team": "red"},
			{"name": "cyd", "score": 80, "team": "blue"},
		}
		report, err := AnalyzeDataset(rows, nil)
		require.NoError(t, err)
		require.Contains(t, report.Numeric, "score")
		assert.Equal(t, 80.0, report.Numeric["score"].Median)
		require.Contains(t, report.Categorical, "team")
		assert.Equal(t, []string{"red"}, report.Categorical["team"].Modes)
		assert.Contains(t, report.Categorical, "name")
	})

	t.Run("failing column is dropped with a warning", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		rows := []Row{
			{"score": 1, "ghost": nil},
			{"score": 2, "ghost": nil},
		}
		report, err := AnalyzeDataset(rows, zap.New(core))
		require.NoError(t, err)
		assert.Contains(t, report.Numeric, "score")
		assert.NotContains(t, report.Categorical, "ghost")
		assert.NotContains(t, report.Numeric, "ghost")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "skipping column", entry.Message)
		assert.Equal(t, "ghost", entry.ContextMap()["column"])
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := AnalyzeDataset(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}
