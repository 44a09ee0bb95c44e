// Command cohort groups the entities of a CSV file into similarity
// clusters and prints descriptive statistics about its columns.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/ashiwatari/cohort"
	"github.com/ashiwatari/cohort/internal/tabular"
	"github.com/ashiwatari/cohort/stats"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cohort",
	Short: "Group entities from tabular data into similarity clusters",
	Long: `cohort groups entities described by numeric feature vectors into a small
number of similarity clusters, using deterministic single-linkage
hierarchical clustering, and reports descriptive statistics per column.

Examples:
  cohort run players.csv --groups 4   # cluster rows into 4 groups
  cohort stats players.csv            # describe every column
  cohort stats players.csv --column position`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

var (
	groups  int
	noScale bool
	idCol   int
)

var runCmd = &cobra.Command{
	Use:   "run <csv>",
	Short: "Cluster the records of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		records, err := tabular.Records(f, idCol)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		opts := []cohort.Option{
			cohort.WithGroups(groups),
			cohort.WithLogger(logger),
		}
		if noScale {
			opts = append(opts, cohort.WithoutScaling())
		}
		result, err := cohort.Cluster(cmd.Context(), records, opts...)
		if err != nil {
			return err
		}
		printGroups(result.Groups)
		printFeatureStats(result.FeatureStats)
		return nil
	},
}

var column string

var statsCmd = &cobra.Command{
	Use:   "stats <csv>",
	Short: "Describe the columns of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := tabular.Rows(f)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		if column != "" {
			return printColumn(rows, column)
		}
		report, err := stats.AnalyzeDataset(rows, logger)
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

func printColumn(rows []stats.Row, key string) error {
	switch stats.Classify(rows, key) {
	case stats.KindNumeric:
		n, err := stats.NumericColumn(rows, key)
		if err != nil {
			return err
		}
		printNumericTable(map[string]stats.Numeric{key: n})
	default:
		c, err := stats.CategoricalColumn(rows, key)
		if err != nil {
			return err
		}
		printCategorical(key, c)
	}
	return nil
}

func printGroups(groups []cohort.Group) {
	for _, g := range groups {
		pterm.Printf("%s %s\n",
			pterm.LightGreen(fmt.Sprintf("Group %d", g.Index+1)),
			pterm.Gray(fmt.Sprintf("(%d members)", len(g.Members))))
		for _, id := range g.Members {
			pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.White(id))
		}
	}
}

func printFeatureStats(byDim map[int]stats.Numeric) {
	dims := make([]int, 0, len(byDim))
	for d := range byDim {
		dims = append(dims, d)
	}
	sort.Ints(dims)

	data := pterm.TableData{{"feature", "min", "max", "mean", "median", "stddev"}}
	for _, d := range dims {
		n := byDim[d]
		data = append(data, []string{
			strconv.Itoa(d),
			fnum(n.Min), fnum(n.Max), fnum(n.Mean), fnum(n.Median), fnum(n.StdDev),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printNumericTable(byKey map[string]stats.Numeric) {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := pterm.TableData{{"column", "count", "min", "max", "mean", "median", "mode", "stddev"}}
	for _, k := range keys {
		n := byKey[k]
		data = append(data, []string{
			k, strconv.Itoa(n.Count),
			fnum(n.Min), fnum(n.Max), fnum(n.Mean), fnum(n.Median), fnum(n.Mode), fnum(n.StdDev),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCategorical(key string, c stats.Categorical) {
	pterm.Printf("%s %s\n",
		pterm.LightGreen(key),
		pterm.Gray(fmt.Sprintf("(%d values, %d unique)", c.Count, c.Unique)))
	data := pterm.TableData{{"value", "count", "%"}}
	for _, e := range c.Frequencies {
		data = append(data, []string{e.Value, strconv.Itoa(e.Count), fnum(e.Percentage)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printReport(report stats.Report) {
	printNumericTable(report.Numeric)

	keys := make([]string, 0, len(report.Categorical))
	for k := range report.Categorical {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printCategorical(k, report.Categorical[k])
	}
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd.Flags().IntVarP(&groups, "groups", "g", 3, "target number of groups")
	runCmd.Flags().BoolVar(&noScale, "no-scale", false, "cluster raw feature values without scaling")
	runCmd.Flags().IntVar(&idCol, "id-column", 0, "zero-based index of the identity column")
	statsCmd.Flags().StringVarP(&column, "column", "c", "", "describe a single column")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
