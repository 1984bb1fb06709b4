// Command cli runs the chart engines against a local xlsx/csv file and
// prints JSON, for inspecting what a widget would receive.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chartcore/adapters/excel"
	"chartcore/app"
	"chartcore/domain/aggregate"
	"chartcore/domain/stats"
	"chartcore/internal"
)

var (
	flagFile  string
	flagSheet string
)

var rootCmd = &cobra.Command{
	Use:   "chartcore",
	Short: "Inspect chart data preparation, aggregation and statistics",
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Group and reduce records the way a bar/donut chart would",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupBy, _ := cmd.Flags().GetString("group-by")
		valueField, _ := cmd.Flags().GetString("value")
		op, _ := cmd.Flags().GetString("op")
		limit, _ := cmd.Flags().GetInt("limit")

		service := app.NewChartService(excel.NewRecordSource(flagFile), nil, internal.NewDefaultLogger(), limit)
		result, err := service.Load(context.Background(), app.LoadRequest{
			Query:      flagSheet,
			GroupBy:    groupBy,
			ValueField: valueField,
			Operation:  aggregate.Operation(op),
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Descriptive statistics for one numeric field",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")

		service := app.NewStatsService(nil, excel.NewRecordSource(flagFile), internal.NewDefaultLogger())
		summary, err := service.DescribeField(context.Background(), flagSheet, field)
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Bin one numeric field with the normal overlay curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		bins, _ := cmd.Flags().GetInt("bins")
		width, _ := cmd.Flags().GetFloat64("width")

		service := app.NewStatsService(nil, excel.NewRecordSource(flagFile), internal.NewDefaultLogger())
		binned, summary, err := service.HistogramField(context.Background(), flagSheet, field, bins, width)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{
			"bins":    binned,
			"summary": summary,
			"curve":   stats.CurvePoints(binned, summary.Mean, summary.StdDev, summary.Count, 0),
		})
	},
}

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Pearson correlation and regression line for a field pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		fieldX, _ := cmd.Flags().GetString("x")
		fieldY, _ := cmd.Flags().GetString("y")

		service := app.NewStatsService(nil, excel.NewRecordSource(flagFile), internal.NewDefaultLogger())
		corr, n, err := service.CorrelateFields(context.Background(), flagSheet, fieldX, fieldY)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"correlation": corr, "n": n})
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "xlsx or csv data file")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "sheet name for xlsx files")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	aggregateCmd.Flags().String("group-by", "", "field to group records by")
	aggregateCmd.Flags().String("value", "", "field to reduce per group")
	aggregateCmd.Flags().String("op", string(aggregate.Count), "Sum, Count or Average")
	aggregateCmd.Flags().Int("limit", 0, "record ceiling (default 2000)")

	describeCmd.Flags().String("field", "", "numeric field to describe")
	histogramCmd.Flags().String("field", "", "numeric field to bin")
	histogramCmd.Flags().Int("bins", 0, "bin count (0 = Sturges' rule)")
	histogramCmd.Flags().Float64("width", 400, "container width hint in px")
	correlateCmd.Flags().String("x", "", "x field")
	correlateCmd.Flags().String("y", "", "y field")

	rootCmd.AddCommand(aggregateCmd, describeCmd, histogramCmd, correlateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
