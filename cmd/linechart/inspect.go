package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/internal/config"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dataset"
	"github.com/raykavin/linechart/pkg/format"
	"github.com/raykavin/linechart/pkg/metric"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const histogramBins = 10

func buildInspectCmd() *cobra.Command {
	var bucket, sheet string
	inspectCmd := &cobra.Command{
		Use:   "inspect input",
		Short: "Print the extent, domain and ticks a dataset renders with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			csvOpts := dataset.CSVOptions{Bucket: bucket}
			source, err := dataset.Load(cmd.Context(), args[0], dataset.LoadOptions{
				CSV:   csvOpts,
				Sheet: sheet,
				Fetch: dataset.FetchOptions{CSV: csvOpts, Log: linechart.DefaultLog},
			})
			if err != nil {
				return err
			}

			chart, err := drawChart(source, cfg)
			if err != nil {
				return err
			}
			return writeInspect(cmd.OutOrStdout(), chart, source)
		},
	}

	inspectCmd.Flags().StringVar(&bucket, "bucket", "", "Group CSV dates into spans (e.g. 1h, 1d, 1w)")
	inspectCmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name (default first sheet)")
	return inspectCmd
}

// writeInspect prints the derived chart properties, a per series summary
// and a histogram of every value
func writeInspect(w io.Writer, chart *linechart.LineChart, source []core.Series) error {
	if chart.SVG == nil {
		_, err := fmt.Fprintln(w, "dataset is empty")
		return err
	}

	number := format.MustNew(",.2f").Format
	ticks := format.MustNew(chart.Config().YValueFormat).Format
	points := lo.SumBy(source, func(s core.Series) int { return s.Length() })

	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Series", strconv.Itoa(len(source))},
		{"Points", strconv.Itoa(points)},
		{"Extent", number(chart.Extent[0]) + " ~ " + number(chart.Extent[1])},
		{"X domain", strings.Join(chart.XDomain, ", ")},
		{"Y ticks", strings.Join(lo.Map(chart.YTickValues, func(v float64, _ int) string { return ticks(v) }), ", ")},
	})
	table.Render()

	summary := tablewriter.NewWriter(buffer)
	summary.SetHeader([]string{"Series", "Points", "Min", "Max", "Mean", "Median", "Std dev", "Mean 95% CI"})
	summary.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range metric.Summarize(source) {
		if s.Count == 0 {
			summary.Append([]string{s.Name, "0", "-", "-", "-", "-", "-", "-"})
			continue
		}
		summary.Append([]string{
			s.Name,
			strconv.Itoa(s.Count),
			number(s.Min),
			number(s.Max),
			number(s.Mean),
			number(s.Median),
			number(s.StdDev),
			number(s.MeanInterval.Lower) + " ~ " + number(s.MeanInterval.Upper),
		})
	}
	summary.Render()

	if _, err := fmt.Fprintln(w, buffer.String()); err != nil {
		return err
	}

	values := lo.FlatMap(source, func(s core.Series, _ int) []float64 { return s.Values() })
	if len(values) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "------ VALUES -------"); err != nil {
		return err
	}
	hist := histogram.Hist(histogramBins, values)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}
