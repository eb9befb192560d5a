package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/internal/config"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dataset"
	"github.com/raykavin/linechart/pkg/dom"
	"github.com/raykavin/linechart/pkg/export"
	"github.com/raykavin/linechart/pkg/indicator"
	"github.com/raykavin/linechart/pkg/metric"
	"github.com/raykavin/linechart/pkg/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const (
	formatSVG  = "svg"
	formatHTML = "html"
)

type renderOptions struct {
	output      string
	format      string
	title       string
	minify      bool
	sma         int
	ema         int
	bands       int
	bucket      string
	sheet       string
	database    string
	datasetName string
	metricsFile string
}

func buildRenderCmd() *cobra.Command {
	opts := renderOptions{}
	renderCmd := &cobra.Command{
		Use:   "render [inputs...]",
		Short: "Render datasets to SVG or HTML",
		Long: "Render every input (file path or http url) to an SVG file or an HTML page.\n" +
			"With several inputs the output is a directory and each chart is named after its input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	flags := renderCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, or directory for several inputs")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: svg or html (default from the output extension)")
	flags.StringVar(&opts.title, "title", "", "HTML page title")
	flags.BoolVar(&opts.minify, "minify", false, "Minify the output")
	flags.IntVar(&opts.sma, "sma", 0, "Add a simple moving average of every series")
	flags.IntVar(&opts.ema, "ema", 0, "Add an exponential moving average of every series")
	flags.IntVar(&opts.bands, "bands", 0, "Add Bollinger bands (2 standard deviations) of every series")
	flags.StringVar(&opts.bucket, "bucket", "", "Group CSV dates into spans (e.g. 1h, 1d, 1w)")
	flags.StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default first sheet)")
	flags.StringVar(&opts.database, "db", defaultDatabase, "Dataset database file")
	flags.StringVar(&opts.datasetName, "dataset", "", "Render a stored dataset")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write render metrics in Prometheus text format")

	_ = renderCmd.MarkFlagRequired("output")
	return renderCmd
}

// job is one chart to draw
type job struct {
	name   string
	source []core.Series
}

func runRender(cmd *cobra.Command, inputs []string, opts renderOptions) error {
	if len(inputs) == 0 && opts.datasetName == "" {
		return fmt.Errorf("nothing to render: give an input or --dataset")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	outputFormat, err := resolveFormat(opts)
	if err != nil {
		return err
	}

	jobs, err := collectJobs(cmd, inputs, opts)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder, err := metric.NewRecorder(registry)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if len(jobs) > 1 {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		bar = progressbar.Default(int64(len(jobs)))
	}

	for _, j := range jobs {
		output := opts.output
		if len(jobs) > 1 {
			output = filepath.Join(opts.output, j.name+"."+outputFormat)
		}

		if err := renderJob(j, output, outputFormat, cfg, recorder, opts); err != nil {
			return fmt.Errorf("%s: %w", j.name, err)
		}
		linechart.DefaultLog.WithField("file", output).Info("chart written")

		if bar != nil {
			if err := bar.Add(1); err != nil {
				linechart.DefaultLog.Warnf("update progressbar fail: %v", err)
			}
		}
	}

	if opts.metricsFile != "" {
		return prometheus.WriteToTextfile(opts.metricsFile, registry)
	}
	return nil
}

func resolveFormat(opts renderOptions) (string, error) {
	f := strings.ToLower(opts.format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}
	switch f {
	case "", formatSVG:
		return formatSVG, nil
	case formatHTML, "htm":
		return formatHTML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func collectJobs(cmd *cobra.Command, inputs []string, opts renderOptions) ([]job, error) {
	jobs := make([]job, 0, len(inputs)+1)
	loadOpts := dataset.LoadOptions{
		CSV:   dataset.CSVOptions{Bucket: opts.bucket},
		Sheet: opts.sheet,
		Fetch: dataset.FetchOptions{
			CSV: dataset.CSVOptions{Bucket: opts.bucket},
			Log: linechart.DefaultLog,
		},
	}

	for _, input := range inputs {
		source, err := dataset.Load(cmd.Context(), input, loadOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", input, err)
		}
		jobs = append(jobs, job{name: jobName(input), source: source})
	}

	if opts.datasetName != "" {
		store, err := storage.FromFile(opts.database)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		source, err := store.Load(opts.datasetName)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{name: opts.datasetName, source: source})
	}
	return jobs, nil
}

func jobName(input string) string {
	base := filepath.Base(strings.TrimRight(input, "/"))
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return "chart"
}

// withOverlays appends the requested moving averages of every series
func withOverlays(source []core.Series, sma, ema int) ([]core.Series, error) {
	out := append([]core.Series(nil), source...)
	for _, s := range source {
		for _, overlay := range []struct {
			kind   indicator.Kind
			period int
		}{{indicator.KindSMA, sma}, {indicator.KindEMA, ema}} {
			if overlay.period <= 0 {
				continue
			}
			derived, err := indicator.Overlay(s, overlay.kind, overlay.period)
			if err != nil {
				return nil, fmt.Errorf("%s of %q: %w", overlay.kind, s.Name, err)
			}
			out = append(out, derived)
		}
	}
	return out, nil
}

// withBands appends the Bollinger bands of every original series
func withBands(out, source []core.Series, period int) ([]core.Series, error) {
	if period <= 0 {
		return out, nil
	}
	for _, s := range source {
		upper, lower, err := indicator.Bands(s, period, 2)
		if err != nil {
			return nil, fmt.Errorf("bands of %q: %w", s.Name, err)
		}
		out = append(out, upper, lower)
	}
	return out, nil
}

// drawChart renders source into a fresh detached container
func drawChart(source []core.Series, cfg linechart.Config, options ...linechart.Option) (*linechart.LineChart, error) {
	doc, err := dom.Parse(strings.NewReader(`<div id="chart"></div>`))
	if err != nil {
		return nil, err
	}
	container, err := dom.Select(doc, "#chart")
	if err != nil {
		return nil, err
	}

	chart, err := linechart.New(container, cfg, options...)
	if err != nil {
		return nil, err
	}
	chart.Render(source, nil)
	return chart, nil
}

func renderJob(j job, output, outputFormat string, cfg linechart.Config, recorder *metric.Recorder, opts renderOptions) error {
	source, err := withOverlays(j.source, opts.sma, opts.ema)
	if err != nil {
		return err
	}
	if source, err = withBands(source, j.source, opts.bands); err != nil {
		return err
	}

	chart, err := drawChart(source, cfg, linechart.WithMetrics(recorder))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeChart(&buf, chart, outputFormat, j.name, opts); err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

func writeChart(w io.Writer, chart *linechart.LineChart, outputFormat, name string, opts renderOptions) error {
	if outputFormat == formatHTML {
		title := opts.title
		if title == "" {
			title = name
		}
		return export.Page(w, chart, export.PageOptions{Title: title, Minify: opts.minify})
	}
	if chart.SVG == nil {
		return fmt.Errorf("%w: dataset is empty, use --format html to keep the empty message", export.ErrNotRendered)
	}
	return export.SVG(w, chart, export.Options{Minify: opts.minify})
}
