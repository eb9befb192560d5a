// Package metric records render metrics and summarises series values.
package metric

import (
	"sort"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	bootstrapSamples    = 1000
	bootstrapConfidence = 0.95
)

// Interval is a bootstrap confidence interval
type Interval struct {
	Lower float64
	Upper float64
}

// Summary describes the values of one series
type Summary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	// MeanInterval is the 95% bootstrap interval of the mean
	MeanInterval Interval
}

// Summarize computes the summary of every series; series without points
// only report their name and count
func Summarize(source []core.Series) []Summary {
	return lo.Map(source, func(s core.Series, _ int) Summary {
		summary := Summary{Name: s.Name, Count: s.Length()}
		if s.Length() == 0 {
			return summary
		}

		values := s.Values()
		summary.Min, summary.Max = floats.Min(values), floats.Max(values)
		summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
		if s.Length() == 1 {
			summary.StdDev = 0
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)
		summary.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		summary.MeanInterval = Bootstrap(values, func(sample []float64) float64 {
			return stat.Mean(sample, nil)
		}, bootstrapSamples, bootstrapConfidence)
		return summary
	})
}

// Bootstrap estimates the confidence interval of measure by resampling values
// with replacement sampleSize times
func Bootstrap(values []float64, measure func([]float64) float64, sampleSize int, confidence float64) Interval {
	if len(values) == 0 || sampleSize <= 0 {
		return Interval{}
	}

	data := make([]float64, 0, sampleSize)
	sample := make([]float64, len(values))
	for i := 0; i < sampleSize; i++ {
		for j := range sample {
			sample[j] = lo.Sample(values)
		}
		data = append(data, measure(sample))
	}

	tail := 1 - confidence
	sort.Float64s(data)
	return Interval{
		Lower: stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper: stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
	}
}
