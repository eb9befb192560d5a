package metric

import (
	"testing"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSummarize(t *testing.T) {
	summaries := Summarize([]core.Series{
		{Name: "a", Data: []core.Point{{Date: "a", Value: 1}, {Date: "b", Value: 3}, {Date: "c", Value: 2}}},
		{Name: "empty"},
	})
	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 3.0, a.Max)
	assert.InDelta(t, 2.0, a.Mean, 1e-9)
	assert.InDelta(t, 1.0, a.StdDev, 1e-9)
	assert.Equal(t, 2.0, a.Median)
	assert.GreaterOrEqual(t, a.MeanInterval.Lower, 1.0)
	assert.LessOrEqual(t, a.MeanInterval.Upper, 3.0)

	assert.Equal(t, Summary{Name: "empty"}, summaries[1])
}

func TestBootstrap_Constant(t *testing.T) {
	mean := func(v []float64) float64 { return stat.Mean(v, nil) }
	interval := Bootstrap([]float64{4, 4, 4}, mean, 50, 0.9)
	assert.Equal(t, Interval{Lower: 4, Upper: 4}, interval)

	assert.Equal(t, Interval{}, Bootstrap(nil, mean, 50, 0.9))
}
