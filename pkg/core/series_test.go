package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSource() []Series {
	return []Series{
		{Data: []Point{{Date: "a", Value: 1}, {Date: "b", Value: 3}}},
		{Data: []Point{{Date: "a", Value: 2}, {Date: "b", Value: 5}}},
	}
}

func TestSeries_Extent(t *testing.T) {
	min, max, ok := Series{Data: []Point{{"x", 4}, {"y", -2}, {"z", 7}}}.Extent()
	require.True(t, ok)
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 7.0, max)

	_, _, ok = Series{}.Extent()
	assert.False(t, ok)
}

func TestExtent(t *testing.T) {
	min, max, ok := Extent(sampleSource())
	require.True(t, ok)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)
}

func TestExtent_SkipsEmptySeries(t *testing.T) {
	source := append([]Series{{Name: "empty"}}, sampleSource()...)
	min, max, ok := Extent(source)
	require.True(t, ok)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)

	_, _, ok = Extent([]Series{{}, {}})
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]int{3, 9, -1, 4})
	assert.Equal(t, -1, min)
	assert.Equal(t, 9, max)

	fmin, fmax := Bounds([]float64{})
	assert.Zero(t, fmin)
	assert.Zero(t, fmax)
}

func TestUnionDates(t *testing.T) {
	source := []Series{
		{Data: []Point{{Date: "b"}, {Date: "c"}, {Date: "b"}}},
		{Data: []Point{{Date: "a"}, {Date: "c"}, {Date: "d"}}},
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, UnionDates(source))
	assert.Empty(t, UnionDates(nil))
}

func TestSeries_ValuesAndDates(t *testing.T) {
	s := sampleSource()[1]
	assert.Equal(t, []float64{2, 5}, s.Values())
	assert.Equal(t, []string{"a", "b"}, s.Dates())
	assert.Equal(t, 2, s.Length())
}

func TestCyclicColor(t *testing.T) {
	palette := []string{"r", "g", "b"}
	tests := []struct {
		index int
		want  string
	}{
		{0, "r"},
		{2, "b"},
		{3, "r"},
		{7, "g"},
		{-1, "b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CyclicColor(tt.index, palette))
	}
	assert.Equal(t, "", CyclicColor(1, nil))
	assert.Equal(t, "#ededed", CyclicColor(5, DefaultPalette))
}

func TestMargin(t *testing.T) {
	m := Margin{Top: 20, Right: 20, Bottom: 30, Left: 50}
	assert.False(t, m.IsZero())
	assert.True(t, Margin{}.IsZero())
	assert.Equal(t, 70.0, m.Horizontal())
	assert.Equal(t, 50.0, m.Vertical())
}
