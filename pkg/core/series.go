package core

import (
	"math"

	"github.com/StudioSol/set"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Point is a single observation of a series
// Date is a discrete category key placed on the ordinal axis
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is a named, ordered list of points drawn as one line
type Series struct {
	Name string  `json:"name,omitempty"`
	Data []Point `json:"data"`
}

// Values returns the point values in their original order
func (s Series) Values() []float64 {
	return lo.Map(s.Data, func(p Point, _ int) float64 {
		return p.Value
	})
}

// Dates returns the point dates in their original order
func (s Series) Dates() []string {
	return lo.Map(s.Data, func(p Point, _ int) string {
		return p.Date
	})
}

// Length returns the number of points in the series
func (s Series) Length() int {
	return len(s.Data)
}

// Extent returns the [min, max] of the series values
// ok is false when the series has no points
func (s Series) Extent() (min, max float64, ok bool) {
	if len(s.Data) == 0 {
		return math.NaN(), math.NaN(), false
	}
	values := s.Values()
	return floats.Min(values), floats.Max(values), true
}

// Extent returns the global [min, max] over every point of every series
// Series without points are ignored. ok is false when no series has points.
func Extent(source []Series) (min, max float64, ok bool) {
	mins := make([]float64, 0, len(source))
	maxs := make([]float64, 0, len(source))
	for _, s := range source {
		low, high, has := s.Extent()
		if !has {
			continue
		}
		mins = append(mins, low)
		maxs = append(maxs, high)
	}

	if len(mins) == 0 {
		return math.NaN(), math.NaN(), false
	}

	min, _ = Bounds(mins)
	_, max = Bounds(maxs)
	return min, max, true
}

// Bounds returns the smallest and largest element of values
// The zero value is returned for both when values is empty.
func Bounds[T constraints.Integer | constraints.Float](values []T) (min, max T) {
	if len(values) == 0 {
		return min, max
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// UnionDates returns every date referenced by the source, in order of first
// appearance when walking the series in order, without duplicates
func UnionDates(source []Series) []string {
	dates := set.NewLinkedHashSetString()
	for _, s := range source {
		for _, p := range s.Data {
			dates.Add(p.Date)
		}
	}

	union := make([]string, 0)
	for date := range dates.Iter() {
		union = append(union, date)
	}
	return union
}
