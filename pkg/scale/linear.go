package scale

import (
	"math"
)

// Linear maps a continuous domain onto a continuous range
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear creates a linear scale with domain and range [0, 1]
func NewLinear() *Linear {
	return &Linear{d1: 1, r1: 1}
}

// Domain sets the input interval
func (l *Linear) Domain(min, max float64) *Linear {
	l.d0, l.d1 = min, max
	return l
}

// Range sets the output interval
func (l *Linear) Range(start, stop float64) *Linear {
	l.r0, l.r1 = start, stop
	return l
}

// DomainExtent returns the input interval
func (l *Linear) DomainExtent() [2]float64 {
	return [2]float64{l.d0, l.d1}
}

// RangeExtent returns the output interval
func (l *Linear) RangeExtent() [2]float64 {
	return [2]float64{l.r0, l.r1}
}

// Map projects a domain value into the range
// A degenerate domain maps every value onto the range start.
func (l *Linear) Map(v float64) float64 {
	span := l.d1 - l.d0
	if span == 0 {
		return l.r0
	}
	t := (v - l.d0) / span
	return l.r0 + t*(l.r1-l.r0)
}

// Invert projects a range value back into the domain
func (l *Linear) Invert(px float64) float64 {
	span := l.r1 - l.r0
	if span == 0 {
		return l.d0
	}
	t := (px - l.r0) / span
	return l.d0 + t*(l.d1-l.d0)
}

// Ticks returns roughly count human friendly values spanning the domain
// Steps are powers of ten multiplied by 1, 2 or 5.
func (l *Linear) Ticks(count int) []float64 {
	start, stop := l.d0, l.d1
	if stop < start {
		start, stop = stop, start
	}

	step := TickStep(start, stop, count)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{}
	}

	first := math.Ceil(start/step) * step
	last := math.Floor(stop/step)*step + step*0.5

	ticks := make([]float64, 0, count+1)
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v >= last {
			break
		}
		ticks = append(ticks, roundTick(v, step))
	}
	return ticks
}

// TickStep returns the tick spacing Ticks would use for [start, stop]
func TickStep(start, stop float64, count int) float64 {
	span := stop - start
	if count <= 0 || span <= 0 {
		return 0
	}

	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	err := float64(count) / span * step

	switch {
	case err <= .15:
		step *= 10
	case err <= .35:
		step *= 5
	case err <= .75:
		step *= 2
	}
	return step
}

// roundTick trims the floating point noise accumulated by repeated steps
func roundTick(v, step float64) float64 {
	decimals := -math.Floor(math.Log10(step))
	if decimals <= 0 {
		return v
	}
	p := math.Pow(10, decimals)
	return math.Round(v*p) / p
}
