package svg

import (
	"fmt"
	"strings"
)

// Interpolation selects how consecutive points of a line are joined
type Interpolation string

const (
	Linear     Interpolation = "linear"
	Step       Interpolation = "step"
	StepBefore Interpolation = "step-before"
	StepAfter  Interpolation = "step-after"
)

// ParseInterpolation validates an interpolation name; empty means Linear
func ParseInterpolation(name string) (Interpolation, error) {
	switch i := Interpolation(name); i {
	case "":
		return Linear, nil
	case Linear, Step, StepBefore, StepAfter:
		return i, nil
	default:
		return "", fmt.Errorf("unknown interpolation %q", name)
	}
}

// Line generates path data from a list of values
type Line[T any] struct {
	X           func(d T, i int) float64
	Y           func(d T, i int) float64
	Interpolate Interpolation
}

// Path returns the d attribute for the data, or "" when data is empty
func (l Line[T]) Path(data []T) string {
	if len(data) == 0 {
		return ""
	}

	points := make([][2]float64, len(data))
	for i, d := range data {
		points[i] = [2]float64{l.X(d, i), l.Y(d, i)}
	}

	var b strings.Builder
	b.WriteByte('M')
	writePoint(&b, points[0])

	switch l.Interpolate {
	case Step:
		p := points[0]
		for _, next := range points[1:] {
			b.WriteString("H" + Num((p[0]+next[0])/2) + "V" + Num(next[1]))
			p = next
		}
		if len(points) > 1 {
			b.WriteString("H" + Num(p[0]))
		}
	case StepBefore:
		for _, p := range points[1:] {
			b.WriteString("V" + Num(p[1]) + "H" + Num(p[0]))
		}
	case StepAfter:
		for _, p := range points[1:] {
			b.WriteString("H" + Num(p[0]) + "V" + Num(p[1]))
		}
	default:
		if len(points) == 1 {
			b.WriteByte('Z')
		}
		for _, p := range points[1:] {
			b.WriteByte('L')
			writePoint(&b, p)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p [2]float64) {
	b.WriteString(Num(p[0]))
	b.WriteByte(',')
	b.WriteString(Num(p[1]))
}
