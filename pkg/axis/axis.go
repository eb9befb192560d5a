// Package axis draws reference lines, tick marks and labels for a scale.
package axis

import (
	"math"
	"strconv"

	"github.com/raykavin/linechart/pkg/format"
	"github.com/raykavin/linechart/pkg/scale"
	"github.com/raykavin/linechart/pkg/svg"
	"golang.org/x/net/html"
)

// Orient is the side of the plot the axis is drawn on
type Orient string

const (
	Top    Orient = "top"
	Right  Orient = "right"
	Bottom Orient = "bottom"
	Left   Orient = "left"
)

const (
	DefaultTickSize    = 6
	DefaultTickPadding = 3
	DefaultTickCount   = 10
)

// Scale adapts a scale to the axis
type Scale[T any] interface {
	Position(v T) float64
	Ticks() []T
	Format() func(T) string
	Extent() [2]float64
}

// Tick is a positioned, labelled tick mark
type Tick struct {
	Position float64
	Label    string
}

// Axis renders one axis of a chart
type Axis[T any] struct {
	Scale         Scale[T]
	Orient        Orient
	TickValues    []T
	TickFormat    func(T) string
	InnerTickSize float64
	OuterTickSize float64
	TickPadding   float64
}

// New creates an axis with the default tick sizes and padding
func New[T any](s Scale[T], orient Orient) *Axis[T] {
	return &Axis[T]{
		Scale:         s,
		Orient:        orient,
		InnerTickSize: DefaultTickSize,
		OuterTickSize: DefaultTickSize,
		TickPadding:   DefaultTickPadding,
	}
}

// Ticks returns the ticks the axis draws
// Explicit TickValues win over the scale defaults.
func (a *Axis[T]) Ticks() []Tick {
	values := a.TickValues
	if len(values) == 0 {
		values = a.Scale.Ticks()
	}

	label := a.TickFormat
	if label == nil {
		label = a.Scale.Format()
	}

	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Position: a.Scale.Position(v), Label: label(v)}
	}
	return ticks
}

// Draw appends the tick groups and the domain path to g
func (a *Axis[T]) Draw(g *html.Node) {
	sign := 1.0
	if a.Orient == Top || a.Orient == Left {
		sign = -1
	}
	labelOffset := sign * (math.Max(a.InnerTickSize, 0) + a.TickPadding)
	inner := svg.Num(sign * a.InnerTickSize)

	for _, tick := range a.Ticks() {
		var group, line, text *html.Node
		switch a.Orient {
		case Left, Right:
			group = svg.Group("tick", svg.Translate(0, tick.Position))
			line = svg.Element("line", svg.Attr("x2", inner), svg.Attr("y2", "0"))
			anchor := "start"
			if a.Orient == Left {
				anchor = "end"
			}
			text = svg.Text(tick.Label,
				svg.Attr("dy", ".32em"),
				svg.Attr("x", svg.Num(labelOffset)),
				svg.Attr("y", "0"),
			)
			svg.SetStyle(text, svg.Style{"text-anchor": anchor})
		default:
			group = svg.Group("tick", svg.Translate(tick.Position, 0))
			line = svg.Element("line", svg.Attr("y2", inner), svg.Attr("x2", "0"))
			dy := ".71em"
			if a.Orient == Top {
				dy = "0em"
			}
			text = svg.Text(tick.Label,
				svg.Attr("dy", dy),
				svg.Attr("y", svg.Num(labelOffset)),
				svg.Attr("x", "0"),
			)
			svg.SetStyle(text, svg.Style{"text-anchor": "middle"})
		}
		group.AppendChild(line)
		group.AppendChild(text)
		g.AppendChild(group)
	}

	g.AppendChild(svg.Path("domain", a.DomainPath()))
}

// DomainPath returns the path data of the axis baseline with its outer ticks
func (a *Axis[T]) DomainPath() string {
	extent := a.Scale.Extent()
	r0, r1 := math.Min(extent[0], extent[1]), math.Max(extent[0], extent[1])
	outer := a.OuterTickSize
	if a.Orient == Top || a.Orient == Left {
		outer = -outer
	}

	o, start, stop := svg.Num(outer), svg.Num(r0), svg.Num(r1)
	switch a.Orient {
	case Left, Right:
		return "M" + o + "," + start + "H0V" + stop + "H" + o
	default:
		return "M" + start + "," + o + "V0H" + stop + "V" + o
	}
}

type bandScale struct {
	*scale.Ordinal
}

// Band adapts an ordinal scale; ticks sit in the middle of each band
func Band(o *scale.Ordinal) Scale[string] {
	return bandScale{o}
}

func (b bandScale) Position(v string) float64 { return b.Center(v) }
func (b bandScale) Ticks() []string           { return b.Domain() }
func (b bandScale) Extent() [2]float64        { return b.RangeExtent() }

func (b bandScale) Format() func(string) string {
	return func(s string) string { return s }
}

type linearScale struct {
	*scale.Linear
	count int
}

// Linear adapts a linear scale; without explicit values the axis asks for
// about count nicely rounded ticks
func Linear(l *scale.Linear, count int) Scale[float64] {
	if count <= 0 {
		count = DefaultTickCount
	}
	return linearScale{l, count}
}

func (l linearScale) Position(v float64) float64 { return l.Map(v) }
func (l linearScale) Ticks() []float64           { return l.Linear.Ticks(l.count) }

func (l linearScale) Extent() [2]float64 {
	return l.RangeExtent()
}

// Format picks a fixed precision matching the tick step, with grouping
func (l linearScale) Format() func(float64) string {
	d := l.DomainExtent()
	step := scale.TickStep(math.Min(d[0], d[1]), math.Max(d[0], d[1]), l.count)
	precision := 0
	if step > 0 {
		precision = max(0, int(-math.Floor(math.Log10(step)+.01)))
	}
	return format.MustNew(",." + strconv.Itoa(precision) + "f").Format
}
