// Package linechart renders multi-series line charts as SVG into an html
// element tree: an ordinal x axis of dates, a linear y axis of values and
// one path per series.
//
// A LineChart is not safe for concurrent use; render it from one goroutine.
package linechart

import (
	"fmt"
	"html"
	"slices"

	"github.com/PuerkitoBio/goquery"
	"github.com/raykavin/linechart/pkg/axis"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dom"
	"github.com/raykavin/linechart/pkg/format"
	"github.com/raykavin/linechart/pkg/logger"
	"github.com/raykavin/linechart/pkg/metric"
	"github.com/raykavin/linechart/pkg/scale"
	"github.com/raykavin/linechart/pkg/svg"
	nethtml "golang.org/x/net/html"
)

const (
	bandPadding      = 0.5
	bandOuterPadding = 0.2
)

// LineChart draws series into a container element
type LineChart struct {
	container dom.Container
	config    Config
	formatter *format.Formatter
	log       logger.Logger
	binder    EventBinder
	metrics   *metric.Recorder

	// Set by the last Render, nil before it and after Empty
	SVG       *nethtml.Node
	Paper     *nethtml.Node
	X         *scale.Ordinal
	Y         *scale.Linear
	XAxis     *axis.Axis[string]
	YAxis     *axis.Axis[float64]
	XAxisNode *nethtml.Node
	YAxisNode *nethtml.Node
	LineGroup []*nethtml.Node

	Extent      [2]float64
	XDomain     []string
	YTickValues []float64
}

// New validates cfg, fills the defaults and binds the chart to container.
// Nothing is drawn until Render or Empty.
func New(container dom.Container, cfg Config, options ...Option) (*LineChart, error) {
	if container == nil || container.Node() == nil {
		return nil, dom.ErrNilElement
	}

	conf, err := cfg.withDefaults(container)
	if err != nil {
		return nil, fmt.Errorf("invalid chart config: %w", err)
	}

	formatter, err := format.New(conf.YValueFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid chart config: %w", err)
	}

	chart := &LineChart{
		container: container,
		config:    conf,
		formatter: formatter,
		log:       DefaultLog,
		binder:    nopBinder{},
	}
	for _, option := range options {
		option(chart)
	}

	return chart, nil
}

// Config returns a copy of the effective configuration
func (c *LineChart) Config() Config {
	return c.config.clone()
}

// Container returns the element the chart draws into
func (c *LineChart) Container() dom.Container {
	return c.container
}

// BindEvent runs the configured event binder
func (c *LineChart) BindEvent() {
	c.binder.BindEvent(c)
}

// Empty replaces the container content with a message, the default one when msg is empty
func (c *LineChart) Empty(msg string) {
	if msg == "" {
		msg = DefaultEmptyMessage
	}

	c.container.SetInnerHTML(`<div class="chart-empty">` + html.EscapeString(msg) + `</div>`)
	c.reset()
	c.metrics.ObserveEmpty()
	c.log.WithField("message", msg).Debug("chart is empty")
}

// Render draws source into the container, replacing the previous drawing.
// An empty source shows the empty message and skips callback.
func (c *LineChart) Render(source []core.Series, callback func()) {
	if len(source) == 0 {
		c.Empty(c.config.EmptyMessage)
		return
	}

	conf := c.config
	width := conf.Width - conf.Margin.Horizontal()
	height := conf.Height - conf.Margin.Vertical()

	c.clear()
	root := svg.Root(conf.Width, conf.Height, conf.ClassName)
	c.container.AppendChild(root)

	paper := svg.Group("", svg.Translate(conf.Margin.Left, conf.Margin.Top))
	root.AppendChild(paper)

	lower, upper, _ := core.Extent(source)
	if conf.Min != nil {
		lower = *conf.Min
	}
	if conf.Max != nil {
		upper = *conf.Max
	}

	domain := slices.Clone(conf.XTickValues)
	if len(domain) == 0 {
		domain = core.UnionDates(source)
	}

	x := scale.NewOrdinal(domain...).RangeBands(0, width, bandPadding, bandOuterPadding)
	y := scale.NewLinear().Domain(lower, upper).Range(height, 0)

	yTicks := slices.Clone(conf.YTickValues)
	if len(yTicks) == 0 {
		yTicks = evenTicks(lower, upper, conf.YTickNum)
	}

	xAxis := axis.New(axis.Band(x), axis.Bottom)
	yAxis := axis.New(axis.Linear(y, conf.YTickNum), axis.Left)
	yAxis.TickValues = yTicks
	yAxis.TickFormat = c.formatter.Format

	xAxisNode := svg.Group("x axis", svg.Translate(0, height))
	paper.AppendChild(xAxisNode)
	xAxis.Draw(xAxisNode)
	styleAxis(xAxisNode, conf.XAxisStyle)

	yAxisNode := svg.Group("y axis", "")
	paper.AppendChild(yAxisNode)
	yAxis.Draw(yAxisNode)
	styleAxis(yAxisNode, conf.YAxisStyle)

	line := svg.Line[core.Point]{
		X:           func(p core.Point, _ int) float64 { return x.Center(p.Date) },
		Y:           func(p core.Point, _ int) float64 { return y.Map(p.Value) },
		Interpolate: conf.Interpolate,
	}

	groups := make([]*nethtml.Node, len(source))
	points := 0
	for i, series := range source {
		group := svg.Group("line_group", "")
		path := svg.Path("line", line.Path(series.Data))
		svg.SetAttr(path, "stroke", conf.GetColor(i))
		svg.SetStyle(path, conf.LineStyle)
		group.AppendChild(path)
		paper.AppendChild(group)

		groups[i] = group
		points += series.Length()
	}

	c.SVG = root
	c.Paper = paper
	c.X, c.Y = x, y
	c.XAxis, c.YAxis = xAxis, yAxis
	c.XAxisNode, c.YAxisNode = xAxisNode, yAxisNode
	c.LineGroup = groups
	c.Extent = [2]float64{lower, upper}
	c.XDomain = x.Domain()
	c.YTickValues = yTicks

	c.log.WithFields(map[string]any{
		"series": len(source),
		"points": points,
		"domain": len(c.XDomain),
		"min":    lower,
		"max":    upper,
	}).Debug("chart rendered")
	c.metrics.ObserveChart(len(source), points)

	c.BindEvent()
	if callback != nil {
		callback()
	}
}

// clear removes the svg appended by the previous render and any empty state message
func (c *LineChart) clear() {
	if c.SVG != nil {
		c.container.RemoveChild(c.SVG)
	}
	goquery.NewDocumentFromNode(c.container.Node()).
		Children().
		Filter("div.chart-empty").
		Each(func(_ int, s *goquery.Selection) {
			c.container.RemoveChild(s.Get(0))
		})
	c.reset()
}

func (c *LineChart) reset() {
	c.SVG, c.Paper = nil, nil
	c.X, c.Y = nil, nil
	c.XAxis, c.YAxis = nil, nil
	c.XAxisNode, c.YAxisNode = nil, nil
	c.LineGroup = nil
	c.Extent = [2]float64{}
	c.XDomain, c.YTickValues = nil, nil
}

// evenTicks spreads count ticks over [min, max], both ends included
func evenTicks(lower, upper float64, count int) []float64 {
	if count <= 1 {
		return []float64{lower}
	}

	step := (upper - lower) / float64(count-1)
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = lower + step*float64(i)
	}
	return ticks
}

// styleAxis applies style to the domain path and tick lines of an axis group
func styleAxis(node *nethtml.Node, style svg.Style) {
	goquery.NewDocumentFromNode(node).Find("path, line").Each(func(_ int, s *goquery.Selection) {
		svg.SetStyle(s.Get(0), style)
	})
}
