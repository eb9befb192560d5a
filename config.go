package linechart

import (
	"fmt"
	"slices"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dom"
	"github.com/raykavin/linechart/pkg/svg"
	"github.com/samber/lo"
)

const (
	DefaultWidth        = 400
	DefaultHeight       = 200
	DefaultYTickNum     = 4
	DefaultYValueFormat = "f"
	DefaultEmptyMessage = "暂无数据"
)

// DefaultMargin is used when no side of Config.Margin is set
var DefaultMargin = core.Margin{Top: 20, Right: 20, Bottom: 30, Left: 50}

// DefaultAxisStyle is applied to the domain path and tick lines of both axes
func DefaultAxisStyle() svg.Style {
	return svg.Style{"fill": "none", "stroke": "#000", "shape-rendering": "crispEdges"}
}

// DefaultLineStyle is applied to every series path
func DefaultLineStyle() svg.Style {
	return svg.Style{"fill": "none", "stroke-width": "1.5px"}
}

// Config holds the chart settings. Zero values take the defaults.
type Config struct {
	// Width and Height of the svg; zero uses the container size, then 400x200
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`

	Margin core.Margin `json:"margin" mapstructure:"margin"`

	// Min and Max override the value extent of the data
	Min *float64 `json:"min,omitempty" mapstructure:"min"`
	Max *float64 `json:"max,omitempty" mapstructure:"max"`

	YTickNum     int       `json:"yTickNum" mapstructure:"yTickNum"`
	XTickValues  []string  `json:"xTickValues" mapstructure:"xTickValues"`
	YTickValues  []float64 `json:"yTickValues" mapstructure:"yTickValues"`
	YValueFormat string    `json:"yValueFormat" mapstructure:"yValueFormat"`

	XAxisStyle svg.Style `json:"xAxisStyle" mapstructure:"xAxisStyle"`
	YAxisStyle svg.Style `json:"yAxisStyle" mapstructure:"yAxisStyle"`
	LineStyle  svg.Style `json:"lineStyle" mapstructure:"lineStyle"`

	ColorList []string `json:"colorList" mapstructure:"colorList"`
	// GetColor maps a series index to its stroke; defaults to cycling ColorList
	GetColor func(index int) string `json:"-" mapstructure:"-"`

	EmptyMessage string            `json:"emptyMessage" mapstructure:"emptyMessage"`
	ClassName    string            `json:"className" mapstructure:"className"`
	Interpolate  svg.Interpolation `json:"interpolate" mapstructure:"interpolate"`
}

// withDefaults returns an independent copy of cfg with every unset field
// filled, measuring the container for the size
func (cfg Config) withDefaults(container dom.Container) (Config, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, fmt.Errorf("%w: %gx%g", core.ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	if cfg.YTickNum < 0 {
		return Config{}, fmt.Errorf("%w: %d", core.ErrInvalidTickCount, cfg.YTickNum)
	}

	out := cfg
	out.Width = firstPositive(cfg.Width, container.Width(), DefaultWidth)
	out.Height = firstPositive(cfg.Height, container.Height(), DefaultHeight)

	if cfg.Margin.IsZero() {
		out.Margin = DefaultMargin
	}
	if cfg.Min != nil {
		out.Min = lo.ToPtr(*cfg.Min)
	}
	if cfg.Max != nil {
		out.Max = lo.ToPtr(*cfg.Max)
	}
	if cfg.YTickNum == 0 {
		out.YTickNum = DefaultYTickNum
	}

	out.XTickValues = slices.Clone(cfg.XTickValues)
	out.YTickValues = slices.Clone(cfg.YTickValues)

	if cfg.YValueFormat == "" {
		out.YValueFormat = DefaultYValueFormat
	}

	out.XAxisStyle = styleOrDefault(cfg.XAxisStyle, DefaultAxisStyle)
	out.YAxisStyle = styleOrDefault(cfg.YAxisStyle, DefaultAxisStyle)
	out.LineStyle = styleOrDefault(cfg.LineStyle, DefaultLineStyle)

	out.ColorList = slices.Clone(cfg.ColorList)
	if len(out.ColorList) == 0 {
		out.ColorList = slices.Clone(core.DefaultPalette)
	}
	if cfg.GetColor == nil {
		palette := out.ColorList
		out.GetColor = func(index int) string {
			return core.CyclicColor(index, palette)
		}
	}

	if cfg.EmptyMessage == "" {
		out.EmptyMessage = DefaultEmptyMessage
	}

	interpolate, err := svg.ParseInterpolation(string(cfg.Interpolate))
	if err != nil {
		return Config{}, err
	}
	out.Interpolate = interpolate

	return out, nil
}

// clone copies cfg without sharing slices, maps or pointers with it
func (cfg Config) clone() Config {
	out := cfg
	if cfg.Min != nil {
		out.Min = lo.ToPtr(*cfg.Min)
	}
	if cfg.Max != nil {
		out.Max = lo.ToPtr(*cfg.Max)
	}
	out.XTickValues = slices.Clone(cfg.XTickValues)
	out.YTickValues = slices.Clone(cfg.YTickValues)
	out.XAxisStyle = cfg.XAxisStyle.Clone()
	out.YAxisStyle = cfg.YAxisStyle.Clone()
	out.LineStyle = cfg.LineStyle.Clone()
	out.ColorList = slices.Clone(cfg.ColorList)
	return out
}

func firstPositive(values ...float64) float64 {
	v, _ := lo.Find(values, func(v float64) bool { return v > 0 })
	return v
}

func styleOrDefault(s svg.Style, def func() svg.Style) svg.Style {
	if len(s) == 0 {
		return def()
	}
	return s.Clone()
}
