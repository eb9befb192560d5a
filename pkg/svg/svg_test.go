package svg

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, n))
	return buf.String()
}

func TestStyle_String(t *testing.T) {
	s := Style{"stroke": "#000", "fill": "none", "shape-rendering": "crispEdges"}
	assert.Equal(t, "fill: none; shape-rendering: crispEdges; stroke: #000;", s.String())
	assert.Equal(t, s, ParseStyle(s.String()))
}

func TestSetStyle_Merges(t *testing.T) {
	p := Path("line", "M0,0L1,1")
	SetStyle(p, Style{"fill": "none"})
	SetStyle(p, Style{"stroke-width": "1.5px", "fill": "red"})

	v, ok := GetAttr(p, "style")
	require.True(t, ok)
	assert.Equal(t, "fill: red; stroke-width: 1.5px;", v)
}

func TestElements(t *testing.T) {
	root := Root(400, 200, "chart")
	g := Group("x axis", Translate(0, 150))
	root.AppendChild(g)
	Append(g, "line", Attr("y2", "6"))
	g.AppendChild(Text("a < b", Attr("dy", ".71em")))

	out := render(t, root)
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200" class="chart">`+
			`<g class="x axis" transform="translate(0,150)"><line y2="6"></line>`+
			`<text dy=".71em">a &lt; b</text></g></svg>`,
		out)
	assert.Equal(t, "a < b", TextContent(g))
}

func TestAttrHelpers(t *testing.T) {
	p := Path("", "")
	_, ok := GetAttr(p, "d")
	assert.False(t, ok)

	SetAttr(p, "stroke", "red")
	SetAttr(p, "stroke", "blue")
	v, _ := GetAttr(p, "stroke")
	assert.Equal(t, "blue", v)
	assert.Len(t, p.Attr, 1)

	RemoveAttr(p, "stroke")
	assert.Empty(t, p.Attr)
}

func TestNum(t *testing.T) {
	assert.Equal(t, "1.5", Num(1.5))
	assert.Equal(t, "-3", Num(-3))
	assert.Equal(t, "NaN", Num(math.NaN()))
}

func TestLine_Path(t *testing.T) {
	type pt struct{ x, y float64 }
	data := []pt{{0, 10}, {10, 0}, {20, 5}}
	line := Line[pt]{
		X: func(d pt, _ int) float64 { return d.x },
		Y: func(d pt, _ int) float64 { return d.y },
	}

	tests := []struct {
		interpolate Interpolation
		want        string
	}{
		{Linear, "M0,10L10,0L20,5"},
		{"", "M0,10L10,0L20,5"},
		{Step, "M0,10H5V0H15V5H20"},
		{StepBefore, "M0,10V0H10V5H20"},
		{StepAfter, "M0,10H10V0H20V5"},
	}
	for _, tt := range tests {
		line.Interpolate = tt.interpolate
		assert.Equal(t, tt.want, line.Path(data), string(tt.interpolate))
	}

	line.Interpolate = Linear
	assert.Equal(t, "M0,10Z", line.Path(data[:1]))
	assert.Equal(t, "", line.Path(nil))
}

func TestParseInterpolation(t *testing.T) {
	i, err := ParseInterpolation("")
	require.NoError(t, err)
	assert.Equal(t, Linear, i)

	i, err = ParseInterpolation("step-after")
	require.NoError(t, err)
	assert.Equal(t, StepAfter, i)

	_, err = ParseInterpolation("cardinal")
	assert.Error(t, err)
}
