package axis

import (
	"bytes"
	"testing"

	"github.com/raykavin/linechart/pkg/format"
	"github.com/raykavin/linechart/pkg/scale"
	"github.com/raykavin/linechart/pkg/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestAxis_BottomBand(t *testing.T) {
	x := scale.NewOrdinal("a", "b").RangeBands(0, 100, 0, 0)
	a := New(Band(x), Bottom)

	ticks := a.Ticks()
	require.Len(t, ticks, 2)
	assert.Equal(t, Tick{Position: 25, Label: "a"}, ticks[0])
	assert.Equal(t, Tick{Position: 75, Label: "b"}, ticks[1])
	assert.Equal(t, "M0,6V0H100V6", a.DomainPath())

	g := svg.Group("x axis", "")
	a.Draw(g)

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, g))
	assert.Equal(t,
		`<g class="x axis">`+
			`<g class="tick" transform="translate(25,0)"><line y2="6" x2="0"></line>`+
			`<text dy=".71em" y="9" x="0" style="text-anchor: middle;">a</text></g>`+
			`<g class="tick" transform="translate(75,0)"><line y2="6" x2="0"></line>`+
			`<text dy=".71em" y="9" x="0" style="text-anchor: middle;">b</text></g>`+
			`<path class="domain" d="M0,6V0H100V6"></path></g>`,
		buf.String())
}

func TestAxis_LeftLinearExplicitTicks(t *testing.T) {
	y := scale.NewLinear().Domain(0, 3).Range(150, 0)
	a := New(Linear(y, 0), Left)
	a.TickValues = []float64{0, 1, 2, 3}
	a.TickFormat = format.MustNew(".1f").Format

	ticks := a.Ticks()
	require.Len(t, ticks, 4)
	assert.Equal(t, Tick{Position: 150, Label: "0.0"}, ticks[0])
	assert.Equal(t, Tick{Position: 0, Label: "3.0"}, ticks[3])
	assert.Equal(t, "M-6,0H0V150H-6", a.DomainPath())

	g := svg.Group("y axis", "")
	a.Draw(g)
	first := g.FirstChild
	require.NotNil(t, first)
	transform, _ := svg.GetAttr(first, "transform")
	assert.Equal(t, "translate(0,150)", transform)

	text := first.LastChild
	x, _ := svg.GetAttr(text, "x")
	assert.Equal(t, "-9", x)
	style, _ := svg.GetAttr(text, "style")
	assert.Equal(t, "text-anchor: end;", style)
}

func TestAxis_LinearDefaultTicks(t *testing.T) {
	y := scale.NewLinear().Domain(0, 1000).Range(100, 0)
	a := New(Linear(y, 5), Right)

	ticks := a.Ticks()
	require.Len(t, ticks, 6)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "1,000", ticks[5].Label)
	assert.Equal(t, "M6,0H0V100H6", a.DomainPath())
}

func TestAxis_Top(t *testing.T) {
	x := scale.NewOrdinal("a").RangeBands(0, 10, 0, 0)
	a := New(Band(x), Top)
	assert.Equal(t, "M0,-6V0H10V-6", a.DomainPath())

	g := svg.Group("", "")
	a.Draw(g)
	text := g.FirstChild.LastChild
	y, _ := svg.GetAttr(text, "y")
	assert.Equal(t, "-9", y)
}
