package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dom"
	"github.com/raykavin/linechart/pkg/logger/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChart(t *testing.T) *linechart.LineChart {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(`<div id="chart"></div>`))
	require.NoError(t, err)
	el, err := dom.Select(doc, "#chart")
	require.NoError(t, err)

	chart, err := linechart.New(el, linechart.Config{ClassName: "chart"}, linechart.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return chart
}

var source = []core.Series{
	{Name: "a", Data: []core.Point{{Date: "mon", Value: 1}, {Date: "tue", Value: 3}}},
}

func TestSVG(t *testing.T) {
	chart := newChart(t)
	chart.Render(source, nil)

	var plain bytes.Buffer
	require.NoError(t, SVG(&plain, chart, Options{}))
	assert.True(t, strings.HasPrefix(plain.String(), `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200"`))
	assert.Contains(t, plain.String(), `class="line"`)

	var minified bytes.Buffer
	require.NoError(t, SVG(&minified, chart, Options{Minify: true}))
	assert.Contains(t, minified.String(), "<svg")
	assert.Less(t, minified.Len(), plain.Len())
}

func TestSVG_NotRendered(t *testing.T) {
	chart := newChart(t)
	assert.ErrorIs(t, SVG(&bytes.Buffer{}, chart, Options{}), ErrNotRendered)

	chart.Empty("")
	assert.ErrorIs(t, SVG(&bytes.Buffer{}, chart, Options{}), ErrNotRendered)
}

func TestPage(t *testing.T) {
	chart := newChart(t)
	chart.Render(source, nil)

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, chart, PageOptions{Title: "Hits <weekly>"}))
	page := buf.String()
	assert.Contains(t, page, "<title>Hits &lt;weekly&gt;</title>")
	assert.Contains(t, page, `<div class="chart"><svg`)
	assert.Contains(t, page, ".chart-empty")

	buf.Reset()
	require.NoError(t, Page(&buf, chart, PageOptions{Minify: true, Stylesheet: "body { color: #ff0000; }"}))
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), ".chart-empty")
}

func TestPage_Empty(t *testing.T) {
	chart := newChart(t)
	chart.Render(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, chart, PageOptions{}))
	assert.Contains(t, buf.String(), "<title>Line chart</title>")
	assert.Contains(t, buf.String(), `<div class="chart-empty">暂无数据</div>`)
}
