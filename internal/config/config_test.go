package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartYAML = `
width: 640
height: 320
margin:
  top: 10
  right: 10
  bottom: 20
  left: 40
min: 0
yTickNum: 5
yValueFormat: ".1f"
xTickValues: [mon, tue, wed]
lineStyle:
  stroke-width: 2px
colorList: ["#ff0000", "#00ff00"]
interpolate: step-after
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chartYAML), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 320.0, cfg.Height)
	assert.Equal(t, core.Margin{Top: 10, Right: 10, Bottom: 20, Left: 40}, cfg.Margin)
	require.NotNil(t, cfg.Min)
	assert.Equal(t, 0.0, *cfg.Min)
	assert.Nil(t, cfg.Max)
	assert.Equal(t, 5, cfg.YTickNum)
	assert.Equal(t, ".1f", cfg.YValueFormat)
	assert.Equal(t, []string{"mon", "tue", "wed"}, cfg.XTickValues)
	assert.Equal(t, svg.Style{"stroke-width": "2px"}, cfg.LineStyle)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, cfg.ColorList)
	assert.Equal(t, svg.StepAfter, cfg.Interpolate)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t)
	t.Setenv("LINECHART_WIDTH", "800")
	t.Setenv("LINECHART_MARGIN_LEFT", "60")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 60.0, cfg.Margin.Left)
	assert.Equal(t, 10.0, cfg.Margin.Top)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("LINECHART_YVALUEFORMAT", ",d")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ",d", cfg.YValueFormat)
	assert.Zero(t, cfg.Width)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "chart.json")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(linechart.DefaultWidth), cfg.Width)
	assert.Equal(t, linechart.DefaultMargin, cfg.Margin)
	assert.Equal(t, linechart.DefaultYTickNum, cfg.YTickNum)
	assert.Equal(t, linechart.DefaultAxisStyle(), cfg.XAxisStyle)
	assert.Equal(t, linechart.DefaultEmptyMessage, cfg.EmptyMessage)
}
