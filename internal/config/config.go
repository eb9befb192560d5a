// Package config reads chart configuration files and environment variables using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/linechart"
	"github.com/spf13/viper"
)

const EnvPrefix = "LINECHART"

// keys that can be set from the environment without a config file
var scalarKeys = []string{
	"width", "height",
	"margin.top", "margin.right", "margin.bottom", "margin.left",
	"yTickNum", "yValueFormat", "emptyMessage", "className", "interpolate",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range scalarKeys {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the chart configuration from path (YAML, JSON or TOML) with
// LINECHART_* environment variables taking precedence. An empty path reads
// the environment only.
func Load(path string) (linechart.Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return linechart.Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	}

	var cfg linechart.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return linechart.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes a configuration file holding the default settings,
// creating its directory when needed
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create configuration directory: %w", err)
	}

	v := viper.New()
	v.Set("width", linechart.DefaultWidth)
	v.Set("height", linechart.DefaultHeight)
	v.Set("margin", map[string]float64{
		"top":    linechart.DefaultMargin.Top,
		"right":  linechart.DefaultMargin.Right,
		"bottom": linechart.DefaultMargin.Bottom,
		"left":   linechart.DefaultMargin.Left,
	})
	v.Set("yTickNum", linechart.DefaultYTickNum)
	v.Set("yValueFormat", linechart.DefaultYValueFormat)
	v.Set("xAxisStyle", map[string]string(linechart.DefaultAxisStyle()))
	v.Set("yAxisStyle", map[string]string(linechart.DefaultAxisStyle()))
	v.Set("lineStyle", map[string]string(linechart.DefaultLineStyle()))
	v.Set("emptyMessage", linechart.DefaultEmptyMessage)
	v.Set("interpolate", "linear")

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("could not save default configuration: %w", err)
	}
	return nil
}
