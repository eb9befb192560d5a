package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/raykavin/linechart/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	zl, err := New(&buf, Options{Level: "info", JSON: true})
	require.NoError(t, err)

	log := NewAdapter(zl)
	log.Debug("hidden")
	log.WithField("series", 2).WithError(errors.New("boom")).Info("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "rendered", entry["message"])
	assert.Equal(t, float64(2), entry["series"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
}

func TestAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	zl, err := New(&buf, Options{Level: "debug", JSON: true})
	require.NoError(t, err)

	log := NewAdapter(zl)
	assert.Equal(t, logger.DebugLevel, log.GetLevel())

	log.SetLevel(logger.ErrorLevel)
	assert.Equal(t, logger.ErrorLevel, log.GetLevel())
	log.Warnf("dropped %d", 1)
	assert.Zero(t, buf.Len())
}

func TestConsole_Plain(t *testing.T) {
	var buf bytes.Buffer
	zl, err := New(&buf, Options{Level: "info", TimeLayout: "15:04"})
	require.NoError(t, err)

	NewAdapter(zl).WithFields(map[string]any{"file": "out.svg"}).Info("written")
	assert.Contains(t, buf.String(), "written")
	assert.Contains(t, buf.String(), "file=out.svg")
}
