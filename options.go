package linechart

import (
	"github.com/raykavin/linechart/pkg/logger"
	"github.com/raykavin/linechart/pkg/metric"
)

// Option is a functional option for configuring a LineChart instance
type Option func(*LineChart)

// WithLogger sets the logger used by the chart, DefaultLog otherwise
func WithLogger(log logger.Logger) Option {
	return func(c *LineChart) {
		c.log = log
	}
}

// WithEventBinder replaces the no-op event hook called after each render
func WithEventBinder(binder EventBinder) Option {
	return func(c *LineChart) {
		c.binder = binder
	}
}

// WithMetrics records render outcomes on the given recorder
func WithMetrics(recorder *metric.Recorder) Option {
	return func(c *LineChart) {
		c.metrics = recorder
	}
}
