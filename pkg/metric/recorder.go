package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "linechart"

const (
	ResultChart = "chart"
	ResultEmpty = "empty"
)

// buckets for the number of points drawn by a render
var pointBuckets = []float64{10, 50, 100, 500, 1000, 5000, 10000}

// Recorder collects render counters and point histograms
type Recorder struct {
	renders *prometheus.CounterVec
	series  prometheus.Counter
	points  prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Renders by outcome, chart or empty state.",
		}, []string{"result"}),
		series: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_drawn_total",
			Help:      "Line paths drawn.",
		}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_points",
			Help:      "Points drawn by a single render.",
			Buckets:   pointBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{r.renders, r.series, r.points} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveChart records a render that drew series lines with points in total
func (r *Recorder) ObserveChart(series, points int) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(ResultChart).Inc()
	r.series.Add(float64(series))
	r.points.Observe(float64(points))
}

// ObserveEmpty records a render that showed the empty state
func (r *Recorder) ObserveEmpty() {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(ResultEmpty).Inc()
}
