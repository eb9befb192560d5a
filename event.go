package linechart

// EventBinder attaches interaction to a freshly rendered chart.
// Render calls it after drawing and before the callback.
type EventBinder interface {
	BindEvent(chart *LineChart)
}

// EventBinderFunc adapts a function to EventBinder
type EventBinderFunc func(chart *LineChart)

func (f EventBinderFunc) BindEvent(chart *LineChart) {
	f(chart)
}

type nopBinder struct{}

func (nopBinder) BindEvent(*LineChart) {}
