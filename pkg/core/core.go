package core

// Margin is the space reserved around the plotting area, in pixels
type Margin struct {
	Top    float64 `json:"top" mapstructure:"top"`
	Right  float64 `json:"right" mapstructure:"right"`
	Bottom float64 `json:"bottom" mapstructure:"bottom"`
	Left   float64 `json:"left" mapstructure:"left"`
}

// IsZero reports whether no side of the margin was set
func (m Margin) IsZero() bool {
	return m == Margin{}
}

// Horizontal returns the sum of the left and right margins
func (m Margin) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the sum of the top and bottom margins
func (m Margin) Vertical() float64 {
	return m.Top + m.Bottom
}
