package scale

import "math"

// Ordinal maps discrete category keys to evenly spaced bands
type Ordinal struct {
	domain       []string
	index        map[string]int
	start, stop  float64
	padding      float64
	outerPadding float64
	step         float64
	band         float64
	reverse      bool
}

// NewOrdinal creates an ordinal scale over the given keys
// Duplicate keys keep their first position.
func NewOrdinal(domain ...string) *Ordinal {
	o := &Ordinal{}
	o.SetDomain(domain)
	return o
}

// SetDomain replaces the domain and recomputes the bands
func (o *Ordinal) SetDomain(domain []string) *Ordinal {
	o.domain = make([]string, 0, len(domain))
	o.index = make(map[string]int, len(domain))
	for _, key := range domain {
		if _, ok := o.index[key]; ok {
			continue
		}
		o.index[key] = len(o.domain)
		o.domain = append(o.domain, key)
	}
	o.rescale()
	return o
}

// Domain returns a copy of the scale keys
func (o *Ordinal) Domain() []string {
	return append([]string(nil), o.domain...)
}

// RangeBands divides [start, stop] into one band per key
// padding is the gap between bands and outerPadding the gap at both ends,
// both expressed as a fraction of the step between band starts.
// When stop < start the bands are laid out from stop and the keys keep
// running from start to stop.
func (o *Ordinal) RangeBands(start, stop, padding, outerPadding float64) *Ordinal {
	o.start, o.stop = start, stop
	o.padding, o.outerPadding = padding, outerPadding
	o.rescale()
	return o
}

func (o *Ordinal) rescale() {
	n := float64(len(o.domain))
	if n == 0 {
		o.step, o.band = 0, 0
		return
	}

	o.reverse = o.stop < o.start
	o.step = math.Abs(o.stop-o.start) / (n - o.padding + 2*o.outerPadding)
	o.band = o.step * (1 - o.padding)
}

// Map returns the start of the band for key, or NaN for a key outside the domain
func (o *Ordinal) Map(key string) float64 {
	i, ok := o.index[key]
	if !ok {
		return math.NaN()
	}
	if o.reverse {
		i = len(o.domain) - 1 - i
	}
	return math.Min(o.start, o.stop) + o.step*(o.outerPadding+float64(i))
}

// Center returns the middle of the band for key
func (o *Ordinal) Center(key string) float64 {
	return o.Map(key) + o.band/2
}

// Range returns the band start of every key, in domain order
func (o *Ordinal) Range() []float64 {
	r := make([]float64, len(o.domain))
	for i, key := range o.domain {
		r[i] = o.Map(key)
	}
	return r
}

// Bandwidth returns the width of a single band
func (o *Ordinal) Bandwidth() float64 {
	return o.band
}

// Step returns the distance between the starts of two adjacent bands
func (o *Ordinal) Step() float64 {
	return o.step
}

// RangeExtent returns the [start, stop] interval handed to RangeBands
func (o *Ordinal) RangeExtent() [2]float64 {
	return [2]float64{o.start, o.stop}
}
