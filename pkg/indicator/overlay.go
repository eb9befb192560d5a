// Package indicator derives overlay series, such as moving averages, from a chart series.
package indicator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markcheno/go-talib"
	"github.com/raykavin/linechart/pkg/core"
)

var ErrInvalidPeriod = errors.New("invalid indicator period")

// Kind names a moving average
type Kind string

const (
	KindSMA Kind = "SMA" // Simple Moving Average
	KindEMA Kind = "EMA" // Exponential Moving Average
	KindWMA Kind = "WMA" // Weighted Moving Average
)

// ParseKind accepts sma, ema and wma in any case
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToUpper(name)); k {
	case KindSMA, KindEMA, KindWMA:
		return k, nil
	default:
		return "", fmt.Errorf("unknown moving average %q", name)
	}
}

// SMA returns the simple moving average of s named "<name> SMA(period)"
func SMA(s core.Series, period int) (core.Series, error) {
	return Overlay(s, KindSMA, period)
}

// EMA returns the exponential moving average of s named "<name> EMA(period)"
func EMA(s core.Series, period int) (core.Series, error) {
	return Overlay(s, KindEMA, period)
}

// Overlay computes a moving average of s. The first period-1 points have no
// average and are dropped, so the result starts at the period-th date.
func Overlay(s core.Series, kind Kind, period int) (core.Series, error) {
	if err := checkPeriod(s, period); err != nil {
		return core.Series{}, err
	}

	var values []float64
	switch kind {
	case KindSMA:
		values = talib.Sma(s.Values(), period)
	case KindEMA:
		values = talib.Ema(s.Values(), period)
	case KindWMA:
		values = talib.Wma(s.Values(), period)
	default:
		return core.Series{}, fmt.Errorf("unknown moving average %q", kind)
	}

	return derive(s, fmt.Sprintf("%s %s(%d)", s.Name, kind, period), values, period), nil
}

// Bands returns the upper and lower Bollinger bands of s, deviation standard
// deviations around its simple moving average
func Bands(s core.Series, period int, deviation float64) (upper, lower core.Series, err error) {
	if err := checkPeriod(s, period); err != nil {
		return core.Series{}, core.Series{}, err
	}

	up, _, low := talib.BBands(s.Values(), period, deviation, deviation, talib.SMA)
	upper = derive(s, fmt.Sprintf("%s BB(%d) upper", s.Name, period), up, period)
	lower = derive(s, fmt.Sprintf("%s BB(%d) lower", s.Name, period), low, period)
	return upper, lower, nil
}

func checkPeriod(s core.Series, period int) error {
	if period < 1 || period > s.Length() {
		return fmt.Errorf("%w: %d for %d points", ErrInvalidPeriod, period, s.Length())
	}
	return nil
}

func derive(s core.Series, name string, values []float64, period int) core.Series {
	out := core.Series{Name: strings.TrimSpace(name), Data: make([]core.Point, 0, s.Length()-period+1)}
	for i := period - 1; i < s.Length(); i++ {
		out.Data = append(out.Data, core.Point{Date: s.Data[i].Date, Value: values[i]})
	}
	return out
}
