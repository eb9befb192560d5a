package format

import (
	"math"
	"strconv"
	"strings"
)

// toFixed renders x with exactly digits decimals, rounding halves away from zero
func toFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e21 {
		return jsString(x)
	}
	p := math.Pow(10, float64(digits))
	r := math.Round(x*p) / p
	if math.IsInf(r*p, 0) {
		r = x
	}
	return strconv.FormatFloat(r, 'f', digits, 64)
}

// toExponential renders x in exponent notation with a non padded exponent (1.5e+3)
// A negative digits count uses as many digits as needed.
func toExponential(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return jsString(x)
	}
	return trimExponent(strconv.FormatFloat(x, 'e', digits, 64))
}

// toPrecision renders x with the given number of significant digits, switching
// to exponent notation for very small or large magnitudes
func toPrecision(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return jsString(x)
	}
	if x == 0 {
		if digits > 1 {
			return "0." + strings.Repeat("0", digits-1)
		}
		return "0"
	}

	e := strconv.FormatFloat(x, 'e', digits-1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -6 || exp >= digits {
		return trimExponent(e)
	}
	return strconv.FormatFloat(x, 'f', max(0, digits-1-exp), 64)
}

// jsString renders x the way a JavaScript number converts to a string
func jsString(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	abs := math.Abs(x)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// trimExponent rewrites Go exponents ("e+05", "e-07") into the short form ("e+5", "e-7")
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	sign := s[i+1]
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+1] + string(sign) + digits
}
