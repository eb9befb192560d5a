// Package format turns numbers into axis labels following the
// [[fill]align][sign][symbol][0][width][,][.precision][type] specifier
// language popularised by d3.
package format

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var ErrInvalidSpecifier = errors.New("invalid format specifier")

var specifierRe = regexp.MustCompile(`^(?:(.)?([<>=^]))?([+\- ])?([$#])?(0)?(\d+)?(,)?(\.-?\d+)?([a-zA-Z%])?$`)

// Spec is a parsed format specifier
type Spec struct {
	Fill      string
	Align     byte
	Sign      byte
	Symbol    byte
	Zero      bool
	Width     int
	Comma     bool
	Precision int // -1 when not given
	Type      byte
}

// Formatter formats numbers according to a Spec
type Formatter struct {
	spec     Spec
	scale    float64
	prefix   string
	suffix   string
	integer  bool
	exponent bool
	si       bool
}

// Parse reads a specifier such as ".2f", ",d" or "+$08.1f"
func Parse(specifier string) (Spec, error) {
	m := specifierRe.FindStringSubmatch(specifier)
	if m == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, specifier)
	}

	spec := Spec{Fill: " ", Align: '>', Sign: '-', Precision: -1}
	if m[1] != "" {
		spec.Fill = m[1]
	}
	if m[2] != "" {
		spec.Align = m[2][0]
	}
	if m[3] != "" {
		spec.Sign = m[3][0]
	}
	if m[4] != "" {
		spec.Symbol = m[4][0]
	}
	spec.Zero = m[5] != ""
	if m[6] != "" {
		spec.Width, _ = strconv.Atoi(m[6])
	}
	spec.Comma = m[7] != ""
	if m[8] != "" {
		p, err := strconv.Atoi(m[8][1:])
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, specifier)
		}
		spec.Precision = p
	}
	if m[9] != "" {
		spec.Type = m[9][0]
		if !strings.ContainsRune("bcdeEfFgGnoprsxX%", rune(spec.Type)) {
			return Spec{}, fmt.Errorf("%w: unknown type %q", ErrInvalidSpecifier, m[9])
		}
	}
	return spec, nil
}

// New parses the specifier and returns the matching Formatter
func New(specifier string) (*Formatter, error) {
	spec, err := Parse(specifier)
	if err != nil {
		return nil, err
	}

	f := &Formatter{scale: 1, exponent: true}
	if spec.Zero || (spec.Fill == "0" && spec.Align == '=') {
		spec.Zero = true
		spec.Fill = "0"
		spec.Align = '='
	}

	switch spec.Type {
	case 'n':
		spec.Comma = true
		spec.Type = 'g'
	case '%':
		f.scale = 100
		f.suffix = "%"
		spec.Type = 'f'
	case 'p':
		f.scale = 100
		f.suffix = "%"
		spec.Type = 'r'
	case 'b', 'o', 'x', 'X':
		if spec.Symbol == '#' {
			f.prefix = "0" + strings.ToLower(string(spec.Type))
		}
		f.exponent = false
		f.integer = true
		spec.Precision = 0
	case 'c':
		f.exponent = false
		f.integer = true
		spec.Precision = 0
	case 'd':
		f.integer = true
		spec.Precision = 0
	case 's':
		f.si = true
		spec.Type = 'r'
	}

	if spec.Symbol == '$' {
		f.prefix = "$"
	}
	if spec.Type == 'r' && spec.Precision <= 0 {
		spec.Type = 'g'
	}
	if spec.Precision >= 0 {
		switch spec.Type {
		case 'g':
			spec.Precision = clamp(spec.Precision, 1, 21)
		case 'e', 'f':
			spec.Precision = clamp(spec.Precision, 0, 20)
		}
	}

	f.spec = spec
	return f, nil
}

// MustNew is like New but panics on an invalid specifier
func MustNew(specifier string) *Formatter {
	f, err := New(specifier)
	if err != nil {
		panic(err)
	}
	return f
}

// Spec returns the normalised specifier backing the formatter
func (f *Formatter) Spec() Spec {
	return f.spec
}

// Format renders a single value
// Integer types ('d', 'b', 'o', 'x', 'c') render non integers as an empty string.
func (f *Formatter) Format(value float64) string {
	spec := f.spec
	suffix := f.suffix

	if f.integer && math.Mod(value, 1) != 0 {
		return ""
	}

	var negative string
	switch {
	case value < 0 || (value == 0 && math.Signbit(value)):
		value = -value
		negative = "-"
	case spec.Sign != '-':
		negative = string(spec.Sign)
	}

	if f.si {
		value, suffix = siPrefix(value, spec.Precision, suffix)
	} else {
		value *= f.scale
	}

	formatted := formatType(spec.Type, value, spec.Precision)

	var before, after string
	if i := strings.LastIndexByte(formatted, '.'); i >= 0 {
		before, after = formatted[:i], formatted[i:]
	} else {
		j := -1
		if f.exponent {
			j = strings.LastIndexByte(formatted, 'e')
		}
		if j < 0 {
			before = formatted
		} else {
			before, after = formatted[:j], formatted[j:]
		}
	}

	zcomma := spec.Zero && spec.Comma
	if !spec.Zero && spec.Comma {
		before = group(before, math.MaxInt)
	}

	length := len(f.prefix) + len(before) + len(after)
	if !zcomma {
		length += len(negative)
	}
	var padding string
	if length < spec.Width {
		padding = strings.Repeat(spec.Fill, spec.Width-length)
		length = spec.Width - length + 1
	} else {
		length = 1
	}
	if zcomma {
		width := math.MaxInt
		if padding != "" {
			width = spec.Width - len(after)
		}
		before = group(padding+before, width)
	}

	negative += f.prefix
	body := before + after

	var out string
	switch spec.Align {
	case '<':
		out = negative + body + padding
	case '>':
		out = padding + negative + body
	case '^':
		half := length >> 1
		if half > len(padding) {
			half = len(padding)
		}
		out = padding[:half] + negative + body + padding[half:]
	default:
		if zcomma {
			out = negative + body
		} else {
			out = negative + padding + body
		}
	}
	return out + suffix
}

func formatType(t byte, x float64, precision int) string {
	switch t {
	case 'f', 'F':
		if precision < 0 {
			precision = 0
		}
		return toFixed(x, precision)
	case 'e', 'E':
		return toExponential(x, precision)
	case 'g', 'G':
		if precision < 0 {
			return jsString(x)
		}
		return toPrecision(x, precision)
	case 'r':
		n := significantPrecision(x, precision)
		x = roundTo(x, n)
		return toFixed(x, clamp(significantPrecision(x*(1+1e-15), precision), 0, 20))
	case 'd':
		return toFixed(x, 0)
	case 'b':
		return strconv.FormatInt(int64(x), 2)
	case 'o':
		return strconv.FormatInt(int64(x), 8)
	case 'x':
		return strconv.FormatInt(int64(x), 16)
	case 'X':
		return strings.ToUpper(strconv.FormatInt(int64(x), 16))
	case 'c':
		return string(rune(int64(x)))
	default:
		return jsString(x)
	}
}

// siPrefix scales the value to the nearest SI unit and appends its symbol
func siPrefix(value float64, precision int, suffix string) (float64, string) {
	if value == 0 {
		return value, suffix
	}
	if precision > 0 {
		value = roundTo(value, significantPrecision(value, precision))
	}
	scaled, symbol := humanize.ComputeSI(value)
	return scaled, symbol + suffix
}

// group inserts thousands separators, keeping the result within width characters
func group(value string, width int) string {
	var parts []string
	i, g, length := len(value), 3, 0
	for i > 0 && g > 0 {
		if length+g+1 > width {
			g = max(1, width-length)
		}
		start := max(0, i-g)
		parts = append(parts, value[start:i])
		i -= g
		if length += g + 1; length > width {
			break
		}
		g = 3
	}
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return strings.Join(parts, ",")
}

func significantPrecision(x float64, p int) int {
	if x == 0 {
		return p - 1
	}
	return p - int(math.Ceil(math.Log10(math.Abs(x))))
}

func roundTo(x float64, n int) float64 {
	if n == 0 {
		return math.Round(x)
	}
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
