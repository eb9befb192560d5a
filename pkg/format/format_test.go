package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tenth, fifth := 0.1, 0.2
	tests := []struct {
		spec  string
		value float64
		want  string
	}{
		{"f", 1.5, "2"},
		{"f", 2.333, "2"},
		{"f", -3.7, "-4"},
		{"f", 0, "0"},
		{".2f", 3.14159, "3.14"},
		{",d", 1234567, "1,234,567"},
		{",d", 1.5, ""},
		{",.2f", 1234.5, "1,234.50"},
		{"+.1f", 2, "+2.0"},
		{"$.2f", 3, "$3.00"},
		{"$.2f", -3, "-$3.00"},
		{".0%", 0.256, "26%"},
		{".2e", 12345, "1.23e+4"},
		{".3s", 1500, "1.50k"},
		{"08.1f", 3.14159, "000003.1"},
		{"08.1f", -3.14159, "-00003.1"},
		{"010,d", 1234, "00,001,234"},
		{"^9", 12, "    12   "},
		{"<6", 12, "12    "},
		{">6", 12, "    12"},
		{"", 0.5, "0.5"},
		{"g", tenth + fifth, "0.30000000000000004"},
		{".3g", 1234.5, "1.23e+3"},
		{".3g", 0.000123456, "0.000123"},
		{".2r", 1234, "1200"},
		{"x", 255, "ff"},
		{"#x", 255, "0xff"},
		{"X", 255, "FF"},
		{"b", 5, "101"},
		{"n", 1234.5, "1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			f, err := New(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format(tt.value))
		})
	}
}

func TestFormat_NaN(t *testing.T) {
	assert.Equal(t, "NaN", MustNew("f").Format(math.NaN()))
}

func TestParse(t *testing.T) {
	spec, err := Parse("*^+$010,.3f")
	require.NoError(t, err)
	assert.Equal(t, "*", spec.Fill)
	assert.Equal(t, byte('^'), spec.Align)
	assert.Equal(t, byte('+'), spec.Sign)
	assert.Equal(t, byte('$'), spec.Symbol)
	assert.True(t, spec.Zero)
	assert.Equal(t, 10, spec.Width)
	assert.True(t, spec.Comma)
	assert.Equal(t, 3, spec.Precision)
	assert.Equal(t, byte('f'), spec.Type)

	spec, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, -1, spec.Precision)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"abc", "q", ".2fq", "1.2.3"} {
		_, err := New(s)
		assert.ErrorIs(t, err, ErrInvalidSpecifier, s)
	}
	assert.Panics(t, func() { MustNew("q") })
}

func TestGroup(t *testing.T) {
	assert.Equal(t, "1,234,567", group("1234567", math.MaxInt))
	assert.Equal(t, "12", group("12", math.MaxInt))
	assert.Equal(t, "", group("", math.MaxInt))
}

func TestTrimExponent(t *testing.T) {
	assert.Equal(t, "1e-7", trimExponent("1e-07"))
	assert.Equal(t, "1.5e+0", trimExponent("1.5e+00"))
	assert.Equal(t, "42", trimExponent("42"))
}
