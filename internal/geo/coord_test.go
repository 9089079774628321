package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"532,78", 532.78},
		{"3.873,67", 3873.67},
		{"3.873,67 m", 3873.67},
		{"19,0211 ha", 19.0211},
		{"741319", 741319},
		{"7.696.237", 7696237},
		{"1234567.89", 1234567.89},
		{"-12,5", -12.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseNumberRejectsText(t *testing.T) {
	for _, in := range []string{"", "Não encontrado", "AKE-V-0166", "48°34'14,782\""} {
		_, err := ParseNumber(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseDMS(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`48°34'14,782"`, 48 + 34.0/60 + 14.782/3600},
		{`-48°34'14,782"`, -(48 + 34.0/60 + 14.782/3600)},
		{`48°34'14,782" W`, -(48 + 34.0/60 + 14.782/3600)},
		{`20°50'45,291" S`, -(20 + 50.0/60 + 45.291/3600)},
		{`140°40'`, 140 + 40.0/60},
		{`90°`, 90},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDMS(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseDMSRejects(t *testing.T) {
	for _, in := range []string{"", "532,78", `48°74'00"`, "abc"} {
		_, err := ParseDMS(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseAzimuth(t *testing.T) {
	got, err := ParseAzimuth(`140°40'`)
	require.NoError(t, err)
	assert.InDelta(t, 140.0+40.0/60, got, 1e-9)

	_, err = ParseAzimuth(`-10°00'`)
	assert.Error(t, err)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("43,85"))
	assert.True(t, IsNumeric("7696237"))
	assert.False(t, IsNumeric("AKE-M-1028"))
	assert.False(t, IsNumeric(`140°40'`))
}
