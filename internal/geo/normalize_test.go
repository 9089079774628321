package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  AKE-V-0166  ", "AKE-V-0166"},
		{"collapses spaces", "Fazenda   Monte  Rosa", "Fazenda Monte Rosa"},
		{"decimal point to comma", "532.78", "532,78"},
		{"tabs", "43,85\tm", "43,85 m"},
		{"tab next to space", "a\t b", "a b"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanString(tt.in))
		})
	}
}

func TestCleanStringIdempotent(t *testing.T) {
	for _, in := range []string{"  a  b ", "1.234,56", "x\t\ty", "a\t b", "a \tb"} {
		once := CleanString(in)
		assert.Equal(t, once, CleanString(once))
	}
}

func TestNormalizeCoordinate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"incra signed longitude", `-48°34'14,782"`, `48°34'14,782`},
		{"projeto west suffix", `48°34'14,782" W`, `48°34'14,782`},
		{"projeto south suffix", `20°50'45,291" S`, `20°50'45,291`},
		{"already normalized", `48°34'14,782`, `48°34'14,782`},
		{"unicode primes", "48°34′14,782″ W", `48°34'14,782`},
		{"marker before closing quote", `48°34'14,782 W"`, `48°34'14,782`},
		{"empty", "", ""},
		{"plain altitude untouched", "532,78", "532,78"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCoordinate(tt.in))
		})
	}
}

func TestNormalizeCoordinateEquivalence(t *testing.T) {
	// The same physical coordinate written by both documents must normalize
	// to the same string.
	incra := `-48°34'14,782"`
	projeto := `48°34'14,782" W`
	assert.Equal(t, NormalizeCoordinate(incra), NormalizeCoordinate(projeto))

	// Plants typeset with Unicode primes still compare equal to the
	// ASCII-quoted memorial value.
	typeset := "48°34′14,782″ W"
	assert.Equal(t, NormalizeCoordinate(incra), NormalizeCoordinate(typeset))
}

func TestNormalizeVertexCode(t *testing.T) {
	assert.Equal(t, "AKE-V-0166", NormalizeVertexCode(" ake-v-0166 "))
	assert.Equal(t, "AKE-P-3567", NormalizeVertexCode("AKE - P - 3567"))
	// K/M confusions must NOT be repaired here; they have to surface as
	// mismatches downstream.
	assert.NotEqual(t, NormalizeVertexCode("AKE-M-1028"), NormalizeVertexCode("AME-M-1028"))
}
