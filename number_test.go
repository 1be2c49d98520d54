package fift

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberIntegers(t *testing.T) {
	for _, tc := range []struct {
		tok  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-17", -17},
		{"0x10", 16},
		{"-0x10", -16},
		{"0b101", 5},
		{"0o17", 15},
	} {
		t.Run(tc.tok, func(t *testing.T) {
			vals, ok, err := ParseNumber(tc.tok)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, vals, 1)
			assert.Zero(t, vals[0].(Integer).V.Cmp(big.NewInt(tc.want)))
		})
	}
}

func TestParseNumberFractions(t *testing.T) {
	for _, tc := range []struct {
		tok      string
		num, den int64
	}{
		{"1/2", 1, 2},
		{"2/4", 1, 2},     // reduced to lowest terms
		{"-6/4", -3, 2},
		{"5/-10", -1, 2},  // sign normalized onto the numerator
	} {
		t.Run(tc.tok, func(t *testing.T) {
			vals, ok, err := ParseNumber(tc.tok)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, vals, 2)
			assert.Zero(t, vals[0].(Integer).V.Cmp(big.NewInt(tc.num)))
			assert.Zero(t, vals[1].(Integer).V.Cmp(big.NewInt(tc.den)))
		})
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, tok := range []string{"", "abc", "1x2", "--3", "1/", "/2", "0xgg"} {
		t.Run(tok, func(t *testing.T) {
			_, ok, err := ParseNumber(tok)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestParseNumberZeroDenominator(t *testing.T) {
	_, _, err := ParseNumber("1/0")
	assert.IsType(t, DivisionByZero{}, err)
}

// Decimal printing followed by reparsing is the identity, including far
// outside the int64 range.
func TestNumberPrintParseRoundTrip(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	for _, n := range []*big.Int{
		big.NewInt(0),
		big.NewInt(-1),
		big.NewInt(1234567890),
		huge,
		new(big.Int).Neg(huge),
	} {
		s := fmt.Sprint(n)
		vals, ok, err := ParseNumber(s)
		require.NoError(t, err)
		require.True(t, ok, "%s must reparse", s)
		require.Len(t, vals, 1)
		assert.Zero(t, n.Cmp(vals[0].(Integer).V))
	}
}
