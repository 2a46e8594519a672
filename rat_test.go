package boon

import (
	"math/big"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRat(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{json.Number("0.0075"), "0.0075"},
		{json.Number("1e2"), "100"},
		{json.Number("-1.5"), "-1.5"},
		{float64(0.25), "0.25"},
		{int(7), "7"},
		{uint64(18446744073709551615), "18446744073709551615"},
	}
	for _, test := range tests {
		rat := NewRat(test.value)
		require.NotNil(t, rat, "%v", test.value)
		assert.Equal(t, test.want, rat.Decimal(), "%v", test.value)
	}

	assert.Nil(t, NewRat("not a number"))
	assert.Nil(t, NewRat(json.Number("abc")))
	assert.Nil(t, NewRat(true))
}

func TestRatDecimal(t *testing.T) {
	fromJSON := func(s string) *Rat {
		rat := NewRat(json.Number(s))
		require.NotNil(t, rat, s)
		return rat
	}

	// json numbers always have a finite decimal expansion, rendered exactly
	assert.Equal(t, "0.5", fromJSON("0.5").Decimal())
	assert.Equal(t, "0.05", fromJSON("5e-2").Decimal())
	assert.Equal(t, "-0.0075", fromJSON("-0.0075").Decimal())
	assert.Equal(t, "1", fromJSON("1.0").Decimal())
	assert.Equal(t, "0.00000000000001", fromJSON("1e-14").Decimal())

	// non-terminating ratios can only come from host code
	third := &Rat{big.NewRat(1, 3)}
	assert.Equal(t, "1/3", third.Decimal())

	var nilRat *Rat
	assert.Equal(t, "null", nilRat.Decimal())
}

func TestRatIsIntDistinguishesIntegers(t *testing.T) {
	assert.True(t, NewRat(json.Number("1e0")).IsInt())
	assert.True(t, NewRat(json.Number("2.00")).IsInt())
	assert.False(t, NewRat(json.Number("2.5")).IsInt())
}
