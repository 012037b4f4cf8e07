package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFits(t *testing.T) {
	cases := []struct {
		input string
		scale int32
		want  bool
	}{
		{"0", MoneyScale, true},
		{"12.34", MoneyScale, true},
		{"12.340", MoneyScale, true},
		{"12.345", MoneyScale, false},
		{"999999999999.99", MoneyScale, true},
		{"1000000000000", MoneyScale, false},
		{"-999999999999", MoneyScale, true},
		{"0.001", QuantityScale, true},
		{"0.0004", QuantityScale, false},
		{"99999999999.999", QuantityScale, true},
		{"100000000000", QuantityScale, false},
		{"1e400", MoneyScale, false},
		{"1e-400", MoneyScale, false},
		{"1e30000000", QuantityScale, false},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.input)
		assert.Equal(t, c.want, Fits(d, c.scale), "Fits(%s, %d)", c.input, c.scale)
	}
}

func TestIntegerDigits(t *testing.T) {
	assert.Equal(t, 0, IntegerDigits(decimal.Zero))
	assert.Equal(t, 0, IntegerDigits(decimal.RequireFromString("0.05")))
	assert.Equal(t, 2, IntegerDigits(decimal.RequireFromString("12.500")))
	assert.Equal(t, 5, IntegerDigits(decimal.RequireFromString("-12345.6")))
	assert.Equal(t, 30000001, IntegerDigits(decimal.RequireFromString("1e30000000")))
}
