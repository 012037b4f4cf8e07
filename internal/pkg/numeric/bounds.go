package numeric

import "github.com/shopspring/decimal"

// Ledger amounts are stored as NUMERIC(Precision, MoneyScale) and stock
// quantities as NUMERIC(Precision, QuantityScale).
const (
	Precision     int32 = 14
	MoneyScale    int32 = 2
	QuantityScale int32 = 3

	// maxExponent caps exponents before any arithmetic; rescaling cost
	// grows with the exponent, not with the input length.
	maxExponent int32 = 2 * Precision
)

// IntegerDigits counts the digits left of the decimal point.
func IntegerDigits(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	n := d.NumDigits() + int(d.Exponent())
	if n < 0 {
		return 0
	}
	return n
}

// Bounded reports whether d is a usable input: no more integer digits than
// a money column holds and an exponent within ±maxExponent.
func Bounded(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := d.Exponent()
	if exp > maxExponent || exp < -maxExponent {
		return false
	}
	return IntegerDigits(d) <= int(Precision-MoneyScale)
}

// Fits reports whether d is stored exactly by a NUMERIC(Precision, scale)
// column: no overflow and no rounding.
func Fits(d decimal.Decimal, scale int32) bool {
	if d.IsZero() {
		return true
	}
	exp := d.Exponent()
	if exp > Precision || exp < -maxExponent {
		return false
	}
	if IntegerDigits(d) > int(Precision-scale) {
		return false
	}
	return exp >= -scale || d.Truncate(scale).Equal(d)
}
