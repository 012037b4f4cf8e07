package numeric

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Lenient is a JSON number that never fails to decode. Numbers and numeric
// strings keep their value; empty strings, garbage and non-scalar values
// decode to zero. Set reports whether the field was present and not null.
type Lenient struct {
	Value decimal.Decimal
	Set   bool
}

// NewLenient returns a Lenient that is marked as set.
func NewLenient(d decimal.Decimal) Lenient {
	return Lenient{Value: d, Set: true}
}

func (n *Lenient) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Lenient{}
		return nil
	}

	n.Set = true
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			n.Value = decimal.Zero
			return nil
		}
		n.Value = ParseOrZero(s)
		return nil
	}

	n.Value = ParseOrZero(string(b))
	return nil
}

func (n Lenient) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return n.Value.MarshalJSON()
}

// Or returns the value when set, otherwise fallback.
func (n Lenient) Or(fallback decimal.Decimal) decimal.Decimal {
	if n.Set {
		return n.Value
	}
	return fallback
}

// ParseOrZero parses s as a finite decimal number; anything else is zero.
// Numbers outside Bounded count as not finite.
func ParseOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !Bounded(d) {
		return decimal.Zero
	}
	return d
}
