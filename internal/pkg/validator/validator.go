package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Single builds a one-field validation failure.
func Single(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

const DateLayout = "2006-01-02"

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// Layouts accepted for timestamps. The minute-precision forms are what
// browser datetime-local inputs send.
var dateTimeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z", "2024-01-15T10:30:00+05:30"
// or "2024-01-15T10:30" (interpreted as UTC).
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, dateTimeStr)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// DateOnly drops the clock part of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateDateRange checks optional start_date/end_date query values.
func ValidateDateRange(start, end string) ValidationErrors {
	var errs ValidationErrors
	var s, e time.Time
	var okS, okE bool
	if start != "" {
		if s, okS = IsValidDate(start); !okS {
			errs = append(errs, ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if end != "" {
		if e, okE = IsValidDate(end); !okE {
			errs = append(errs, ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if okS && okE && e.Before(s) {
		errs = append(errs, ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	return errs
}

// InDateRange reports whether the calendar day of t lies within the
// optional inclusive bounds. Bounds must already be valid.
func InDateRange(t time.Time, start, end string) bool {
	day := DateOnly(t)
	if start != "" {
		if s, _ := IsValidDate(start); day.Before(s) {
			return false
		}
	}
	if end != "" {
		if e, _ := IsValidDate(end); day.After(e) {
			return false
		}
	}
	return true
}

// Amount checks that a money value is non-negative and is stored without
// rounding or overflow.
func Amount(field string, d decimal.Decimal) ValidationErrors {
	if d.IsNegative() {
		return Single(field, "must be non-negative")
	}
	return fitsColumn(field, d, numeric.MoneyScale)
}

// Quantity is Amount for stock quantities.
func Quantity(field string, d decimal.Decimal) ValidationErrors {
	if d.IsNegative() {
		return Single(field, "must be non-negative")
	}
	return fitsColumn(field, d, numeric.QuantityScale)
}

func fitsColumn(field string, d decimal.Decimal, scale int32) ValidationErrors {
	if numeric.Fits(d, scale) {
		return nil
	}
	if d.Exponent() > numeric.Precision || numeric.IntegerDigits(d) > int(numeric.Precision-scale) {
		return Single(field, fmt.Sprintf("must have at most %d digits before the decimal point", numeric.Precision-scale))
	}
	return Single(field, fmt.Sprintf("must have at most %d decimal places", scale))
}
