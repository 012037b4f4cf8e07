package chemical

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const msgPositiveQuantity = "quantity must be a positive number"

// NewChemical builds a chemical type with its opening stock.
func NewChemical(name, unit string, initialQuantity decimal.Decimal, now time.Time) (Chemical, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "is required"})
	}
	errs = append(errs, validator.Quantity("initial_quantity", initialQuantity)...)
	if len(errs) > 0 {
		return Chemical{}, errs
	}

	return Chemical{
		Name:        strings.TrimSpace(name),
		Unit:        strings.TrimSpace(unit),
		Quantity:    initialQuantity,
		LastUpdated: now,
		CreatedAt:   now,
	}, nil
}

// ApplyPurchase adds qty to the stock.
func ApplyPurchase(c Chemical, qty decimal.Decimal, now time.Time) (Chemical, error) {
	if !qty.IsPositive() {
		return c, validator.Single("quantity", msgPositiveQuantity)
	}
	if errs := validator.Quantity("quantity", qty); len(errs) > 0 {
		return c, errs
	}
	next := c.Quantity.Add(qty)
	if errs := validator.Quantity("quantity", next); len(errs) > 0 {
		return c, validator.Single("quantity", fmt.Sprintf(
			"purchase would raise stock to %s %s, above the largest storable quantity",
			next.String(), c.Unit,
		))
	}
	c.Quantity = next
	c.LastUpdated = now
	return c, nil
}

// ApplyUsage takes used out of the stock. It never lets the quantity go
// below zero; asking for more than is on hand fails and reports the
// shortfall.
func ApplyUsage(c Chemical, used decimal.Decimal, now time.Time) (Chemical, error) {
	if !used.IsPositive() {
		return c, validator.Single("quantity_used", msgPositiveQuantity)
	}
	if errs := validator.Quantity("quantity_used", used); len(errs) > 0 {
		return c, errs
	}
	if used.GreaterThan(c.Quantity) {
		return c, validator.Single("quantity_used", fmt.Sprintf(
			"cannot use %s %s, only %s %s available",
			used.String(), c.Unit, c.Quantity.String(), c.Unit,
		))
	}
	c.Quantity = c.Quantity.Sub(used)
	c.LastUpdated = now
	return c, nil
}

// UpdateDetails renames or re-units c. Quantity is left alone and
// LastUpdated is always refreshed.
func UpdateDetails(c Chemical, name, unit *string, now time.Time) (Chemical, error) {
	var errs validator.ValidationErrors
	if name != nil && validator.IsEmpty(*name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if unit != nil && validator.IsEmpty(*unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "cannot be empty"})
	}
	if len(errs) > 0 {
		return c, errs
	}

	if name != nil {
		c.Name = strings.TrimSpace(*name)
	}
	if unit != nil {
		c.Unit = strings.TrimSpace(*unit)
	}
	c.LastUpdated = now
	return c, nil
}

// NameTaken reports whether name matches, ignoring case, a chemical in
// existing other than the one with exceptID.
func NameTaken(existing []Chemical, name, exceptID string) bool {
	name = strings.TrimSpace(name)
	for _, c := range existing {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
