package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04"

// Renderer turns finished domain data into PDF and spreadsheet documents.
// Vouchers use maroto, payslips gofpdf and exports excelize.
type Renderer struct {
	businessName string
	currency     string
}

var _ document.Renderer = (*Renderer)(nil)

func NewRenderer(businessName, currency string) *Renderer {
	if strings.TrimSpace(currency) == "" {
		currency = "Rs."
	}
	return &Renderer{businessName: businessName, currency: currency}
}

// money formats an amount as "Rs. 1250.50".
func (r *Renderer) money(d decimal.Decimal) string {
	return r.currency + " " + d.StringFixed(2)
}

var maxSpelled = decimal.NewFromInt(math.MaxInt32)

// amountInWords spells out the whole part of a non-negative amount and
// appends the cents, e.g. "one thousand two hundred fifty and 50/100".
// Whole parts num2words cannot take are printed as digits.
func amountInWords(d decimal.Decimal) string {
	d = d.Abs().Round(2)
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	words := whole.String()
	if whole.LessThanOrEqual(maxSpelled) {
		words = num2words.Convert(int(whole.IntPart()))
	}
	return fmt.Sprintf("%s and %02d/100", words, cents)
}

func fileName(prefix, id, ext string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return prefix + "." + ext
	}
	return fmt.Sprintf("%s_%s.%s", prefix, id, ext)
}
