package gatepass

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

// Gatepass logs goods received at and sent out of the gate. Quantity is
// free text ("10 bags", "2 drums").
type Gatepass struct {
	ID            string
	ReceiveDate   time.Time
	SendDate      *time.Time
	Category      string
	InvoiceNumber string
	Remarks       string
	Quantity      string
	SpecialNote   string
	NoteDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasReminderOn reports whether the special note is due on day's calendar
// date.
func (g Gatepass) HasReminderOn(day time.Time) bool {
	if g.NoteDate == nil || validator.IsEmpty(g.SpecialNote) {
		return false
	}
	return validator.DateOnly(*g.NoteDate).Equal(validator.DateOnly(day))
}
