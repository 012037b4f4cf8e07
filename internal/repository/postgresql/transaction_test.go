package postgresql

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{newID(), true},
		{"0192f0a0-0000-7000-8000-000000000000", true},
		{"", false},
		{"abc", false},
		{"0192f0a0-0000-7000-8000-00000000000z", false},
		{"{0192f0a0-0000-7000-8000-000000000000}", false},
		{"urn:uuid:0192f0a0-0000-7000-8000-000000000000", false},
		{"1; DROP TABLE employees", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, validID(tt.id))
		})
	}
}

// Malformed ids are answered before any query, so a nil pool is never touched.
func TestRepositories_MalformedID_NotFound(t *testing.T) {
	ctx := context.Background()
	const bad = "abc"

	_, err := NewEmployeeRepository(nil).GetByID(ctx, bad)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = NewEmployeeRepository(nil).Update(ctx, employee.Employee{ID: bad})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, NewEmployeeRepository(nil).Delete(ctx, bad), employee.ErrEmployeeNotFound)

	_, err = NewAccountRecordRepository(nil).GetByID(ctx, bad)
	assert.ErrorIs(t, err, account.ErrRecordNotFound)
	assert.ErrorIs(t, NewAccountRecordRepository(nil).Delete(ctx, bad), account.ErrRecordNotFound)

	_, err = NewPaymentRepository(nil).Update(ctx, payment.Payment{ID: bad})
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
	assert.ErrorIs(t, NewPaymentRepository(nil).Delete(ctx, bad), payment.ErrPaymentNotFound)

	_, err = NewOutstandingRepository(nil).GetByID(ctx, bad)
	assert.ErrorIs(t, err, outstanding.ErrOutstandingNotFound)

	_, err = NewGatepassRepository(nil).GetByID(ctx, bad)
	assert.ErrorIs(t, err, gatepass.ErrGatepassNotFound)

	_, err = NewNoteRepository(nil).Update(ctx, note.Note{ID: bad})
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}
