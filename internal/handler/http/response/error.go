package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, chemical.ErrChemicalNotFound):
		NotFound(w, "Chemical not found")
	case errors.Is(err, outstanding.ErrOutstandingNotFound):
		NotFound(w, "Outstanding record not found")
	case errors.Is(err, account.ErrRecordNotFound):
		NotFound(w, "Account record not found")
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, gatepass.ErrGatepassNotFound):
		NotFound(w, "Gatepass not found")
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")

	// Conflicts
	case errors.Is(err, chemical.ErrChemicalNameExists):
		Conflict(w, "A chemical with this name already exists")

	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid file path", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
