package response

import (
	"errors"
	"net/http"

	"github.com/sahelretail/hr-backend-go/internal/domain/branch"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
)

// HandleError maps domain errors to HTTP responses. Store-level failures
// deliberately fall through to 500: a payroll batch is all-or-nothing and a
// broken store must abort the whole report.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, payroll.ErrInvalidReferenceDate):
		BadRequest(w, "Invalid reference date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
