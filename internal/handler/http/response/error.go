package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nominamx/nomina-backend-go/internal/domain/auth"
	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/nominamx/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Unresolved reviews carry the offending employees as details.
	var unresolved *payroll.UnresolvedReviewsError
	if errors.As(err, &unresolved) {
		details := make(map[string]string, len(unresolved.EmployeeIDs))
		for i, id := range unresolved.EmployeeIDs {
			details[fmt.Sprintf("employee_%d", i)] = id
		}
		ConflictWithDetails(w, "Period has unresolved calculations pending review", details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeDataIncomplete):
		UnprocessableEntity(w, err.Error())

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrEmployerConfigNotFound):
		NotFound(w, "Employer configuration not found")
	case errors.Is(err, company.ErrWorkRiskRateOutOfRange):
		UnprocessableEntity(w, err.Error())

	// Tax table errors
	case errors.Is(err, taxtable.ErrMissingTaxTable):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, taxtable.ErrInvalidBracketConfiguration),
		errors.Is(err, taxtable.ErrRateOutOfRange):
		UnprocessableEntity(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Payroll calculation not found")
	case errors.Is(err, payroll.ErrIncidenceNotFound):
		NotFound(w, "Incidence aggregate not found")
	case errors.Is(err, payroll.ErrPeriodCodeExists):
		Conflict(w, "Payroll period code already exists")
	case errors.Is(err, payroll.ErrCalculationLocked):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrDuplicateCalculationInFlight):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPeriodClosed):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriodTransition):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
