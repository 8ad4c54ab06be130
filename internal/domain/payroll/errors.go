package payroll

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPeriodNotFound               = errors.New("payroll period not found")
	ErrPeriodCodeExists             = errors.New("payroll period code already exists")
	ErrCalculationNotFound          = errors.New("payroll calculation not found")
	ErrCalculationLocked            = errors.New("calculation is approved or processed and cannot be recomputed")
	ErrDuplicateCalculationInFlight = errors.New("a calculation for this employee and period is already in flight")
	ErrPeriodClosed                 = errors.New("payroll period is closed; no further writes are accepted")
	ErrInvalidPeriodTransition      = errors.New("payroll period status may only advance forward")
	ErrIncidenceNotFound            = errors.New("incidence aggregate not found")
)

// UnresolvedReviewsError rejects a period approval while any calculation is
// pending or flagged for review. It names the offending employees so the
// caller can act without a second query.
type UnresolvedReviewsError struct {
	EmployeeIDs []string
}

func (e *UnresolvedReviewsError) Error() string {
	return fmt.Sprintf("period has unresolved calculations for employees: %s",
		strings.Join(e.EmployeeIDs, ", "))
}
