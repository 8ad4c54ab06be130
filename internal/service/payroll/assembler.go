package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// AssembleCalculation produces the finished calculation record in one step
// from fully computed sub-results. A negative net pay is preserved exactly as
// computed and flags the record for review instead of being clamped to zero;
// the lifecycle controller only touches status and audit fields afterwards.
func AssembleCalculation(
	emp employee.Employee,
	period payroll.PayrollPeriod,
	income payroll.IncomeBreakdown,
	deductions payroll.DeductionBreakdown,
	employer payroll.EmployerContributions,
	sdi, factor decimal.Decimal,
	warnings []payroll.CalculationWarning,
	calculatedBy string,
	now time.Time,
) payroll.PayrollCalculation {
	netPay := income.GrossIncome.Sub(deductions.TotalDeductions)

	status := payroll.CalculationStatusCalculated
	var reason *payroll.ReviewReason
	if netPay.IsNegative() {
		status = payroll.CalculationStatusRequiresReview
		reason = &payroll.ReviewReason{
			Code:            payroll.ReviewReasonNegativeNetPay,
			GrossIncome:     income.GrossIncome,
			TotalDeductions: deductions.TotalDeductions,
			NetPay:          netPay,
		}
	}

	return payroll.PayrollCalculation{
		ID:                uuid.Must(uuid.NewV7()).String(),
		EmployeeID:        emp.ID,
		PeriodID:          period.ID,
		CompanyID:         period.CompanyID,
		SDI:               sdi,
		IntegrationFactor: factor,
		Income:            income,
		Deductions:        deductions,
		Employer:          employer,
		NetPay:            netPay,
		Status:            status,
		ReviewReason:      reason,
		Warnings:          warnings,
		CalculatedAt:      &now,
		CalculatedBy:      &calculatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
