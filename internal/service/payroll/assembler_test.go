package payroll

import (
	"testing"
	"time"

	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleCalculation_PositiveNet(t *testing.T) {
	emp := employee.Employee{ID: "emp-1"}
	period := payroll.PayrollPeriod{ID: "per-1", CompanyID: "co-1"}

	income := payroll.IncomeBreakdown{GrossIncome: decimal.RequireFromString("7788.46")}
	deductions := payroll.DeductionBreakdown{TotalDeductions: decimal.RequireFromString("635.39")}

	calc := AssembleCalculation(emp, period, income, deductions, payroll.EmployerContributions{},
		decimal.RequireFromString("527.40"), decimal.RequireFromString("1.0547"),
		nil, "user-1", time.Now())

	assert.Equal(t, payroll.CalculationStatusCalculated, calc.Status)
	assert.Nil(t, calc.ReviewReason)
	assert.Equal(t, "7153.07", calc.NetPay.StringFixed(2))
	assert.Equal(t, "co-1", calc.CompanyID)
	require.NotNil(t, calc.CalculatedBy)
	assert.Equal(t, "user-1", *calc.CalculatedBy)
}

func TestAssembleCalculation_NegativeNetFlagsForReview(t *testing.T) {
	emp := employee.Employee{ID: "emp-1"}
	period := payroll.PayrollPeriod{ID: "per-1", CompanyID: "co-1"}

	income := payroll.IncomeBreakdown{GrossIncome: decimal.RequireFromString("500.00")}
	deductions := payroll.DeductionBreakdown{TotalDeductions: decimal.RequireFromString("900.00")}

	calc := AssembleCalculation(emp, period, income, deductions, payroll.EmployerContributions{},
		decimal.Zero, decimal.Zero, nil, "user-1", time.Now())

	// The negative value is preserved, never clamped to zero.
	assert.Equal(t, payroll.CalculationStatusRequiresReview, calc.Status)
	assert.Equal(t, "-400.00", calc.NetPay.StringFixed(2))

	require.NotNil(t, calc.ReviewReason)
	assert.Equal(t, payroll.ReviewReasonNegativeNetPay, calc.ReviewReason.Code)
	assert.Equal(t, "500.00", calc.ReviewReason.GrossIncome.StringFixed(2))
	assert.Equal(t, "900.00", calc.ReviewReason.TotalDeductions.StringFixed(2))
	assert.Equal(t, "-400.00", calc.ReviewReason.NetPay.StringFixed(2))
}

func TestAssembleCalculation_CarriesWarnings(t *testing.T) {
	warnings := []payroll.CalculationWarning{{
		Code:    payroll.WarningOvertimeExceedsLegalLimit,
		Message: "approved overtime exceeds the double-rate ceiling",
	}}

	calc := AssembleCalculation(employee.Employee{ID: "emp-1"}, payroll.PayrollPeriod{ID: "per-1"},
		payroll.IncomeBreakdown{GrossIncome: decimal.RequireFromString("100.00")},
		payroll.DeductionBreakdown{}, payroll.EmployerContributions{},
		decimal.Zero, decimal.Zero, warnings, "user-1", time.Now())

	// Warnings stay data on a calculated record, not errors.
	assert.Equal(t, payroll.CalculationStatusCalculated, calc.Status)
	require.Len(t, calc.Warnings, 1)
	assert.Equal(t, payroll.WarningOvertimeExceedsLegalLimit, calc.Warnings[0].Code)
}
