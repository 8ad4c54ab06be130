package payroll

import (
	"time"

	"github.com/nominamx/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	Type        string `json:"type"` // "weekly", "biweekly" or "monthly"
	Code        string `json:"code,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PaymentDate string `json:"payment_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !PeriodType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'weekly', 'biweekly' or 'monthly'"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	payment, okPay := validator.IsValidDate(r.PaymentDate)
	if !okPay {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be after start_date"})
	}
	if okEnd && okPay && payment.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must not be before end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Type        string  `json:"type"`
	Code        string  `json:"code"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	PaidAt      *string `json:"paid_at,omitempty"`
	PaidBy      *string `json:"paid_by,omitempty"`
	ClosedAt    *string `json:"closed_at,omitempty"`
}

// ========== CALCULATION DTOs ==========

type CalculatePeriodRequest struct {
	// Optional subset of the roster; empty means every active employee.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

// EmployeeFailure records one employee the batch skipped. The batch never
// aborts on per-employee failures.
type EmployeeFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BatchResult is the partial-failure report of a period calculation run.
type BatchResult struct {
	PeriodID   string            `json:"period_id"`
	Calculated int               `json:"calculated"`
	Flagged    int               `json:"flagged_for_review"`
	Failures   []EmployeeFailure `json:"failures,omitempty"`
	Canceled   bool              `json:"canceled,omitempty"`
}

type CalculationResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name,omitempty"`
	EmployeeCode      string          `json:"employee_code,omitempty"`
	PeriodID          string          `json:"period_id"`
	SDI               decimal.Decimal `json:"sdi"`
	IntegrationFactor decimal.Decimal `json:"integration_factor"`

	WorkedDays            int             `json:"worked_days"`
	RegularSalary         decimal.Decimal `json:"regular_salary"`
	OvertimeDouble        decimal.Decimal `json:"overtime_double"`
	OvertimeTriple        decimal.Decimal `json:"overtime_triple"`
	VacationPremium       decimal.Decimal `json:"vacation_premium"`
	YearEndBonusProration decimal.Decimal `json:"year_end_bonus_proration"`
	Bonuses               decimal.Decimal `json:"bonuses"`
	Commissions           decimal.Decimal `json:"commissions"`
	OtherIncome           decimal.Decimal `json:"other_income"`
	GrossIncome           decimal.Decimal `json:"gross_income"`

	IncomeTaxBeforeSubsidy decimal.Decimal `json:"income_tax_before_subsidy"`
	Subsidy                decimal.Decimal `json:"subsidy"`
	IncomeTax              decimal.Decimal `json:"income_tax"`
	SocialSecurity         decimal.Decimal `json:"social_security"`
	HousingFund            decimal.Decimal `json:"housing_fund"`
	OtherDeductions        decimal.Decimal `json:"other_deductions"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`

	EmployerSocialSecurity    decimal.Decimal `json:"employer_social_security"`
	EmployerWorkRisk          decimal.Decimal `json:"employer_work_risk"`
	EmployerHousingFund       decimal.Decimal `json:"employer_housing_fund"`
	EmployerRetirementSavings decimal.Decimal `json:"employer_retirement_savings"`
	EmployerTotal             decimal.Decimal `json:"employer_total"`

	NetPay       decimal.Decimal      `json:"net_pay"`
	Status       string               `json:"status"`
	ReviewReason *ReviewReason        `json:"review_reason,omitempty"`
	Warnings     []CalculationWarning `json:"warnings,omitempty"`
	CalculatedAt *string              `json:"calculated_at,omitempty"`
	ApprovedAt   *string              `json:"approved_at,omitempty"`
	ProcessedAt  *string              `json:"processed_at,omitempty"`
}

type PeriodSummaryResponse struct {
	PeriodID          string          `json:"period_id"`
	EmployeeCount     int             `json:"employee_count"`
	ReviewCount       int             `json:"review_count"`
	TotalGross        decimal.Decimal `json:"total_gross"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	TotalNet          decimal.Decimal `json:"total_net"`
	TotalEmployerCost decimal.Decimal `json:"total_employer_cost"`
}

// ========== INCIDENCE DTOs ==========

// UpsertIncidencesRequest is written by the external incidence approval
// workflow; the engine consumes the aggregate read-only.
type UpsertIncidencesRequest struct {
	EmployeeID          string           `json:"-"`
	PeriodID            string           `json:"-"`
	OvertimeHours       *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeHoursDouble *decimal.Decimal `json:"overtime_hours_double,omitempty"`
	OvertimeHoursTriple *decimal.Decimal `json:"overtime_hours_triple,omitempty"`
	PaidAbsenceDays     *int             `json:"paid_absence_days,omitempty"`
	UnpaidAbsenceDays   *int             `json:"unpaid_absence_days,omitempty"`
	VacationDaysTaken   *int             `json:"vacation_days_taken,omitempty"`
	Bonuses             *decimal.Decimal `json:"bonuses,omitempty"`
	Commissions         *decimal.Decimal `json:"commissions,omitempty"`
	OtherIncome         *decimal.Decimal `json:"other_income,omitempty"`
	OtherDeductions     *decimal.Decimal `json:"other_deductions,omitempty"`
}

func (r *UpsertIncidencesRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := func(field string, v *decimal.Decimal) {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	nonNegativeInt := func(field string, v *int) {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	nonNegative("overtime_hours", r.OvertimeHours)
	nonNegative("overtime_hours_double", r.OvertimeHoursDouble)
	nonNegative("overtime_hours_triple", r.OvertimeHoursTriple)
	nonNegative("bonuses", r.Bonuses)
	nonNegative("commissions", r.Commissions)
	nonNegative("other_income", r.OtherIncome)
	nonNegative("other_deductions", r.OtherDeductions)
	nonNegativeInt("paid_absence_days", r.PaidAbsenceDays)
	nonNegativeInt("unpaid_absence_days", r.UnpaidAbsenceDays)
	nonNegativeInt("vacation_days_taken", r.VacationDaysTaken)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== HELPERS ==========

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ToPeriodResponse maps the entity to its transport shape.
func ToPeriodResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Type:        string(p.Type),
		Code:        p.Code,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		Status:      string(p.Status),
		ApprovedAt:  formatTimePtr(p.ApprovedAt),
		ApprovedBy:  p.ApprovedBy,
		PaidAt:      formatTimePtr(p.PaidAt),
		PaidBy:      p.PaidBy,
		ClosedAt:    formatTimePtr(p.ClosedAt),
	}
}

// ToCalculationResponse maps the entity to its transport shape.
func ToCalculationResponse(c PayrollCalculation) CalculationResponse {
	resp := CalculationResponse{
		ID:                c.ID,
		EmployeeID:        c.EmployeeID,
		PeriodID:          c.PeriodID,
		SDI:               c.SDI,
		IntegrationFactor: c.IntegrationFactor,

		WorkedDays:            c.Income.WorkedDays,
		RegularSalary:         c.Income.RegularSalary,
		OvertimeDouble:        c.Income.OvertimeDouble,
		OvertimeTriple:        c.Income.OvertimeTriple,
		VacationPremium:       c.Income.VacationPremium,
		YearEndBonusProration: c.Income.YearEndBonusProration,
		Bonuses:               c.Income.Bonuses,
		Commissions:           c.Income.Commissions,
		OtherIncome:           c.Income.OtherIncome,
		GrossIncome:           c.Income.GrossIncome,

		IncomeTaxBeforeSubsidy: c.Deductions.IncomeTaxBeforeSubsidy,
		Subsidy:                c.Deductions.Subsidy,
		IncomeTax:              c.Deductions.IncomeTax,
		SocialSecurity:         c.Deductions.SocialSecurity,
		HousingFund:            c.Deductions.HousingFund,
		OtherDeductions:        c.Deductions.OtherDeductions,
		TotalDeductions:        c.Deductions.TotalDeductions,

		EmployerSocialSecurity:    c.Employer.SocialSecurity,
		EmployerWorkRisk:          c.Employer.WorkRisk,
		EmployerHousingFund:       c.Employer.HousingFund,
		EmployerRetirementSavings: c.Employer.RetirementSavings,
		EmployerTotal:             c.Employer.Total,

		NetPay:       c.NetPay,
		Status:       string(c.Status),
		ReviewReason: c.ReviewReason,
		Warnings:     c.Warnings,
		CalculatedAt: formatTimePtr(c.CalculatedAt),
		ApprovedAt:   formatTimePtr(c.ApprovedAt),
		ProcessedAt:  formatTimePtr(c.ProcessedAt),
	}
	if c.EmployeeName != nil {
		resp.EmployeeName = *c.EmployeeName
	}
	if c.EmployeeCode != nil {
		resp.EmployeeCode = *c.EmployeeCode
	}
	return resp
}
