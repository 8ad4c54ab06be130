package payroll

import (
	"time"

	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
)

// PeriodType enum
type PeriodType string

const (
	PeriodTypeWeekly   PeriodType = "weekly"
	PeriodTypeBiweekly PeriodType = "biweekly"
	PeriodTypeMonthly  PeriodType = "monthly"
)

// PeriodProfile is the table-driven replacement for per-period-type branch
// logic. TableKey names the bracket table actually stored for the type;
// weekly reuses the biweekly table with InputScale 2 and OutputScale 1/2, so
// a single source of truth exists per bracket type.
type PeriodProfile struct {
	TableKey          taxtable.PeriodType
	InputScale        decimal.Decimal
	OutputScale       decimal.Decimal
	PayPeriodsPerYear int
	WeeksPerPeriod    int
}

var periodProfiles = map[PeriodType]PeriodProfile{
	PeriodTypeWeekly: {
		TableKey:          taxtable.PeriodTypeBiweekly,
		InputScale:        decimal.NewFromInt(2),
		OutputScale:       decimal.NewFromFloat(0.5),
		PayPeriodsPerYear: 52,
		WeeksPerPeriod:    1,
	},
	PeriodTypeBiweekly: {
		TableKey:          taxtable.PeriodTypeBiweekly,
		InputScale:        decimal.NewFromInt(1),
		OutputScale:       decimal.NewFromInt(1),
		PayPeriodsPerYear: 26,
		WeeksPerPeriod:    2,
	},
	PeriodTypeMonthly: {
		TableKey:          taxtable.PeriodTypeMonthly,
		InputScale:        decimal.NewFromInt(1),
		OutputScale:       decimal.NewFromInt(1),
		PayPeriodsPerYear: 12,
		WeeksPerPeriod:    4,
	},
}

// Profile returns the calculation profile for a period type. Adding a new
// period type is a data change in periodProfiles, not a code change.
func (p PeriodType) Profile() (PeriodProfile, bool) {
	profile, ok := periodProfiles[p]
	return profile, ok
}

func (p PeriodType) Valid() bool {
	_, ok := periodProfiles[p]
	return ok
}

// PeriodStatus enum. Transitions are forward-only:
// open -> calculated -> approved -> paid -> closed.
type PeriodStatus string

const (
	PeriodStatusOpen       PeriodStatus = "open"
	PeriodStatusCalculated PeriodStatus = "calculated"
	PeriodStatusApproved   PeriodStatus = "approved"
	PeriodStatusPaid       PeriodStatus = "paid"
	PeriodStatusClosed     PeriodStatus = "closed"
)

var periodStatusOrder = map[PeriodStatus]int{
	PeriodStatusOpen:       0,
	PeriodStatusCalculated: 1,
	PeriodStatusApproved:   2,
	PeriodStatusPaid:       3,
	PeriodStatusClosed:     4,
}

// CanTransitionTo permits only single forward steps, except that a
// calculated period may be recalculated in place (calculated -> calculated).
func (s PeriodStatus) CanTransitionTo(next PeriodStatus) bool {
	cur, ok := periodStatusOrder[s]
	nxt, ok2 := periodStatusOrder[next]
	if !ok || !ok2 {
		return false
	}
	if s == PeriodStatusCalculated && next == PeriodStatusCalculated {
		return true
	}
	return nxt == cur+1
}

// AcceptsCalculationWrites reports whether per-employee calculation writes
// are still allowed into the period. Once approved the period is locked for
// calculation writes regardless of any in-memory state; the repository
// enforces the same rule at write time.
func (s PeriodStatus) AcceptsCalculationWrites() bool {
	return s == PeriodStatusOpen || s == PeriodStatusCalculated
}

// PayrollPeriod owns the calculations of one pay cycle.
type PayrollPeriod struct {
	ID          string
	CompanyID   string
	Type        PeriodType
	Code        string
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
	Status      PeriodStatus
	ApprovedAt  *time.Time
	ApprovedBy  *string
	PaidAt      *time.Time
	PaidBy      *string
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalendarDays counts the days of the period, end date inclusive.
func (p PayrollPeriod) CalendarDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// IncidenceAggregate is the read-only output of the external absence and
// overtime approval workflow for one (employee, period). OvertimeHours is
// raw approved overtime that the engine classifies against the legal weekly
// ceiling; the Double/Triple buckets arrive pre-tiered (rest-day and holiday
// work approved directly at those rates) and are paid as-is.
type IncidenceAggregate struct {
	EmployeeID          string
	PeriodID            string
	OvertimeHours       decimal.Decimal
	OvertimeHoursDouble decimal.Decimal
	OvertimeHoursTriple decimal.Decimal
	PaidAbsenceDays     int
	UnpaidAbsenceDays   int
	VacationDaysTaken   int
	Bonuses             decimal.Decimal
	Commissions         decimal.Decimal
	OtherIncome         decimal.Decimal
	OtherDeductions     decimal.Decimal
	UpdatedAt           time.Time
}

// IncomeBreakdown is the gross-income side of a calculation.
type IncomeBreakdown struct {
	WorkedDays            int
	RegularSalary         decimal.Decimal
	OvertimeDouble        decimal.Decimal
	OvertimeTriple        decimal.Decimal
	VacationPremium       decimal.Decimal
	YearEndBonusProration decimal.Decimal
	Bonuses               decimal.Decimal
	Commissions           decimal.Decimal
	OtherIncome           decimal.Decimal
	GrossIncome           decimal.Decimal
}

// DeductionBreakdown is the employee-side deduction detail. IncomeTax is the
// net withholding after the employment subsidy, never negative: the subsidy
// offsets tax but is not refunded through payroll.
type DeductionBreakdown struct {
	IncomeTaxBeforeSubsidy decimal.Decimal
	Subsidy                decimal.Decimal
	IncomeTax              decimal.Decimal
	SocialSecurity         decimal.Decimal
	HousingFund            decimal.Decimal
	StatutoryTotal         decimal.Decimal
	OtherDeductions        decimal.Decimal
	TotalDeductions        decimal.Decimal
}

// EmployerContributions is tracked on the record for compliance reporting
// and never reduces net pay.
type EmployerContributions struct {
	SocialSecurity    decimal.Decimal
	WorkRisk          decimal.Decimal
	HousingFund       decimal.Decimal
	RetirementSavings decimal.Decimal
	Total             decimal.Decimal
}

// CalculationStatus enum. pending -> calculated | requires_review ->
// approved -> processed. Approved and processed records are immutable.
type CalculationStatus string

const (
	CalculationStatusPending        CalculationStatus = "pending"
	CalculationStatusCalculated     CalculationStatus = "calculated"
	CalculationStatusRequiresReview CalculationStatus = "requires_review"
	CalculationStatusApproved       CalculationStatus = "approved"
	CalculationStatusProcessed      CalculationStatus = "processed"
)

// Locked reports whether the record may no longer be recomputed.
func (s CalculationStatus) Locked() bool {
	return s == CalculationStatusApproved || s == CalculationStatusProcessed
}

// WarningCode enum for non-fatal conditions attached to a calculation.
type WarningCode string

const (
	WarningOvertimeExceedsLegalLimit WarningCode = "overtime_exceeds_legal_limit"
)

type CalculationWarning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// ReviewReason is the structured explanation attached when a calculation is
// flagged instead of being silently clamped.
type ReviewReason struct {
	Code            string          `json:"code"`
	GrossIncome     decimal.Decimal `json:"gross_income"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

const ReviewReasonNegativeNetPay = "negative_net_pay"

// PayrollCalculation is the engine's output for one (employee, period). It
// is assembled in one step from fully computed sub-results; the lifecycle
// controller mutates only the status and audit fields until the record
// locks.
type PayrollCalculation struct {
	ID         string
	EmployeeID string
	PeriodID   string
	CompanyID  string

	SDI               decimal.Decimal
	IntegrationFactor decimal.Decimal

	Income       IncomeBreakdown
	Deductions   DeductionBreakdown
	Employer     EmployerContributions
	NetPay       decimal.Decimal
	Status       CalculationStatus
	ReviewReason *ReviewReason
	Warnings     []CalculationWarning

	CalculatedAt *time.Time
	CalculatedBy *string
	ApprovedAt   *time.Time
	ApprovedBy   *string
	ProcessedAt  *time.Time
	ProcessedBy  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
