package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for periods, calculations and
// incidence aggregates. All methods carry companyID to prevent
// cross-company data access. Write methods re-check period and calculation
// state in SQL so the lifecycle rules hold even against writers that bypass
// the in-memory guards.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetPeriodByID(ctx context.Context, id string, companyID string) (PayrollPeriod, error)
	ListPeriods(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	// LockPeriod takes a row lock on the period; it must run inside a
	// transaction and excludes concurrent calculation writes for the
	// duration of approve/pay/close.
	LockPeriod(ctx context.Context, id string, companyID string) (PayrollPeriod, error)
	// UpdatePeriodStatus advances the period only when its current status
	// equals expected; anything else is ErrInvalidPeriodTransition (or
	// ErrPeriodClosed when the stored status is closed).
	UpdatePeriodStatus(ctx context.Context, id string, companyID string, expected, next PeriodStatus, at time.Time, by *string) error

	// Calculations
	UpsertCalculation(ctx context.Context, calc PayrollCalculation) (PayrollCalculation, error)
	GetCalculation(ctx context.Context, employeeID, periodID string) (PayrollCalculation, error)
	GetCalculationByID(ctx context.Context, id string, companyID string) (PayrollCalculation, error)
	ListCalculationsByPeriod(ctx context.Context, periodID string, companyID string) ([]PayrollCalculation, error)
	// ListUnresolvedEmployeeIDs returns employees whose calculation in the
	// period is pending or requires review; approval is refused while any
	// exist.
	ListUnresolvedEmployeeIDs(ctx context.Context, periodID string) ([]string, error)
	// TransitionCalculations moves every calculation in the period from one
	// status to another, stamping the audit fields.
	TransitionCalculations(ctx context.Context, periodID string, from, to CalculationStatus, at time.Time, by *string) error

	// Incidences
	UpsertIncidence(ctx context.Context, agg IncidenceAggregate) (IncidenceAggregate, error)
	GetIncidence(ctx context.Context, employeeID, periodID string) (IncidenceAggregate, error)
	GetIncidencesByPeriod(ctx context.Context, periodID string) (map[string]IncidenceAggregate, error)

	// Holiday calendar (read-only collaborator input)
	GetHolidays(ctx context.Context, companyID string, from, to time.Time) ([]time.Time, error)

	// Aggregations
	GetPeriodSummary(ctx context.Context, periodID string, companyID string) (PeriodSummaryResponse, error)
}
