package payroll

import "context"

// PayrollService is the lifecycle controller around the calculation engine.
type PayrollService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	// CalculatePeriod computes the whole roster concurrently. Missing or
	// invalid tax tables abort before any employee is touched; per-employee
	// failures are collected into the result and never abort the batch.
	CalculatePeriod(ctx context.Context, periodID string, req CalculatePeriodRequest) (BatchResult, error)
	// RecalculateEmployee recomputes a single calculation; locked records
	// are rejected with ErrCalculationLocked.
	RecalculateEmployee(ctx context.Context, periodID, employeeID string) (CalculationResponse, error)

	ApprovePeriod(ctx context.Context, periodID string) (PeriodResponse, error)
	MarkPeriodPaid(ctx context.Context, periodID string) (PeriodResponse, error)
	ClosePeriod(ctx context.Context, periodID string) (PeriodResponse, error)

	GetCalculation(ctx context.Context, id string) (CalculationResponse, error)
	ListCalculations(ctx context.Context, periodID string) ([]CalculationResponse, error)
	GetPeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)

	UpsertIncidences(ctx context.Context, req UpsertIncidencesRequest) (IncidenceAggregate, error)
}
