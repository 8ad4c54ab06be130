package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/nominamx/nomina-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Options carries the calculation settings that come from configuration
// rather than from the tax tables.
type Options struct {
	// BatchConcurrency bounds the worker pool of CalculatePeriod.
	BatchConcurrency int
	// DefaultWorkRiskRatePercent is used when the company has no employer
	// configuration row.
	DefaultWorkRiskRatePercent decimal.Decimal
}

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	taxTables    taxtable.Repository
	inflight     *inflightGuard
	opts         Options

	// txRun wraps the lifecycle transitions in a transaction; repository
	// fakes in tests substitute a pass-through.
	txRun func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	taxTables taxtable.Repository,
	opts Options,
) payroll.PayrollService {
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = 8
	}
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		taxTables:    taxTables,
		inflight:     newInflightGuard(),
		opts:         opts,
		txRun: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return database.WithTransaction(ctx, db, fn)
		},
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	periodType := payroll.PeriodType(req.Type)
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	payment, _ := time.Parse("2006-01-02", req.PaymentDate)

	code := req.Code
	if code == "" {
		code = fmt.Sprintf("NOM-%s-%s", strings.ToUpper(string(periodType))[:2], start.Format("20060102"))
	}

	now := time.Now()
	period := payroll.PayrollPeriod{
		ID:          uuid.Must(uuid.NewV7()).String(),
		CompanyID:   companyID,
		Type:        periodType,
		Code:        code,
		StartDate:   start,
		EndDate:     end,
		PaymentDate: payment,
		Status:      payroll.PeriodStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.payrollRepo.CreatePeriod(ctx, period)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return payroll.ToPeriodResponse(created), nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return payroll.ToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.payrollRepo.ListPeriods(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.ToPeriodResponse(p))
	}
	return responses, nil
}

// ========== CALCULATION ==========

// calculationInputs bundles everything a single calculation unit needs. The
// batch loads all of it up front so workers never hit the database for
// shared data.
type calculationInputs struct {
	period       payroll.PayrollPeriod
	profile      payroll.PeriodProfile
	tables       taxtable.TaxTableSet
	employerCfg  company.EmployerConfig
	holidayCount int
}

func (s *PayrollServiceImpl) loadCalculationInputs(ctx context.Context, period payroll.PayrollPeriod, companyID string) (calculationInputs, error) {
	profile, ok := period.Type.Profile()
	if !ok {
		return calculationInputs{}, fmt.Errorf("unknown period type %q", period.Type)
	}

	// Missing or invalid tables abort before any employee is touched.
	tables, err := s.taxTables.Load(period.StartDate.Year(), profile.TableKey)
	if err != nil {
		return calculationInputs{}, err
	}

	employerCfg, err := s.companyRepo.GetEmployerConfig(ctx, companyID)
	if err != nil {
		if !errors.Is(err, company.ErrEmployerConfigNotFound) {
			return calculationInputs{}, err
		}
		employerCfg = company.EmployerConfig{
			CompanyID:           companyID,
			WorkRiskRatePercent: s.opts.DefaultWorkRiskRatePercent,
		}
	}

	holidays, err := s.payrollRepo.GetHolidays(ctx, companyID, period.StartDate, period.EndDate)
	if err != nil {
		return calculationInputs{}, err
	}

	return calculationInputs{
		period:       period,
		profile:      profile,
		tables:       tables,
		employerCfg:  employerCfg,
		holidayCount: len(holidays),
	}, nil
}

// computeCalculation runs the pure engine for one employee. No database
// access happens here.
func computeCalculation(
	emp employee.Employee,
	in calculationInputs,
	incidences payroll.IncidenceAggregate,
	calculatedBy string,
	now time.Time,
) (payroll.PayrollCalculation, error) {
	if !emp.Complete() {
		return payroll.PayrollCalculation{}, fmt.Errorf("%w: employee %s", employee.ErrEmployeeDataIncomplete, emp.ID)
	}

	sdi, factor := ComputeSDI(*emp.DailySalary, *emp.HireDate, in.period.EndDate, in.tables.Reference)
	income, warnings := AggregateIncome(*emp.DailySalary, incidences, in.period, in.holidayCount, in.profile)
	deductions := ComputeDeductions(income.GrossIncome, sdi, income.WorkedDays, in.profile, in.tables, in.employerCfg, incidences.OtherDeductions)
	employer, err := ComputeEmployerContributions(sdi, income.WorkedDays, in.tables, in.employerCfg)
	if err != nil {
		return payroll.PayrollCalculation{}, err
	}

	return AssembleCalculation(emp, in.period, income, deductions, employer, sdi, factor, warnings, calculatedBy, now), nil
}

// calculateAndStore runs one guarded compute-and-write unit. The in-flight
// slot is held for the whole unit including the write.
func (s *PayrollServiceImpl) calculateAndStore(
	ctx context.Context,
	emp employee.Employee,
	in calculationInputs,
	incidences payroll.IncidenceAggregate,
	calculatedBy string,
) (payroll.PayrollCalculation, error) {
	if !s.inflight.TryAcquire(emp.ID, in.period.ID) {
		return payroll.PayrollCalculation{}, fmt.Errorf("%w: employee %s", payroll.ErrDuplicateCalculationInFlight, emp.ID)
	}
	defer s.inflight.Release(emp.ID, in.period.ID)

	existing, err := s.payrollRepo.GetCalculation(ctx, emp.ID, in.period.ID)
	if err != nil && !errors.Is(err, payroll.ErrCalculationNotFound) {
		return payroll.PayrollCalculation{}, err
	}
	if err == nil && existing.Status.Locked() {
		return payroll.PayrollCalculation{}, fmt.Errorf("%w: employee %s", payroll.ErrCalculationLocked, emp.ID)
	}

	calc, err := computeCalculation(emp, in, incidences, calculatedBy, time.Now())
	if err != nil {
		return payroll.PayrollCalculation{}, err
	}

	stored, err := s.payrollRepo.UpsertCalculation(ctx, calc)
	if err != nil {
		return payroll.PayrollCalculation{}, err
	}
	return stored, nil
}

func (s *PayrollServiceImpl) CalculatePeriod(ctx context.Context, periodID string, req payroll.CalculatePeriodRequest) (payroll.BatchResult, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.BatchResult{}, err
	}
	if period.Status == payroll.PeriodStatusClosed {
		return payroll.BatchResult{}, payroll.ErrPeriodClosed
	}
	if !period.Status.AcceptsCalculationWrites() {
		return payroll.BatchResult{}, fmt.Errorf("%w: period is %s", payroll.ErrInvalidPeriodTransition, period.Status)
	}

	inputs, err := s.loadCalculationInputs(ctx, period, companyID)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	roster, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.BatchResult{}, err
	}
	if len(req.EmployeeIDs) > 0 {
		requested := make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			requested[id] = true
		}
		filtered := roster[:0]
		for _, emp := range roster {
			if requested[emp.ID] {
				filtered = append(filtered, emp)
			}
		}
		roster = filtered
	}

	incidencesByEmployee, err := s.payrollRepo.GetIncidencesByPeriod(ctx, periodID)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	result := payroll.BatchResult{PeriodID: periodID}
	var mu sync.Mutex

	g := &errgroup.Group{}
	g.SetLimit(s.opts.BatchConcurrency)

	for _, emp := range roster {
		emp := emp
		// Cooperative cancellation: stop launching new units, let the
		// in-flight ones finish and report what completed.
		if ctx.Err() != nil {
			mu.Lock()
			result.Canceled = true
			mu.Unlock()
			break
		}

		g.Go(func() error {
			incidences, ok := incidencesByEmployee[emp.ID]
			if !ok {
				incidences = payroll.IncidenceAggregate{EmployeeID: emp.ID, PeriodID: periodID}
			}

			// A launched unit always completes its compute-and-write;
			// cancellation only stops new launches.
			calc, err := s.calculateAndStore(context.WithoutCancel(ctx), emp, inputs, incidences, userID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, payroll.EmployeeFailure{
					EmployeeID: emp.ID,
					Error:      err.Error(),
				})
				return nil
			}
			result.Calculated++
			if calc.Status == payroll.CalculationStatusRequiresReview {
				result.Flagged++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	if period.Status == payroll.PeriodStatusOpen && result.Calculated > 0 {
		// Records written by finished units must leave the period marked,
		// even when the batch was canceled partway.
		now := time.Now()
		if err := s.payrollRepo.UpdatePeriodStatus(context.WithoutCancel(ctx), periodID, companyID,
			payroll.PeriodStatusOpen, payroll.PeriodStatusCalculated, now, nil); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *PayrollServiceImpl) RecalculateEmployee(ctx context.Context, periodID, employeeID string) (payroll.CalculationResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}
	if period.Status == payroll.PeriodStatusClosed {
		return payroll.CalculationResponse{}, payroll.ErrPeriodClosed
	}
	if !period.Status.AcceptsCalculationWrites() {
		return payroll.CalculationResponse{}, fmt.Errorf("%w: period is %s", payroll.ErrInvalidPeriodTransition, period.Status)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	inputs, err := s.loadCalculationInputs(ctx, period, companyID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	incidences, err := s.payrollRepo.GetIncidence(ctx, employeeID, periodID)
	if err != nil {
		if !errors.Is(err, payroll.ErrIncidenceNotFound) {
			return payroll.CalculationResponse{}, err
		}
		incidences = payroll.IncidenceAggregate{EmployeeID: employeeID, PeriodID: periodID}
	}

	calc, err := s.calculateAndStore(ctx, emp, inputs, incidences, userID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	return payroll.ToCalculationResponse(calc), nil
}

// ========== LIFECYCLE ==========

func (s *PayrollServiceImpl) ApprovePeriod(ctx context.Context, periodID string) (payroll.PeriodResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	err = s.txRun(ctx, func(txCtx context.Context) error {
		period, err := s.payrollRepo.LockPeriod(txCtx, periodID, companyID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusClosed {
			return payroll.ErrPeriodClosed
		}
		if !period.Status.CanTransitionTo(payroll.PeriodStatusApproved) {
			return fmt.Errorf("%w: %s -> approved", payroll.ErrInvalidPeriodTransition, period.Status)
		}

		unresolved, err := s.payrollRepo.ListUnresolvedEmployeeIDs(txCtx, periodID)
		if err != nil {
			return err
		}
		if len(unresolved) > 0 {
			return &payroll.UnresolvedReviewsError{EmployeeIDs: unresolved}
		}

		now := time.Now()
		if err := s.payrollRepo.TransitionCalculations(txCtx, periodID,
			payroll.CalculationStatusCalculated, payroll.CalculationStatusApproved, now, &userID); err != nil {
			return err
		}
		return s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, companyID,
			payroll.PeriodStatusCalculated, payroll.PeriodStatusApproved, now, &userID)
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return s.GetPeriod(ctx, periodID)
}

func (s *PayrollServiceImpl) MarkPeriodPaid(ctx context.Context, periodID string) (payroll.PeriodResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	err = s.txRun(ctx, func(txCtx context.Context) error {
		period, err := s.payrollRepo.LockPeriod(txCtx, periodID, companyID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusClosed {
			return payroll.ErrPeriodClosed
		}
		if !period.Status.CanTransitionTo(payroll.PeriodStatusPaid) {
			return fmt.Errorf("%w: %s -> paid", payroll.ErrInvalidPeriodTransition, period.Status)
		}

		now := time.Now()
		if err := s.payrollRepo.TransitionCalculations(txCtx, periodID,
			payroll.CalculationStatusApproved, payroll.CalculationStatusProcessed, now, &userID); err != nil {
			return err
		}
		return s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, companyID,
			payroll.PeriodStatusApproved, payroll.PeriodStatusPaid, now, &userID)
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return s.GetPeriod(ctx, periodID)
}

func (s *PayrollServiceImpl) ClosePeriod(ctx context.Context, periodID string) (payroll.PeriodResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	err = s.txRun(ctx, func(txCtx context.Context) error {
		period, err := s.payrollRepo.LockPeriod(txCtx, periodID, companyID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusClosed {
			return payroll.ErrPeriodClosed
		}
		if !period.Status.CanTransitionTo(payroll.PeriodStatusClosed) {
			return fmt.Errorf("%w: %s -> closed", payroll.ErrInvalidPeriodTransition, period.Status)
		}

		return s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, companyID,
			payroll.PeriodStatusPaid, payroll.PeriodStatusClosed, time.Now(), &userID)
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return s.GetPeriod(ctx, periodID)
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) GetCalculation(ctx context.Context, id string) (payroll.CalculationResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	calc, err := s.payrollRepo.GetCalculationByID(ctx, id, companyID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	return payroll.ToCalculationResponse(calc), nil
}

func (s *PayrollServiceImpl) ListCalculations(ctx context.Context, periodID string) ([]payroll.CalculationResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	calcs, err := s.payrollRepo.ListCalculationsByPeriod(ctx, periodID, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		responses = append(responses, payroll.ToCalculationResponse(c))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	if _, err := s.payrollRepo.GetPeriodByID(ctx, periodID, companyID); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	return s.payrollRepo.GetPeriodSummary(ctx, periodID, companyID)
}

// ========== INCIDENCES ==========

// UpsertIncidences is the write path for the external incidence approval
// workflow. Writes are refused once the period is approved; the engine only
// ever reads the aggregate.
func (s *PayrollServiceImpl) UpsertIncidences(ctx context.Context, req payroll.UpsertIncidencesRequest) (payroll.IncidenceAggregate, error) {
	if err := req.Validate(); err != nil {
		return payroll.IncidenceAggregate{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.IncidenceAggregate{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, req.PeriodID, companyID)
	if err != nil {
		return payroll.IncidenceAggregate{}, err
	}
	if period.Status == payroll.PeriodStatusClosed {
		return payroll.IncidenceAggregate{}, payroll.ErrPeriodClosed
	}
	if !period.Status.AcceptsCalculationWrites() {
		return payroll.IncidenceAggregate{}, fmt.Errorf("%w: incidences are frozen once the period is %s",
			payroll.ErrInvalidPeriodTransition, period.Status)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return payroll.IncidenceAggregate{}, err
	}

	agg, err := s.payrollRepo.GetIncidence(ctx, req.EmployeeID, req.PeriodID)
	if err != nil {
		if !errors.Is(err, payroll.ErrIncidenceNotFound) {
			return payroll.IncidenceAggregate{}, err
		}
		agg = payroll.IncidenceAggregate{EmployeeID: req.EmployeeID, PeriodID: req.PeriodID}
	}

	if req.OvertimeHours != nil {
		agg.OvertimeHours = *req.OvertimeHours
	}
	if req.OvertimeHoursDouble != nil {
		agg.OvertimeHoursDouble = *req.OvertimeHoursDouble
	}
	if req.OvertimeHoursTriple != nil {
		agg.OvertimeHoursTriple = *req.OvertimeHoursTriple
	}
	if req.PaidAbsenceDays != nil {
		agg.PaidAbsenceDays = *req.PaidAbsenceDays
	}
	if req.UnpaidAbsenceDays != nil {
		agg.UnpaidAbsenceDays = *req.UnpaidAbsenceDays
	}
	if req.VacationDaysTaken != nil {
		agg.VacationDaysTaken = *req.VacationDaysTaken
	}
	if req.Bonuses != nil {
		agg.Bonuses = *req.Bonuses
	}
	if req.Commissions != nil {
		agg.Commissions = *req.Commissions
	}
	if req.OtherIncome != nil {
		agg.OtherIncome = *req.OtherIncome
	}
	if req.OtherDeductions != nil {
		agg.OtherDeductions = *req.OtherDeductions
	}
	agg.UpdatedAt = time.Now()

	return s.payrollRepo.UpsertIncidence(ctx, agg)
}
