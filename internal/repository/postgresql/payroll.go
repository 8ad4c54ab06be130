package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== PERIODS ==========

const periodColumns = `id, company_id, type, code, start_date, end_date, payment_date, status,
	approved_at, approved_by, paid_at, paid_by, closed_at, created_at, updated_at`

func scanPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var p payroll.PayrollPeriod
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Type, &p.Code, &p.StartDate, &p.EndDate, &p.PaymentDate, &p.Status,
		&p.ApprovedAt, &p.ApprovedBy, &p.PaidAt, &p.PaidBy, &p.ClosedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, company_id, type, code, start_date, end_date, payment_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + periodColumns

	created, err := scanPeriod(q.QueryRow(ctx, query,
		period.ID, period.CompanyID, period.Type, period.Code,
		period.StartDate, period.EndDate, period.PaymentDate, period.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_period_company_code") {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodCodeExists
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string, companyID string) (payroll.PayrollPeriod, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1 AND company_id = $2`

	period, err := scanPeriod(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return period, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, companyID string) ([]payroll.PayrollPeriod, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE company_id = $1 ORDER BY start_date DESC, code`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// LockPeriod takes the row lock that serializes approve/pay/close against
// concurrent calculation writes. It must run inside WithTransaction.
func (r *payrollRepository) LockPeriod(ctx context.Context, id string, companyID string) (payroll.PayrollPeriod, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1 AND company_id = $2 FOR UPDATE`

	period, err := scanPeriod(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to lock payroll period: %w", err)
	}

	return period, nil
}

func (r *payrollRepository) UpdatePeriodStatus(ctx context.Context, id string, companyID string, expected, next payroll.PeriodStatus, at time.Time, by *string) error {
	q := database.GetQuerier(ctx, r.db)

	var stamp string
	switch next {
	case payroll.PeriodStatusApproved:
		stamp = ", approved_at = $5, approved_by = $6"
	case payroll.PeriodStatusPaid:
		stamp = ", paid_at = $5, paid_by = $6"
	case payroll.PeriodStatusClosed:
		stamp = ", closed_at = $5"
	}

	query := `
		UPDATE payroll_periods
		SET status = $4, updated_at = NOW()` + stamp + `
		WHERE id = $1 AND company_id = $2 AND status = $3
	`

	args := []interface{}{id, companyID, expected, next}
	switch next {
	case payroll.PeriodStatusApproved, payroll.PeriodStatusPaid:
		args = append(args, at, by)
	case payroll.PeriodStatusClosed:
		args = append(args, at)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update period status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// The guarded update matched nothing: report why.
	current, err := r.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if current.Status == payroll.PeriodStatusClosed {
		return payroll.ErrPeriodClosed
	}
	return fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidPeriodTransition, current.Status, next)
}

// ========== CALCULATIONS ==========

const calculationColumns = `c.id, c.employee_id, c.period_id, c.company_id, c.sdi, c.integration_factor,
	c.worked_days, c.regular_salary, c.overtime_double, c.overtime_triple, c.vacation_premium,
	c.year_end_bonus_proration, c.bonuses, c.commissions, c.other_income, c.gross_income,
	c.income_tax_before_subsidy, c.subsidy, c.income_tax, c.social_security, c.housing_fund,
	c.statutory_total, c.other_deductions, c.total_deductions,
	c.employer_social_security, c.employer_work_risk, c.employer_housing_fund,
	c.employer_retirement_savings, c.employer_total,
	c.net_pay, c.status, c.review_reason, c.warnings,
	c.calculated_at, c.calculated_by, c.approved_at, c.approved_by, c.processed_at, c.processed_by,
	c.created_at, c.updated_at`

func scanCalculation(row pgx.Row, joined bool) (payroll.PayrollCalculation, error) {
	var c payroll.PayrollCalculation
	var reasonBytes, warningsBytes []byte

	dest := []interface{}{
		&c.ID, &c.EmployeeID, &c.PeriodID, &c.CompanyID, &c.SDI, &c.IntegrationFactor,
		&c.Income.WorkedDays, &c.Income.RegularSalary, &c.Income.OvertimeDouble, &c.Income.OvertimeTriple,
		&c.Income.VacationPremium, &c.Income.YearEndBonusProration, &c.Income.Bonuses, &c.Income.Commissions,
		&c.Income.OtherIncome, &c.Income.GrossIncome,
		&c.Deductions.IncomeTaxBeforeSubsidy, &c.Deductions.Subsidy, &c.Deductions.IncomeTax,
		&c.Deductions.SocialSecurity, &c.Deductions.HousingFund, &c.Deductions.StatutoryTotal,
		&c.Deductions.OtherDeductions, &c.Deductions.TotalDeductions,
		&c.Employer.SocialSecurity, &c.Employer.WorkRisk, &c.Employer.HousingFund,
		&c.Employer.RetirementSavings, &c.Employer.Total,
		&c.NetPay, &c.Status, &reasonBytes, &warningsBytes,
		&c.CalculatedAt, &c.CalculatedBy, &c.ApprovedAt, &c.ApprovedBy, &c.ProcessedAt, &c.ProcessedBy,
		&c.CreatedAt, &c.UpdatedAt,
	}
	if joined {
		dest = append(dest, &c.EmployeeName, &c.EmployeeCode)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.PayrollCalculation{}, err
	}

	if len(reasonBytes) > 0 {
		if err := json.Unmarshal(reasonBytes, &c.ReviewReason); err != nil {
			return payroll.PayrollCalculation{}, fmt.Errorf("failed to decode review reason: %w", err)
		}
	}
	if len(warningsBytes) > 0 {
		if err := json.Unmarshal(warningsBytes, &c.Warnings); err != nil {
			return payroll.PayrollCalculation{}, fmt.Errorf("failed to decode warnings: %w", err)
		}
	}

	return c, nil
}

// UpsertCalculation writes a computed record keyed by (employee, period). The
// statement re-checks the lifecycle rules in SQL: the period must still
// accept calculation writes and an existing record must not be locked. A
// write refused by those guards surfaces as ErrPeriodClosed,
// ErrInvalidPeriodTransition or ErrCalculationLocked.
func (r *payrollRepository) UpsertCalculation(ctx context.Context, calc payroll.PayrollCalculation) (payroll.PayrollCalculation, error) {
	q := database.GetQuerier(ctx, r.db)

	reasonJSON, _ := json.Marshal(calc.ReviewReason)
	if calc.ReviewReason == nil {
		reasonJSON = nil
	}
	warningsJSON, _ := json.Marshal(calc.Warnings)
	if calc.Warnings == nil {
		warningsJSON = nil
	}

	query := `
		INSERT INTO payroll_calculations (
			id, employee_id, period_id, company_id, sdi, integration_factor,
			worked_days, regular_salary, overtime_double, overtime_triple, vacation_premium,
			year_end_bonus_proration, bonuses, commissions, other_income, gross_income,
			income_tax_before_subsidy, subsidy, income_tax, social_security, housing_fund,
			statutory_total, other_deductions, total_deductions,
			employer_social_security, employer_work_risk, employer_housing_fund,
			employer_retirement_savings, employer_total,
			net_pay, status, review_reason, warnings, calculated_at, calculated_by
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31,
			$32, $33, $34, $35
		WHERE EXISTS (
			SELECT 1 FROM payroll_periods
			WHERE id = $3 AND status IN ('open', 'calculated')
		)
		ON CONFLICT (employee_id, period_id) DO UPDATE SET
			sdi = EXCLUDED.sdi,
			integration_factor = EXCLUDED.integration_factor,
			worked_days = EXCLUDED.worked_days,
			regular_salary = EXCLUDED.regular_salary,
			overtime_double = EXCLUDED.overtime_double,
			overtime_triple = EXCLUDED.overtime_triple,
			vacation_premium = EXCLUDED.vacation_premium,
			year_end_bonus_proration = EXCLUDED.year_end_bonus_proration,
			bonuses = EXCLUDED.bonuses,
			commissions = EXCLUDED.commissions,
			other_income = EXCLUDED.other_income,
			gross_income = EXCLUDED.gross_income,
			income_tax_before_subsidy = EXCLUDED.income_tax_before_subsidy,
			subsidy = EXCLUDED.subsidy,
			income_tax = EXCLUDED.income_tax,
			social_security = EXCLUDED.social_security,
			housing_fund = EXCLUDED.housing_fund,
			statutory_total = EXCLUDED.statutory_total,
			other_deductions = EXCLUDED.other_deductions,
			total_deductions = EXCLUDED.total_deductions,
			employer_social_security = EXCLUDED.employer_social_security,
			employer_work_risk = EXCLUDED.employer_work_risk,
			employer_housing_fund = EXCLUDED.employer_housing_fund,
			employer_retirement_savings = EXCLUDED.employer_retirement_savings,
			employer_total = EXCLUDED.employer_total,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			review_reason = EXCLUDED.review_reason,
			warnings = EXCLUDED.warnings,
			calculated_at = EXCLUDED.calculated_at,
			calculated_by = EXCLUDED.calculated_by,
			updated_at = NOW()
		WHERE payroll_calculations.status NOT IN ('approved', 'processed')
		RETURNING ` + strings.ReplaceAll(calculationColumns, "c.", "")

	row := q.QueryRow(ctx, query,
		calc.ID, calc.EmployeeID, calc.PeriodID, calc.CompanyID, calc.SDI, calc.IntegrationFactor,
		calc.Income.WorkedDays, calc.Income.RegularSalary, calc.Income.OvertimeDouble, calc.Income.OvertimeTriple,
		calc.Income.VacationPremium, calc.Income.YearEndBonusProration, calc.Income.Bonuses, calc.Income.Commissions,
		calc.Income.OtherIncome, calc.Income.GrossIncome,
		calc.Deductions.IncomeTaxBeforeSubsidy, calc.Deductions.Subsidy, calc.Deductions.IncomeTax,
		calc.Deductions.SocialSecurity, calc.Deductions.HousingFund, calc.Deductions.StatutoryTotal,
		calc.Deductions.OtherDeductions, calc.Deductions.TotalDeductions,
		calc.Employer.SocialSecurity, calc.Employer.WorkRisk, calc.Employer.HousingFund,
		calc.Employer.RetirementSavings, calc.Employer.Total,
		calc.NetPay, calc.Status, reasonJSON, warningsJSON, calc.CalculatedAt, calc.CalculatedBy,
	)

	stored, err := scanCalculation(row, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCalculation{}, r.explainRefusedWrite(ctx, calc.EmployeeID, calc.PeriodID)
		}
		return payroll.PayrollCalculation{}, fmt.Errorf("failed to upsert payroll calculation: %w", err)
	}

	return stored, nil
}

// explainRefusedWrite turns a guard-refused upsert into the precise domain
// error.
func (r *payrollRepository) explainRefusedWrite(ctx context.Context, employeeID, periodID string) error {
	q := database.GetQuerier(ctx, r.db)

	var periodStatus payroll.PeriodStatus
	err := q.QueryRow(ctx, `SELECT status FROM payroll_periods WHERE id = $1`, periodID).Scan(&periodStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to inspect period status: %w", err)
	}
	if periodStatus == payroll.PeriodStatusClosed {
		return payroll.ErrPeriodClosed
	}
	if !periodStatus.AcceptsCalculationWrites() {
		return fmt.Errorf("%w: period is %s", payroll.ErrInvalidPeriodTransition, periodStatus)
	}
	return fmt.Errorf("%w: employee %s", payroll.ErrCalculationLocked, employeeID)
}

func (r *payrollRepository) GetCalculation(ctx context.Context, employeeID, periodID string) (payroll.PayrollCalculation, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + calculationColumns + `
		FROM payroll_calculations c
		WHERE c.employee_id = $1 AND c.period_id = $2`

	calc, err := scanCalculation(q.QueryRow(ctx, query, employeeID, periodID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCalculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.PayrollCalculation{}, fmt.Errorf("failed to get payroll calculation: %w", err)
	}

	return calc, nil
}

func (r *payrollRepository) GetCalculationByID(ctx context.Context, id string, companyID string) (payroll.PayrollCalculation, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + calculationColumns + `, e.full_name AS employee_name, e.employee_code
		FROM payroll_calculations c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.id = $1 AND c.company_id = $2`

	calc, err := scanCalculation(q.QueryRow(ctx, query, id, companyID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCalculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.PayrollCalculation{}, fmt.Errorf("failed to get payroll calculation: %w", err)
	}

	return calc, nil
}

func (r *payrollRepository) ListCalculationsByPeriod(ctx context.Context, periodID string, companyID string) ([]payroll.PayrollCalculation, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + calculationColumns + `, e.full_name AS employee_name, e.employee_code
		FROM payroll_calculations c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.period_id = $1 AND c.company_id = $2
		ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query, periodID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll calculations: %w", err)
	}
	defer rows.Close()

	var calcs []payroll.PayrollCalculation
	for rows.Next() {
		c, err := scanCalculation(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll calculation: %w", err)
		}
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}

func (r *payrollRepository) ListUnresolvedEmployeeIDs(ctx context.Context, periodID string) ([]string, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id FROM payroll_calculations
		WHERE period_id = $1 AND status IN ('pending', 'requires_review')
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved calculations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *payrollRepository) TransitionCalculations(ctx context.Context, periodID string, from, to payroll.CalculationStatus, at time.Time, by *string) error {
	q := database.GetQuerier(ctx, r.db)

	var stamp string
	switch to {
	case payroll.CalculationStatusApproved:
		stamp = ", approved_at = $4, approved_by = $5"
	case payroll.CalculationStatusProcessed:
		stamp = ", processed_at = $4, processed_by = $5"
	}

	query := `
		UPDATE payroll_calculations
		SET status = $3, updated_at = NOW()` + stamp + `
		WHERE period_id = $1 AND status = $2
	`

	args := []interface{}{periodID, from, to}
	if stamp != "" {
		args = append(args, at, by)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to transition payroll calculations: %w", err)
	}
	return nil
}

// ========== INCIDENCES ==========

const incidenceColumns = `employee_id, period_id, overtime_hours, overtime_hours_double,
	overtime_hours_triple, paid_absence_days, unpaid_absence_days, vacation_days_taken,
	bonuses, commissions, other_income, other_deductions, updated_at`

func scanIncidence(row pgx.Row) (payroll.IncidenceAggregate, error) {
	var a payroll.IncidenceAggregate
	err := row.Scan(
		&a.EmployeeID, &a.PeriodID, &a.OvertimeHours, &a.OvertimeHoursDouble,
		&a.OvertimeHoursTriple, &a.PaidAbsenceDays, &a.UnpaidAbsenceDays, &a.VacationDaysTaken,
		&a.Bonuses, &a.Commissions, &a.OtherIncome, &a.OtherDeductions, &a.UpdatedAt,
	)
	return a, err
}

func (r *payrollRepository) UpsertIncidence(ctx context.Context, agg payroll.IncidenceAggregate) (payroll.IncidenceAggregate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_incidences (
			employee_id, period_id, overtime_hours, overtime_hours_double, overtime_hours_triple,
			paid_absence_days, unpaid_absence_days, vacation_days_taken,
			bonuses, commissions, other_income, other_deductions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, period_id) DO UPDATE SET
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_hours_double = EXCLUDED.overtime_hours_double,
			overtime_hours_triple = EXCLUDED.overtime_hours_triple,
			paid_absence_days = EXCLUDED.paid_absence_days,
			unpaid_absence_days = EXCLUDED.unpaid_absence_days,
			vacation_days_taken = EXCLUDED.vacation_days_taken,
			bonuses = EXCLUDED.bonuses,
			commissions = EXCLUDED.commissions,
			other_income = EXCLUDED.other_income,
			other_deductions = EXCLUDED.other_deductions,
			updated_at = NOW()
		RETURNING ` + incidenceColumns

	stored, err := scanIncidence(q.QueryRow(ctx, query,
		agg.EmployeeID, agg.PeriodID, agg.OvertimeHours, agg.OvertimeHoursDouble, agg.OvertimeHoursTriple,
		agg.PaidAbsenceDays, agg.UnpaidAbsenceDays, agg.VacationDaysTaken,
		agg.Bonuses, agg.Commissions, agg.OtherIncome, agg.OtherDeductions,
	))
	if err != nil {
		return payroll.IncidenceAggregate{}, fmt.Errorf("failed to upsert incidence aggregate: %w", err)
	}

	return stored, nil
}

func (r *payrollRepository) GetIncidence(ctx context.Context, employeeID, periodID string) (payroll.IncidenceAggregate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + incidenceColumns + ` FROM payroll_incidences WHERE employee_id = $1 AND period_id = $2`

	agg, err := scanIncidence(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.IncidenceAggregate{}, payroll.ErrIncidenceNotFound
		}
		return payroll.IncidenceAggregate{}, fmt.Errorf("failed to get incidence aggregate: %w", err)
	}

	return agg, nil
}

func (r *payrollRepository) GetIncidencesByPeriod(ctx context.Context, periodID string) (map[string]payroll.IncidenceAggregate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + incidenceColumns + ` FROM payroll_incidences WHERE period_id = $1`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidence aggregates: %w", err)
	}
	defer rows.Close()

	aggregates := make(map[string]payroll.IncidenceAggregate)
	for rows.Next() {
		a, err := scanIncidence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incidence aggregate: %w", err)
		}
		aggregates[a.EmployeeID] = a
	}
	return aggregates, rows.Err()
}

// ========== HOLIDAYS ==========

func (r *payrollRepository) GetHolidays(ctx context.Context, companyID string, from, to time.Time) ([]time.Time, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT holiday_date FROM holidays
		WHERE company_id = $1 AND holiday_date BETWEEN $2 AND $3
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) GetPeriodSummary(ctx context.Context, periodID string, companyID string) (payroll.PeriodSummaryResponse, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status IN ('pending', 'requires_review')),
			   COALESCE(SUM(gross_income), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(net_pay), 0),
			   COALESCE(SUM(employer_total), 0)
		FROM payroll_calculations
		WHERE period_id = $1 AND company_id = $2
	`

	summary := payroll.PeriodSummaryResponse{PeriodID: periodID}
	err := q.QueryRow(ctx, query, periodID, companyID).Scan(
		&summary.EmployeeCount, &summary.ReviewCount,
		&summary.TotalGross, &summary.TotalDeductions, &summary.TotalNet, &summary.TotalEmployerCost,
	)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return summary, nil
}
