package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/nominamx/nomina-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, company_id, employee_code, full_name, rfc, curp, nss, collar_type,
	daily_salary, hire_date, employment_status, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.RFC, &e.CURP, &e.NSS, &e.CollarType,
		&e.DailySalary, &e.HireDate, &e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, company_id, employee_code, full_name, rfc, curp, nss, collar_type,
			daily_salary, hire_date, employment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.CompanyID, emp.EmployeeCode, emp.FullName, emp.RFC, emp.CURP, emp.NSS,
		emp.CollarType, emp.DailySalary, emp.HireDate, emp.EmploymentStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_company_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND employment_status = 'active' AND deleted_at IS NULL
		ORDER BY employee_code`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
