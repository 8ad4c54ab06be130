package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	RFC              string
	CURP             string
	NSS              string
	CollarType       CollarType
	DailySalary      *decimal.Decimal
	HireDate         *time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// CollarType classifies the employee and determines the default pay
// frequency: blue-collar (union) staff are paid weekly, white-collar
// biweekly, gray-collar monthly.
type CollarType string

const (
	CollarTypeWhite CollarType = "white"
	CollarTypeBlue  CollarType = "blue"
	CollarTypeGray  CollarType = "gray"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Complete reports whether the record carries everything a payroll
// calculation needs. Incomplete employees are skipped by the batch with a
// per-employee failure, never aborting the run.
func (e Employee) Complete() bool {
	return e.DailySalary != nil && e.DailySalary.IsPositive() && e.HireDate != nil
}
