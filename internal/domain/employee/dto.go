package employee

import (
	"github.com/nominamx/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	RFC          string  `json:"rfc"`
	CURP         string  `json:"curp"`
	NSS          string  `json:"nss"`
	CollarType   string  `json:"collar_type"`
	DailySalary  *string `json:"daily_salary,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 3-20 alphanumeric characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidRFC(r.RFC) {
		errs = append(errs, validator.ValidationError{Field: "rfc", Message: "must be a valid RFC"})
	}
	if !validator.IsValidCURP(r.CURP) {
		errs = append(errs, validator.ValidationError{Field: "curp", Message: "must be a valid CURP"})
	}
	if !validator.IsValidNSS(r.NSS) {
		errs = append(errs, validator.ValidationError{Field: "nss", Message: "must be an 11-digit NSS"})
	}

	switch CollarType(r.CollarType) {
	case CollarTypeWhite, CollarTypeBlue, CollarTypeGray:
	default:
		errs = append(errs, validator.ValidationError{Field: "collar_type", Message: "must be 'white', 'blue' or 'gray'"})
	}

	if r.DailySalary != nil {
		if salary, err := decimal.NewFromString(*r.DailySalary); err != nil || !salary.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "must be a positive decimal"})
		}
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	EmployeeCode     string           `json:"employee_code"`
	FullName         string           `json:"full_name"`
	RFC              string           `json:"rfc"`
	CURP             string           `json:"curp"`
	NSS              string           `json:"nss"`
	CollarType       string           `json:"collar_type"`
	DefaultFrequency string           `json:"default_pay_frequency"`
	DailySalary      *decimal.Decimal `json:"daily_salary,omitempty"`
	HireDate         *string          `json:"hire_date,omitempty"`
	EmploymentStatus string           `json:"employment_status"`
}

// DefaultPayFrequency maps the collar classification to the pay frequency
// used when the employee is pulled into a period: union (blue) staff weekly,
// white-collar biweekly, gray-collar monthly.
func (e Employee) DefaultPayFrequency() string {
	switch e.CollarType {
	case CollarTypeBlue:
		return "weekly"
	case CollarTypeGray:
		return "monthly"
	default:
		return "biweekly"
	}
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		RFC:              e.RFC,
		CURP:             e.CURP,
		NSS:              e.NSS,
		CollarType:       string(e.CollarType),
		DefaultFrequency: e.DefaultPayFrequency(),
		DailySalary:      e.DailySalary,
		EmploymentStatus: string(e.EmploymentStatus),
	}
	if e.HireDate != nil {
		s := e.HireDate.Format("2006-01-02")
		resp.HireDate = &s
	}
	return resp
}
