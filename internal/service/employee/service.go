package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/nominamx/nomina-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	now := time.Now()
	emp := employee.Employee{
		ID:               uuid.Must(uuid.NewV7()).String(),
		CompanyID:        companyID,
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		RFC:              req.RFC,
		CURP:             req.CURP,
		NSS:              req.NSS,
		CollarType:       employee.CollarType(req.CollarType),
		EmploymentStatus: employee.EmploymentStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if req.DailySalary != nil {
		salary, err := decimal.NewFromString(*req.DailySalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid daily salary: %w", err)
		}
		emp.DailySalary = &salary
	}
	if req.HireDate != nil {
		hired, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid hire date: %w", err)
		}
		emp.HireDate = &hired
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToEmployeeResponse(e))
	}
	return responses, nil
}
