package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetEmployerConfig(ctx context.Context, companyID string) (EmployerConfig, error)
	UpsertEmployerConfig(ctx context.Context, cfg EmployerConfig) (EmployerConfig, error)
}
