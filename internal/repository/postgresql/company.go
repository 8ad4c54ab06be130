package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, name, username)
		VALUES ($1, $2, $3)
		RETURNING id, name, username, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, c.ID, c.Name, c.Username).Scan(
		&created.ID, &created.Name, &created.Username, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT id, name, username, created_at, updated_at FROM companies WHERE id = $1`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Username, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

func (r *companyRepositoryImpl) GetEmployerConfig(ctx context.Context, companyID string) (company.EmployerConfig, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, work_risk_rate_percent, housing_employee_rate_percent,
			   housing_employer_rate_percent, updated_at
		FROM employer_configs
		WHERE company_id = $1
	`

	var cfg company.EmployerConfig
	err := q.QueryRow(ctx, query, companyID).Scan(
		&cfg.CompanyID, &cfg.WorkRiskRatePercent, &cfg.HousingEmployeeRatePercent,
		&cfg.HousingEmployerRatePercent, &cfg.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.EmployerConfig{}, company.ErrEmployerConfigNotFound
		}
		return company.EmployerConfig{}, fmt.Errorf("failed to get employer config: %w", err)
	}

	return cfg, nil
}

func (r *companyRepositoryImpl) UpsertEmployerConfig(ctx context.Context, cfg company.EmployerConfig) (company.EmployerConfig, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employer_configs (
			company_id, work_risk_rate_percent, housing_employee_rate_percent, housing_employer_rate_percent
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id) DO UPDATE SET
			work_risk_rate_percent = EXCLUDED.work_risk_rate_percent,
			housing_employee_rate_percent = EXCLUDED.housing_employee_rate_percent,
			housing_employer_rate_percent = EXCLUDED.housing_employer_rate_percent,
			updated_at = NOW()
		RETURNING company_id, work_risk_rate_percent, housing_employee_rate_percent,
			housing_employer_rate_percent, updated_at
	`

	var stored company.EmployerConfig
	err := q.QueryRow(ctx, query,
		cfg.CompanyID, cfg.WorkRiskRatePercent, cfg.HousingEmployeeRatePercent, cfg.HousingEmployerRatePercent,
	).Scan(
		&stored.CompanyID, &stored.WorkRiskRatePercent, &stored.HousingEmployeeRatePercent,
		&stored.HousingEmployerRatePercent, &stored.UpdatedAt,
	)
	if err != nil {
		return company.EmployerConfig{}, fmt.Errorf("failed to upsert employer config: %w", err)
	}

	return stored, nil
}
