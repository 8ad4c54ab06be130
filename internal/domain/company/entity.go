package company

import (
	"time"

	"github.com/shopspring/decimal"
)

type Company struct {
	ID        string
	Name      string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployerConfig holds the per-employer statutory parameters that are not
// part of the versioned tax tables: the work-risk premium assigned by the
// authority per industry, and housing-fund shares when they differ from the
// table defaults.
type EmployerConfig struct {
	CompanyID                  string
	WorkRiskRatePercent        decimal.Decimal
	HousingEmployeeRatePercent *decimal.Decimal
	HousingEmployerRatePercent *decimal.Decimal
	UpdatedAt                  time.Time
}
