package payroll

import (
	"fmt"

	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
)

var (
	workRiskRateMin = decimal.NewFromFloat(0.5)
	workRiskRateMax = decimal.NewFromFloat(7.5)
)

// ComputeEmployerContributions builds the employer-side cost on the same
// capped contribution base as the employee deductions: summed IMSS employer
// shares, the per-employer work-risk premium, the INFONAVIT employer share
// and the SAR retirement contribution. These amounts are tracked on the
// record for compliance reporting and never reduce net pay.
//
// The retirement share is reported separately from SocialSecurity so the
// total counts it exactly once.
func ComputeEmployerContributions(
	sdi decimal.Decimal,
	workedDays int,
	set taxtable.TaxTableSet,
	cfg company.EmployerConfig,
) (payroll.EmployerContributions, error) {
	if cfg.WorkRiskRatePercent.LessThan(workRiskRateMin) || cfg.WorkRiskRatePercent.GreaterThan(workRiskRateMax) {
		return payroll.EmployerContributions{}, fmt.Errorf("%w: %s%% outside [%s, %s]",
			company.ErrWorkRiskRateOutOfRange, cfg.WorkRiskRatePercent, workRiskRateMin, workRiskRateMax)
	}

	base := contributionBase(sdi, workedDays, set.Reference)

	socialSecurity := base.Mul(set.EmployerSocialSecurityPercent()).Div(oneHundred).Round(2)
	workRisk := base.Mul(cfg.WorkRiskRatePercent).Div(oneHundred).Round(2)
	housing := base.Mul(housingEmployerPercent(set, cfg)).Div(oneHundred).Round(2)
	retirement := base.Mul(set.RetirementEmployerPercent()).Div(oneHundred).Round(2)

	return payroll.EmployerContributions{
		SocialSecurity:    socialSecurity,
		WorkRisk:          workRisk,
		HousingFund:       housing,
		RetirementSavings: retirement,
		Total:             socialSecurity.Add(workRisk).Add(housing).Add(retirement),
	}, nil
}
