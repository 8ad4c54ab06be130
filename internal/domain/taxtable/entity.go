package taxtable

import (
	"github.com/shopspring/decimal"
)

// PeriodType mirrors payroll.PeriodType without importing it; tax tables are
// keyed by (year, period type) and loaded independently of payroll state.
type PeriodType string

const (
	PeriodTypeWeekly   PeriodType = "weekly"
	PeriodTypeBiweekly PeriodType = "biweekly"
	PeriodTypeMonthly  PeriodType = "monthly"
)

// TaxBracket is a single ISR bracket. Tax for income x inside the bracket is
// FixedFee + (x - LowerLimit) * RatePercent / 100.
// UpperLimit is nil for the open-ended top bracket.
type TaxBracket struct {
	LowerLimit  decimal.Decimal
	UpperLimit  *decimal.Decimal
	FixedFee    decimal.Decimal
	RatePercent decimal.Decimal
}

// SubsidyBracket is a single employment-subsidy band. Income outside every
// band yields a zero subsidy.
type SubsidyBracket struct {
	LowerLimit decimal.Decimal
	UpperLimit *decimal.Decimal
	Amount     decimal.Decimal
}

// ContributionRate is one IMSS sub-component split into employee and
// employer shares, both percentages of the contribution base.
type ContributionRate struct {
	Key             string
	EmployeePercent decimal.Decimal
	EmployerPercent decimal.Decimal
}

// Sub-component keys used by the statutory rate table.
const (
	RateSicknessMaternityFixed  = "sickness_maternity_fixed"
	RateSicknessMaternityExcess = "sickness_maternity_excess"
	RateCashBenefits            = "cash_benefits"
	RateDisabilityLife          = "disability_life"
	RateRetirement              = "retirement"
	RateUnemploymentOldAge      = "unemployment_old_age"
	RateChildcare               = "childcare"
)

// ReferenceValues holds the official indexation values for a tax year.
type ReferenceValues struct {
	UMADaily          decimal.Decimal
	UMAMonthly        decimal.Decimal
	UMAAnnual         decimal.Decimal
	MinimumWage       decimal.Decimal
	MinimumWageBorder decimal.Decimal
	SDICapMultiplier  decimal.Decimal
}

// SDICap returns the contribution-base ceiling (25 x daily UMA).
func (r ReferenceValues) SDICap() decimal.Decimal {
	return r.UMADaily.Mul(r.SDICapMultiplier)
}

// TaxTableSet is the full versioned configuration for one (year, period
// type). It is immutable once loaded; batch calculation loads it once and
// passes it by value into every per-employee computation.
type TaxTableSet struct {
	Year       int
	PeriodType PeriodType

	Brackets        []TaxBracket
	SubsidyBrackets []SubsidyBracket

	SocialSecurityRates []ContributionRate

	// Housing-fund (INFONAVIT) default shares; per-employer configuration
	// may override them.
	HousingEmployeePercent decimal.Decimal
	HousingEmployerPercent decimal.Decimal

	Reference ReferenceValues
}

// EmployeeSocialSecurityPercent sums the employee shares of every
// sub-component. Retirement and childcare carry a zero employee share by
// table definition.
func (t TaxTableSet) EmployeeSocialSecurityPercent() decimal.Decimal {
	total := decimal.Zero
	for _, r := range t.SocialSecurityRates {
		total = total.Add(r.EmployeePercent)
	}
	return total
}

// EmployerSocialSecurityPercent sums the employer shares of every
// sub-component except retirement, which is reported separately as the SAR
// retirement-savings contribution. The work-risk premium is not part of the
// table; it is a per-employer rate added by the employer-contribution
// calculator.
func (t TaxTableSet) EmployerSocialSecurityPercent() decimal.Decimal {
	total := decimal.Zero
	for _, r := range t.SocialSecurityRates {
		if r.Key == RateRetirement {
			continue
		}
		total = total.Add(r.EmployerPercent)
	}
	return total
}

// RetirementEmployerPercent returns the employer SAR share from the rate
// table.
func (t TaxTableSet) RetirementEmployerPercent() decimal.Decimal {
	for _, r := range t.SocialSecurityRates {
		if r.Key == RateRetirement {
			return r.EmployerPercent
		}
	}
	return decimal.Zero
}
