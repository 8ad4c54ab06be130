package payroll

import (
	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeIncomeTax runs the period's taxable income through the bracket and
// subsidy tables. Weekly periods reuse the biweekly table: income is scaled
// up by the profile's input scale before the lookup and every result is
// scaled back down afterwards, so the bracket data has one source of truth.
//
// The net withholding is floored at zero. The employment subsidy offsets tax
// but is never refunded through payroll.
func ComputeIncomeTax(
	taxableIncome decimal.Decimal,
	profile payroll.PeriodProfile,
	set taxtable.TaxTableSet,
) (beforeSubsidy, subsidy, netTax decimal.Decimal) {
	scaled := taxableIncome.Mul(profile.InputScale)

	tax := decimal.Zero
	for _, b := range set.Brackets {
		if scaled.LessThan(b.LowerLimit) {
			continue
		}
		if b.UpperLimit != nil && scaled.GreaterThan(*b.UpperLimit) {
			continue
		}
		tax = b.FixedFee.Add(scaled.Sub(b.LowerLimit).Mul(b.RatePercent).Div(oneHundred))
		break
	}

	sub := decimal.Zero
	for _, s := range set.SubsidyBrackets {
		if scaled.LessThan(s.LowerLimit) {
			continue
		}
		if s.UpperLimit != nil && scaled.GreaterThan(*s.UpperLimit) {
			continue
		}
		sub = s.Amount
		break
	}

	net := tax.Sub(sub)
	if net.IsNegative() {
		net = decimal.Zero
	}

	beforeSubsidy = tax.Mul(profile.OutputScale).Round(2)
	subsidy = sub.Mul(profile.OutputScale).Round(2)
	netTax = net.Mul(profile.OutputScale).Round(2)
	return beforeSubsidy, subsidy, netTax
}

// housingEmployeePercent resolves the employee INFONAVIT share: employer
// configuration overrides the table default.
func housingEmployeePercent(set taxtable.TaxTableSet, cfg company.EmployerConfig) decimal.Decimal {
	if cfg.HousingEmployeeRatePercent != nil {
		return *cfg.HousingEmployeeRatePercent
	}
	return set.HousingEmployeePercent
}

func housingEmployerPercent(set taxtable.TaxTableSet, cfg company.EmployerConfig) decimal.Decimal {
	if cfg.HousingEmployerRatePercent != nil {
		return *cfg.HousingEmployerRatePercent
	}
	return set.HousingEmployerPercent
}

// contributionBase is the capped integrated salary times the days actually
// worked in the period. The base never exceeds 25x UMA per day even when the
// caller passes an uncapped salary.
func contributionBase(sdi decimal.Decimal, workedDays int, ref taxtable.ReferenceValues) decimal.Decimal {
	capped := sdi
	if limit := ref.SDICap(); capped.GreaterThan(limit) {
		capped = limit
	}
	return capped.Mul(decimal.NewFromInt(int64(workedDays)))
}

// ComputeDeductions builds the employee-side deduction breakdown: net income
// tax after subsidy, the summed IMSS employee shares on the capped
// contribution base, and the INFONAVIT employee share.
func ComputeDeductions(
	taxableIncome, sdi decimal.Decimal,
	workedDays int,
	profile payroll.PeriodProfile,
	set taxtable.TaxTableSet,
	cfg company.EmployerConfig,
	otherDeductions decimal.Decimal,
) payroll.DeductionBreakdown {
	before, subsidy, netTax := ComputeIncomeTax(taxableIncome, profile, set)

	base := contributionBase(sdi, workedDays, set.Reference)
	socialSecurity := base.Mul(set.EmployeeSocialSecurityPercent()).Div(oneHundred).Round(2)
	housing := base.Mul(housingEmployeePercent(set, cfg)).Div(oneHundred).Round(2)

	statutory := netTax.Add(socialSecurity).Add(housing)

	return payroll.DeductionBreakdown{
		IncomeTaxBeforeSubsidy: before,
		Subsidy:                subsidy,
		IncomeTax:              netTax,
		SocialSecurity:         socialSecurity,
		HousingFund:            housing,
		StatutoryTotal:         statutory,
		OtherDeductions:        otherDeductions,
		TotalDeductions:        statutory.Add(otherDeductions),
	}
}
