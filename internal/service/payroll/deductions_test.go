package payroll

import (
	"testing"

	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/nominamx/nomina-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biweeklySet(t *testing.T) taxtable.TaxTableSet {
	t.Helper()
	set, ok := fixtures.TaxTableSets2024()[taxtable.PeriodTypeBiweekly]
	require.True(t, ok)
	return set
}

func profileFor(t *testing.T, pt payroll.PeriodType) payroll.PeriodProfile {
	t.Helper()
	profile, ok := pt.Profile()
	require.True(t, ok)
	return profile
}

func TestComputeIncomeTax_LowIncomeFullyOffsetBySubsidy(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)

	before, subsidy, net := ComputeIncomeTax(decimal.RequireFromString("1000.00"), profile, set)

	// 6.01 + (1000 - 312.91) * 6.40% = 49.98; subsidy band pays 200.70.
	assert.Equal(t, "49.98", before.StringFixed(2))
	assert.Equal(t, "200.70", subsidy.StringFixed(2))
	assert.Equal(t, "0.00", net.StringFixed(2))
}

func TestComputeIncomeTax_MidIncome(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)

	before, subsidy, net := ComputeIncomeTax(decimal.RequireFromString("10000.00"), profile, set)

	// 687.31 + (10000 - 6490.23) * 21.36%; income above every subsidy band.
	assert.Equal(t, "1437.00", before.StringFixed(2))
	assert.Equal(t, "0.00", subsidy.StringFixed(2))
	assert.Equal(t, "1437.00", net.StringFixed(2))
}

func TestComputeIncomeTax_TopBracketIsOpenEnded(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)

	before, _, _ := ComputeIncomeTax(decimal.RequireFromString("500000.00"), profile, set)

	// 49415.08 + (500000 - 157564.96) * 35%
	assert.Equal(t, "169267.34", before.StringFixed(2))
}

// The tax function must be continuous at every bracket boundary: one centavo
// of extra income never changes the tax by more than one centavo.
func TestComputeIncomeTax_ContinuousAcrossBracketBoundaries(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)
	step := decimal.RequireFromString("0.01")

	for i, bracket := range set.Brackets {
		if bracket.UpperLimit == nil {
			continue
		}

		below, _, _ := ComputeIncomeTax(*bracket.UpperLimit, profile, set)
		above, _, _ := ComputeIncomeTax(bracket.UpperLimit.Add(step), profile, set)

		diff := above.Sub(below).Abs()
		assert.True(t, diff.LessThanOrEqual(step),
			"bracket %d boundary %s: tax jumps from %s to %s", i, bracket.UpperLimit, below, above)
	}
}

// Weekly payroll reuses the biweekly table: tax on weekly income x must be
// exactly half the unrounded biweekly tax on 2x.
func TestComputeIncomeTax_WeeklyScalingLaw(t *testing.T) {
	set := biweeklySet(t)
	weekly := profileFor(t, payroll.PeriodTypeWeekly)
	biweekly := profileFor(t, payroll.PeriodTypeBiweekly)

	for _, raw := range []string{"800.00", "1000.00", "3000.00", "12000.00"} {
		income := decimal.RequireFromString(raw)

		wBefore, wSubsidy, wNet := ComputeIncomeTax(income, weekly, set)
		bBefore, bSubsidy, bNet := ComputeIncomeTax(income.Mul(decimal.NewFromInt(2)), biweekly, set)

		half := decimal.RequireFromString("0.5")
		assert.True(t, wBefore.Sub(bBefore.Mul(half)).Abs().LessThan(decimal.RequireFromString("0.01")),
			"income %s: weekly tax %s vs half biweekly %s", raw, wBefore, bBefore.Mul(half))
		assert.True(t, wSubsidy.Sub(bSubsidy.Mul(half)).Abs().LessThan(decimal.RequireFromString("0.01")))
		assert.True(t, wNet.Sub(bNet.Mul(half)).Abs().LessThan(decimal.RequireFromString("0.01")))
	}
}

func TestComputeIncomeTax_NetNeverNegative(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)

	for _, raw := range []string{"0.01", "100.00", "500.00", "1000.00", "2000.00", "3600.00"} {
		_, _, net := ComputeIncomeTax(decimal.RequireFromString(raw), profile, set)
		assert.False(t, net.IsNegative(), "income %s produced negative net tax %s", raw, net)
	}
}

func TestComputeDeductions_StatutoryBreakdown(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)
	cfg := company.EmployerConfig{WorkRiskRatePercent: decimal.RequireFromString("0.54355")}

	sdi := decimal.RequireFromString("527.40")
	deductions := ComputeDeductions(
		decimal.RequireFromString("7788.46"), sdi, 15, profile, set, cfg, decimal.Zero)

	// Employee IMSS share 2.40% of 527.40 * 15 = 7911.00.
	assert.Equal(t, "189.86", deductions.SocialSecurity.StringFixed(2))
	// INFONAVIT employee default 5%.
	assert.Equal(t, "395.55", deductions.HousingFund.StringFixed(2))

	expectedStatutory := deductions.IncomeTax.Add(deductions.SocialSecurity).Add(deductions.HousingFund)
	assert.True(t, deductions.StatutoryTotal.Equal(expectedStatutory))
	assert.True(t, deductions.TotalDeductions.Equal(deductions.StatutoryTotal))
}

func TestComputeDeductions_EmployerHousingOverride(t *testing.T) {
	set := biweeklySet(t)
	profile := profileFor(t, payroll.PeriodTypeBiweekly)

	override := decimal.RequireFromString("3")
	cfg := company.EmployerConfig{
		WorkRiskRatePercent:        decimal.RequireFromString("1.0"),
		HousingEmployeeRatePercent: &override,
	}

	sdi := decimal.RequireFromString("527.40")
	deductions := ComputeDeductions(
		decimal.RequireFromString("7788.46"), sdi, 15, profile, set, cfg, decimal.Zero)

	// 7911.00 * 3%
	assert.Equal(t, "237.33", deductions.HousingFund.StringFixed(2))
}
