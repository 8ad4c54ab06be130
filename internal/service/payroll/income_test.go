package payroll

import (
	"testing"
	"time"

	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biweeklyTestPeriod() payroll.PayrollPeriod {
	return payroll.PayrollPeriod{
		ID:        "per-1",
		Type:      payroll.PeriodTypeBiweekly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func biweeklyProfile(t *testing.T) payroll.PeriodProfile {
	t.Helper()
	profile, ok := payroll.PeriodTypeBiweekly.Profile()
	require.True(t, ok)
	return profile
}

func TestAggregateIncome_RegularSalaryOnly(t *testing.T) {
	daily := decimal.RequireFromString("500.00")

	income, warnings := AggregateIncome(daily, payroll.IncidenceAggregate{}, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	assert.Equal(t, 15, income.WorkedDays)
	assert.Equal(t, "7500.00", income.RegularSalary.StringFixed(2))
	assert.Empty(t, warnings)

	// Year-end bonus proration rides on every period: 500*15/26.
	assert.Equal(t, "288.46", income.YearEndBonusProration.StringFixed(2))
	assert.Equal(t, "7788.46", income.GrossIncome.StringFixed(2))
}

func TestAggregateIncome_AbsencesAndHolidaysReduceWorkedDays(t *testing.T) {
	daily := decimal.RequireFromString("500.00")
	incidences := payroll.IncidenceAggregate{UnpaidAbsenceDays: 2}

	income, _ := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 1, biweeklyProfile(t))

	assert.Equal(t, 12, income.WorkedDays)
	assert.Equal(t, "6000.00", income.RegularSalary.StringFixed(2))
}

func TestAggregateIncome_OvertimeWithinCeiling(t *testing.T) {
	daily := decimal.RequireFromString("480.00") // hourly 60

	incidences := payroll.IncidenceAggregate{
		OvertimeHours: decimal.RequireFromString("10"),
	}

	income, warnings := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	// 10h within the 18h biweekly ceiling: all double.
	assert.Equal(t, "1200.00", income.OvertimeDouble.StringFixed(2))
	assert.Equal(t, "0.00", income.OvertimeTriple.StringFixed(2))
	assert.Empty(t, warnings)
}

func TestAggregateIncome_OvertimeBeyondCeiling(t *testing.T) {
	daily := decimal.RequireFromString("480.00")

	incidences := payroll.IncidenceAggregate{
		OvertimeHours: decimal.RequireFromString("20"),
	}

	income, warnings := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	// 18h at double, 2h spill to triple, with a non-fatal warning.
	assert.Equal(t, "2160.00", income.OvertimeDouble.StringFixed(2))
	assert.Equal(t, "360.00", income.OvertimeTriple.StringFixed(2))
	require.Len(t, warnings, 1)
	assert.Equal(t, payroll.WarningOvertimeExceedsLegalLimit, warnings[0].Code)
}

func TestAggregateIncome_PreTieredBucketsPaidAsIs(t *testing.T) {
	daily := decimal.RequireFromString("480.00")

	incidences := payroll.IncidenceAggregate{
		OvertimeHoursDouble: decimal.RequireFromString("4"),
		OvertimeHoursTriple: decimal.RequireFromString("3"),
	}

	income, warnings := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	// Pre-tiered rest-day/holiday buckets never count against the raw
	// overtime ceiling.
	assert.Equal(t, "480.00", income.OvertimeDouble.StringFixed(2))
	assert.Equal(t, "540.00", income.OvertimeTriple.StringFixed(2))
	assert.Empty(t, warnings)
}

func TestAggregateIncome_VacationPremiumAndExtras(t *testing.T) {
	daily := decimal.RequireFromString("500.00")

	incidences := payroll.IncidenceAggregate{
		VacationDaysTaken: 3,
		Bonuses:           decimal.RequireFromString("1000.00"),
		Commissions:       decimal.RequireFromString("250.50"),
		OtherIncome:       decimal.RequireFromString("99.50"),
	}

	income, _ := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	assert.Equal(t, "375.00", income.VacationPremium.StringFixed(2))
	assert.Equal(t, "1000.00", income.Bonuses.StringFixed(2))

	expected := decimal.Sum(
		income.RegularSalary, income.VacationPremium, income.YearEndBonusProration,
		income.Bonuses, income.Commissions, income.OtherIncome,
	)
	assert.True(t, income.GrossIncome.Equal(expected))
}

func TestAggregateIncome_WorkedDaysNeverNegative(t *testing.T) {
	daily := decimal.RequireFromString("500.00")
	incidences := payroll.IncidenceAggregate{UnpaidAbsenceDays: 30}

	income, _ := AggregateIncome(daily, incidences, biweeklyTestPeriod(), 0, biweeklyProfile(t))

	assert.Equal(t, 0, income.WorkedDays)
	assert.Equal(t, "0.00", income.RegularSalary.StringFixed(2))
}
