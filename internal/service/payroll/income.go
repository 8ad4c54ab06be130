package payroll

import (
	"fmt"

	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hoursPerDay            = decimal.NewFromInt(8)
	doubleRate             = decimal.NewFromInt(2)
	tripleRate             = decimal.NewFromInt(3)
	doubleOvertimeCapHours = decimal.NewFromInt(9)
)

// AggregateIncome builds the gross-income side of a calculation from the
// employee's daily salary and the approved incidence aggregate.
//
// Raw overtime hours are classified here: up to 9 hours per week in the
// period pay double, the excess pays triple and attaches a warning. The
// pre-tiered double/triple buckets come from rest-day and holiday work that
// the approval workflow already classified and are paid at their bucket's
// rate without reclassification.
func AggregateIncome(
	dailySalary decimal.Decimal,
	incidences payroll.IncidenceAggregate,
	period payroll.PayrollPeriod,
	holidayCount int,
	profile payroll.PeriodProfile,
) (payroll.IncomeBreakdown, []payroll.CalculationWarning) {
	workedDays := period.CalendarDays() - incidences.UnpaidAbsenceDays - holidayCount
	if workedDays < 0 {
		workedDays = 0
	}

	regular := dailySalary.Mul(decimal.NewFromInt(int64(workedDays))).Round(2)
	hourlyRate := dailySalary.Div(hoursPerDay)

	var warnings []payroll.CalculationWarning

	doubleCeiling := doubleOvertimeCapHours.Mul(decimal.NewFromInt(int64(profile.WeeksPerPeriod)))
	rawDouble := incidences.OvertimeHours
	rawTriple := decimal.Zero
	if rawDouble.GreaterThan(doubleCeiling) {
		rawTriple = rawDouble.Sub(doubleCeiling)
		rawDouble = doubleCeiling
		warnings = append(warnings, payroll.CalculationWarning{
			Code: payroll.WarningOvertimeExceedsLegalLimit,
			Message: fmt.Sprintf("approved overtime %s h exceeds the %s h double-rate ceiling; excess paid at triple rate",
				incidences.OvertimeHours, doubleCeiling),
		})
	}

	overtimeDouble := rawDouble.Add(incidences.OvertimeHoursDouble).Mul(hourlyRate).Mul(doubleRate).Round(2)
	overtimeTriple := rawTriple.Add(incidences.OvertimeHoursTriple).Mul(hourlyRate).Mul(tripleRate).Round(2)

	vacationDaysTaken := decimal.NewFromInt(int64(incidences.VacationDaysTaken))
	premium := dailySalary.Mul(vacationDaysTaken).Mul(vacationPremium).Round(2)

	aguinaldo := dailySalary.Mul(aguinaldoDays).
		Div(decimal.NewFromInt(int64(profile.PayPeriodsPerYear))).Round(2)

	breakdown := payroll.IncomeBreakdown{
		WorkedDays:            workedDays,
		RegularSalary:         regular,
		OvertimeDouble:        overtimeDouble,
		OvertimeTriple:        overtimeTriple,
		VacationPremium:       premium,
		YearEndBonusProration: aguinaldo,
		Bonuses:               incidences.Bonuses,
		Commissions:           incidences.Commissions,
		OtherIncome:           incidences.OtherIncome,
	}
	breakdown.GrossIncome = regular.
		Add(overtimeDouble).
		Add(overtimeTriple).
		Add(premium).
		Add(aguinaldo).
		Add(incidences.Bonuses).
		Add(incidences.Commissions).
		Add(incidences.OtherIncome)

	return breakdown, warnings
}
