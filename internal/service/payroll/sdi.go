package payroll

import (
	"time"

	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
)

var (
	daysInYear      = decimal.NewFromInt(365)
	aguinaldoDays   = decimal.NewFromInt(15)
	vacationPremium = decimal.NewFromFloat(0.25)
)

// vacationDaysByYear maps completed years of service to the statutory
// vacation entitlement for years 1 through 5. Beyond year 5 entitlement grows
// two days per started five-year band, capped at 30.
var vacationDaysByYear = map[int]int{
	1: 12,
	2: 14,
	3: 16,
	4: 18,
}

func vacationDays(yearsOfService int) int {
	if yearsOfService <= 1 {
		return 12
	}
	if days, ok := vacationDaysByYear[yearsOfService]; ok {
		return days
	}
	days := 20 + 2*((yearsOfService-5)/5)
	if days > 30 {
		days = 30
	}
	return days
}

func yearsOfService(hireDate, asOf time.Time) int {
	years := asOf.Year() - hireDate.Year()
	anniversary := hireDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// ComputeSDI derives the integrated daily salary from the base daily salary
// and tenure. The integration factor spreads the statutory year-end bonus and
// the vacation premium over the year:
//
//	factor = (365 + 15 + vacationDays*0.25) / 365
//
// The result is capped at 25x the daily UMA. The cap is applied to the
// integrated salary after the multiplication; the factor itself is never
// clamped, so the returned factor always reflects the employee's real tenure.
func ComputeSDI(dailySalary decimal.Decimal, hireDate, asOf time.Time, ref taxtable.ReferenceValues) (sdi, factor decimal.Decimal) {
	days := decimal.NewFromInt(int64(vacationDays(yearsOfService(hireDate, asOf))))

	factor = daysInYear.
		Add(aguinaldoDays).
		Add(days.Mul(vacationPremium)).
		Div(daysInYear)

	sdi = dailySalary.Mul(factor).Round(2)

	if limit := ref.SDICap(); sdi.GreaterThan(limit) {
		sdi = limit.Round(2)
	}
	return sdi, factor
}
