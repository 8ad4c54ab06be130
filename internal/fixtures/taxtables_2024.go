package fixtures

import (
	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
)

// ==========================================
// BUILT-IN 2024 STATUTORY TABLES
// ==========================================
//
// Default ISR bracket tables, employment-subsidy tables, IMSS contribution
// rates and official reference values for 2024. File-based tables loaded by
// the taxtables repository overlay these defaults.
//
// Only biweekly and monthly bracket tables exist: weekly payroll reuses the
// biweekly table with x2 input / /2 output scaling, keeping one source of
// truth per bracket type.

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("fixtures: bad decimal literal " + s)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func bracket(lower, upper, fee, rate string) taxtable.TaxBracket {
	b := taxtable.TaxBracket{
		LowerLimit:  dec(lower),
		FixedFee:    dec(fee),
		RatePercent: dec(rate),
	}
	if upper != "" {
		b.UpperLimit = decPtr(upper)
	}
	return b
}

func subsidy(lower, upper, amount string) taxtable.SubsidyBracket {
	s := taxtable.SubsidyBracket{
		LowerLimit: dec(lower),
		Amount:     dec(amount),
	}
	if upper != "" {
		s.UpperLimit = decPtr(upper)
	}
	return s
}

// isrBiweekly2024 serves both biweekly and weekly (scaled) payroll.
var isrBiweekly2024 = []taxtable.TaxBracket{
	bracket("0.01", "312.90", "0.00", "1.92"),
	bracket("312.91", "2653.48", "6.01", "6.40"),
	bracket("2653.49", "4663.41", "155.81", "10.88"),
	bracket("4663.42", "5420.92", "374.49", "16.00"),
	bracket("5420.93", "6490.22", "495.69", "17.92"),
	bracket("6490.23", "13090.90", "687.31", "21.36"),
	bracket("13090.91", "20632.26", "2097.21", "23.52"),
	bracket("20632.27", "39391.26", "3870.94", "30.00"),
	bracket("39391.27", "52521.65", "9498.64", "32.00"),
	bracket("52521.66", "157564.95", "13700.36", "34.00"),
	bracket("157564.96", "", "49415.08", "35.00"),
}

var isrMonthly2024 = []taxtable.TaxBracket{
	bracket("0.01", "625.80", "0.00", "1.92"),
	bracket("625.81", "5306.96", "12.02", "6.40"),
	bracket("5306.97", "9326.82", "311.61", "10.88"),
	bracket("9326.83", "10841.84", "748.97", "16.00"),
	bracket("10841.85", "12980.44", "991.37", "17.92"),
	bracket("12980.45", "26181.80", "1374.61", "21.36"),
	bracket("26181.81", "41264.52", "4194.42", "23.52"),
	bracket("41264.53", "78782.52", "7741.87", "30.00"),
	bracket("78782.53", "105043.30", "18997.27", "32.00"),
	bracket("105043.31", "315129.90", "27400.72", "34.00"),
	bracket("315129.91", "", "98830.16", "35.00"),
}

var subsidyBiweekly2024 = []taxtable.SubsidyBracket{
	subsidy("0.01", "872.85", "200.85"),
	subsidy("872.86", "1309.20", "200.70"),
	subsidy("1309.21", "1713.60", "200.70"),
	subsidy("1713.61", "1745.70", "193.80"),
	subsidy("1745.71", "2193.75", "188.70"),
	subsidy("2193.76", "2327.55", "174.75"),
	subsidy("2327.56", "2632.65", "160.35"),
	subsidy("2632.66", "3071.40", "145.35"),
	subsidy("3071.41", "3510.15", "125.10"),
	subsidy("3510.16", "3642.60", "107.40"),
	subsidy("3642.61", "", "0.00"),
}

var subsidyMonthly2024 = []taxtable.SubsidyBracket{
	subsidy("0.01", "1745.70", "401.70"),
	subsidy("1745.71", "2618.40", "401.40"),
	subsidy("2618.41", "3427.20", "401.40"),
	subsidy("3427.21", "3491.40", "387.60"),
	subsidy("3491.41", "4387.50", "377.40"),
	subsidy("4387.51", "4655.10", "349.50"),
	subsidy("4655.11", "5265.30", "320.70"),
	subsidy("5265.31", "6142.80", "290.70"),
	subsidy("6142.81", "7020.30", "250.20"),
	subsidy("7020.31", "7285.20", "214.80"),
	subsidy("7285.21", "", "0.00"),
}

// socialSecurityRates2024: employee/employer shares per IMSS sub-component,
// as percentages of the capped contribution base. Retirement and childcare
// carry no employee share.
var socialSecurityRates2024 = []taxtable.ContributionRate{
	{Key: taxtable.RateSicknessMaternityFixed, EmployeePercent: dec("0.000"), EmployerPercent: dec("20.400")},
	{Key: taxtable.RateSicknessMaternityExcess, EmployeePercent: dec("0.400"), EmployerPercent: dec("1.100")},
	{Key: taxtable.RateCashBenefits, EmployeePercent: dec("0.250"), EmployerPercent: dec("0.700")},
	{Key: taxtable.RateDisabilityLife, EmployeePercent: dec("0.625"), EmployerPercent: dec("1.750")},
	{Key: taxtable.RateRetirement, EmployeePercent: dec("0.000"), EmployerPercent: dec("2.000")},
	{Key: taxtable.RateUnemploymentOldAge, EmployeePercent: dec("1.125"), EmployerPercent: dec("3.150")},
	{Key: taxtable.RateChildcare, EmployeePercent: dec("0.000"), EmployerPercent: dec("1.000")},
}

var reference2024 = taxtable.ReferenceValues{
	UMADaily:          dec("108.57"),
	UMAMonthly:        dec("3300.53"),
	UMAAnnual:         dec("39606.36"),
	MinimumWage:       dec("248.93"),
	MinimumWageBorder: dec("374.89"),
	SDICapMultiplier:  dec("25"),
}

// TaxTableSets2024 returns the built-in table sets keyed by period type.
// Weekly is intentionally absent; the repository resolves weekly requests
// against the biweekly set.
func TaxTableSets2024() map[taxtable.PeriodType]taxtable.TaxTableSet {
	return map[taxtable.PeriodType]taxtable.TaxTableSet{
		taxtable.PeriodTypeBiweekly: {
			Year:                   2024,
			PeriodType:             taxtable.PeriodTypeBiweekly,
			Brackets:               isrBiweekly2024,
			SubsidyBrackets:        subsidyBiweekly2024,
			SocialSecurityRates:    socialSecurityRates2024,
			HousingEmployeePercent: dec("5"),
			HousingEmployerPercent: dec("5"),
			Reference:              reference2024,
		},
		taxtable.PeriodTypeMonthly: {
			Year:                   2024,
			PeriodType:             taxtable.PeriodTypeMonthly,
			Brackets:               isrMonthly2024,
			SubsidyBrackets:        subsidyMonthly2024,
			SocialSecurityRates:    socialSecurityRates2024,
			HousingEmployeePercent: dec("5"),
			HousingEmployerPercent: dec("5"),
			Reference:              reference2024,
		},
	}
}
