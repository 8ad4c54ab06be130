package payroll

import (
	"testing"
	"time"

	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testReference = taxtable.ReferenceValues{
	UMADaily:         decimal.RequireFromString("108.57"),
	SDICapMultiplier: decimal.RequireFromString("25"),
}

func TestVacationDays(t *testing.T) {
	cases := []struct {
		years int
		want  int
	}{
		{0, 12},
		{1, 12},
		{2, 14},
		{3, 16},
		{4, 18},
		{5, 20},
		{9, 20},
		{10, 22},
		{14, 22},
		{15, 24},
		{20, 26},
		{25, 28},
		{30, 30},
		{42, 30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, vacationDays(tc.years), "years=%d", tc.years)
	}
}

func TestComputeSDI_SixYearsTenure(t *testing.T) {
	daily := decimal.RequireFromString("500.00")
	hireDate := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	sdi, factor := ComputeSDI(daily, hireDate, asOf, testReference)

	// Six completed years: 20 vacation days, factor (365+15+5)/365 = 385/365.
	wantFactor := decimal.NewFromInt(385).Div(decimal.NewFromInt(365))
	assert.True(t, factor.Equal(wantFactor), "factor = %s, want %s", factor, wantFactor)
	assert.Equal(t, "527.40", sdi.StringFixed(2))
}

func TestComputeSDI_AnniversaryNotYetReached(t *testing.T) {
	daily := decimal.RequireFromString("500.00")
	hireDate := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Five completed years, still 20 vacation days, same factor band.
	_, factor := ComputeSDI(daily, hireDate, asOf, testReference)
	wantFactor := decimal.NewFromInt(385).Div(decimal.NewFromInt(365))
	assert.True(t, factor.Equal(wantFactor), "factor = %s, want %s", factor, wantFactor)
}

func TestComputeSDI_FirstYear(t *testing.T) {
	daily := decimal.RequireFromString("400.00")
	hireDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// First-year entitlement: 12 vacation days, factor (365+15+3)/365.
	sdi, factor := ComputeSDI(daily, hireDate, asOf, testReference)
	wantFactor := decimal.NewFromInt(383).Div(decimal.NewFromInt(365))
	assert.True(t, factor.Equal(wantFactor), "factor = %s, want %s", factor, wantFactor)
	assert.Equal(t, "419.73", sdi.StringFixed(2))
}

func TestComputeSDI_CappedAt25UMA(t *testing.T) {
	daily := decimal.RequireFromString("5000.00")
	hireDate := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	sdi, factor := ComputeSDI(daily, hireDate, asOf, testReference)

	// 25 x 108.57: the integrated salary is clamped, the factor is not.
	assert.Equal(t, "2714.25", sdi.StringFixed(2))
	assert.True(t, factor.GreaterThan(decimal.NewFromInt(1)))
}
