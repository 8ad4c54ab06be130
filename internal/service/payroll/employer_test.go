package payroll

import (
	"testing"

	"github.com/nominamx/nomina-backend-go/internal/domain/company"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmployerContributions(t *testing.T) {
	set := biweeklySet(t)
	cfg := company.EmployerConfig{WorkRiskRatePercent: decimal.RequireFromString("0.54355")}

	sdi := decimal.RequireFromString("527.40")
	contrib, err := ComputeEmployerContributions(sdi, 15, set, cfg)
	require.NoError(t, err)

	// Base 7911.00. Employer IMSS share 28.10% excludes the 2% retirement
	// row, which is reported on its own line.
	assert.Equal(t, "2222.99", contrib.SocialSecurity.StringFixed(2))
	assert.Equal(t, "43.00", contrib.WorkRisk.StringFixed(2))
	assert.Equal(t, "395.55", contrib.HousingFund.StringFixed(2))
	assert.Equal(t, "158.22", contrib.RetirementSavings.StringFixed(2))

	expectedTotal := decimal.Sum(contrib.SocialSecurity, contrib.WorkRisk, contrib.HousingFund, contrib.RetirementSavings)
	assert.True(t, contrib.Total.Equal(expectedTotal))
}

func TestComputeEmployerContributions_WorkRiskRateValidated(t *testing.T) {
	set := biweeklySet(t)
	sdi := decimal.RequireFromString("527.40")

	for _, rate := range []string{"0.49", "7.51", "-1"} {
		cfg := company.EmployerConfig{WorkRiskRatePercent: decimal.RequireFromString(rate)}
		_, err := ComputeEmployerContributions(sdi, 15, set, cfg)
		assert.ErrorIs(t, err, company.ErrWorkRiskRateOutOfRange, "rate %s", rate)
	}
}

func TestComputeEmployerContributions_BaseCappedAt25UMA(t *testing.T) {
	set := biweeklySet(t)
	cfg := company.EmployerConfig{WorkRiskRatePercent: decimal.RequireFromString("1.0")}

	// Uncapped SDI passed in; the base still uses 25 x UMA = 2714.25.
	huge := decimal.RequireFromString("9000.00")
	contrib, err := ComputeEmployerContributions(huge, 15, set, cfg)
	require.NoError(t, err)

	capped, err := ComputeEmployerContributions(decimal.RequireFromString("2714.25"), 15, set, cfg)
	require.NoError(t, err)

	assert.True(t, contrib.Total.Equal(capped.Total))
}
