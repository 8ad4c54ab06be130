package taxtable

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var bracketStep = decimal.NewFromFloat(0.01)

// Validate checks a loaded table set before it is handed to any calculation.
// Bracket problems are configuration errors and abort the whole batch, so
// they are caught here at load time, never during lookup.
func (t TaxTableSet) Validate() error {
	if len(t.Brackets) == 0 {
		return fmt.Errorf("%w: no income tax brackets", ErrInvalidBracketConfiguration)
	}

	if !t.Brackets[0].LowerLimit.Equal(bracketStep) && !t.Brackets[0].LowerLimit.IsZero() {
		return fmt.Errorf("%w: first bracket must start at zero, got %s",
			ErrInvalidBracketConfiguration, t.Brackets[0].LowerLimit)
	}

	for i, b := range t.Brackets {
		if b.RatePercent.IsNegative() || b.RatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: bracket %d rate %s outside [0,100]",
				ErrRateOutOfRange, i, b.RatePercent)
		}
		if b.FixedFee.IsNegative() {
			return fmt.Errorf("%w: bracket %d has negative fixed fee",
				ErrInvalidBracketConfiguration, i)
		}

		last := i == len(t.Brackets)-1
		if last {
			if b.UpperLimit != nil {
				return fmt.Errorf("%w: top bracket must be unbounded",
					ErrInvalidBracketConfiguration)
			}
			continue
		}
		if b.UpperLimit == nil {
			return fmt.Errorf("%w: bracket %d is unbounded but not last",
				ErrInvalidBracketConfiguration, i)
		}
		if b.UpperLimit.LessThanOrEqual(b.LowerLimit) {
			return fmt.Errorf("%w: bracket %d upper limit %s not above lower limit %s",
				ErrInvalidBracketConfiguration, i, b.UpperLimit, b.LowerLimit)
		}

		// Contiguity: the next bracket starts exactly one centavo above
		// this one's upper limit. Gaps and overlaps are both rejected.
		next := t.Brackets[i+1]
		if !next.LowerLimit.Equal(b.UpperLimit.Add(bracketStep)) {
			return fmt.Errorf("%w: bracket %d ends at %s but bracket %d starts at %s",
				ErrInvalidBracketConfiguration, i, b.UpperLimit, i+1, next.LowerLimit)
		}
	}

	for i, s := range t.SubsidyBrackets {
		if s.Amount.IsNegative() {
			return fmt.Errorf("%w: subsidy bracket %d has negative amount",
				ErrInvalidBracketConfiguration, i)
		}
		if i < len(t.SubsidyBrackets)-1 {
			if s.UpperLimit == nil {
				return fmt.Errorf("%w: subsidy bracket %d is unbounded but not last",
					ErrInvalidBracketConfiguration, i)
			}
			next := t.SubsidyBrackets[i+1]
			if !next.LowerLimit.Equal(s.UpperLimit.Add(bracketStep)) {
				return fmt.Errorf("%w: subsidy bracket %d ends at %s but bracket %d starts at %s",
					ErrInvalidBracketConfiguration, i, s.UpperLimit, i+1, next.LowerLimit)
			}
		}
	}

	hundred := decimal.NewFromInt(100)
	for _, r := range t.SocialSecurityRates {
		if r.EmployeePercent.IsNegative() || r.EmployeePercent.GreaterThan(hundred) ||
			r.EmployerPercent.IsNegative() || r.EmployerPercent.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s", ErrRateOutOfRange, r.Key)
		}
	}
	if t.HousingEmployeePercent.IsNegative() || t.HousingEmployeePercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: housing employee share", ErrRateOutOfRange)
	}
	if t.HousingEmployerPercent.IsNegative() || t.HousingEmployerPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: housing employer share", ErrRateOutOfRange)
	}

	if !t.Reference.UMADaily.IsPositive() {
		return fmt.Errorf("%w: daily UMA must be positive", ErrInvalidBracketConfiguration)
	}
	if !t.Reference.SDICapMultiplier.IsPositive() {
		return fmt.Errorf("%w: SDI cap multiplier must be positive", ErrInvalidBracketConfiguration)
	}

	return nil
}
