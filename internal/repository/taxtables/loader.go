package taxtables

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nominamx/nomina-backend-go/internal/domain/taxtable"
	"github.com/nominamx/nomina-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type tableKey struct {
	year       int
	periodType taxtable.PeriodType
}

// Repository resolves versioned tax tables. Built-in fixture sets are
// overlaid by YAML files found in the configured directory, so a new tax
// year is a data drop, not a release. Every set is validated when the
// repository is constructed; Load never validates lazily.
type Repository struct {
	sets map[tableKey]taxtable.TaxTableSet
}

func NewRepository(dir string) (*Repository, error) {
	sets := make(map[tableKey]taxtable.TaxTableSet)
	for pt, set := range fixtures.TaxTableSets2024() {
		sets[tableKey{year: set.Year, periodType: pt}] = set
	}

	if dir != "" {
		if err := loadDir(dir, sets); err != nil {
			return nil, err
		}
	}

	for key, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("tax table %d/%s: %w", key.year, key.periodType, err)
		}
	}

	return &Repository{sets: sets}, nil
}

// Load resolves the table set for (year, periodType). Weekly resolves to
// the biweekly set; no weekly bracket table exists anywhere, the caller
// scales input x2 and output /2. Missing tables are fatal for the whole
// batch, so the error is returned rather than a zero set.
func (r *Repository) Load(year int, periodType taxtable.PeriodType) (taxtable.TaxTableSet, error) {
	if periodType == taxtable.PeriodTypeWeekly {
		periodType = taxtable.PeriodTypeBiweekly
	}

	set, ok := r.sets[tableKey{year: year, periodType: periodType}]
	if !ok {
		return taxtable.TaxTableSet{}, fmt.Errorf("%w: %d/%s", taxtable.ErrMissingTaxTable, year, periodType)
	}
	return set, nil
}

// ========== YAML FILE FORMAT ==========

type bracketFile struct {
	Year       int           `yaml:"year"`
	PeriodType string        `yaml:"period_type"`
	Brackets   []bracketYAML `yaml:"brackets"`
	Subsidy    []subsidyYAML `yaml:"subsidy"`
	Rates      []rateYAML    `yaml:"social_security"`
	Housing    housingYAML   `yaml:"housing"`
	Reference  referenceYAML `yaml:"reference"`
}

type bracketYAML struct {
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper,omitempty"`
	Fee   string `yaml:"fee"`
	Rate  string `yaml:"rate"`
}

type subsidyYAML struct {
	Lower  string `yaml:"lower"`
	Upper  string `yaml:"upper,omitempty"`
	Amount string `yaml:"amount"`
}

type rateYAML struct {
	Key      string `yaml:"key"`
	Employee string `yaml:"employee"`
	Employer string `yaml:"employer"`
}

type housingYAML struct {
	Employee string `yaml:"employee"`
	Employer string `yaml:"employer"`
}

type referenceYAML struct {
	UMADaily          string `yaml:"uma_daily"`
	UMAMonthly        string `yaml:"uma_monthly"`
	UMAAnnual         string `yaml:"uma_annual"`
	MinimumWage       string `yaml:"minimum_wage"`
	MinimumWageBorder string `yaml:"minimum_wage_border"`
	SDICapMultiplier  string `yaml:"sdi_cap_multiplier"`
}

func loadDir(dir string, sets map[tableKey]taxtable.TaxTableSet) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read tax table directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		set, err := parseFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("tax table file %s: %w", name, err)
		}
		sets[tableKey{year: set.Year, periodType: set.PeriodType}] = set
	}

	return nil
}

func parseFile(path string) (taxtable.TaxTableSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return taxtable.TaxTableSet{}, err
	}
	return ParseYAML(raw)
}

// ParseYAML decodes one table-set document. Decimal values are kept as
// strings in the file to avoid any float round-tripping of money.
func ParseYAML(raw []byte) (taxtable.TaxTableSet, error) {
	var doc bracketFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return taxtable.TaxTableSet{}, fmt.Errorf("%w: %v", taxtable.ErrInvalidBracketConfiguration, err)
	}

	pt := taxtable.PeriodType(doc.PeriodType)
	if pt != taxtable.PeriodTypeBiweekly && pt != taxtable.PeriodTypeMonthly {
		return taxtable.TaxTableSet{}, fmt.Errorf("%w: period_type %q (weekly tables are derived, only biweekly and monthly may be defined)",
			taxtable.ErrInvalidBracketConfiguration, doc.PeriodType)
	}

	set := taxtable.TaxTableSet{
		Year:       doc.Year,
		PeriodType: pt,
	}

	for _, b := range doc.Brackets {
		lower, err := parseDec(b.Lower)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		fee, err := parseDec(b.Fee)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		rate, err := parseDec(b.Rate)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		bracket := taxtable.TaxBracket{LowerLimit: lower, FixedFee: fee, RatePercent: rate}
		if b.Upper != "" {
			upper, err := parseDec(b.Upper)
			if err != nil {
				return taxtable.TaxTableSet{}, err
			}
			bracket.UpperLimit = &upper
		}
		set.Brackets = append(set.Brackets, bracket)
	}

	for _, s := range doc.Subsidy {
		lower, err := parseDec(s.Lower)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		amount, err := parseDec(s.Amount)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		band := taxtable.SubsidyBracket{LowerLimit: lower, Amount: amount}
		if s.Upper != "" {
			upper, err := parseDec(s.Upper)
			if err != nil {
				return taxtable.TaxTableSet{}, err
			}
			band.UpperLimit = &upper
		}
		set.SubsidyBrackets = append(set.SubsidyBrackets, band)
	}

	for _, r := range doc.Rates {
		emp, err := parseDec(r.Employee)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		er, err := parseDec(r.Employer)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		set.SocialSecurityRates = append(set.SocialSecurityRates, taxtable.ContributionRate{
			Key:             r.Key,
			EmployeePercent: emp,
			EmployerPercent: er,
		})
	}

	var perr error
	set.HousingEmployeePercent, perr = parseDec(doc.Housing.Employee)
	if perr != nil {
		return taxtable.TaxTableSet{}, perr
	}
	set.HousingEmployerPercent, perr = parseDec(doc.Housing.Employer)
	if perr != nil {
		return taxtable.TaxTableSet{}, perr
	}

	ref := doc.Reference
	refFields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&set.Reference.UMADaily, ref.UMADaily},
		{&set.Reference.UMAMonthly, ref.UMAMonthly},
		{&set.Reference.UMAAnnual, ref.UMAAnnual},
		{&set.Reference.MinimumWage, ref.MinimumWage},
		{&set.Reference.MinimumWageBorder, ref.MinimumWageBorder},
		{&set.Reference.SDICapMultiplier, ref.SDICapMultiplier},
	}
	for _, f := range refFields {
		v, err := parseDec(f.src)
		if err != nil {
			return taxtable.TaxTableSet{}, err
		}
		*f.dst = v
	}

	return set, nil
}

func parseDec(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad decimal %q", taxtable.ErrInvalidBracketConfiguration, s)
	}
	return d, nil
}
