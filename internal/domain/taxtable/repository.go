package taxtable

// Repository resolves the versioned table set for a payroll batch.
// Implementations must validate every set before returning it; lookup never
// validates lazily. A weekly request resolves to the biweekly table; the
// caller applies the x2 input / /2 output scaling, keeping a single source
// of truth per bracket type.
type Repository interface {
	Load(year int, periodType PeriodType) (TaxTableSet, error)
}
