package taxtable

import "errors"

var (
	ErrMissingTaxTable             = errors.New("tax table not found for requested year and period type")
	ErrInvalidBracketConfiguration = errors.New("invalid bracket configuration")
	ErrRateOutOfRange              = errors.New("contribution rate out of range")
)
