package company

import "errors"

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrEmployerConfigNotFound = errors.New("employer payroll configuration not found")
	ErrWorkRiskRateOutOfRange = errors.New("work risk rate must be between 0.5 and 7.5 percent")
)
