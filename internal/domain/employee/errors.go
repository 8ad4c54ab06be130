package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeCodeExists     = errors.New("employee code already exists")
	ErrEmployeeDataIncomplete = errors.New("employee record missing daily salary or hire date")
)
