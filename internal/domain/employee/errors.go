package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatriculeExists  = errors.New("matricule already registered")

	// Returned only when the balance floor policy is enabled; the default
	// policy allows balances to go negative.
	ErrInsufficientLeaveBalance = errors.New("insufficient leave balance")
	ErrInsufficientSickBalance  = errors.New("insufficient sick balance")
)
