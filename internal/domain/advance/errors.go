package advance

import "errors"

// Advance domain errors
var (
	ErrAdvanceNotFound         = errors.New("advance not found")
	ErrAdvanceAlreadyProcessed = errors.New("advance has already been approved or rejected")
)
