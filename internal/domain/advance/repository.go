package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access methods for cash advances.
type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)

	GetByID(ctx context.Context, id string) (Advance, error)

	// UpdateStatus applies the approval transition. Callers check the
	// current status first; the transition itself is a plain update.
	UpdateStatus(ctx context.Context, id string, status ApprovalStatus) (Advance, error)

	List(ctx context.Context, filter ListFilter) ([]Advance, error)

	// ListByEmployeeAndPeriod retrieves an employee's advances with
	// from <= date < to, regardless of approval status.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Advance, error)
}
