package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByMatricule(ctx context.Context, matricule string) (Employee, error)

	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	// DecrementLeaveBalance subtracts days from leave_balance_days. Not
	// floor-checked here; callers enforce the balance policy.
	DecrementLeaveBalance(ctx context.Context, id string, days float64) error

	// DecrementSickBalance subtracts days from sick_balance_days.
	DecrementSickBalance(ctx context.Context, id string, days float64) error

	// GetBalancesForUpdate reads both balances with a row lock, for use
	// inside the ingestion transaction when the floor policy is enabled.
	GetBalancesForUpdate(ctx context.Context, id string) (leave float64, sick float64, err error)
}
