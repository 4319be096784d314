package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration.
// Balance mutations are deliberately absent: balances change only through
// attendance ingestion.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee marks an employee INACTIVE; records are kept.
	DeactivateEmployee(ctx context.Context, id string) error
}
