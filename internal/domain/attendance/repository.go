package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the record or fully replaces the existing one with the
	// same (employee_id, date) key. The composite key must be unique at the
	// storage layer.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// ListByEmployeeAndPeriod retrieves an employee's records with
	// from <= date < to.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// ListByDate retrieves all records for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// List retrieves records with optional filters, joined with employee
	// name and position.
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}
