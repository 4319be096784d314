package payroll

import (
	"context"
)

// PayrollService computes monthly recaps. Summaries are a pure function of
// the employee's pay, the period's attendance records and its advances;
// nothing is persisted.
type PayrollService interface {
	// ComputeSummary builds the monthly recap for one employee.
	ComputeSummary(ctx context.Context, req SummaryRequest) (Summary, error)

	// ComputeSummaryAll builds recaps for every active employee.
	ComputeSummaryAll(ctx context.Context, req PeriodRequest) ([]Summary, error)

	// Policy exposes the pay constants in force.
	Policy() Policy
}
