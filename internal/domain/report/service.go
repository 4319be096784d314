package report

import (
	"context"

	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
)

// ReportService renders payroll summaries as downloadable PDF documents.
type ReportService interface {
	// GeneratePayslip renders one employee's monthly payslip. Returns the
	// PDF bytes and a suggested filename.
	GeneratePayslip(ctx context.Context, req payroll.SummaryRequest) ([]byte, string, error)

	// GenerateMonthlyRecap renders the whole workforce's recap for a month,
	// one line per active employee.
	GenerateMonthlyRecap(ctx context.Context, req payroll.PeriodRequest) ([]byte, string, error)
}
