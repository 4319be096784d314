package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	advance.AdvanceRepository
	classifier calendar.Classifier
	policy     payroll.Policy
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	classifier calendar.Classifier,
	policy payroll.Policy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		AdvanceRepository:    advanceRepo,
		classifier:           classifier,
		policy:               policy,
	}
}

// periodBounds returns the half-open UTC range [from, to) covering a month.
func periodBounds(month, year int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// ComputeSummary implements payroll.PayrollService.
func (p *PayrollServiceImpl) ComputeSummary(ctx context.Context, req payroll.SummaryRequest) (payroll.Summary, error) {
	if err := req.Validate(); err != nil {
		return payroll.Summary{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Summary{}, employee.ErrEmployeeNotFound
		}
		return payroll.Summary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return p.summarize(ctx, emp, req.Month, req.Year)
}

// ComputeSummaryAll implements payroll.PayrollService.
func (p *PayrollServiceImpl) ComputeSummaryAll(ctx context.Context, req payroll.PeriodRequest) ([]payroll.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := p.EmployeeRepository.List(ctx, employee.ListFilter{Status: employee.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]payroll.Summary, 0, len(employees))
	for _, emp := range employees {
		summary, err := p.summarize(ctx, emp, req.Month, req.Year)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Policy implements payroll.PayrollService.
func (p *PayrollServiceImpl) Policy() payroll.Policy {
	return p.policy
}

func (p *PayrollServiceImpl) summarize(ctx context.Context, emp employee.Employee, month, year int) (payroll.Summary, error) {
	from, to := periodBounds(month, year)

	records, err := p.AttendanceRepository.ListByEmployeeAndPeriod(ctx, emp.ID, from, to)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	advances, err := p.AdvanceRepository.ListByEmployeeAndPeriod(ctx, emp.ID, from, to)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to list advances: %w", err)
	}

	breakdown, err := calendar.BreakdownFor(p.classifier, month, year)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to build calendar breakdown: %w", err)
	}

	totals := ComputeTotals(p.policy, p.classifier, emp.BaseMonthlyPay, records, advances)

	return payroll.Summary{
		EmployeeID: emp.ID,
		Matricule:  emp.Matricule,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Position:   emp.Position,

		Month:  month,
		Year:   year,
		Period: breakdown,

		Totals: totals,

		AssiduityPercent: assiduityPercent(p.policy, totals.PaidDayEquivalent),

		GeneratedAt: time.Now().UTC(),
	}, nil
}
