package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Status == "" || emp.Status == filter.Status {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (f *fakeAttendanceRepo) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && rec.Date.Before(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeAdvanceRepo struct {
	advance.AdvanceRepository
	advances []advance.Advance
}

func (f *fakeAdvanceRepo) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, adv := range f.advances {
		if adv.EmployeeID == employeeID && !adv.Date.Before(from) && adv.Date.Before(to) {
			out = append(out, adv)
		}
	}
	return out, nil
}

func newTestService(employees map[string]employee.Employee, records []attendance.Record, advances []advance.Advance) payroll.PayrollService {
	return NewPayrollService(
		&fakeEmployeeRepo{employees: employees},
		&fakeAttendanceRepo{records: records},
		&fakeAdvanceRepo{advances: advances},
		calendar.NewTunisiaClassifier(),
		payroll.DefaultPolicy(),
	)
}

func testEmployee(id string, pay int64) employee.Employee {
	return employee.Employee{
		ID:             id,
		Matricule:      "KL-" + id,
		FirstName:      "Sami",
		LastName:       "Trabelsi",
		BaseMonthlyPay: decimal.NewFromInt(pay),
		Status:         employee.StatusActive,
	}
}

func TestComputeSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates one month for one employee", func(t *testing.T) {
		records := juneRecords(20, 0)
		svc := newTestService(
			map[string]employee.Employee{"emp-1": testEmployee("emp-1", 780)},
			records,
			[]advance.Advance{approved("100")},
		)

		summary, err := svc.ComputeSummary(ctx, payroll.SummaryRequest{EmployeeID: "emp-1", Month: 6, Year: 2025})
		require.NoError(t, err)

		assert.Equal(t, "KL-emp-1", summary.Matricule)
		assert.Equal(t, 20.0, summary.Totals.PresenceDays)
		assert.Equal(t, "600", summary.Totals.GrossPay.String())
		assert.Equal(t, "500", summary.Totals.NetPay.String())
		assert.Equal(t, 77, summary.AssiduityPercent) // 20/26
		// June 2025: 30 days, 5 Sundays, no fixed holidays
		assert.Equal(t, 25, summary.Period.Workable)
		assert.False(t, summary.GeneratedAt.IsZero())
	})

	t.Run("period filtering excludes other months", func(t *testing.T) {
		records := append(juneRecords(10, 0), attendance.Record{
			EmployeeID:  "emp-1",
			Date:        day(2025, time.July, 1),
			Status:      attendance.StatusPresent,
			WorkedUnits: 1,
		})
		svc := newTestService(
			map[string]employee.Employee{"emp-1": testEmployee("emp-1", 780)},
			records,
			nil,
		)

		summary, err := svc.ComputeSummary(ctx, payroll.SummaryRequest{EmployeeID: "emp-1", Month: 6, Year: 2025})
		require.NoError(t, err)
		assert.Equal(t, 10.0, summary.Totals.PresenceDays)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := newTestService(map[string]employee.Employee{}, nil, nil)

		_, err := svc.ComputeSummary(ctx, payroll.SummaryRequest{EmployeeID: "ghost", Month: 6, Year: 2025})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("invalid period", func(t *testing.T) {
		svc := newTestService(map[string]employee.Employee{}, nil, nil)

		_, err := svc.ComputeSummary(ctx, payroll.SummaryRequest{EmployeeID: "emp-1", Month: 13, Year: 2025})
		var errs validator.ValidationErrors
		assert.ErrorAs(t, err, &errs)
	})
}

func TestComputeSummaryAll(t *testing.T) {
	ctx := context.Background()

	inactive := testEmployee("emp-3", 900)
	inactive.Status = employee.StatusInactive

	records := juneRecords(10, 0)
	for i := range records {
		records[i].EmployeeID = "emp-2"
	}

	svc := newTestService(
		map[string]employee.Employee{
			"emp-1": testEmployee("emp-1", 780),
			"emp-2": testEmployee("emp-2", 1040),
			"emp-3": inactive,
		},
		records,
		nil,
	)

	summaries, err := svc.ComputeSummaryAll(ctx, payroll.PeriodRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := make(map[string]payroll.Summary, len(summaries))
	for _, s := range summaries {
		byID[s.EmployeeID] = s
	}

	// An employee with no records still gets a summary, all zeros.
	assert.True(t, byID["emp-1"].Totals.GrossPay.IsZero())
	// 1040/26 = 40 daily, 10 presence days
	assert.Equal(t, "400", byID["emp-2"].Totals.GrossPay.String())
}
