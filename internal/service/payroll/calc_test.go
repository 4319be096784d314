package payroll

import (
	"fmt"
	"testing"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// juneRecords builds n PRESENT records on consecutive workable days of June
// 2025, skipping Sundays.
func juneRecords(n int, overtimePerDay float64) []attendance.Record {
	cls := calendar.NewTunisiaClassifier()
	records := make([]attendance.Record, 0, n)
	for d := 1; len(records) < n; d++ {
		date := day(2025, time.June, d)
		if cls.IsRestDay(date) {
			continue
		}
		records = append(records, attendance.Record{
			EmployeeID:    "emp-1",
			Date:          date,
			Status:        attendance.StatusPresent,
			WorkedUnits:   1,
			OvertimeHours: overtimePerDay,
		})
	}
	return records
}

func approved(amount string) advance.Advance {
	return advance.Advance{
		EmployeeID: "emp-1",
		Amount:     decimal.RequireFromString(amount),
		Date:       day(2025, time.June, 10),
		Status:     advance.StatusApproved,
	}
}

func TestComputeTotals(t *testing.T) {
	policy := payroll.DefaultPolicy()
	cls := calendar.NewTunisiaClassifier()

	t.Run("full worked example", func(t *testing.T) {
		// Base pay 780: daily rate 30, hourly rate 3.750. 22 presence days,
		// 2 holiday days, 10 overtime hours, one 500 approved advance.
		records := juneRecords(22, 0)
		records[0].OvertimeHours = 10

		records = append(records,
			attendance.Record{EmployeeID: "emp-1", Date: day(2025, time.June, 27), Status: attendance.StatusHoliday, WorkedUnits: 1},
			attendance.Record{EmployeeID: "emp-1", Date: day(2025, time.June, 28), Status: attendance.StatusHoliday, WorkedUnits: 1},
		)

		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), records, []advance.Advance{approved("500")})

		assert.Equal(t, "30", totals.DailyRate.String())
		assert.Equal(t, "3.75", totals.HourlyRate.String())
		assert.Equal(t, 22.0, totals.PresenceDays)
		assert.Equal(t, 2.0, totals.HolidayDays)
		assert.Equal(t, 10.0, totals.OvertimeHours)
		assert.Equal(t, "660", totals.PresenceAmount.String())
		assert.Equal(t, "60", totals.HolidayAmount.String())
		assert.Equal(t, "46.875", totals.OvertimeAmount.String())
		assert.Equal(t, "766.875", totals.GrossPay.String())
		assert.Equal(t, "500", totals.TotalApprovedAdvances.String())
		assert.Equal(t, 1, totals.AdvanceCount)
		assert.Equal(t, "266.875", totals.NetPay.String())
		assert.True(t, totals.CarriedDebt.IsZero())
	})

	t.Run("advances exceeding gross carry debt", func(t *testing.T) {
		// Gross 150 (5 presence days at daily rate 30), advances 500.
		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), juneRecords(5, 0), []advance.Advance{approved("500")})

		assert.Equal(t, "150", totals.GrossPay.String())
		assert.True(t, totals.NetPay.IsZero())
		assert.Equal(t, "350", totals.CarriedDebt.String())
	})

	t.Run("pending and rejected advances are ignored", func(t *testing.T) {
		pending := approved("100")
		pending.Status = advance.StatusPending
		rejected := approved("100")
		rejected.Status = advance.StatusRejected

		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), juneRecords(5, 0),
			[]advance.Advance{approved("50"), pending, rejected})

		assert.Equal(t, "50", totals.TotalApprovedAdvances.String())
		assert.Equal(t, 1, totals.AdvanceCount)
		assert.Equal(t, "100", totals.NetPay.String())
	})

	t.Run("rest day presence pays overtime only", func(t *testing.T) {
		records := []attendance.Record{{
			EmployeeID:    "emp-1",
			Date:          day(2025, time.June, 1), // a Sunday
			Status:        attendance.StatusPresent,
			WorkedUnits:   0,
			OvertimeHours: 8,
		}}

		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), records, nil)

		assert.Equal(t, 1, totals.RestDaysWorked)
		assert.Zero(t, totals.PresenceDays)
		assert.True(t, totals.PresenceAmount.IsZero())
		// 8h * 3.75 * 1.25
		assert.Equal(t, "37.5", totals.OvertimeAmount.String())
		assert.Equal(t, "37.5", totals.GrossPay.String())
	})

	t.Run("absences earn nothing", func(t *testing.T) {
		records := juneRecords(5, 0)
		records = append(records, attendance.Record{
			EmployeeID: "emp-1",
			Date:       day(2025, time.June, 27),
			Status:     attendance.StatusAbsent,
		})

		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), records, nil)

		assert.Equal(t, 1.0, totals.AbsenceDays)
		assert.Equal(t, "150", totals.GrossPay.String())
	})

	t.Run("half day leave", func(t *testing.T) {
		records := []attendance.Record{{
			EmployeeID:  "emp-1",
			Date:        day(2025, time.June, 2),
			Status:      attendance.StatusOnLeave,
			WorkedUnits: 0.5,
		}}

		totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), records, nil)

		assert.Equal(t, 0.5, totals.LeaveDays)
		assert.Equal(t, "15", totals.LeaveSickAmount.String())
		assert.Equal(t, 0.5, totals.PaidDayEquivalent)
	})

	t.Run("zero base pay", func(t *testing.T) {
		totals := ComputeTotals(policy, cls, decimal.Zero, juneRecords(20, 2), []advance.Advance{approved("50")})

		assert.True(t, totals.GrossPay.IsZero())
		assert.True(t, totals.NetPay.IsZero())
		assert.Equal(t, "50", totals.CarriedDebt.String())
	})

	t.Run("negative base pay is treated as zero", func(t *testing.T) {
		totals := ComputeTotals(policy, cls, decimal.NewFromInt(-780), juneRecords(20, 0), nil)

		assert.True(t, totals.DailyRate.IsZero())
		assert.True(t, totals.GrossPay.IsZero())
		assert.True(t, totals.NetPay.IsZero())
		assert.True(t, totals.CarriedDebt.IsZero())
	})

	t.Run("exactly one of net pay and carried debt is non-zero", func(t *testing.T) {
		for _, advanceAmount := range []string{"0", "149.999", "150", "150.001", "500"} {
			totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), juneRecords(5, 0), []advance.Advance{approved(advanceAmount)})
			assert.False(t, totals.NetPay.IsNegative(), "advance %s", advanceAmount)
			assert.False(t, totals.CarriedDebt.IsNegative(), "advance %s", advanceAmount)
			assert.True(t, totals.NetPay.IsZero() || totals.CarriedDebt.IsZero(), "advance %s", advanceAmount)
			// net - debt == gross - advances
			diff := totals.NetPay.Sub(totals.CarriedDebt)
			expected := totals.GrossPay.Sub(totals.TotalApprovedAdvances)
			assert.True(t, diff.Equal(expected), "advance %s", advanceAmount)
		}
	})

	t.Run("net pay is monotonic in presence days", func(t *testing.T) {
		prev := decimal.NewFromInt(-1)
		for n := 0; n <= 24; n += 4 {
			totals := ComputeTotals(policy, cls, decimal.NewFromInt(780), juneRecords(n, 0), []advance.Advance{approved("200")})
			require.True(t, totals.NetPay.GreaterThanOrEqual(prev), "presence %d", n)
			prev = totals.NetPay
		}
	})

	t.Run("rounding happens once on final figures", func(t *testing.T) {
		// Base pay 100: daily rate 100/26 = 3.846153..., kept exact until the
		// end. 26 presence days must reconstruct the full salary.
		totals := ComputeTotals(policy, cls, decimal.NewFromInt(100), juneRecords(24, 0), nil)
		more := ComputeTotals(policy, cls, decimal.NewFromInt(100), append(juneRecords(24, 0),
			attendance.Record{EmployeeID: "emp-1", Date: day(2025, time.June, 30), Status: attendance.StatusPresent, WorkedUnits: 2},
		), nil)

		assert.Equal(t, "92.308", totals.GrossPay.String())
		assert.Equal(t, "100", more.GrossPay.String())
	})
}

func TestAssiduityPercent(t *testing.T) {
	policy := payroll.DefaultPolicy()

	tests := []struct {
		paid float64
		want int
	}{
		{0, 0},
		{13, 50},
		{24, 92},
		{26, 100},
		{30, 100}, // capped
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.0f days", tt.paid), func(t *testing.T) {
			assert.Equal(t, tt.want, assiduityPercent(policy, tt.paid))
		})
	}
}
