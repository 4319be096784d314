package attendance

import (
	"testing"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(status attendance.Status, day time.Time, units, overtime float64) attendance.Record {
	return attendance.Record{
		EmployeeID:    "emp-1",
		Date:          day,
		Status:        status,
		WorkedUnits:   units,
		OvertimeHours: overtime,
	}
}

func TestNormalizeRecord(t *testing.T) {
	policy := payroll.DefaultPolicy()
	cls := calendar.NewTunisiaClassifier()

	monday := date(2025, time.June, 2)
	sunday := date(2025, time.June, 1)
	mayDay := date(2025, time.May, 1) // fixed holiday, a Thursday

	t.Run("present on regular workday passes through", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusPresent, monday, 1, 2))
		assert.Equal(t, attendance.StatusPresent, out.Status)
		assert.Equal(t, 1.0, out.WorkedUnits)
		assert.Equal(t, 2.0, out.OvertimeHours)
	})

	t.Run("present on holiday becomes holiday", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusPresent, mayDay, 1, 0))
		assert.Equal(t, attendance.StatusHoliday, out.Status)
	})

	t.Run("absent zeroes worked units and overtime", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusAbsent, monday, 1, 3))
		assert.Equal(t, attendance.StatusAbsent, out.Status)
		assert.Zero(t, out.WorkedUnits)
		assert.Zero(t, out.OvertimeHours)
	})

	t.Run("sick and leave cannot carry overtime", func(t *testing.T) {
		for _, status := range []attendance.Status{attendance.StatusSick, attendance.StatusOnLeave} {
			out := normalizeRecord(policy, cls, record(status, monday, 0.5, 4))
			assert.Equal(t, status, out.Status)
			assert.Equal(t, 0.5, out.WorkedUnits)
			assert.Zero(t, out.OvertimeHours)
		}
	})

	t.Run("present on rest day converts to overtime", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusPresent, sunday, 1, 0))
		assert.Equal(t, attendance.StatusPresent, out.Status)
		assert.Zero(t, out.WorkedUnits)
		assert.Equal(t, policy.StandardDayHours, out.OvertimeHours)
	})

	t.Run("present on rest day keeps requested overtime", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusPresent, sunday, 1, 5))
		assert.Zero(t, out.WorkedUnits)
		assert.Equal(t, 5.0, out.OvertimeHours)
	})

	t.Run("explicit holiday status is preserved off-calendar", func(t *testing.T) {
		out := normalizeRecord(policy, cls, record(attendance.StatusHoliday, monday, 1, 0))
		assert.Equal(t, attendance.StatusHoliday, out.Status)
		assert.Equal(t, 1.0, out.WorkedUnits)
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []attendance.Record{
			record(attendance.StatusPresent, monday, 1, 2),
			record(attendance.StatusPresent, sunday, 1, 0),
			record(attendance.StatusPresent, mayDay, 1, 3),
			record(attendance.StatusAbsent, monday, 1, 3),
			record(attendance.StatusSick, monday, 1, 3),
			record(attendance.StatusOnLeave, monday, 0.5, 1),
		}
		for _, in := range inputs {
			once := normalizeRecord(policy, cls, in)
			twice := normalizeRecord(policy, cls, once)
			assert.Equal(t, once, twice, "status %s", in.Status)
		}
	})
}

func TestRecordFromEntry(t *testing.T) {
	day := date(2025, time.June, 2)

	t.Run("worked units default to a full day", func(t *testing.T) {
		rec := recordFromEntry(attendance.RawEntry{
			EmployeeID: "emp-1",
			Status:     string(attendance.StatusPresent),
		}, day)
		assert.Equal(t, 1.0, rec.WorkedUnits)
		assert.Zero(t, rec.OvertimeHours)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		units := 0.5
		overtime := 2.0
		rec := recordFromEntry(attendance.RawEntry{
			EmployeeID:    "emp-1",
			Status:        string(attendance.StatusPresent),
			WorkedUnits:   &units,
			OvertimeHours: &overtime,
		}, day)
		assert.Equal(t, 0.5, rec.WorkedUnits)
		assert.Equal(t, 2.0, rec.OvertimeHours)
	})

	t.Run("date is truncated to midnight UTC", func(t *testing.T) {
		rec := recordFromEntry(attendance.RawEntry{
			EmployeeID: "emp-1",
			Status:     string(attendance.StatusPresent),
		}, time.Date(2025, time.June, 2, 15, 30, 0, 0, time.UTC))
		assert.Equal(t, day, rec.Date)
	})
}

func TestValidateSheetEntries(t *testing.T) {
	units := 1.0

	t.Run("valid entries pass", func(t *testing.T) {
		err := validateSheetEntries([]attendance.RawEntry{
			{EmployeeID: "emp-1", Status: "PRESENT", WorkedUnits: &units},
			{EmployeeID: "emp-2", Status: "ABSENT"},
		})
		assert.NoError(t, err)
	})

	t.Run("bad entry rejects the sheet with its index", func(t *testing.T) {
		err := validateSheetEntries([]attendance.RawEntry{
			{EmployeeID: "emp-1", Status: "PRESENT"},
			{EmployeeID: "emp-2", Status: "NAPPING"},
		})
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "entries[1].status", errs[0].Field)
	})
}

func TestBalanceCharge(t *testing.T) {
	day := date(2025, time.June, 2)

	leave, sick := balanceCharge(record(attendance.StatusOnLeave, day, 1, 0))
	assert.Equal(t, 1.0, leave)
	assert.Zero(t, sick)

	leave, sick = balanceCharge(record(attendance.StatusSick, day, 0.5, 0))
	assert.Zero(t, leave)
	assert.Equal(t, 0.5, sick)

	leave, sick = balanceCharge(attendance.Record{})
	assert.Zero(t, leave)
	assert.Zero(t, sick)
}
