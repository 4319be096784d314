package attendance

import (
	"fmt"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
)

// recordFromEntry builds the un-normalized record for a validated raw entry.
// WorkedUnits defaults to a full day when the sheet leaves it out.
func recordFromEntry(entry attendance.RawEntry, date time.Time) attendance.Record {
	workedUnits := 1.0
	if entry.WorkedUnits != nil {
		workedUnits = *entry.WorkedUnits
	}

	overtimeHours := 0.0
	if entry.OvertimeHours != nil {
		overtimeHours = *entry.OvertimeHours
	}

	return attendance.Record{
		EmployeeID:    entry.EmployeeID,
		Date:          attendance.NormalizeDate(date),
		Status:        attendance.Status(entry.Status),
		WorkedUnits:   workedUnits,
		OvertimeHours: overtimeHours,
		Note:          entry.Note,
	}
}

// normalizeRecord applies the precedence rules, first match wins:
//
//  1. PRESENT on a fixed holiday becomes HOLIDAY.
//  2. ABSENT zeroes both worked units and overtime.
//  3. SICK and ON_LEAVE cannot carry overtime.
//  4. PRESENT on the weekly rest day is re-expressed entirely as overtime:
//     the requested hours if any, otherwise a standard workday of hours.
//  5. Anything else passes through, clamped to >= 0.
//
// The function is idempotent: a record already in canonical shape comes out
// unchanged.
func normalizeRecord(policy payroll.Policy, cls calendar.Classifier, rec attendance.Record) attendance.Record {
	if rec.Status == attendance.StatusPresent && cls.IsHoliday(rec.Date) {
		rec.Status = attendance.StatusHoliday
	}

	switch {
	case rec.Status == attendance.StatusAbsent:
		rec.WorkedUnits = 0
		rec.OvertimeHours = 0

	case rec.Status == attendance.StatusSick || rec.Status == attendance.StatusOnLeave:
		rec.OvertimeHours = 0
		rec.WorkedUnits = max(0, rec.WorkedUnits)

	case rec.Status == attendance.StatusPresent && cls.IsRestDay(rec.Date):
		rec.WorkedUnits = 0
		if rec.OvertimeHours <= 0 {
			rec.OvertimeHours = policy.StandardDayHours
		}

	default:
		rec.WorkedUnits = max(0, rec.WorkedUnits)
		rec.OvertimeHours = max(0, rec.OvertimeHours)
	}

	return rec
}

// validateSheetEntries validates every entry of a daily sheet, prefixing
// field names with the entry index so the caller can locate the bad row.
// The sheet is rejected as a whole on the first failing entry.
func validateSheetEntries(entries []attendance.RawEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			errs := err.(validator.ValidationErrors)
			indexed := make(validator.ValidationErrors, 0, len(errs))
			for _, ve := range errs {
				indexed = append(indexed, validator.ValidationError{
					Field:   fmt.Sprintf("entries[%d].%s", i, ve.Field),
					Message: ve.Message,
				})
			}
			return indexed
		}
	}
	return nil
}
