package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	classifier     calendar.Classifier
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	classifier calendar.Classifier,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		classifier:     classifier,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missing_attendance_reminder", 1*time.Hour, j.RemindMissingAttendance)
}

// RemindMissingAttendance logs the active employees with no record for the
// previous working day, so a forgotten sheet surfaces before payroll runs.
func (j *AttendanceJobs) RemindMissingAttendance(ctx context.Context) error {
	// Only run in the morning (08:00-08:59 UTC)
	if time.Now().UTC().Hour() != 8 {
		return nil
	}

	day := previousWorkingDay(j.classifier, time.Now().UTC())

	employees, err := j.employeeRepo.List(ctx, employee.ListFilter{Status: employee.StatusActive})
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	records, err := j.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to list attendance records: %w", err)
	}

	recorded := make(map[string]struct{}, len(records))
	for _, rec := range records {
		recorded[rec.EmployeeID] = struct{}{}
	}

	missing := 0
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; ok {
			continue
		}
		missing++
		slog.Warn("Cron: missing attendance record",
			"employee_id", emp.ID,
			"matricule", emp.Matricule,
			"date", day.Format("2006-01-02"),
		)
	}

	if missing == 0 {
		slog.Info("Cron: attendance sheet complete", "date", day.Format("2006-01-02"))
	}

	return nil
}

// previousWorkingDay walks backwards from now, skipping rest days and
// holidays.
func previousWorkingDay(cls calendar.Classifier, now time.Time) time.Time {
	day := attendance.NormalizeDate(now).AddDate(0, 0, -1)
	for cls.IsRestDay(day) || cls.IsHoliday(day) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
