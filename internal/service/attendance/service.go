package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/database"
	"github.com/klbeton/pointage-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	classifier calendar.Classifier
	policy     payroll.Policy
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	classifier calendar.Classifier,
	policy payroll.Policy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		classifier:           classifier,
		policy:               policy,
	}
}

// NormalizeEntry implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) NormalizeEntry(ctx context.Context, req attendance.NormalizeEntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	rec := normalizeRecord(a.policy, a.classifier, recordFromEntry(req.RawEntry, date))

	return attendance.ToRecordResponse(rec), nil
}

// IngestDailySheet implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) IngestDailySheet(ctx context.Context, req attendance.DailySheetRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateSheetEntries(req.Entries); err != nil {
		return nil, err
	}

	sheetDate, _ := time.Parse("2006-01-02", req.Date)

	// Normalize everything up front so a bad row rejects the sheet before a
	// transaction is even opened.
	records := make([]attendance.Record, 0, len(req.Entries))
	for _, entry := range req.Entries {
		date := sheetDate
		if entry.Date != "" {
			date, _ = time.Parse("2006-01-02", entry.Date)
		}
		rec := normalizeRecord(a.policy, a.classifier, recordFromEntry(entry, date))
		rec.ID = uuid.NewString()
		records = append(records, rec)
	}

	persisted := make([]attendance.Record, 0, len(records))
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, rec := range records {
			if _, err := a.EmployeeRepository.GetByID(txCtx, rec.EmployeeID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("employee %s: %w", rec.EmployeeID, employee.ErrEmployeeNotFound)
				}
				return fmt.Errorf("failed to get employee %s: %w", rec.EmployeeID, err)
			}

			// A re-ingested sheet replaces the existing record, so balances
			// are charged by delta against whatever the previous record
			// already consumed.
			prev, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, rec.EmployeeID, rec.Date)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("failed to get existing attendance record: %w", err)
			}

			if err := a.applyBalanceDelta(txCtx, prev, rec); err != nil {
				return err
			}

			saved, err := a.AttendanceRepository.Upsert(txCtx, rec)
			if err != nil {
				return fmt.Errorf("failed to upsert attendance record: %w", err)
			}
			persisted = append(persisted, saved)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendance.ToRecordResponses(persisted), nil
}

// balanceCharge returns how many leave and sick days a record consumes.
func balanceCharge(rec attendance.Record) (leave float64, sick float64) {
	switch rec.Status {
	case attendance.StatusOnLeave:
		return rec.WorkedUnits, 0
	case attendance.StatusSick:
		return 0, rec.WorkedUnits
	}
	return 0, 0
}

// applyBalanceDelta adjusts the employee's leave and sick balances by the
// difference between what the previous record on that date consumed and what
// the new one consumes. Must run inside the ingestion transaction so a later
// failure rolls the adjustment back.
func (a *AttendanceServiceImpl) applyBalanceDelta(ctx context.Context, prev, rec attendance.Record) error {
	prevLeave, prevSick := balanceCharge(prev)
	newLeave, newSick := balanceCharge(rec)

	leaveDelta := newLeave - prevLeave
	sickDelta := newSick - prevSick
	if leaveDelta == 0 && sickDelta == 0 {
		return nil
	}

	if a.policy.EnforceBalanceFloor && (leaveDelta > 0 || sickDelta > 0) {
		leave, sick, err := a.EmployeeRepository.GetBalancesForUpdate(ctx, rec.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to lock balances for employee %s: %w", rec.EmployeeID, err)
		}
		if leave < leaveDelta {
			return fmt.Errorf("employee %s: %w", rec.EmployeeID, employee.ErrInsufficientLeaveBalance)
		}
		if sick < sickDelta {
			return fmt.Errorf("employee %s: %w", rec.EmployeeID, employee.ErrInsufficientSickBalance)
		}
	}

	if leaveDelta != 0 {
		if err := a.EmployeeRepository.DecrementLeaveBalance(ctx, rec.EmployeeID, leaveDelta); err != nil {
			return fmt.Errorf("failed to adjust leave balance for employee %s: %w", rec.EmployeeID, err)
		}
	}
	if sickDelta != 0 {
		if err := a.EmployeeRepository.DecrementSickBalance(ctx, rec.EmployeeID, sickDelta); err != nil {
			return fmt.Errorf("failed to adjust sick balance for employee %s: %w", rec.EmployeeID, err)
		}
	}

	return nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return attendance.ToRecordResponses(records), nil
}
