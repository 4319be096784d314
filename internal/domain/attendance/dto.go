package attendance

import (
	"time"

	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// RawEntry is one employee's line of a daily attendance sheet before
// normalization.
type RawEntry struct {
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date,omitempty"` // "YYYY-MM-DD"; a sheet-level date overrides it
	Status        string   `json:"status"`
	WorkedUnits   *float64 `json:"worked_units,omitempty"` // defaults to 1
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Note          string   `json:"note,omitempty"`
}

func (r *RawEntry) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsInSlice(r.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, ON_LEAVE, SICK, HOLIDAY",
		})
	}

	if r.WorkedUnits != nil && *r.WorkedUnits < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worked_units",
			Message: "worked_units must not be negative",
		})
	}

	if r.OvertimeHours != nil && *r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizeEntryRequest previews the normalization of a single raw entry.
type NormalizeEntryRequest struct {
	RawEntry
}

func (r *NormalizeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.RawEntry.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailySheetRequest carries one day's attendance sheet for the whole
// workforce.
type DailySheetRequest struct {
	Date    string     `json:"date"` // "YYYY-MM-DD"
	Entries []RawEntry `json:"entries"`
}

func (r *DailySheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	EmployeeID string
	Status     string
	Month      int
	Year       int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, AllStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, ON_LEAVE, SICK, HOLIDAY",
		})
	}

	if (f.Month != 0 || f.Year != 0) && (f.Month < 1 || f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	WorkedUnits      float64 `json:"worked_units"`
	OvertimeHours    float64 `json:"overtime_hours"`
	Note             string  `json:"note,omitempty"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	EmployeePosition *string `json:"employee_position,omitempty"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		Date:             rec.Date.Format("2006-01-02"),
		Status:           string(rec.Status),
		WorkedUnits:      rec.WorkedUnits,
		OvertimeHours:    rec.OvertimeHours,
		Note:             rec.Note,
		EmployeeName:     rec.EmployeeName,
		EmployeePosition: rec.EmployeePosition,
	}
}

func ToRecordResponses(records []Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, ToRecordResponse(rec))
	}
	return responses
}

// NormalizeDate truncates a timestamp to midnight UTC, the canonical form of
// a record date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
