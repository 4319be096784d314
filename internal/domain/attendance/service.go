package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// NormalizeEntry applies the precedence rules to a single raw entry and
	// returns the canonical record without persisting it.
	NormalizeEntry(ctx context.Context, req NormalizeEntryRequest) (RecordResponse, error)

	// IngestDailySheet normalizes and persists one day's sheet for the whole
	// workforce, atomically: every upsert and every linked balance decrement
	// commits, or none of them do.
	IngestDailySheet(ctx context.Context, req DailySheetRequest) ([]RecordResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
}
