package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// Bulk ingestion failed at the storage layer; the whole batch was
	// rolled back.
	ErrSheetNotCommitted = errors.New("daily sheet was not committed")
)
