package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
	StatusSick    Status = "SICK"
	StatusHoliday Status = "HOLIDAY"
)

func AllStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusOnLeave),
		string(StatusSick),
		string(StatusHoliday),
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOnLeave, StatusSick, StatusHoliday:
		return true
	}
	return false
}

// Record is one employee's attendance for one calendar date. Date is always
// midnight UTC; at most one record exists per (EmployeeID, Date).
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	WorkedUnits   float64
	OvertimeHours float64
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}
