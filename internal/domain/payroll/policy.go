package payroll

import "time"

// Policy carries the pay constants that were previously hard-coded, so a
// different region or contract can vary them without code changes.
type Policy struct {
	// PayBaseDays is the fixed divisor used to derive a daily rate from the
	// monthly salary, independent of the month's actual workable days.
	PayBaseDays int

	// StandardDayHours divides the daily rate into an hourly rate, and is
	// the overtime credited for a rest day worked with no hours given.
	StandardDayHours float64

	// OvertimeMultiplier is the premium applied to every overtime hour.
	OvertimeMultiplier float64

	// RestDay is the fixed weekly day off.
	RestDay time.Weekday

	// Default balances granted to a new employee, in days.
	DefaultLeaveBalanceDays float64
	DefaultSickBalanceDays  float64

	// EnforceBalanceFloor rejects sheet ingestion that would push a leave or
	// sick balance below zero. Off by default: a negative balance is read as
	// an advance against future accrual.
	EnforceBalanceFloor bool
}

func DefaultPolicy() Policy {
	return Policy{
		PayBaseDays:             26,
		StandardDayHours:        8,
		OvertimeMultiplier:      1.25,
		RestDay:                 time.Sunday,
		DefaultLeaveBalanceDays: 18,
		DefaultSickBalanceDays:  10,
		EnforceBalanceFloor:     false,
	}
}
