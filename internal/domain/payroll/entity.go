package payroll

import (
	"time"

	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// Totals is the aggregation of one employee's month of attendance and
// advances. Monetary fields are rounded to 3 decimal places (millimes) at
// construction; intermediate arithmetic keeps full precision.
//
// Exactly one of NetPay and CarriedDebt is non-zero for a period.
type Totals struct {
	PresenceDays float64
	AbsenceDays  float64
	LeaveDays    float64
	SickDays     float64
	HolidayDays  float64

	// RestDaysWorked counts PRESENT records falling on the weekly rest day.
	// Their hours live in OvertimeHours, not in PresenceDays.
	RestDaysWorked int
	OvertimeHours  float64

	// PaidDayEquivalent is compared against the pay base for assiduity.
	PaidDayEquivalent float64

	DailyRate  decimal.Decimal
	HourlyRate decimal.Decimal

	PresenceAmount  decimal.Decimal
	HolidayAmount   decimal.Decimal
	LeaveSickAmount decimal.Decimal
	OvertimeAmount  decimal.Decimal

	GrossPay              decimal.Decimal
	TotalApprovedAdvances decimal.Decimal
	AdvanceCount          int
	NetPay                decimal.Decimal
	CarriedDebt           decimal.Decimal
}

// Summary is the monthly recap for one employee: the computed totals plus
// employee identity and the period's calendar breakdown. It is derived on
// demand, never stored.
type Summary struct {
	EmployeeID string
	Matricule  string
	FirstName  string
	LastName   string
	Position   string

	Month  int
	Year   int
	Period calendar.MonthBreakdown

	Totals Totals

	// AssiduityPercent is PaidDayEquivalent over the pay base, capped at 100.
	AssiduityPercent int

	GeneratedAt time.Time
}
