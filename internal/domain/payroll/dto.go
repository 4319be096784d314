package payroll

import (
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

type SummaryRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodRequest struct {
	Month int
	Year  int
}

func (r *PeriodRequest) Validate() error {
	if errs := validatePeriod(r.Month, r.Year); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if year < 2000 || year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	return errs
}

type SummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	Matricule  string `json:"matricule"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position,omitempty"`

	Month  int                     `json:"month"`
	Year   int                     `json:"year"`
	Period calendar.MonthBreakdown `json:"period"`

	PresenceDays      float64 `json:"presence_days"`
	AbsenceDays       float64 `json:"absence_days"`
	LeaveDays         float64 `json:"leave_days"`
	SickDays          float64 `json:"sick_days"`
	HolidayDays       float64 `json:"holiday_days"`
	RestDaysWorked    int     `json:"rest_days_worked"`
	OvertimeHours     float64 `json:"overtime_hours"`
	PaidDayEquivalent float64 `json:"paid_day_equivalent"`
	AssiduityPercent  int     `json:"assiduity_percent"`

	DailyRate  string `json:"daily_rate"`
	HourlyRate string `json:"hourly_rate"`

	PresenceAmount  string `json:"presence_amount"`
	HolidayAmount   string `json:"holiday_amount"`
	LeaveSickAmount string `json:"leave_sick_amount"`
	OvertimeAmount  string `json:"overtime_amount"`

	GrossPay              string `json:"gross_pay"`
	TotalApprovedAdvances string `json:"total_approved_advances"`
	AdvanceCount          int    `json:"advance_count"`
	NetPay                string `json:"net_pay"`
	CarriedDebt           string `json:"carried_debt"`

	GeneratedAt string `json:"generated_at"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID: s.EmployeeID,
		Matricule:  s.Matricule,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Position:   s.Position,

		Month:  s.Month,
		Year:   s.Year,
		Period: s.Period,

		PresenceDays:      s.Totals.PresenceDays,
		AbsenceDays:       s.Totals.AbsenceDays,
		LeaveDays:         s.Totals.LeaveDays,
		SickDays:          s.Totals.SickDays,
		HolidayDays:       s.Totals.HolidayDays,
		RestDaysWorked:    s.Totals.RestDaysWorked,
		OvertimeHours:     s.Totals.OvertimeHours,
		PaidDayEquivalent: s.Totals.PaidDayEquivalent,
		AssiduityPercent:  s.AssiduityPercent,

		DailyRate:  s.Totals.DailyRate.String(),
		HourlyRate: s.Totals.HourlyRate.String(),

		PresenceAmount:  s.Totals.PresenceAmount.String(),
		HolidayAmount:   s.Totals.HolidayAmount.String(),
		LeaveSickAmount: s.Totals.LeaveSickAmount.String(),
		OvertimeAmount:  s.Totals.OvertimeAmount.String(),

		GrossPay:              s.Totals.GrossPay.String(),
		TotalApprovedAdvances: s.Totals.TotalApprovedAdvances.String(),
		AdvanceCount:          s.Totals.AdvanceCount,
		NetPay:                s.Totals.NetPay.String(),
		CarriedDebt:           s.Totals.CarriedDebt.String(),

		GeneratedAt: s.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToSummaryResponses(summaries []Summary) []SummaryResponse {
	responses := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, ToSummaryResponse(s))
	}
	return responses
}
