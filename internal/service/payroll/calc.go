package payroll

import (
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the rounding precision of every final monetary figure, in
// decimal places (TND millimes).
const moneyPlaces = 3

// ComputeTotals aggregates one employee's month of canonical attendance
// records and advances into pay totals. Records are expected to be in the
// shape the normalizer produces; the function makes a single pass and does
// not re-derive calendar rules, except to tell a worked rest day apart from
// a regular presence day.
//
// All intermediate arithmetic is exact decimal; rounding to millimes happens
// once, on the final figures.
func ComputeTotals(policy payroll.Policy, cls calendar.Classifier, basePay decimal.Decimal, records []attendance.Record, advances []advance.Advance) payroll.Totals {
	var t payroll.Totals

	// A corrupt negative salary must not produce negative pay lines.
	if basePay.IsNegative() {
		basePay = decimal.Zero
	}

	dailyRate := basePay.Div(decimal.NewFromInt(int64(policy.PayBaseDays)))
	hourlyRate := dailyRate.Div(decimal.NewFromFloat(policy.StandardDayHours))

	for _, rec := range records {
		t.OvertimeHours += rec.OvertimeHours

		switch rec.Status {
		case attendance.StatusPresent:
			if cls.IsRestDay(rec.Date) {
				t.RestDaysWorked++
			} else {
				t.PresenceDays += rec.WorkedUnits
			}
		case attendance.StatusAbsent:
			t.AbsenceDays++
		case attendance.StatusOnLeave:
			t.LeaveDays += rec.WorkedUnits
		case attendance.StatusSick:
			t.SickDays += rec.WorkedUnits
		case attendance.StatusHoliday:
			t.HolidayDays += rec.WorkedUnits
		}
	}

	t.PaidDayEquivalent = t.PresenceDays + t.LeaveDays + t.SickDays + t.HolidayDays

	t.PresenceAmount = dailyRate.Mul(decimal.NewFromFloat(t.PresenceDays))
	t.HolidayAmount = dailyRate.Mul(decimal.NewFromFloat(t.HolidayDays))
	t.LeaveSickAmount = dailyRate.Mul(decimal.NewFromFloat(t.LeaveDays + t.SickDays))
	t.OvertimeAmount = hourlyRate.
		Mul(decimal.NewFromFloat(t.OvertimeHours)).
		Mul(decimal.NewFromFloat(policy.OvertimeMultiplier))

	gross := t.PresenceAmount.
		Add(t.HolidayAmount).
		Add(t.LeaveSickAmount).
		Add(t.OvertimeAmount)

	totalAdvances := decimal.Zero
	for _, adv := range advances {
		if adv.Status != advance.StatusApproved {
			continue
		}
		totalAdvances = totalAdvances.Add(adv.Amount)
		t.AdvanceCount++
	}

	// Net pay never goes negative; the shortfall is carried as debt instead.
	net := gross.Sub(totalAdvances)
	debt := decimal.Zero
	if net.IsNegative() {
		debt = net.Neg()
		net = decimal.Zero
	}

	t.DailyRate = dailyRate.Round(moneyPlaces)
	t.HourlyRate = hourlyRate.Round(moneyPlaces)
	t.PresenceAmount = t.PresenceAmount.Round(moneyPlaces)
	t.HolidayAmount = t.HolidayAmount.Round(moneyPlaces)
	t.LeaveSickAmount = t.LeaveSickAmount.Round(moneyPlaces)
	t.OvertimeAmount = t.OvertimeAmount.Round(moneyPlaces)
	t.GrossPay = gross.Round(moneyPlaces)
	t.TotalApprovedAdvances = totalAdvances.Round(moneyPlaces)
	t.NetPay = net.Round(moneyPlaces)
	t.CarriedDebt = debt.Round(moneyPlaces)

	return t
}

// assiduityPercent expresses the paid day equivalent as a percentage of the
// pay base, rounded half-up and capped at 100.
func assiduityPercent(policy payroll.Policy, paidDayEquivalent float64) int {
	if policy.PayBaseDays <= 0 {
		return 0
	}

	pct := decimal.NewFromFloat(paidDayEquivalent).
		Div(decimal.NewFromInt(int64(policy.PayBaseDays))).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}
