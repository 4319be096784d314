package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Classifier decides whether a calendar date is a weekly rest day or a
// public holiday. Implementations must be pure: same date in, same answer out.
type Classifier interface {
	IsRestDay(date time.Time) bool
	IsHoliday(date time.Time) bool
}

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// MonthBreakdown describes how the days of a month split between workable
// days, weekly rest days and fixed holidays.
type MonthBreakdown struct {
	Total    int `json:"total_days"`
	Workable int `json:"workable_days"`
	RestDays int `json:"rest_days"`
	Holidays int `json:"holidays"`
}

// FixedClassifier classifies dates against a static month-day holiday table
// and a single weekly rest day. Variable religious holidays (Hijri calendar)
// are not resolved by this implementation.
type FixedClassifier struct {
	restDay  time.Weekday
	holidays map[string]string // "MM-DD" -> holiday name
}

// Fixed-date public holidays in Tunisia.
var tunisiaHolidays = map[string]string{
	"01-01": "Jour de l'An",
	"03-20": "Fête de l'Indépendance",
	"03-21": "Fête de la Jeunesse",
	"04-09": "Fête des Martyrs",
	"05-01": "Fête du Travail",
	"07-25": "Fête de la République",
	"08-13": "Fête des Femmes",
	"10-15": "Journée de l'Évacuation",
	"12-17": "Fête de la Révolution",
}

// NewTunisiaClassifier returns the default classifier: Sunday rest day plus
// the fixed Tunisian holiday table.
func NewTunisiaClassifier() *FixedClassifier {
	return NewFixedClassifier(time.Sunday, tunisiaHolidays)
}

func NewFixedClassifier(restDay time.Weekday, holidays map[string]string) *FixedClassifier {
	table := make(map[string]string, len(holidays))
	for monthDay, name := range holidays {
		table[monthDay] = name
	}
	return &FixedClassifier{restDay: restDay, holidays: table}
}

func (c *FixedClassifier) IsRestDay(date time.Time) bool {
	return date.Weekday() == c.restDay
}

func (c *FixedClassifier) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[date.Format("01-02")]
	return ok
}

// HolidayName returns the name of the holiday falling on date, if any.
func (c *FixedClassifier) HolidayName(date time.Time) (string, bool) {
	name, ok := c.holidays[date.Format("01-02")]
	return name, ok
}

// CountRestDays counts weekly rest days in the given month.
func (c *FixedClassifier) CountRestDays(month, year int) (int, error) {
	return c.countMatching(month, year, c.IsRestDay)
}

// CountHolidays counts fixed holidays in the given month.
func (c *FixedClassifier) CountHolidays(month, year int) (int, error) {
	return c.countMatching(month, year, c.IsHoliday)
}

// CountWorkableDays breaks a month down into total, workable, rest and
// holiday days, where workable = total - rest days - holidays.
func (c *FixedClassifier) CountWorkableDays(month, year int) (MonthBreakdown, error) {
	return BreakdownFor(c, month, year)
}

// BreakdownFor computes a month's breakdown under any classifier.
func BreakdownFor(cls Classifier, month, year int) (MonthBreakdown, error) {
	if month < 1 || month > 12 {
		return MonthBreakdown{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	total := daysInMonth(month, year)
	restDays := 0
	holidays := 0
	for day := 1; day <= total; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if cls.IsRestDay(date) {
			restDays++
		}
		if cls.IsHoliday(date) {
			holidays++
		}
	}

	return MonthBreakdown{
		Total:    total,
		Workable: total - restDays - holidays,
		RestDays: restDays,
		Holidays: holidays,
	}, nil
}

func (c *FixedClassifier) countMatching(month, year int, match func(time.Time) bool) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	count := 0
	for day := 1; day <= daysInMonth(month, year); day++ {
		if match(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count, nil
}

func daysInMonth(month, year int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
