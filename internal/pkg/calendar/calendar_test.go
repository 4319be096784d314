package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsRestDay(t *testing.T) {
	c := NewTunisiaClassifier()

	// 2025-06-01 is a Sunday
	assert.True(t, c.IsRestDay(date(2025, time.June, 1)))
	assert.False(t, c.IsRestDay(date(2025, time.June, 2)))
	assert.False(t, c.IsRestDay(date(2025, time.June, 7))) // Saturday is workable
}

func TestIsHoliday(t *testing.T) {
	c := NewTunisiaClassifier()

	assert.True(t, c.IsHoliday(date(2025, time.January, 1)))
	assert.True(t, c.IsHoliday(date(2024, time.May, 1)))
	assert.True(t, c.IsHoliday(date(2025, time.July, 25)))
	assert.False(t, c.IsHoliday(date(2025, time.January, 2)))

	name, ok := c.HolidayName(date(2025, time.August, 13))
	require.True(t, ok)
	assert.Equal(t, "Fête des Femmes", name)
}

func TestCountWorkableDays(t *testing.T) {
	c := NewTunisiaClassifier()

	// June 2025: 30 days, Sundays on 1, 8, 15, 22, 29, no fixed holiday.
	breakdown, err := c.CountWorkableDays(6, 2025)
	require.NoError(t, err)
	assert.Equal(t, 30, breakdown.Total)
	assert.Equal(t, 5, breakdown.RestDays)
	assert.Equal(t, 0, breakdown.Holidays)
	assert.Equal(t, 25, breakdown.Workable)

	// January 2025: 31 days, Sundays on 5, 12, 19, 26, holiday on the 1st.
	breakdown, err = c.CountWorkableDays(1, 2025)
	require.NoError(t, err)
	assert.Equal(t, 31, breakdown.Total)
	assert.Equal(t, 4, breakdown.RestDays)
	assert.Equal(t, 1, breakdown.Holidays)
	assert.Equal(t, 26, breakdown.Workable)

	// March has two fixed holidays back to back (20 and 21).
	holidays, err := c.CountHolidays(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, holidays)
}

func TestCountWorkableDays_FebruaryLeapYear(t *testing.T) {
	c := NewTunisiaClassifier()

	breakdown, err := c.CountWorkableDays(2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 29, breakdown.Total)

	breakdown, err = c.CountWorkableDays(2, 2025)
	require.NoError(t, err)
	assert.Equal(t, 28, breakdown.Total)
}

func TestCountWorkableDays_InvalidMonth(t *testing.T) {
	c := NewTunisiaClassifier()

	_, err := c.CountWorkableDays(0, 2025)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = c.CountWorkableDays(13, 2025)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = c.CountRestDays(-1, 2025)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
