package workforce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/workforce-insights/workforce"
)

func TestShiftMonths_ClampsDayToTargetMonth(t *testing.T) {
	// GIVEN: Month-end dates
	// WHEN: Shifting into shorter months
	// THEN: The day clamps instead of overflowing into the next month

	jan31 := workforce.Date(2025, time.January, 31)
	assert.Equal(t, workforce.Date(2025, time.February, 28), workforce.ShiftMonths(jan31, 1))

	mar31 := workforce.Date(2024, time.March, 31)
	assert.Equal(t, workforce.Date(2024, time.February, 29), workforce.ShiftMonths(mar31, -1),
		"leap year keeps Feb 29")

	// Crossing a year boundary backwards
	assert.Equal(t, workforce.Date(2024, time.December, 31), workforce.ShiftMonths(jan31, -1))
}

func TestShiftMonths_LargeOffsets(t *testing.T) {
	d := workforce.Date(2025, time.June, 15)
	assert.Equal(t, workforce.Date(2021, time.June, 15), workforce.ShiftMonths(d, -48))
	assert.Equal(t, workforce.Date(2026, time.May, 15), workforce.ShiftMonths(d, 11))
}

func TestTenureMonths_DayOfMonthAdjustment(t *testing.T) {
	// GIVEN: A hire on the 15th
	hire := workforce.Date(2025, time.January, 15)

	// THEN: Tenure ticks over on the 15th, not on the 1st
	assert.Equal(t, 0, workforce.TenureMonths(hire, workforce.Date(2025, time.February, 14)))
	assert.Equal(t, 1, workforce.TenureMonths(hire, workforce.Date(2025, time.February, 15)))
	assert.Equal(t, 12, workforce.TenureMonths(hire, workforce.Date(2026, time.January, 15)))

	// Reference before hire never goes negative
	assert.Equal(t, 0, workforce.TenureMonths(hire, workforce.Date(2024, time.December, 1)))
}

func TestMonthsBetweenCeil_RoundsPartialMonthsUp(t *testing.T) {
	start := workforce.Date(2025, time.April, 1)

	assert.Equal(t, 0, workforce.MonthsBetweenCeil(start, start))
	assert.Equal(t, 1, workforce.MonthsBetweenCeil(start, workforce.Date(2025, time.April, 2)))
	assert.Equal(t, 3, workforce.MonthsBetweenCeil(start, workforce.Date(2025, time.June, 16)))
	assert.Equal(t, 12, workforce.MonthsBetweenCeil(start, workforce.Date(2026, time.April, 1)))
}

func TestGranularityFloor(t *testing.T) {
	d := workforce.Date(2025, time.August, 26)

	assert.Equal(t, workforce.Date(2025, time.August, 1), workforce.Monthly.Floor(d))
	assert.Equal(t, workforce.Date(2025, time.July, 1), workforce.Quarterly.Floor(d))
	assert.Equal(t, workforce.Date(2025, time.January, 1), workforce.Yearly.Floor(d))
}

func TestParseGranularity(t *testing.T) {
	g, err := workforce.ParseGranularity("")
	assert.NoError(t, err)
	assert.Equal(t, workforce.Monthly, g, "empty defaults to monthly")

	g, err = workforce.ParseGranularity("quarterly")
	assert.NoError(t, err)
	assert.Equal(t, workforce.Quarterly, g)

	_, err = workforce.ParseGranularity("weekly")
	assert.ErrorIs(t, err, workforce.ErrInvalidGranularity)
}
