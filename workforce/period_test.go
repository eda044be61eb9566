package workforce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/workforce-insights/workforce"
)

func TestResolveRange_Defaults(t *testing.T) {
	today := workforce.Date(2025, time.August, 26)

	// Monthly: trailing 12 period floors (11 steps back)
	r, err := workforce.ResolveRange(workforce.Monthly, nil, nil, today)
	require.NoError(t, err)
	assert.Equal(t, workforce.Date(2024, time.September, 1), r.Start)
	assert.Equal(t, workforce.Date(2025, time.August, 1), r.End)

	// Quarterly: 5 quarters back from the current quarter floor
	r, err = workforce.ResolveRange(workforce.Quarterly, nil, nil, today)
	require.NoError(t, err)
	assert.Equal(t, workforce.Date(2024, time.April, 1), r.Start)
	assert.Equal(t, workforce.Date(2025, time.July, 1), r.End)

	// Yearly: 9 years back
	r, err = workforce.ResolveRange(workforce.Yearly, nil, nil, today)
	require.NoError(t, err)
	assert.Equal(t, workforce.Date(2016, time.January, 1), r.Start)
	assert.Equal(t, workforce.Date(2025, time.January, 1), r.End)
}

func TestResolveRange_ExplicitBoundsAndError(t *testing.T) {
	today := workforce.Date(2025, time.August, 26)
	start := workforce.Date(2025, time.March, 10)
	end := workforce.Date(2025, time.May, 20)

	r, err := workforce.ResolveRange(workforce.Monthly, &start, &end, today)
	require.NoError(t, err)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, end, r.End)

	// End before start is a scoping error, not a silent swap
	_, err = workforce.ResolveRange(workforce.Monthly, &end, &start, today)
	assert.ErrorIs(t, err, workforce.ErrInvalidRange)
}

func TestSeries_IncludesLeadingPeriod(t *testing.T) {
	// GIVEN: A three-month range
	r := workforce.Range{
		Start: workforce.Date(2025, time.March, 15),
		End:   workforce.Date(2025, time.May, 2),
	}

	// WHEN: Generating the monthly series
	series := workforce.Monthly.Series(r)

	// THEN: One extra leading period precedes the floored start
	require.Len(t, series, 4)
	assert.Equal(t, workforce.Date(2025, time.February, 1), series[0])
	assert.Equal(t, workforce.Date(2025, time.March, 1), series[1])
	assert.Equal(t, workforce.Date(2025, time.May, 1), series[3])
}

func TestFiscalWindows_FullAndTruncated(t *testing.T) {
	// GIVEN: A cutoff mid fiscal year (June 2024, FY25 runs Apr24-Mar25)
	cutoff := workforce.Date(2024, time.June, 15)

	windows := workforce.FiscalWindows(cutoff)
	require.Len(t, windows, 4)

	// Oldest three are full years
	assert.Equal(t, workforce.Date(2021, time.April, 1), windows[0].YearStart)
	assert.Equal(t, workforce.Date(2022, time.April, 1), windows[0].YearEnd)
	assert.Equal(t, 12, windows[0].MonthsCovered)
	assert.Equal(t, "FY22", windows[0].Label())
	assert.Equal(t, "FY23", windows[1].Label())
	assert.Equal(t, "FY24", windows[2].Label())

	// Current window truncates at the day after the cutoff
	cur := windows[3]
	assert.Equal(t, workforce.Date(2024, time.April, 1), cur.YearStart)
	assert.Equal(t, workforce.Date(2024, time.June, 16), cur.YearEnd)
	assert.Equal(t, 3, cur.MonthsCovered)
	assert.Equal(t, "YTD FY25", cur.Label())
	assert.Len(t, cur.Months(), 3)
}

func TestFiscalWindows_CutoffOnYearBoundary(t *testing.T) {
	// March 31 is the last day of the fiscal year; the window containing
	// it must still read as year-to-date, not roll into the next year.
	cutoff := workforce.Date(2025, time.March, 31)

	windows := workforce.FiscalWindows(cutoff)
	cur := windows[3]
	assert.Equal(t, workforce.Date(2024, time.April, 1), cur.YearStart)
	assert.Equal(t, workforce.Date(2025, time.April, 1), cur.YearEnd)
	assert.Equal(t, 12, cur.MonthsCovered)
	assert.Equal(t, "FY25", cur.Label())
}

func TestFiscalYearStart(t *testing.T) {
	assert.Equal(t, workforce.Date(2025, time.April, 1),
		workforce.FiscalYearStart(workforce.Date(2025, time.April, 1)))
	assert.Equal(t, workforce.Date(2024, time.April, 1),
		workforce.FiscalYearStart(workforce.Date(2025, time.March, 31)))
}
