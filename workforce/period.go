package workforce

import (
	"fmt"
	"time"
)

// =============================================================================
// CALENDAR SERIES
// =============================================================================

// Range is a resolved query window. Start and End are dates; End is
// inclusive at period granularity.
type Range struct {
	Start time.Time
	End   time.Time
}

// Default trailing windows, measured in steps back from the current
// period floor: 11 months, 5 quarters, 9 years.
const (
	defaultMonthsBack   = 11
	defaultQuartersBack = 5
	defaultYearsBack    = 9
)

// ResolveRange fills in missing bounds with the default trailing window
// for the granularity, ending at today's period floor. A range whose end
// precedes its start is a scoping error.
func ResolveRange(g Granularity, start, end *time.Time, today time.Time) (Range, error) {
	floor := g.Floor(today)

	resolvedStart := floor
	switch g {
	case Quarterly:
		resolvedStart = ShiftMonths(floor, -defaultQuartersBack*3)
	case Yearly:
		resolvedStart = floor.AddDate(-defaultYearsBack, 0, 0)
	default:
		resolvedStart = ShiftMonths(floor, -defaultMonthsBack)
	}
	resolvedEnd := floor

	if start != nil {
		resolvedStart = DateOf(*start)
	}
	if end != nil {
		resolvedEnd = DateOf(*end)
	}
	if resolvedEnd.Before(resolvedStart) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: resolvedStart, End: resolvedEnd}, nil
}

// Series produces the ordered period-start sequence for a range: one
// extra leading period before the floored start, then every period
// through the floored end inclusive. The leading period exists so the
// first requested period has a defined opening value; callers that
// surface the series drop it after computing openings.
func (g Granularity) Series(r Range) []time.Time {
	first := g.Prev(g.Floor(r.Start))
	last := g.Floor(r.End)

	var out []time.Time
	for t := first; !t.After(last); t = g.Next(t) {
		out = append(out, t)
	}
	return out
}

// =============================================================================
// FISCAL WINDOWS
// =============================================================================
// Fiscal years run April 1 - March 31. Attrition always reports the
// trailing four fiscal years relative to a cutoff; the newest window is
// truncated at the cutoff and reported as year-to-date.

// FiscalWindow is one April-anchored reporting window.
//
// YearEnd is exclusive and never passes the day after the cutoff, so the
// current window covers [YearStart, cutoff]. FYYearEnd is where the full
// fiscal year would have ended; when YearEnd < FYYearEnd the window is a
// truncated year-to-date observation.
type FiscalWindow struct {
	YearStart     time.Time
	YearEnd       time.Time
	FYYearEnd     time.Time
	MonthsCovered int
}

// FiscalYearStart returns April 1 of the fiscal year containing the
// cutoff: the cutoff's own year from April onward, else the prior year.
func FiscalYearStart(cutoff time.Time) time.Time {
	if cutoff.Month() >= time.April {
		return Date(cutoff.Year(), time.April, 1)
	}
	return Date(cutoff.Year()-1, time.April, 1)
}

// FiscalWindows generates the trailing four fiscal windows ending at (or
// truncated by) the cutoff, oldest first.
func FiscalWindows(cutoff time.Time) []FiscalWindow {
	cutoff = DateOf(cutoff)
	currentStart := FiscalYearStart(cutoff)

	windows := make([]FiscalWindow, 0, 4)
	for offset := -3; offset <= 0; offset++ {
		yearStart := currentStart.AddDate(offset, 0, 0)
		fyEnd := yearStart.AddDate(1, 0, 0)
		yearEnd := fyEnd
		if dayAfter := cutoff.AddDate(0, 0, 1); dayAfter.Before(yearEnd) {
			yearEnd = dayAfter
		}

		months := MonthsBetweenCeil(yearStart, yearEnd)
		if months < 1 {
			months = 1
		}
		if months > 12 {
			months = 12
		}

		windows = append(windows, FiscalWindow{
			YearStart:     yearStart,
			YearEnd:       yearEnd,
			FYYearEnd:     fyEnd,
			MonthsCovered: months,
		})
	}
	return windows
}

// Label renders "FY26" for a full window and "YTD FY26" for the
// truncated current window, using the two-digit year of the fiscal year
// end.
func (w FiscalWindow) Label() string {
	yy := w.FYYearEnd.Year() % 100
	if w.YearEnd.Before(w.FYYearEnd) {
		return fmt.Sprintf("YTD FY%02d", yy)
	}
	return fmt.Sprintf("FY%02d", yy)
}

// Months returns the calendar-month start instants tiling the window,
// MonthsCovered entries. These drive the monthly-average headcount
// sampling.
func (w FiscalWindow) Months() []time.Time {
	out := make([]time.Time, 0, w.MonthsCovered)
	for i := 0; i < w.MonthsCovered; i++ {
		out = append(out, w.YearStart.AddDate(0, i, 0))
	}
	return out
}
