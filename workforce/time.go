package workforce

import (
	"time"
)

// =============================================================================
// DATE HELPERS
// =============================================================================
// All engine dates are UTC midnights. The store persists "2006-01-02"
// strings, so nothing below ever carries a wall-clock component.

// Date builds a UTC midnight instant.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates any instant to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return Date(t.Year(), t.Month(), t.Day())
}

// Today returns the current UTC calendar day.
func Today() time.Time { return DateOf(time.Now()) }

// =============================================================================
// GRANULARITY
// =============================================================================

// Granularity is the calendar step for time-series metrics.
type Granularity string

const (
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
)

// ParseGranularity accepts the wire form; empty defaults to monthly.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "", string(Monthly):
		return Monthly, nil
	case string(Quarterly):
		return Quarterly, nil
	case string(Yearly):
		return Yearly, nil
	default:
		return "", ErrInvalidGranularity
	}
}

// Floor truncates a date to the start of its period.
func (g Granularity) Floor(t time.Time) time.Time {
	switch g {
	case Quarterly:
		m := ((int(t.Month())-1)/3)*3 + 1
		return Date(t.Year(), time.Month(m), 1)
	case Yearly:
		return Date(t.Year(), time.January, 1)
	default:
		return Date(t.Year(), t.Month(), 1)
	}
}

// Next advances a period start by one step.
func (g Granularity) Next(t time.Time) time.Time {
	switch g {
	case Quarterly:
		return t.AddDate(0, 3, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// Prev steps a period start back by one step.
func (g Granularity) Prev(t time.Time) time.Time {
	switch g {
	case Quarterly:
		return t.AddDate(0, -3, 0)
	case Yearly:
		return t.AddDate(-1, 0, 0)
	default:
		return t.AddDate(0, -1, 0)
	}
}

// ShiftMonths moves a date by whole months, clamping the day to the
// target month's length (Jan 31 - 1 month = Dec 31, Mar 31 - 1 month =
// Feb 28/29). time.AddDate would overflow into the next month instead.
func ShiftMonths(t time.Time, months int) time.Time {
	year := t.Year() + (int(t.Month())-1+months)/12
	month := (int(t.Month())-1+months)%12 + 1
	if month <= 0 {
		month += 12
		year--
	}
	day := t.Day()
	if max := daysInMonth(year, time.Month(month)); day > max {
		day = max
	}
	return Date(year, time.Month(month), day)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// TenureMonths is the whole-month difference between a hire date and a
// reference instant, floored and never negative. A hire on the 15th has
// one month of tenure on the 15th of the next month, not the 1st.
func TenureMonths(hire, ref time.Time) int {
	months := (ref.Year()-hire.Year())*12 + int(ref.Month()) - int(hire.Month())
	if ref.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthsBetweenCeil counts the calendar months needed to cover
// [start, end), rounding any partial month up. Both ends are dates.
func MonthsBetweenCeil(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}
	n := 0
	for t := start; t.Before(end); t = t.AddDate(0, 1, 0) {
		n++
	}
	return n
}
