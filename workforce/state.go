package workforce

import "time"

// =============================================================================
// POINT-IN-TIME STATE
// =============================================================================
// Three activity tests with deliberately different boundary behavior.
// The differences are one-day edge cases, but each is load-bearing:
// a person who exits mid-period must not be counted as present for the
// full period, while a person exiting exactly on a window boundary must
// land in exactly one window.

// ActiveAt is the instantaneous test: hired on or before t and not yet
// exited as of t. An exit dated exactly t means the person is already
// gone at t. Used for cutoff-style headcounts (demographics, location).
func (r EmployeeRecord) ActiveAt(t time.Time) bool {
	if !r.HasHireDate() || r.HireDate.After(t) {
		return false
	}
	return r.ExitDate == nil || r.ExitDate.After(t)
}

// ActiveOn is the boundary test used for fiscal-window start/end
// headcounts: an exit dated exactly t still counts as present on t, so
// that the same exit shows up in the window's exit count rather than
// silently shrinking both boundary headcounts.
func (r EmployeeRecord) ActiveOn(t time.Time) bool {
	if !r.HasHireDate() || r.HireDate.After(t) {
		return false
	}
	return r.ExitDate == nil || !r.ExitDate.Before(t)
}

// ActiveThrough is the windowed test: hired by the period start and
// surviving through the period end (exclusive). Used for the ramp series
// and monthly-average sampling, where presence means presence for the
// whole bucket.
func (r EmployeeRecord) ActiveThrough(start, end time.Time) bool {
	if !r.HasHireDate() || r.HireDate.After(start) {
		return false
	}
	return r.ExitDate == nil || !r.ExitDate.Before(end)
}

// ExitedIn reports whether the record's exit falls in [start, end).
func (r EmployeeRecord) ExitedIn(start, end time.Time) bool {
	if r.ExitDate == nil {
		return false
	}
	return !r.ExitDate.Before(start) && r.ExitDate.Before(end)
}

// HiredIn reports whether the record's hire date truncates to the given
// period start at the given granularity.
func (r EmployeeRecord) HiredIn(g Granularity, periodStart time.Time) bool {
	return r.HasHireDate() && g.Floor(r.HireDate).Equal(periodStart)
}

// ExitedInPeriod reports whether the record's exit date truncates to the
// given period start at the given granularity.
func (r EmployeeRecord) ExitedInPeriod(g Granularity, periodStart time.Time) bool {
	return r.ExitDate != nil && g.Floor(*r.ExitDate).Equal(periodStart)
}

// CountActive counts records passing the windowed test for the period
// beginning at start.
func CountActive(records []EmployeeRecord, start, end time.Time, keep RecordPredicate) int {
	n := 0
	for _, r := range records {
		if keep(r) && r.ActiveThrough(start, end) {
			n++
		}
	}
	return n
}
