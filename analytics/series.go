/*
Package analytics computes the workforce metrics served by the API:
headcount ramp series, hires/exits series, demographic aggregates,
location splits, and fiscal-year attrition cohorts.

Every function here is stateless and read-only: it re-derives its answer
from the in-scope dataset on each call, so concurrent metric queries for
one dashboard view are safe to fan out against the same dataset.
*/
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// HEADCOUNT RAMP SERIES
// =============================================================================

// RampPoint is one period of the headcount trajectory.
type RampPoint struct {
	PeriodStart      time.Time
	Headcount        int
	OpeningHeadcount int
	RampChange       int
	RampPct          float64
}

// HeadcountSeries reconstructs the headcount trajectory over the range.
// A person counts toward a period only when present for the whole period
// (windowed test), so mid-period exits never inflate the period they
// left in. The opening value of each period is the previous period's
// headcount, seeded by one unreported leading period.
func HeadcountSeries(ds workforce.Dataset, scope workforce.Scope, g workforce.Granularity, r workforce.Range) []RampPoint {
	latest := ds.Latest(scope)
	keep := scope.EntityPredicate()

	series := g.Series(r)
	firstReported := g.Floor(r.Start)

	points := make([]RampPoint, 0, len(series))
	opening := 0
	for i, start := range series {
		headcount := workforce.CountActive(latest, start, g.Next(start), keep)
		if i > 0 && !start.Before(firstReported) {
			change := headcount - opening
			pct := 0.0
			if opening > 0 {
				pct = float64(change) / float64(opening)
			}
			points = append(points, RampPoint{
				PeriodStart:      start,
				Headcount:        headcount,
				OpeningHeadcount: opening,
				RampChange:       change,
				RampPct:          pct,
			})
		}
		opening = headcount
	}
	return points
}

// =============================================================================
// HIRES / EXITS SERIES
// =============================================================================

// FlowPoint is one period of hire and exit counts.
type FlowPoint struct {
	PeriodStart time.Time
	Hires       int
	Exits       int
}

// HiresExitsSeries counts hires from the earliest-join view (one
// canonical hire event per identity) and exits from the latest view,
// bucketed by period.
func HiresExitsSeries(ds workforce.Dataset, scope workforce.Scope, g workforce.Granularity, r workforce.Range) []FlowPoint {
	latest := ds.Latest(scope)
	earliest := ds.EarliestJoin(scope)
	keep := scope.EntityPredicate()

	first := g.Floor(r.Start)
	last := g.Floor(r.End)

	var points []FlowPoint
	for start := first; !start.After(last); start = g.Next(start) {
		hires, exits := 0, 0
		for _, rec := range earliest {
			if keep(rec) && rec.HiredIn(g, start) {
				hires++
			}
		}
		for _, rec := range latest {
			if keep(rec) && rec.ExitedInPeriod(g, start) {
				exits++
			}
		}
		points = append(points, FlowPoint{PeriodStart: start, Hires: hires, Exits: exits})
	}
	return points
}

// =============================================================================
// LOCATION HEADCOUNT
// =============================================================================

// LocationType selects which location attribute to split on.
type LocationType string

const (
	LocationPhysical LocationType = "physical"
	LocationEntity   LocationType = "entity"
	LocationPayroll  LocationType = "payroll"
)

// ParseLocationType validates the wire form; empty defaults to physical.
func ParseLocationType(s string) (LocationType, error) {
	switch s {
	case "", string(LocationPhysical):
		return LocationPhysical, nil
	case string(LocationEntity):
		return LocationEntity, nil
	case string(LocationPayroll):
		return LocationPayroll, nil
	default:
		return "", workforce.ErrInvalidLocationType
	}
}

// LocationCount is the headcount and share for one location label.
type LocationCount struct {
	Location   string
	Headcount  int
	Percentage float64
}

// LocationHeadcount splits the active-at-cutoff population by location.
// Blank labels collapse into "Unspecified"; results sort by headcount
// descending, then label.
func LocationHeadcount(ds workforce.Dataset, scope workforce.Scope, lt LocationType, cutoff time.Time) ([]LocationCount, int) {
	latest := ds.Latest(scope)
	keep := scope.EntityPredicate()

	counts := make(map[string]int)
	total := 0
	for _, rec := range latest {
		if !keep(rec) || !rec.ActiveAt(cutoff) {
			continue
		}
		label := strings.TrimSpace(locationLabel(rec, lt))
		if label == "" {
			label = "Unspecified"
		}
		counts[label]++
		total++
	}

	out := make([]LocationCount, 0, len(counts))
	for label, n := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total)
		}
		out = append(out, LocationCount{Location: label, Headcount: n, Percentage: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Headcount != out[j].Headcount {
			return out[i].Headcount > out[j].Headcount
		}
		return out[i].Location < out[j].Location
	})
	return out, total
}

func locationLabel(rec workforce.EmployeeRecord, lt LocationType) string {
	switch lt {
	case LocationEntity:
		return rec.Entity
	case LocationPayroll:
		return rec.PayrollLocation
	default:
		return rec.Location
	}
}
