package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// DEMOGRAPHIC AGGREGATION
// =============================================================================
// Distributional statistics over the active population, grouped by one
// dimension, with a roll-up Total row computed from the ungrouped
// population. Averages skip missing attributes (a record without a CTC
// contributes to headcount but not to avg/total CTC).

// Dimension selects the grouping attribute.
type Dimension string

const (
	ByWorkLevel Dimension = "work_level"
	ByEntity    Dimension = "entity"
)

// ActiveWindow selects which population is "active" for a demographic
// query. With Ranged set, a record counts when its employment span
// overlaps [Start, End]; otherwise the instantaneous test at End applies.
type ActiveWindow struct {
	Start  time.Time
	End    time.Time
	Ranged bool
}

func (w ActiveWindow) contains(rec workforce.EmployeeRecord) bool {
	if w.Ranged {
		if !rec.HasHireDate() || rec.HireDate.After(w.End) {
			return false
		}
		return rec.ExitDate == nil || !rec.ExitDate.Before(w.Start)
	}
	return rec.ActiveAt(w.End)
}

// GroupStats holds the raw aggregates for one group (or the total).
type GroupStats struct {
	Key         string
	Headcount   int
	TotalCTC    decimal.Decimal
	AvgCTC      *float64
	AvgAge      *float64
	AvgTenure   *float64
	FemaleCount int
	MaleCount   int
}

// GroupRow is a GroupStats plus the ratios derived against the total.
type GroupRow struct {
	GroupStats
	HeadcountPct float64
	CostPct      float64
	FemalePct    float64
}

// GenderRatio is the male/female/other split of the total population.
// "Other" is the remainder the prefix rule matched to neither.
type GenderRatio struct {
	Male   float64
	Female float64
	Other  float64
}

// DemographicsReport is the full grouped aggregation payload.
type DemographicsReport struct {
	Groups      []GroupRow
	Total       GroupRow
	GenderRatio GenderRatio
}

// Demographics aggregates the active population by the given dimension.
// Empty scopes produce a zero-filled report, never an error.
func Demographics(ds workforce.Dataset, scope workforce.Scope, dim Dimension, window ActiveWindow) DemographicsReport {
	latest := ds.Latest(scope)
	keep := scope.EntityPredicate()

	groups := make(map[string]*accumulator)
	total := &accumulator{}
	for _, rec := range latest {
		if !keep(rec) || !window.contains(rec) {
			continue
		}
		key := groupKey(rec, dim)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(rec)
		total.add(rec)
	}

	totalStats := total.stats("Total")
	totalRow := deriveRow(totalStats, totalStats)

	rows := make([]GroupRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, deriveRow(acc.stats(key), totalStats))
	}
	sortGroups(rows, dim)

	return DemographicsReport{
		Groups:      rows,
		Total:       totalRow,
		GenderRatio: genderRatio(totalStats),
	}
}

func groupKey(rec workforce.EmployeeRecord, dim Dimension) string {
	var key string
	switch dim {
	case ByEntity:
		key = rec.Entity
	default:
		key = rec.WorkLevel
	}
	if key == "" {
		return "Unspecified"
	}
	return key
}

// Work-level labels carry their own seniority ordering (L1 < L2, WL1 <
// WL2, ...), so that dimension sorts by label; entities sort by size.
func sortGroups(rows []GroupRow, dim Dimension) {
	if dim == ByWorkLevel {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Headcount != rows[j].Headcount {
			return rows[i].Headcount > rows[j].Headcount
		}
		return rows[i].Key < rows[j].Key
	})
}

func deriveRow(g, total GroupStats) GroupRow {
	row := GroupRow{GroupStats: g}
	if total.Headcount > 0 {
		row.HeadcountPct = float64(g.Headcount) / float64(total.Headcount)
	}
	if total.TotalCTC.IsPositive() {
		pct, _ := g.TotalCTC.Div(total.TotalCTC).Float64()
		row.CostPct = pct
	}
	if g.Headcount > 0 {
		row.FemalePct = float64(g.FemaleCount) / float64(g.Headcount)
	}
	return row
}

func genderRatio(total GroupStats) GenderRatio {
	if total.Headcount == 0 {
		return GenderRatio{}
	}
	other := total.Headcount - total.FemaleCount - total.MaleCount
	if other < 0 {
		other = 0
	}
	hc := float64(total.Headcount)
	return GenderRatio{
		Male:   float64(total.MaleCount) / hc,
		Female: float64(total.FemaleCount) / hc,
		Other:  float64(other) / hc,
	}
}

// accumulator folds records into running aggregates. Averages are kept
// as sum+count pairs so that missing attributes shrink the denominator
// instead of dragging the mean toward zero.
type accumulator struct {
	headcount   int
	ctcSum      decimal.Decimal
	ctcCount    int
	ageSum      float64
	ageCount    int
	tenureSum   float64
	tenureCount int
	female      int
	male        int
}

func (a *accumulator) add(rec workforce.EmployeeRecord) {
	a.headcount++
	if rec.CTC != nil {
		a.ctcSum = a.ctcSum.Add(*rec.CTC)
		a.ctcCount++
	}
	if rec.Age != nil {
		a.ageSum += *rec.Age
		a.ageCount++
	}
	if rec.TenureYears != nil {
		a.tenureSum += *rec.TenureYears
		a.tenureCount++
	}
	if workforce.IsFemale(rec.Gender) {
		a.female++
	} else if workforce.IsMale(rec.Gender) {
		a.male++
	}
}

func (a *accumulator) stats(key string) GroupStats {
	s := GroupStats{
		Key:         key,
		Headcount:   a.headcount,
		TotalCTC:    a.ctcSum,
		FemaleCount: a.female,
		MaleCount:   a.male,
	}
	if a.ctcCount > 0 {
		avg, _ := a.ctcSum.Div(decimal.NewFromInt(int64(a.ctcCount))).Float64()
		s.AvgCTC = &avg
	}
	if a.ageCount > 0 {
		avg := a.ageSum / float64(a.ageCount)
		s.AvgAge = &avg
	}
	if a.tenureCount > 0 {
		avg := a.tenureSum / float64(a.tenureCount)
		s.AvgTenure = &avg
	}
	return s
}
