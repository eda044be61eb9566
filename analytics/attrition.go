package analytics

import (
	"sort"
	"time"

	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// ATTRITION COHORTS
// =============================================================================
// Fiscal-year cohort methodology: for each of the trailing four
// April-March windows, attrition is exits over average headcount, where
// the average prefers a monthly-sampled mean over the coarser
// (start+end)/2 whenever monthly samples exist. Partial-year windows are
// annualized by 12/monthsCovered so a year-to-date observation reads as
// a full-year-equivalent rate.

// CohortRate is the annualized attrition for one fiscal window.
type CohortRate struct {
	Label        string
	AttritionPct float64
}

// EntityRate is the annualized attrition for one (entity, window) pair.
type EntityRate struct {
	Entity       string
	Label        string
	AttritionPct float64
}

// AgeTrendPoint slices one window's attrition by age band.
type AgeTrendPoint struct {
	Label     string
	Twenties  float64
	Thirties  float64
	Forties   float64
	FiftyPlus float64
}

// GenderTrendPoint slices one window's attrition by gender.
type GenderTrendPoint struct {
	Label  string
	Male   float64
	Female float64
}

// TenureTrendPoint slices one window's attrition by tenure band.
// Band membership is evaluated at the relevant instant (window boundary,
// exit date, or sampled month end), so one employee migrates across
// bands as their tenure grows.
type TenureTrendPoint struct {
	Label       string
	ZeroToSix   float64
	SixToTwelve float64
	OneToTwo    float64
	TwoToFour   float64
	FourToTen   float64
	TenPlus     float64
}

// AttritionReport is the full cohort payload: overall, per entity, and
// the three sliced trends, each ordered oldest window first.
type AttritionReport struct {
	Overall     []CohortRate
	Entities    []EntityRate
	AgeTrend    []AgeTrendPoint
	GenderTrend []GenderTrendPoint
	TenureTrend []TenureTrendPoint
}

// Attrition computes the trailing-four-fiscal-year cohort report as of
// the cutoff date. Empty scopes yield zero-valued rows for every window.
func Attrition(ds workforce.Dataset, scope workforce.Scope, cutoff time.Time) AttritionReport {
	latest := filterRecords(ds.Latest(scope), scope.EntityPredicate())
	windows := workforce.FiscalWindows(cutoff)

	report := AttritionReport{
		Overall:     make([]CohortRate, 0, len(windows)),
		AgeTrend:    make([]AgeTrendPoint, 0, len(windows)),
		GenderTrend: make([]GenderTrendPoint, 0, len(windows)),
		TenureTrend: make([]TenureTrendPoint, 0, len(windows)),
	}

	entities := entityLabels(latest)
	for _, w := range windows {
		label := w.Label()

		report.Overall = append(report.Overall, CohortRate{
			Label:        label,
			AttritionPct: annualizedRate(cohortCounts(w, latest, everyone), w.MonthsCovered),
		})

		for _, entity := range entities {
			report.Entities = append(report.Entities, EntityRate{
				Entity:       entity,
				Label:        label,
				AttritionPct: annualizedRate(cohortCounts(w, latest, inEntity(entity)), w.MonthsCovered),
			})
		}

		report.AgeTrend = append(report.AgeTrend, AgeTrendPoint{
			Label:     label,
			Twenties:  annualizedRate(cohortCounts(w, latest, inAgeBand(workforce.AgeBands[0])), w.MonthsCovered),
			Thirties:  annualizedRate(cohortCounts(w, latest, inAgeBand(workforce.AgeBands[1])), w.MonthsCovered),
			Forties:   annualizedRate(cohortCounts(w, latest, inAgeBand(workforce.AgeBands[2])), w.MonthsCovered),
			FiftyPlus: annualizedRate(cohortCounts(w, latest, inAgeBand(workforce.AgeBands[3])), w.MonthsCovered),
		})

		report.GenderTrend = append(report.GenderTrend, GenderTrendPoint{
			Label:  label,
			Male:   annualizedRate(cohortCounts(w, latest, male), w.MonthsCovered),
			Female: annualizedRate(cohortCounts(w, latest, female), w.MonthsCovered),
		})

		report.TenureTrend = append(report.TenureTrend, TenureTrendPoint{
			Label:       label,
			ZeroToSix:   annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[0])), w.MonthsCovered),
			SixToTwelve: annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[1])), w.MonthsCovered),
			OneToTwo:    annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[2])), w.MonthsCovered),
			TwoToFour:   annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[3])), w.MonthsCovered),
			FourToTen:   annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[4])), w.MonthsCovered),
			TenPlus:     annualizedRate(cohortCounts(w, latest, inTenureBand(workforce.TenureBands[5])), w.MonthsCovered),
		})
	}
	return report
}

// =============================================================================
// SLICE TESTS
// =============================================================================
// A slice test receives the instant relevant to the count being taken:
// the window boundary for start/end headcounts, the exit date for exit
// counts, and the sampled month end for monthly averages. Static slices
// (entity, age, gender) ignore it; tenure bands depend on it.

type sliceTest func(rec workforce.EmployeeRecord, ref time.Time) bool

func everyone(workforce.EmployeeRecord, time.Time) bool { return true }

func inEntity(entity string) sliceTest {
	return func(rec workforce.EmployeeRecord, _ time.Time) bool {
		return entityLabel(rec) == entity
	}
}

func inAgeBand(band workforce.AgeBand) sliceTest {
	return func(rec workforce.EmployeeRecord, _ time.Time) bool {
		return band.Contains(rec.Age)
	}
}

func male(rec workforce.EmployeeRecord, _ time.Time) bool   { return workforce.IsMale(rec.Gender) }
func female(rec workforce.EmployeeRecord, _ time.Time) bool { return workforce.IsFemale(rec.Gender) }

func inTenureBand(band workforce.TenureBand) sliceTest {
	return func(rec workforce.EmployeeRecord, ref time.Time) bool {
		return band.Contains(rec.TenureAt(ref))
	}
}

// =============================================================================
// COHORT ARITHMETIC
// =============================================================================

// cohort holds the raw counts for one (window, slice) pair.
type cohort struct {
	start      int
	end        int
	exits      int
	monthlySum float64
}

func cohortCounts(w workforce.FiscalWindow, latest []workforce.EmployeeRecord, test sliceTest) cohort {
	var c cohort
	for _, rec := range latest {
		if rec.ActiveOn(w.YearStart) && test(rec, w.YearStart) {
			c.start++
		}
		if rec.ActiveOn(w.YearEnd) && test(rec, w.YearEnd) {
			c.end++
		}
		if rec.ExitedIn(w.YearStart, w.YearEnd) && test(rec, *rec.ExitDate) {
			c.exits++
		}
	}
	for _, monthStart := range w.Months() {
		nextMonth := monthStart.AddDate(0, 1, 0)
		monthEnd := nextMonth.AddDate(0, 0, -1)
		for _, rec := range latest {
			if rec.ActiveThrough(monthStart, nextMonth) && test(rec, monthEnd) {
				c.monthlySum++
			}
		}
	}
	return c
}

// annualizedRate turns raw cohort counts into a full-year-equivalent
// attrition rate. The monthly-sampled average is the preferred
// denominator when positive; the (start+end)/2 midpoint is the
// fallback. Every division is guarded to 0.
func annualizedRate(c cohort, monthsCovered int) float64 {
	avg := float64(c.start+c.end) / 2.0
	if c.monthlySum > 0 && monthsCovered > 0 {
		avg = c.monthlySum / float64(monthsCovered)
	}
	if avg == 0 {
		return 0
	}
	rate := float64(c.exits) / avg
	if monthsCovered >= 12 {
		return rate
	}
	return rate * 12.0 / float64(monthsCovered)
}

// =============================================================================
// HELPERS
// =============================================================================

func filterRecords(records []workforce.EmployeeRecord, keep workforce.RecordPredicate) []workforce.EmployeeRecord {
	out := records[:0:0]
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func entityLabel(rec workforce.EmployeeRecord) string {
	if rec.Entity == "" {
		return "Unspecified"
	}
	return rec.Entity
}

func entityLabels(records []workforce.EmployeeRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		seen[entityLabel(rec)] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
