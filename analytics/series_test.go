package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/workforce-insights/analytics"
	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

var uploadedAt = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

// singleUpload wraps records into a dataset with one upload.
func singleUpload(records ...workforce.EmployeeRecord) workforce.Dataset {
	for i := range records {
		records[i].UploadID = "up-1"
		records[i].Seq = int64(i + 1)
		if records[i].RecordID == "" {
			records[i].RecordID = records[i].PrimaryID
		}
	}
	return workforce.Dataset{
		Records: records,
		Uploads: map[string]workforce.Upload{
			"up-1": {ID: "up-1", OrganizationID: "org", UploadedAt: uploadedAt},
		},
	}
}

func employee(id string, hire time.Time, exit *time.Time) workforce.EmployeeRecord {
	return workforce.EmployeeRecord{PrimaryID: id, Name: "Emp " + id, HireDate: hire, ExitDate: exit}
}

func datePtr(t time.Time) *time.Time { return &t }

func monthlyRange(start, end time.Time) workforce.Range {
	return workforce.Range{Start: start, End: end}
}

// =============================================================================
// HEADCOUNT RAMP
// =============================================================================

func TestHeadcountSeries_SingleHireNoExit(t *testing.T) {
	// GIVEN: One employee hired March 1st
	ds := singleUpload(employee("E1", workforce.Date(2025, time.March, 1), nil))
	r := monthlyRange(workforce.Date(2025, time.January, 1), workforce.Date(2025, time.June, 1))

	points := analytics.HeadcountSeries(ds, workforce.Scope{}, workforce.Monthly, r)

	// THEN: Six reported periods, headcount steps from 0 to 1 in March
	require.Len(t, points, 6)
	assert.Equal(t, 0, points[0].Headcount, "January")
	assert.Equal(t, 0, points[1].Headcount, "February")
	assert.Equal(t, 1, points[2].Headcount, "March")
	assert.Equal(t, 1, points[5].Headcount, "June")

	march := points[2]
	assert.Equal(t, 0, march.OpeningHeadcount)
	assert.Equal(t, 1, march.RampChange)
	assert.Equal(t, 0.0, march.RampPct, "zero opening guards the ratio")

	april := points[3]
	assert.Equal(t, 1, april.OpeningHeadcount)
	assert.Equal(t, 0, april.RampChange)
}

func TestHeadcountSeries_MidPeriodExitDropsThatPeriod(t *testing.T) {
	// GIVEN: An employee who leaves April 15th
	ds := singleUpload(employee("E1", workforce.Date(2024, time.January, 1),
		datePtr(workforce.Date(2025, time.April, 15))))
	r := monthlyRange(workforce.Date(2025, time.March, 1), workforce.Date(2025, time.May, 1))

	points := analytics.HeadcountSeries(ds, workforce.Scope{}, workforce.Monthly, r)

	// THEN: Present for all of March, absent from April onward
	require.Len(t, points, 3)
	assert.Equal(t, 1, points[0].Headcount, "March")
	assert.Equal(t, 0, points[1].Headcount, "April")
	assert.Equal(t, -1, points[1].RampChange)
	assert.Equal(t, -1.0, points[1].RampPct)
	assert.Equal(t, 0, points[2].Headcount, "May")
}

func TestHeadcountSeries_OpeningChainIsConsistent(t *testing.T) {
	// Each period's opening must equal the previous period's headcount.
	ds := singleUpload(
		employee("E1", workforce.Date(2024, time.November, 1), nil),
		employee("E2", workforce.Date(2025, time.January, 1), nil),
		employee("E3", workforce.Date(2025, time.February, 1),
			datePtr(workforce.Date(2025, time.March, 10))),
	)
	r := monthlyRange(workforce.Date(2024, time.December, 1), workforce.Date(2025, time.May, 1))

	points := analytics.HeadcountSeries(ds, workforce.Scope{}, workforce.Monthly, r)
	require.NotEmpty(t, points)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Headcount, points[i].OpeningHeadcount,
			"opening of %s", points[i].PeriodStart)
	}
}

// =============================================================================
// HIRES / EXITS
// =============================================================================

func TestHiresExitsSeries_BucketsByPeriod(t *testing.T) {
	ds := singleUpload(
		employee("E1", workforce.Date(2025, time.March, 5), nil),
		employee("E2", workforce.Date(2025, time.March, 20), nil),
		employee("E3", workforce.Date(2024, time.June, 1),
			datePtr(workforce.Date(2025, time.April, 10))),
	)
	r := monthlyRange(workforce.Date(2025, time.March, 1), workforce.Date(2025, time.April, 30))

	points := analytics.HiresExitsSeries(ds, workforce.Scope{}, workforce.Monthly, r)

	require.Len(t, points, 2)
	assert.Equal(t, 2, points[0].Hires, "March hires")
	assert.Equal(t, 0, points[0].Exits)
	assert.Equal(t, 0, points[1].Hires)
	assert.Equal(t, 1, points[1].Exits, "April exit")
}

func TestHiresExitsSeries_HireDateDriftDoesNotInflateHires(t *testing.T) {
	// GIVEN: The same person in two uploads with a drifted hire date
	early := employee("E1", workforce.Date(2025, time.February, 1), nil)
	early.UploadID = "up-1"
	early.Seq = 1
	early.RecordID = "r1"
	drifted := employee("E1", workforce.Date(2025, time.March, 1), nil)
	drifted.UploadID = "up-2"
	drifted.Seq = 2
	drifted.RecordID = "r2"

	ds := workforce.Dataset{
		Records: []workforce.EmployeeRecord{early, drifted},
		Uploads: map[string]workforce.Upload{
			"up-1": {ID: "up-1", OrganizationID: "org", UploadedAt: uploadedAt},
			"up-2": {ID: "up-2", OrganizationID: "org", UploadedAt: uploadedAt.Add(time.Hour)},
		},
	}
	r := monthlyRange(workforce.Date(2025, time.February, 1), workforce.Date(2025, time.March, 31))

	points := analytics.HiresExitsSeries(ds, workforce.Scope{}, workforce.Monthly, r)

	// THEN: One hire total, in the earliest month
	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].Hires, "February")
	assert.Equal(t, 0, points[1].Hires, "March")
}

// =============================================================================
// LOCATION HEADCOUNT
// =============================================================================

func TestLocationHeadcount_GroupsAndSorts(t *testing.T) {
	a := employee("E1", workforce.Date(2024, time.January, 1), nil)
	a.Location = "Bangalore"
	b := employee("E2", workforce.Date(2024, time.January, 1), nil)
	b.Location = "Bangalore"
	c := employee("E3", workforce.Date(2024, time.January, 1), nil)
	c.Location = "  " // whitespace only
	gone := employee("E4", workforce.Date(2024, time.January, 1),
		datePtr(workforce.Date(2024, time.June, 1)))
	gone.Location = "Mumbai"

	ds := singleUpload(a, b, c, gone)
	cutoff := workforce.Date(2025, time.January, 1)

	counts, total := analytics.LocationHeadcount(ds, workforce.Scope{}, analytics.LocationPhysical, cutoff)

	// THEN: The exited employee is excluded; blank label normalizes
	assert.Equal(t, 3, total)
	require.Len(t, counts, 2)
	assert.Equal(t, "Bangalore", counts[0].Location)
	assert.Equal(t, 2, counts[0].Headcount)
	assert.Equal(t, "Unspecified", counts[1].Location)
	assert.Equal(t, 1, counts[1].Headcount)
}

func TestParseLocationType(t *testing.T) {
	lt, err := analytics.ParseLocationType("")
	assert.NoError(t, err)
	assert.Equal(t, analytics.LocationPhysical, lt, "empty defaults to physical")

	_, err = analytics.ParseLocationType("galactic")
	assert.ErrorIs(t, err, workforce.ErrInvalidLocationType)
}
