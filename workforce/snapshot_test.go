package workforce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

var (
	t0 = time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	t1 = t0.Add(24 * time.Hour)
)

func dataset(uploads []workforce.Upload, records []workforce.EmployeeRecord) workforce.Dataset {
	m := make(map[string]workforce.Upload, len(uploads))
	for _, up := range uploads {
		m[up.ID] = up
	}
	return workforce.Dataset{Records: records, Uploads: m}
}

func record(seq int64, uploadID, primaryID string, hire time.Time) workforce.EmployeeRecord {
	return workforce.EmployeeRecord{
		RecordID:  primaryID + "-" + uploadID,
		Seq:       seq,
		UploadID:  uploadID,
		PrimaryID: primaryID,
		Name:      "Employee " + primaryID,
		HireDate:  hire,
	}
}

// =============================================================================
// LATEST SNAPSHOT
// =============================================================================

func TestLatest_MostRecentUploadWins(t *testing.T) {
	// GIVEN: The same employee in two uploads, the newer one marking an exit
	hire := workforce.Date(2023, time.June, 1)
	exit := workforce.Date(2025, time.January, 5)

	old := record(1, "up-old", "E1", hire)
	corrected := record(2, "up-new", "E1", hire)
	corrected.ExitDate = &exit

	ds := dataset(
		[]workforce.Upload{
			{ID: "up-old", OrganizationID: "org", UploadedAt: t0},
			{ID: "up-new", OrganizationID: "org", UploadedAt: t1},
		},
		[]workforce.EmployeeRecord{old, corrected},
	)

	// WHEN: Taking the latest snapshot
	latest := ds.Latest(workforce.Scope{OrganizationID: "org"})

	// THEN: Exactly one record survives, from the newer upload
	require.Len(t, latest, 1)
	assert.Equal(t, "up-new", latest[0].UploadID)
	require.NotNil(t, latest[0].ExitDate)
}

func TestLatest_TimestampTieBreaksByInsertionOrder(t *testing.T) {
	// GIVEN: Two rows for one employee in the same upload
	hire := workforce.Date(2024, time.March, 1)
	first := record(10, "up", "E1", hire)
	second := record(11, "up", "E1", hire)
	second.Name = "Corrected Name"

	ds := dataset(
		[]workforce.Upload{{ID: "up", OrganizationID: "org", UploadedAt: t0}},
		[]workforce.EmployeeRecord{first, second},
	)

	latest := ds.Latest(workforce.Scope{OrganizationID: "org"})

	// THEN: The later insertion wins
	require.Len(t, latest, 1)
	assert.Equal(t, "Corrected Name", latest[0].Name)
}

func TestLatest_ScopeFiltersUploads(t *testing.T) {
	hire := workforce.Date(2024, time.March, 1)
	ours := record(1, "up-a", "E1", hire)
	theirs := record(2, "up-b", "E2", hire)

	ds := dataset(
		[]workforce.Upload{
			{ID: "up-a", OrganizationID: "org-a", UploadedAt: t0},
			{ID: "up-b", OrganizationID: "org-b", UploadedAt: t0},
		},
		[]workforce.EmployeeRecord{ours, theirs},
	)

	latest := ds.Latest(workforce.Scope{OrganizationID: "org-a"})
	require.Len(t, latest, 1)
	assert.Equal(t, "E1", latest[0].PrimaryID)

	// An unscoped query sees both organizations
	assert.Len(t, ds.Latest(workforce.Scope{}), 2)
}

func TestLatest_IdentityFallsBackThroughIDs(t *testing.T) {
	// GIVEN: One row keyed by secondary id only and one with no ids at all
	hire := workforce.Date(2024, time.March, 1)
	bySecondary := workforce.EmployeeRecord{
		RecordID: "r1", Seq: 1, UploadID: "up", SecondaryID: "OLD-7", HireDate: hire,
	}
	anonymous := workforce.EmployeeRecord{
		RecordID: "r2", Seq: 2, UploadID: "up", HireDate: hire,
	}

	ds := dataset(
		[]workforce.Upload{{ID: "up", OrganizationID: "org", UploadedAt: t0}},
		[]workforce.EmployeeRecord{bySecondary, anonymous},
	)

	// THEN: They remain distinct people (record id is the last resort key)
	assert.Len(t, ds.Latest(workforce.Scope{OrganizationID: "org"}), 2)
}

// =============================================================================
// EARLIEST JOIN
// =============================================================================

func TestEarliestJoin_PicksEarliestHireAcrossUploads(t *testing.T) {
	// GIVEN: Hire date drifting later in a correcting upload
	early := record(1, "up-old", "E1", workforce.Date(2020, time.January, 15))
	drifted := record(2, "up-new", "E1", workforce.Date(2021, time.June, 1))

	ds := dataset(
		[]workforce.Upload{
			{ID: "up-old", OrganizationID: "org", UploadedAt: t0},
			{ID: "up-new", OrganizationID: "org", UploadedAt: t1},
		},
		[]workforce.EmployeeRecord{early, drifted},
	)

	joins := ds.EarliestJoin(workforce.Scope{OrganizationID: "org"})

	// THEN: The canonical hire event is the earliest one, regardless of
	// which upload is newer
	require.Len(t, joins, 1)
	assert.Equal(t, workforce.Date(2020, time.January, 15), joins[0].HireDate)
}

func TestEarliestJoin_SkipsRecordsWithoutHireDate(t *testing.T) {
	noHire := workforce.EmployeeRecord{RecordID: "r1", Seq: 1, UploadID: "up", PrimaryID: "E1"}

	ds := dataset(
		[]workforce.Upload{{ID: "up", OrganizationID: "org", UploadedAt: t0}},
		[]workforce.EmployeeRecord{noHire},
	)

	assert.Empty(t, ds.EarliestJoin(workforce.Scope{OrganizationID: "org"}))
}
