/*
Package workforce provides the core workforce state-reconstruction engine.

PURPOSE:
  This package contains the types and algorithms for reconstructing an
  organization's workforce state at arbitrary points in time from an
  append-only history of roster uploads. Everything here is pure
  computation over in-memory record sets: identity resolution, snapshot
  selection, period generation, and point-in-time activity tests.

KEY CONCEPTS IN THIS FILE (types.go):
  - EmployeeRecord: One roster row as it appeared in one upload
  - Upload: A batch ingestion event (org + optional reporting month)
  - Age/tenure bands and gender classification used by the slicing layer

DESIGN PRINCIPLES:
  1. Append-only: Records are never mutated; corrections arrive as a new
     Upload, and recency-based deduplication picks the winner.
  2. Null tolerance: Optional attributes are pointers; every aggregate
     skips what is missing instead of failing.
  3. Precision: Compensation uses decimal.Decimal, never float64.

SEE ALSO:
  - identity.go: Identity resolution across uploads
  - snapshot.go: Latest / earliest-join selection
  - state.go: Point-in-time activity tests
  - period.go: Calendar and fiscal period generation
*/
package workforce

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CORE ENTITIES
// =============================================================================

// Organization is a tenant whose rosters are analyzed.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ReportingMonth pins a set of uploads to one dashboard generation.
// Key is "YYYY-MM"; Label is the human form ("January 2026").
type ReportingMonth struct {
	ID    string
	Key   string
	Label string
}

// Upload is a batch ingestion event. Uploads accumulate; there is no
// single "current" upload. Recency is always evaluated relative to a
// scope (organization, and optionally one reporting month).
type Upload struct {
	ID             string
	OrganizationID string
	MonthID        string // optional reporting-month reference
	UploadedAt     time.Time
}

// EmployeeRecord is one roster row per (employee, upload). Immutable
// once created. A zero HireDate means the upload did not carry one; a
// nil ExitDate means the employee was still active as of that upload.
type EmployeeRecord struct {
	RecordID string
	Seq      int64 // store insertion order, tie-break for dedup
	UploadID string

	PrimaryID   string // persistent employee ID (preferred identity key)
	SecondaryID string // legacy/alternate employee ID
	Name        string

	HireDate time.Time
	ExitDate *time.Time

	Entity          string
	Gender          string
	Age             *float64
	TenureYears     *float64
	WorkLevel       string
	CTC             *decimal.Decimal
	Location        string
	PayrollLocation string
	Email           string
	Designation     string
}

// HasHireDate reports whether the row carries a hire date at all.
func (r EmployeeRecord) HasHireDate() bool { return !r.HireDate.IsZero() }

// =============================================================================
// GENDER CLASSIFICATION
// =============================================================================
// Source data is free-form ("M", "Male", "female", ...). Classification
// is a case-insensitive prefix match; anything else lands in the "other"
// remainder computed at the demographics layer.

func IsMale(gender string) bool {
	return len(gender) > 0 && strings.HasPrefix(strings.ToUpper(gender), "M")
}

func IsFemale(gender string) bool {
	return len(gender) > 0 && strings.HasPrefix(strings.ToUpper(gender), "F")
}

// =============================================================================
// AGE BANDS
// =============================================================================

// AgeBand is a half-open age interval [Lower, Upper). Upper == 0 means
// open-ended. A record with no age belongs to no band.
type AgeBand struct {
	Key   string
	Lower float64
	Upper float64
}

var AgeBands = []AgeBand{
	{Key: "20-30", Lower: 20, Upper: 30},
	{Key: "30-40", Lower: 30, Upper: 40},
	{Key: "40-50", Lower: 40, Upper: 50},
	{Key: "50+", Lower: 50},
}

func (b AgeBand) Contains(age *float64) bool {
	if age == nil {
		return false
	}
	if *age < b.Lower {
		return false
	}
	return b.Upper == 0 || *age < b.Upper
}

// =============================================================================
// TENURE BANDS
// =============================================================================

// TenureBand is a half-open interval of whole months [Lower, Upper).
// Upper == 0 means open-ended. Tenure is always measured relative to a
// reference instant, so band membership is time-dependent.
type TenureBand struct {
	Key   string
	Lower int
	Upper int
}

var TenureBands = []TenureBand{
	{Key: "0-6m", Lower: 0, Upper: 6},
	{Key: "6-12m", Lower: 6, Upper: 12},
	{Key: "1-2y", Lower: 12, Upper: 24},
	{Key: "2-4y", Lower: 24, Upper: 48},
	{Key: "4-10y", Lower: 48, Upper: 120},
	{Key: "10y+", Lower: 120},
}

func (b TenureBand) Contains(months int) bool {
	if months < b.Lower {
		return false
	}
	return b.Upper == 0 || months < b.Upper
}

// TenureAt returns the record's whole-month tenure at the reference
// instant, floored and never negative. Records without a hire date have
// zero tenure everywhere.
func (r EmployeeRecord) TenureAt(ref time.Time) int {
	if !r.HasHireDate() {
		return 0
	}
	return TenureMonths(r.HireDate, ref)
}
