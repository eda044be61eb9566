/*
errors.go - Centralized error types for the engine

All sentinel errors in one place. The API layer maps these onto HTTP
status codes via the classification helpers; everything else wraps them
with context using fmt.Errorf("...: %w", err).
*/
package workforce

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a query range ends before it starts.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrInvalidGranularity is returned for an unknown granularity value.
	ErrInvalidGranularity = errors.New("invalid granularity: use monthly, quarterly, or yearly")

	// ErrInvalidLocationType is returned for an unknown location dimension.
	ErrInvalidLocationType = errors.New("invalid location type: use physical, entity, or payroll")

	// ErrMonthNotFound is returned when a reporting-month key resolves to
	// no known month.
	ErrMonthNotFound = errors.New("reporting month not found")

	// ErrOrganizationNotFound is returned when a referenced organization
	// doesn't exist.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrUploadNotFound is returned when a referenced upload doesn't exist.
	ErrUploadNotFound = errors.New("upload not found")

	// ErrEmployeeNotFound is returned when a referenced employee record
	// doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// (4xx-equivalent). Empty scopes are never errors; they produce empty
// results.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidGranularity) ||
		errors.Is(err, ErrInvalidLocationType)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMonthNotFound) ||
		errors.Is(err, ErrOrganizationNotFound) ||
		errors.Is(err, ErrUploadNotFound) ||
		errors.Is(err, ErrEmployeeNotFound)
}
