package workforce

// Identity is the resolved key used to treat multiple upload-rows as the
// same employee across uploads.
type Identity string

// ResolveIdentity determines the identity key for a record:
// primary ID if present, else secondary ID, else the row's own record id
// as a surrogate. It always succeeds.
//
// The surrogate fallback guarantees every row participates in
// deduplication, at a known precision cost: two rows that both lack real
// IDs are never treated as the same employee, even when they are. This
// is an accepted data-quality limitation, not something the engine tries
// to reconcile.
func ResolveIdentity(r EmployeeRecord) Identity {
	if r.PrimaryID != "" {
		return Identity(r.PrimaryID)
	}
	if r.SecondaryID != "" {
		return Identity(r.SecondaryID)
	}
	return Identity(r.RecordID)
}
