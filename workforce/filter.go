package workforce

// =============================================================================
// SCOPE PREDICATES
// =============================================================================
// Query scoping is a composition of small boolean predicates combined
// with logical AND, evaluated against in-memory uploads and records.
// There is deliberately no query-string assembly anywhere in the engine.

// UploadPredicate filters uploads (and therefore every record they carry).
type UploadPredicate func(Upload) bool

// RecordPredicate filters individual records after snapshot selection.
type RecordPredicate func(EmployeeRecord) bool

// ByOrganization keeps uploads belonging to one organization.
// An empty id keeps everything.
func ByOrganization(orgID string) UploadPredicate {
	return func(u Upload) bool { return orgID == "" || u.OrganizationID == orgID }
}

// ByMonth keeps uploads pinned to one reporting month. An empty id keeps
// everything, which means "most recent upload wins" downstream.
func ByMonth(monthID string) UploadPredicate {
	return func(u Upload) bool { return monthID == "" || u.MonthID == monthID }
}

// AndUploads combines upload predicates with logical AND.
func AndUploads(preds ...UploadPredicate) UploadPredicate {
	return func(u Upload) bool {
		for _, p := range preds {
			if !p(u) {
				return false
			}
		}
		return true
	}
}

// ByEntities keeps records whose entity label is in the allow-list.
// An empty list keeps everything.
func ByEntities(entities []string) RecordPredicate {
	if len(entities) == 0 {
		return func(EmployeeRecord) bool { return true }
	}
	allowed := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if e != "" {
			allowed[e] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return func(EmployeeRecord) bool { return true }
	}
	return func(r EmployeeRecord) bool {
		_, ok := allowed[r.Entity]
		return ok
	}
}

// Scope is the query-time parameter set shared by every metric.
type Scope struct {
	OrganizationID string   // empty = all organizations
	MonthID        string   // empty = dedupe across all of the org's uploads
	Entities       []string // empty = all entities
}

// UploadPredicate returns the composed org+month filter for this scope.
func (s Scope) UploadPredicate() UploadPredicate {
	return AndUploads(ByOrganization(s.OrganizationID), ByMonth(s.MonthID))
}

// EntityPredicate returns the entity allow-list filter for this scope.
func (s Scope) EntityPredicate() RecordPredicate {
	return ByEntities(s.Entities)
}
