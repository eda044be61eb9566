package workforce

import "sort"

// =============================================================================
// SNAPSHOT SELECTION
// =============================================================================
// The "latest" view answers: which single row is authoritative for each
// employee right now, within a scope? The "earliest join" view answers:
// what is the canonical hire event for each employee, protecting against
// hire dates drifting across correcting uploads?
//
// Both are a single linear scan keeping a best-so-far record per
// identity, replacing the relational partition/rank idiom.

// Dataset is the full in-scope record history handed to the engine by
// the store. The engine never mutates it.
type Dataset struct {
	Records []EmployeeRecord
	Uploads map[string]Upload // keyed by upload id
}

// Latest returns at most one record per identity: the one from the most
// recently uploaded in-scope batch. Ties on upload timestamp break by
// record insertion order, last-inserted-wins. This tie-break is an
// explicit rule, not an accident of iteration order.
func (d Dataset) Latest(scope Scope) []EmployeeRecord {
	inScope := scope.UploadPredicate()
	best := make(map[Identity]EmployeeRecord)

	for _, rec := range d.Records {
		up, ok := d.Uploads[rec.UploadID]
		if !ok || !inScope(up) {
			continue
		}
		id := ResolveIdentity(rec)
		cur, seen := best[id]
		if !seen {
			best[id] = rec
			continue
		}
		curUp := d.Uploads[cur.UploadID]
		if up.UploadedAt.After(curUp.UploadedAt) ||
			(up.UploadedAt.Equal(curUp.UploadedAt) && rec.Seq > cur.Seq) {
			best[id] = rec
		}
	}

	return sortedBySeq(best)
}

// EarliestJoin returns at most one record per identity: the in-scope row
// with the earliest hire date, ties broken by insertion order ascending.
// Rows without a hire date never participate.
func (d Dataset) EarliestJoin(scope Scope) []EmployeeRecord {
	inScope := scope.UploadPredicate()
	best := make(map[Identity]EmployeeRecord)

	for _, rec := range d.Records {
		if !rec.HasHireDate() {
			continue
		}
		up, ok := d.Uploads[rec.UploadID]
		if !ok || !inScope(up) {
			continue
		}
		id := ResolveIdentity(rec)
		cur, seen := best[id]
		if !seen {
			best[id] = rec
			continue
		}
		if rec.HireDate.Before(cur.HireDate) ||
			(rec.HireDate.Equal(cur.HireDate) && rec.Seq < cur.Seq) {
			best[id] = rec
		}
	}

	return sortedBySeq(best)
}

func sortedBySeq(m map[Identity]EmployeeRecord) []EmployeeRecord {
	out := make([]EmployeeRecord, 0, len(m))
	for _, rec := range m {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
