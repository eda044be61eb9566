/*
handlers.go - HTTP API handlers for the workforce analytics engine

PURPOSE:
  Exposes the analytics engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Analytics:
    GET /api/analytics/headcount-ramp        Period headcount with ramp deltas
    GET /api/analytics/hires-exits           Hires and exits per period
    GET /api/analytics/demographics          Work-level breakdown + totals
    GET /api/analytics/demographics/entities Per-entity breakdown
    GET /api/analytics/location-headcount    Active headcount by location axis
    GET /api/analytics/attrition             Fiscal-year cohort attrition

  Organizations:
    GET    /api/organizations       List tenants
    POST   /api/organizations       Create tenant
    GET    /api/organizations/{id}  Get tenant
    DELETE /api/organizations/{id}  Delete tenant and all its data

  Uploads:
    POST   /api/uploads         Ingest a roster (JSON rows or CSV)
    DELETE /api/uploads/{id}    Delete an upload and its records

  Employees:
    GET /api/employees/search   Deduplicated roster search
    GET /api/employees/{id}     Single record profile

SCOPE RESOLUTION:
  Every analytics endpoint accepts organization_id and month_key. An
  explicit month_key must exist in the registry (404 otherwise). When
  only organization_id is given, the scope defaults to the month of the
  organization's most recent upload.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, end before start
  - 404: Unknown month key, organization, upload, or employee
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/workforce-insights/analytics"
	"github.com/warp/workforce-insights/ingest"
	"github.com/warp/workforce-insights/store/sqlite"
	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// analyticsScope is the fully resolved request scope shared by the
// analytics handlers.
type analyticsScope struct {
	Scope       workforce.Scope
	Granularity workforce.Granularity
	Range       workforce.Range
	MonthKey    *string

	// Ranged marks that the caller passed an explicit start or end, which
	// switches demographics from point-in-time to window-overlap counting.
	Ranged bool
}

// resolveScope parses organization_id and month_key into a store scope.
// An explicit month_key that is not registered is a 404; with only an
// organization the scope pins to that org's most recent upload month.
func (h *Handler) resolveScope(r *http.Request) (workforce.Scope, *string, error) {
	scope := workforce.Scope{
		OrganizationID: r.URL.Query().Get("organization_id"),
		Entities:       queryList(r, "entities"),
	}

	if key := r.URL.Query().Get("month_key"); key != "" {
		month, err := h.Store.GetReportingMonthByKey(r.Context(), key)
		if err != nil {
			return scope, nil, err
		}
		scope.MonthID = month.ID
		return scope, &month.Key, nil
	}

	if scope.OrganizationID != "" {
		month, err := h.Store.LatestUploadMonth(r.Context(), scope.OrganizationID)
		if err != nil {
			return scope, nil, err
		}
		if month != nil {
			scope.MonthID = month.ID
			return scope, &month.Key, nil
		}
	}
	return scope, nil, nil
}

// resolveAnalytics parses the shared analytics query surface. On failure
// it writes the error response and reports ok=false.
func (h *Handler) resolveAnalytics(w http.ResponseWriter, r *http.Request) (analyticsScope, bool) {
	var out analyticsScope

	scope, monthKey, err := h.resolveScope(r)
	if err != nil {
		writeDomainError(w, "Failed to resolve scope", err)
		return out, false
	}

	g, err := workforce.ParseGranularity(r.URL.Query().Get("granularity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid granularity", err)
		return out, false
	}

	start, ok := dateParam(w, r, "start")
	if !ok {
		return out, false
	}
	end, ok := dateParam(w, r, "end")
	if !ok {
		return out, false
	}

	rng, err := workforce.ResolveRange(g, start, end, workforce.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return out, false
	}

	out = analyticsScope{
		Scope:       scope,
		Granularity: g,
		Range:       rng,
		MonthKey:    monthKey,
		Ranged:      start != nil || end != nil,
	}
	return out, true
}

// =============================================================================
// ANALYTICS HANDLERS
// =============================================================================

// HeadcountRamp returns headcount per period with opening-balance deltas.
func (h *Handler) HeadcountRamp(w http.ResponseWriter, r *http.Request) {
	as, ok := h.resolveAnalytics(w, r)
	if !ok {
		return
	}

	ds, err := h.Store.Dataset(r.Context(), as.Scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	points := analytics.HeadcountSeries(ds, as.Scope, as.Granularity, as.Range)
	writeJSON(w, http.StatusOK, RampResponse{
		Granularity: string(as.Granularity),
		Start:       as.Range.Start.Format(dateLayout),
		End:         as.Range.End.Format(dateLayout),
		MonthKey:    as.MonthKey,
		Points:      toRampDTOs(points),
	})
}

// HiresExits returns hires and exits per period.
func (h *Handler) HiresExits(w http.ResponseWriter, r *http.Request) {
	as, ok := h.resolveAnalytics(w, r)
	if !ok {
		return
	}

	ds, err := h.Store.Dataset(r.Context(), as.Scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	points := analytics.HiresExitsSeries(ds, as.Scope, as.Granularity, as.Range)
	writeJSON(w, http.StatusOK, FlowResponse{
		Granularity: string(as.Granularity),
		Start:       as.Range.Start.Format(dateLayout),
		End:         as.Range.End.Format(dateLayout),
		MonthKey:    as.MonthKey,
		Points:      toFlowDTOs(points),
	})
}

// Demographics returns the work-level breakdown with a closing Total row.
func (h *Handler) Demographics(w http.ResponseWriter, r *http.Request) {
	as, ok := h.resolveAnalytics(w, r)
	if !ok {
		return
	}

	ds, err := h.Store.Dataset(r.Context(), as.Scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	window := analytics.ActiveWindow{Start: as.Range.Start, End: as.Range.End, Ranged: as.Ranged}
	report := analytics.Demographics(ds, as.Scope, analytics.ByWorkLevel, window)
	writeJSON(w, http.StatusOK, DemographicsResponse{
		Granularity: string(as.Granularity),
		Start:       as.Range.Start.Format(dateLayout),
		End:         as.Range.End.Format(dateLayout),
		MonthKey:    as.MonthKey,
		Averages: AveragesDTO{
			CTC:    report.Total.AvgCTC,
			Age:    report.Total.AvgAge,
			Tenure: report.Total.AvgTenure,
		},
		GenderRatio: GenderRatioDTO{
			Male:   report.GenderRatio.Male,
			Female: report.GenderRatio.Female,
			Other:  report.GenderRatio.Other,
		},
		Worklevels: toWorklevelDTOs(report),
	})
}

// EntityDemographics returns the per-entity breakdown.
func (h *Handler) EntityDemographics(w http.ResponseWriter, r *http.Request) {
	as, ok := h.resolveAnalytics(w, r)
	if !ok {
		return
	}

	ds, err := h.Store.Dataset(r.Context(), as.Scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	window := analytics.ActiveWindow{Start: as.Range.Start, End: as.Range.End, Ranged: as.Ranged}
	report := analytics.Demographics(ds, as.Scope, analytics.ByEntity, window)
	writeJSON(w, http.StatusOK, EntityDemographicsResponse{
		Granularity: string(as.Granularity),
		Start:       as.Range.Start.Format(dateLayout),
		End:         as.Range.End.Format(dateLayout),
		MonthKey:    as.MonthKey,
		Entities:    toEntityRowDTOs(report),
	})
}

// LocationHeadcount groups active headcount by a location axis as of a
// cutoff date.
func (h *Handler) LocationHeadcount(w http.ResponseWriter, r *http.Request) {
	lt, err := analytics.ParseLocationType(r.URL.Query().Get("location_type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported location type. Use physical, entity, or payroll.", err)
		return
	}

	scope, monthKey, err := h.resolveScope(r)
	if err != nil {
		writeDomainError(w, "Failed to resolve scope", err)
		return
	}

	cutoffPtr, ok := dateParam(w, r, "cutoff")
	if !ok {
		return
	}
	cutoff := workforce.Today()
	if cutoffPtr != nil {
		cutoff = *cutoffPtr
	}

	ds, err := h.Store.Dataset(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	counts, total := analytics.LocationHeadcount(ds, scope, lt, cutoff)
	locations := make([]LocationDTO, len(counts))
	for i, c := range counts {
		locations[i] = LocationDTO{Location: c.Location, Headcount: c.Headcount, Percentage: c.Percentage}
	}
	writeJSON(w, http.StatusOK, LocationHeadcountResponse{
		LocationType: string(lt),
		Cutoff:       cutoff.Format(dateLayout),
		MonthKey:     monthKey,
		Total:        total,
		Locations:    locations,
	})
}

// Attrition returns the fiscal-year cohort attrition report. The cutoff
// is the resolved end of the requested range.
func (h *Handler) Attrition(w http.ResponseWriter, r *http.Request) {
	as, ok := h.resolveAnalytics(w, r)
	if !ok {
		return
	}

	ds, err := h.Store.Dataset(r.Context(), as.Scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	report := analytics.Attrition(ds, as.Scope, as.Range.End)
	writeJSON(w, http.StatusOK, toAttritionResponse(report, as.MonthKey))
}

// =============================================================================
// ORGANIZATION HANDLERS
// =============================================================================

// ListOrganizations returns all organizations.
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Store.ListOrganizations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list organizations", err)
		return
	}

	dtos := make([]OrganizationDTO, len(orgs))
	for i, o := range orgs {
		dtos[i] = OrganizationDTO{
			ID:        o.ID,
			Name:      o.Name,
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetOrganization returns a single organization.
func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	org, err := h.Store.GetOrganization(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get organization", err)
		return
	}
	if org == nil {
		writeError(w, http.StatusNotFound, "Organization not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
	})
}

// CreateOrganization creates a new organization.
func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Organization name is required", nil)
		return
	}

	org := workforce.Organization{
		ID:        req.ID,
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}
	if org.ID == "" {
		org.ID = uuid.NewString()
	}

	if err := h.Store.SaveOrganization(r.Context(), org); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create organization", err)
		return
	}
	writeJSON(w, http.StatusCreated, OrganizationDTO{ID: org.ID, Name: org.Name})
}

// DeleteOrganization removes an organization and everything under it.
func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteOrganization(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete organization", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// =============================================================================
// UPLOAD HANDLERS
// =============================================================================

// CreateUpload ingests one roster batch, either as JSON rows or as a
// raw CSV payload in the csv field.
func (h *Handler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	var req CreateUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.OrganizationID == "" {
		writeError(w, http.StatusBadRequest, "organizationId is required", nil)
		return
	}

	ctx := r.Context()
	org, err := h.Store.GetOrganization(ctx, req.OrganizationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get organization", err)
		return
	}
	if org == nil {
		writeError(w, http.StatusNotFound, "Organization not found", nil)
		return
	}

	up := workforce.Upload{
		ID:             uuid.NewString(),
		OrganizationID: req.OrganizationID,
		UploadedAt:     time.Now().UTC(),
	}

	if req.MonthKey != "" {
		month, err := h.registerMonth(r, req.MonthKey, req.MonthLabel)
		if err != nil {
			writeDomainError(w, "Invalid month key", err)
			return
		}
		up.MonthID = month.ID
	}

	var (
		records  []workforce.EmployeeRecord
		warnings []ingest.Warning
	)
	switch {
	case req.CSV != "":
		result, err := ingest.Parse([]byte(req.CSV))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unparseable roster file", err)
			return
		}
		records = result.Records
		warnings = result.Warnings
	case len(req.Rows) > 0:
		records, warnings = rowsToRecords(req.Rows)
	default:
		writeError(w, http.StatusBadRequest, "Upload needs rows or csv", nil)
		return
	}

	if err := h.Store.CreateUpload(ctx, up, records); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store upload", err)
		return
	}

	warningDTOs := make([]WarningDTO, len(warnings))
	for i, warn := range warnings {
		warningDTOs[i] = WarningDTO{Row: warn.Row, Message: warn.Message}
	}
	writeJSON(w, http.StatusCreated, UploadResponse{
		UploadID: up.ID,
		Records:  len(records),
		Warnings: warningDTOs,
	})
}

// DeleteUpload removes an upload together with its records.
func (h *Handler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteUpload(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete upload", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// registerMonth upserts the reporting month for an upload, deriving a
// label from the key when the caller did not send one.
func (h *Handler) registerMonth(r *http.Request, key, label string) (*workforce.ReportingMonth, error) {
	if existing, err := h.Store.GetReportingMonthByKey(r.Context(), key); err == nil {
		return existing, nil
	} else if err != workforce.ErrMonthNotFound {
		return nil, err
	}

	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return nil, workforce.ErrMonthNotFound
	}
	if label == "" {
		label = parsed.Format("Jan 2006")
	}

	month := workforce.ReportingMonth{ID: uuid.NewString(), Key: key, Label: label}
	if err := h.Store.UpsertReportingMonth(r.Context(), month); err != nil {
		return nil, err
	}
	return &month, nil
}

func rowsToRecords(rows []UploadRowRequest) ([]workforce.EmployeeRecord, []ingest.Warning) {
	var warnings []ingest.Warning
	records := make([]workforce.EmployeeRecord, 0, len(rows))
	for i, row := range rows {
		rec := workforce.EmployeeRecord{
			RecordID:        uuid.NewString(),
			PrimaryID:       row.PrimaryID,
			SecondaryID:     row.SecondaryID,
			Name:            row.Name,
			Entity:          row.Entity,
			Gender:          row.Gender,
			Age:             row.Age,
			TenureYears:     row.TenureYears,
			WorkLevel:       row.WorkLevel,
			Location:        row.Location,
			PayrollLocation: row.PayrollLocation,
			Email:           row.Email,
			Designation:     row.Designation,
		}
		if row.HireDate != "" {
			if t, err := time.Parse(dateLayout, row.HireDate); err == nil {
				rec.HireDate = t
			} else {
				warnings = append(warnings, ingest.Warning{Row: i + 1, Message: "unparseable hireDate " + strconv.Quote(row.HireDate)})
			}
		}
		if row.ExitDate != "" {
			if t, err := time.Parse(dateLayout, row.ExitDate); err == nil {
				rec.ExitDate = &t
			} else {
				warnings = append(warnings, ingest.Warning{Row: i + 1, Message: "unparseable exitDate " + strconv.Quote(row.ExitDate)})
			}
		}
		if row.CTC != "" {
			if d, err := decimal.NewFromString(row.CTC); err == nil {
				rec.CTC = &d
			} else {
				warnings = append(warnings, ingest.Warning{Row: i + 1, Message: "unparseable ctc " + strconv.Quote(row.CTC)})
			}
		}
		records = append(records, rec)
	}
	return records, warnings
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// SearchEmployees finds roster records by name, id, or email, one hit
// per person after deduplication.
func (h *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		orgID = r.URL.Query().Get("organizationId")
	}
	if orgID == "" {
		writeError(w, http.StatusBadRequest, "organization_id is required", nil)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	limit := 25
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 100 {
			limit = n
		}
	}

	resp := EmployeeSearchResponse{
		OrganizationID: orgID,
		Query:          query,
		Results:        []EmployeeSearchItemDTO{},
	}
	if query == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	scope := workforce.Scope{OrganizationID: orgID}
	ds, err := h.Store.Dataset(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	needle := strings.ToLower(query)
	var hits []workforce.EmployeeRecord
	for _, rec := range ds.Latest(scope) {
		if matchesQuery(rec, needle) {
			hits = append(hits, rec)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Name < hits[j].Name })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	for _, rec := range hits {
		resp.Results = append(resp.Results, EmployeeSearchItemDTO{
			ID:          rec.RecordID,
			Name:        rec.Name,
			EmpID:       rec.SecondaryID,
			NewEmpID:    rec.PrimaryID,
			Email:       rec.Email,
			Designation: rec.Designation,
			Entity:      rec.Entity,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func matchesQuery(rec workforce.EmployeeRecord, needle string) bool {
	for _, field := range []string{rec.Name, rec.PrimaryID, rec.SecondaryID, rec.Email} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// EmployeeProfile returns the full profile of one roster record.
func (h *Handler) EmployeeProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetRecord(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	dto := toProfileDTO(*rec)
	if rec.HasHireDate() {
		ref := workforce.Today()
		if rec.ExitDate != nil {
			ref = *rec.ExitDate
		}
		years := ref.Sub(rec.HireDate).Hours() / 24 / 365.25
		tenure := math.Round(years*100) / 100
		dto.Tenure = &tenure
	} else if rec.TenureYears != nil {
		dto.Tenure = rec.TenureYears
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// MONTHS, ENTITIES, HEALTH
// =============================================================================

// ListMonths returns the reporting month registry, newest first.
func (h *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.Store.ListReportingMonths(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list months", err)
		return
	}

	dtos := make([]MonthDTO, len(months))
	for i, m := range months {
		dtos[i] = MonthDTO{ID: m.ID, MonthKey: m.Key, Label: m.Label}
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": dtos})
}

// ListEntities returns the distinct entity labels in scope.
func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	scope, _, err := h.resolveScope(r)
	if err != nil {
		writeDomainError(w, "Failed to resolve scope", err)
		return
	}

	entities, err := h.Store.ListEntities(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entities", err)
		return
	}
	if entities == nil {
		entities = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entities": entities})
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// queryList collects repeated query params, dropping empty values.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.URL.Query()[name] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// dateParam parses an optional YYYY-MM-DD query param. On a malformed
// value it writes a 400 and reports ok=false.
func dateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name+" date (use YYYY-MM-DD)", err)
		return nil, false
	}
	return &t, true
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case workforce.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case workforce.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
