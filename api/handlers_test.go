package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/workforce-insights/store/sqlite"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewRouter(NewHandler(st), []string{"*"})
}

// do runs one request through the router and decodes the JSON response
// into out (when non-nil).
func do(t *testing.T, router http.Handler, method, target string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func seedOrgWithRoster(t *testing.T, router http.Handler) {
	t.Helper()

	code := do(t, router, http.MethodPost, "/api/organizations", CreateOrganizationRequest{
		ID:   "org-1",
		Name: "Acme",
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	var upload UploadResponse
	code = do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "org-1",
		MonthKey:       "2026-01",
		Rows: []UploadRowRequest{
			{PrimaryID: "E1", Name: "Asha Rao", HireDate: "2025-03-01", WorkLevel: "WL2",
				Gender: "Female", Email: "asha@example.com", CTC: "1500000"},
			{PrimaryID: "E2", Name: "Vikram Nair", HireDate: "2025-01-15", ExitDate: "2025-04-10",
				WorkLevel: "WL1", Gender: "Male"},
		},
	}, &upload)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, upload.UploadID)
	require.Equal(t, 2, upload.Records)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	var resp map[string]string
	code := do(t, router, http.MethodGet, "/api/health", nil, &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp["status"])
}

func TestAnalytics_UnknownMonthKeyIs404(t *testing.T) {
	router := newTestRouter(t)

	var resp ErrorResponse
	code := do(t, router, http.MethodGet, "/api/analytics/headcount-ramp?month_key=2099-01", nil, &resp)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, resp.Error)
}

func TestAnalytics_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	code := do(t, router, http.MethodGet, "/api/analytics/headcount-ramp?granularity=weekly", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code, "unsupported granularity")

	code = do(t, router, http.MethodGet, "/api/analytics/headcount-ramp?start=not-a-date", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code, "malformed date")

	code = do(t, router, http.MethodGet,
		"/api/analytics/headcount-ramp?start=2025-06-01&end=2025-01-01", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code, "end before start")
}

func TestHeadcountRamp_RoundTrip(t *testing.T) {
	router := newTestRouter(t)
	seedOrgWithRoster(t, router)

	var resp RampResponse
	code := do(t, router, http.MethodGet,
		"/api/analytics/headcount-ramp?organization_id=org-1&start=2025-01-01&end=2025-06-01", nil, &resp)
	require.Equal(t, http.StatusOK, code)

	// Scope pinned to the org's latest upload month
	require.NotNil(t, resp.MonthKey)
	assert.Equal(t, "2026-01", *resp.MonthKey)

	require.Len(t, resp.Points, 6)
	assert.Equal(t, "2025-01-01", resp.Points[0].PeriodStart)
	assert.Equal(t, 0, resp.Points[0].Headcount, "mid-January hire not present all month")
	assert.Equal(t, 2, resp.Points[2].Headcount, "both present through March")
	assert.Equal(t, 1, resp.Points[5].Headcount, "one exit in April")
}

func TestHiresExits_RoundTrip(t *testing.T) {
	router := newTestRouter(t)
	seedOrgWithRoster(t, router)

	var resp FlowResponse
	code := do(t, router, http.MethodGet,
		"/api/analytics/hires-exits?organization_id=org-1&start=2025-01-01&end=2025-06-01", nil, &resp)
	require.Equal(t, http.StatusOK, code)

	require.Len(t, resp.Points, 6)
	assert.Equal(t, 1, resp.Points[0].Hires, "January hire")
	assert.Equal(t, 1, resp.Points[2].Hires, "March hire")
	assert.Equal(t, 1, resp.Points[3].Exits, "April exit")
}

func TestDemographics_RoundTrip(t *testing.T) {
	router := newTestRouter(t)
	seedOrgWithRoster(t, router)

	var resp DemographicsResponse
	code := do(t, router, http.MethodGet,
		"/api/analytics/demographics?organization_id=org-1&start=2025-01-01&end=2025-06-01", nil, &resp)
	require.Equal(t, http.StatusOK, code)

	// Explicit range counts anyone whose employment overlaps it
	require.NotEmpty(t, resp.Worklevels)
	total := resp.Worklevels[len(resp.Worklevels)-1]
	assert.True(t, total.IsTotal)
	assert.Equal(t, "Total", total.Worklevel)
	assert.Equal(t, 2, total.Headcount)
	assert.InDelta(t, 0.5, resp.GenderRatio.Female, 1e-9)
}

func TestCreateUpload_Validation(t *testing.T) {
	router := newTestRouter(t)

	code := do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "ghost",
		Rows:           []UploadRowRequest{{PrimaryID: "E1", Name: "A"}},
	}, nil)
	assert.Equal(t, http.StatusNotFound, code, "unknown organization")

	do(t, router, http.MethodPost, "/api/organizations",
		CreateOrganizationRequest{ID: "org-1", Name: "Acme"}, nil)

	code = do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "org-1",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code, "no rows and no csv")

	code = do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "org-1",
		MonthKey:       "January",
		Rows:           []UploadRowRequest{{PrimaryID: "E1", Name: "A"}},
	}, nil)
	assert.Equal(t, http.StatusNotFound, code, "month key must be YYYY-MM")
}

func TestCreateUpload_CSVBody(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/organizations",
		CreateOrganizationRequest{ID: "org-1", Name: "Acme"}, nil)

	var resp UploadResponse
	code := do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "org-1",
		CSV:            "Employee ID,Name,DOJ\nE1,Asha,2025-03-01\nE2,Vikram,bad-date\n",
	}, &resp)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 2, resp.Records)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, 3, resp.Warnings[0].Row)
}

func TestDeleteUpload(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/api/organizations",
		CreateOrganizationRequest{ID: "org-1", Name: "Acme"}, nil)

	var upload UploadResponse
	do(t, router, http.MethodPost, "/api/uploads", CreateUploadRequest{
		OrganizationID: "org-1",
		Rows:           []UploadRowRequest{{PrimaryID: "E1", Name: "A"}},
	}, &upload)

	code := do(t, router, http.MethodDelete, "/api/uploads/"+upload.UploadID, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	code = do(t, router, http.MethodDelete, "/api/uploads/"+upload.UploadID, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEmployeeSearchAndProfile(t *testing.T) {
	router := newTestRouter(t)
	seedOrgWithRoster(t, router)

	// Blank query short-circuits to no results
	var resp EmployeeSearchResponse
	code := do(t, router, http.MethodGet, "/api/employees/search?organization_id=org-1", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Results)

	code = do(t, router, http.MethodGet, "/api/employees/search?organization_id=org-1&query=asha", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Results, 1)
	hit := resp.Results[0]
	assert.Equal(t, "Asha Rao", hit.Name)
	assert.Equal(t, "E1", hit.NewEmpID)

	var profile EmployeeProfileDTO
	code = do(t, router, http.MethodGet, "/api/employees/"+hit.ID, nil, &profile)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Asha Rao", profile.Name)
	require.NotNil(t, profile.DOJ)
	assert.Equal(t, "2025-03-01", *profile.DOJ)
	assert.Nil(t, profile.LWD)
	require.NotNil(t, profile.Tenure, "derived from hire date to today")

	code = do(t, router, http.MethodGet, "/api/employees/no-such-record", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMonthsAndEntities(t *testing.T) {
	router := newTestRouter(t)
	seedOrgWithRoster(t, router)

	var months struct {
		Months []MonthDTO `json:"months"`
	}
	code := do(t, router, http.MethodGet, "/api/months", nil, &months)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, months.Months, 1)
	assert.Equal(t, "2026-01", months.Months[0].MonthKey)
	assert.Equal(t, "Jan 2026", months.Months[0].Label, "label derived from the key")

	var entities struct {
		Entities []string `json:"entities"`
	}
	code = do(t, router, http.MethodGet, "/api/entities?organization_id=org-1", nil, &entities)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, entities.Entities, "roster carried no entity labels")
}

func TestScenarios(t *testing.T) {
	router := newTestRouter(t)

	var list []ScenarioDTO
	code := do(t, router, http.MethodGet, "/api/scenarios", nil, &list)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 4)

	code = do(t, router, http.MethodPost, "/api/scenarios/load",
		map[string]string{"scenario_id": "does-not-exist"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var loaded map[string]string
	code = do(t, router, http.MethodPost, "/api/scenarios/load",
		map[string]string{"scenario_id": "restated-roster"}, &loaded)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "demo-restated", loaded["organizationId"])

	// The correcting upload wins: the wrongly exited employee is active
	var resp DemographicsResponse
	code = do(t, router, http.MethodGet,
		"/api/analytics/demographics?organization_id=demo-restated", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	total := resp.Worklevels[len(resp.Worklevels)-1]
	assert.Equal(t, 2, total.Headcount)
}

func TestOrganizationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	code := do(t, router, http.MethodPost, "/api/organizations",
		CreateOrganizationRequest{Name: "   "}, nil)
	assert.Equal(t, http.StatusBadRequest, code, "blank name")

	var created OrganizationDTO
	code = do(t, router, http.MethodPost, "/api/organizations",
		CreateOrganizationRequest{Name: "Acme"}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, created.ID, "id generated when omitted")

	var fetched OrganizationDTO
	code = do(t, router, http.MethodGet, "/api/organizations/"+created.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Acme", fetched.Name)

	var orgs []OrganizationDTO
	code = do(t, router, http.MethodGet, "/api/organizations", nil, &orgs)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, orgs, 1)

	code = do(t, router, http.MethodDelete, "/api/organizations/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, code)
	code = do(t, router, http.MethodGet, "/api/organizations/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
