/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	roster data for testing and demos. Each scenario creates an
	organization, a reporting month, and one or more uploads that
	demonstrate specific analytics behavior.

AVAILABLE SCENARIOS:

	growing-startup:  Steady monthly hiring, almost no exits
	high-attrition:   Heavy exits spread across fiscal years
	multi-entity:     Two entities with contrasting demographics
	restated-roster:  Two uploads for one month, the correction wins

HOW SCENARIOS WORK:
 1. Create the organization and reporting month
 2. Build a synthetic roster covering several fiscal years
 3. Store it as one or more uploads

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "high-attrition"}

NOTE:

	Scenarios add data; they do not wipe other organizations. Only use
	in development/demo environments.

SEE ALSO:
  - handlers.go: Shared helpers and error writing
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/workforce-insights/workforce"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// ScenarioDTO describes one loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var scenarios = []ScenarioDTO{
	{
		ID:          "growing-startup",
		Name:        "Growing Startup",
		Description: "Steady monthly hiring with almost no exits; ramp charts climb",
	},
	{
		ID:          "high-attrition",
		Name:        "High Attrition",
		Description: "Heavy exits across fiscal years; attrition cohorts light up",
	},
	{
		ID:          "multi-entity",
		Name:        "Multi Entity",
		Description: "Two entities with contrasting size, pay, and gender mix",
	},
	{
		ID:          "restated-roster",
		Name:        "Restated Roster",
		Description: "Two uploads for one month; the later correction wins",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	var (
		orgID string
		err   error
	)
	switch req.ScenarioID {
	case "growing-startup":
		orgID, err = h.loadGrowingStartupScenario(ctx)
	case "high-attrition":
		orgID, err = h.loadHighAttritionScenario(ctx)
	case "multi-entity":
		orgID, err = h.loadMultiEntityScenario(ctx)
	case "restated-roster":
		orgID, err = h.loadRestatedRosterScenario(ctx)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scenario: %s", req.ScenarioID), nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]any{
		"scenario":       req.ScenarioID,
		"organizationId": orgID,
	})
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

type demoRoster struct {
	org     workforce.Organization
	month   workforce.ReportingMonth
	records []workforce.EmployeeRecord
}

// seedRoster persists one org/month/upload triple and returns the org id.
func (h *Handler) seedRoster(ctx context.Context, d demoRoster) (string, error) {
	if err := h.Store.SaveOrganization(ctx, d.org); err != nil {
		return "", err
	}
	if err := h.Store.UpsertReportingMonth(ctx, d.month); err != nil {
		return "", err
	}

	// The stored month may predate this scenario; resolve the real id.
	month, err := h.Store.GetReportingMonthByKey(ctx, d.month.Key)
	if err != nil {
		return "", err
	}

	up := workforce.Upload{
		ID:             uuid.NewString(),
		OrganizationID: d.org.ID,
		MonthID:        month.ID,
		UploadedAt:     time.Now().UTC(),
	}
	if err := h.Store.CreateUpload(ctx, up, d.records); err != nil {
		return "", err
	}
	return d.org.ID, nil
}

// demoRecord builds one synthetic roster row. exitDate may be zero for
// still-active employees.
func demoRecord(primaryID, name, entity, gender, workLevel string, age float64, ctc int64, hire time.Time, exit time.Time) workforce.EmployeeRecord {
	amount := decimal.NewFromInt(ctc)
	rec := workforce.EmployeeRecord{
		RecordID:  uuid.NewString(),
		PrimaryID: primaryID,
		Name:      name,
		Entity:    entity,
		Gender:    gender,
		WorkLevel: workLevel,
		Age:       &age,
		CTC:       &amount,
		HireDate:  hire,
		Location:  "Bangalore",
		Email:     primaryID + "@example.com",
	}
	if !exit.IsZero() {
		rec.ExitDate = &exit
	}
	return rec
}

func (h *Handler) loadGrowingStartupScenario(ctx context.Context) (string, error) {
	today := workforce.Today()
	monthKey := today.Format("2006-01")

	d := demoRoster{
		org:   workforce.Organization{ID: "demo-startup", Name: "Demo Startup"},
		month: workforce.ReportingMonth{ID: uuid.NewString(), Key: monthKey, Label: today.Format("Jan 2006")},
	}

	// One hire per month for three years, alternating gender and level.
	for i := 0; i < 36; i++ {
		hire := workforce.ShiftMonths(today, -i)
		gender := "Male"
		if i%2 == 0 {
			gender = "Female"
		}
		level := "WL1"
		if i%5 == 0 {
			level = "WL2"
		}
		d.records = append(d.records, demoRecord(
			fmt.Sprintf("GS%03d", i+1),
			fmt.Sprintf("Hire %d", i+1),
			"Demo Startup", gender, level,
			24+float64(i%20), 900000+int64(i)*25000,
			hire, time.Time{},
		))
	}
	// A single early exit keeps the exit series nonzero.
	d.records = append(d.records, demoRecord(
		"GS900", "Early Leaver", "Demo Startup", "Male", "WL1",
		29, 850000,
		workforce.ShiftMonths(today, -30), workforce.ShiftMonths(today, -6),
	))
	return h.seedRoster(ctx, d)
}

func (h *Handler) loadHighAttritionScenario(ctx context.Context) (string, error) {
	today := workforce.Today()
	monthKey := today.Format("2006-01")

	d := demoRoster{
		org:   workforce.Organization{ID: "demo-churn", Name: "Demo Churn Co"},
		month: workforce.ReportingMonth{ID: uuid.NewString(), Key: monthKey, Label: today.Format("Jan 2006")},
	}

	// Forty employees hired four years back; half leave, spread evenly,
	// so every trailing fiscal window sees exits.
	base := workforce.ShiftMonths(today, -48)
	for i := 0; i < 40; i++ {
		hire := workforce.ShiftMonths(base, i%12)
		var exit time.Time
		if i%2 == 0 {
			exit = workforce.ShiftMonths(hire, 10+i)
		}
		gender := "Female"
		if i%3 == 0 {
			gender = "Male"
		}
		d.records = append(d.records, demoRecord(
			fmt.Sprintf("HA%03d", i+1),
			fmt.Sprintf("Employee %d", i+1),
			"Demo Churn Co", gender, "WL1",
			22+float64(i), 700000+int64(i)*10000,
			hire, exit,
		))
	}
	return h.seedRoster(ctx, d)
}

func (h *Handler) loadMultiEntityScenario(ctx context.Context) (string, error) {
	today := workforce.Today()
	monthKey := today.Format("2006-01")

	d := demoRoster{
		org:   workforce.Organization{ID: "demo-group", Name: "Demo Group"},
		month: workforce.ReportingMonth{ID: uuid.NewString(), Key: monthKey, Label: today.Format("Jan 2006")},
	}

	// Tech arm: small, senior, well paid, mostly male.
	for i := 0; i < 8; i++ {
		gender := "Male"
		if i%4 == 0 {
			gender = "Female"
		}
		d.records = append(d.records, demoRecord(
			fmt.Sprintf("TEC%02d", i+1),
			fmt.Sprintf("Tech %d", i+1),
			"Group Tech", gender, "WL3",
			35+float64(i), 3000000+int64(i)*100000,
			workforce.ShiftMonths(today, -36-i), time.Time{},
		))
	}
	// Services arm: large, young, mostly female.
	for i := 0; i < 24; i++ {
		gender := "Female"
		if i%4 == 0 {
			gender = "Male"
		}
		d.records = append(d.records, demoRecord(
			fmt.Sprintf("SVC%02d", i+1),
			fmt.Sprintf("Services %d", i+1),
			"Group Services", gender, "WL1",
			22+float64(i%10), 600000+int64(i)*15000,
			workforce.ShiftMonths(today, -i), time.Time{},
		))
	}
	return h.seedRoster(ctx, d)
}

func (h *Handler) loadRestatedRosterScenario(ctx context.Context) (string, error) {
	today := workforce.Today()
	monthKey := today.Format("2006-01")

	d := demoRoster{
		org:   workforce.Organization{ID: "demo-restated", Name: "Demo Restated"},
		month: workforce.ReportingMonth{ID: uuid.NewString(), Key: monthKey, Label: today.Format("Jan 2006")},
	}

	// First upload: the original roster, with one wrongly marked exit.
	wrongExit := demoRecord(
		"RS001", "Asha Rao", "Demo Restated", "Female", "WL2",
		31, 1500000,
		workforce.ShiftMonths(today, -24), workforce.ShiftMonths(today, -1),
	)
	colleague := demoRecord(
		"RS002", "Vikram Nair", "Demo Restated", "Male", "WL1",
		27, 950000,
		workforce.ShiftMonths(today, -12), time.Time{},
	)
	d.records = []workforce.EmployeeRecord{wrongExit, colleague}
	orgID, err := h.seedRoster(ctx, d)
	if err != nil {
		return "", err
	}

	// Second upload for the same month corrects the exit. Latest-wins
	// deduplication means only this version of RS001 is counted.
	month, err := h.Store.GetReportingMonthByKey(ctx, monthKey)
	if err != nil {
		return "", err
	}
	corrected := demoRecord(
		"RS001", "Asha Rao", "Demo Restated", "Female", "WL2",
		31, 1500000,
		workforce.ShiftMonths(today, -24), time.Time{},
	)
	up := workforce.Upload{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		MonthID:        month.ID,
		UploadedAt:     time.Now().UTC().Add(time.Second),
	}
	if err := h.Store.CreateUpload(ctx, up, []workforce.EmployeeRecord{corrected}); err != nil {
		return "", err
	}
	return orgID, nil
}
