/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

WIRE FORMAT:
  The dashboard frontend expects camelCase keys and ratios as fractions
  (0.18, not 18). Dates are YYYY-MM-DD strings.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/workforce-insights/analytics"
	"github.com/warp/workforce-insights/workforce"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// ANALYTICS RESPONSES
// =============================================================================

// RampPointDTO is one point of the headcount ramp series.
type RampPointDTO struct {
	PeriodStart      string  `json:"periodStart"`
	Headcount        int     `json:"headcount"`
	OpeningHeadcount int     `json:"openingHeadcount"`
	RampChange       int     `json:"rampChange"`
	RampPct          float64 `json:"rampPct"`
}

// RampResponse wraps the ramp series with its resolved window.
type RampResponse struct {
	Granularity string         `json:"granularity"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	MonthKey    *string        `json:"monthKey"`
	Points      []RampPointDTO `json:"points"`
}

// FlowPointDTO is one point of the hires/exits series.
type FlowPointDTO struct {
	PeriodStart string `json:"periodStart"`
	Hires       int    `json:"hires"`
	Exits       int    `json:"exits"`
}

// FlowResponse wraps the hires/exits series with its resolved window.
type FlowResponse struct {
	Granularity string         `json:"granularity"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	MonthKey    *string        `json:"monthKey"`
	Points      []FlowPointDTO `json:"points"`
}

// WorklevelDTO is one work-level row of the demographics table. The
// Total row carries isTotal=true and closes the list.
type WorklevelDTO struct {
	Worklevel    string   `json:"worklevel"`
	Headcount    int      `json:"headcount"`
	HeadcountPct float64  `json:"headcountPct"`
	CostPct      float64  `json:"costPct"`
	FemalePct    float64  `json:"femalePct"`
	AvgTenure    *float64 `json:"avgTenure"`
	AvgAge       *float64 `json:"avgAge"`
	IsTotal      bool     `json:"isTotal"`
}

// AveragesDTO carries the population-wide averages.
type AveragesDTO struct {
	CTC    *float64 `json:"ctc"`
	Age    *float64 `json:"age"`
	Tenure *float64 `json:"tenure"`
}

// GenderRatioDTO is the male/female/other split as fractions.
type GenderRatioDTO struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
	Other  float64 `json:"other"`
}

// DemographicsResponse is the work-level demographics payload.
type DemographicsResponse struct {
	Granularity string         `json:"granularity"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	MonthKey    *string        `json:"monthKey"`
	Averages    AveragesDTO    `json:"averages"`
	GenderRatio GenderRatioDTO `json:"genderRatio"`
	Worklevels  []WorklevelDTO `json:"worklevels"`
}

// EntityRowDTO is one entity row of the entity demographics table.
type EntityRowDTO struct {
	Entity       string   `json:"entity"`
	Headcount    int      `json:"headcount"`
	HeadcountPct float64  `json:"headcountPct"`
	CostPct      float64  `json:"costPct"`
	FemalePct    float64  `json:"femalePct"`
	AvgTenure    *float64 `json:"avgTenure"`
	AvgAge       *float64 `json:"avgAge"`
}

// EntityDemographicsResponse is the per-entity demographics payload.
type EntityDemographicsResponse struct {
	Granularity string         `json:"granularity"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	MonthKey    *string        `json:"monthKey"`
	Entities    []EntityRowDTO `json:"entities"`
}

// LocationDTO is one location row of the location headcount payload.
type LocationDTO struct {
	Location   string  `json:"location"`
	Headcount  int     `json:"headcount"`
	Percentage float64 `json:"percentage"`
}

// LocationHeadcountResponse groups active headcount by a location axis.
type LocationHeadcountResponse struct {
	LocationType string        `json:"locationType"`
	Cutoff       string        `json:"cutoff"`
	MonthKey     *string       `json:"monthKey"`
	Total        int           `json:"total"`
	Locations    []LocationDTO `json:"locations"`
}

// CohortRateDTO is the annualized attrition for one fiscal window.
type CohortRateDTO struct {
	Label        string  `json:"label"`
	AttritionPct float64 `json:"attritionPct"`
}

// EntityRateDTO is the annualized attrition for one (entity, window).
type EntityRateDTO struct {
	Entity       string  `json:"entity"`
	Label        string  `json:"label"`
	AttritionPct float64 `json:"attritionPct"`
}

// AgeTrendDTO slices one window's attrition by age band.
type AgeTrendDTO struct {
	Label     string  `json:"label"`
	TwentyPct float64 `json:"twentyPct"`
	ThirtyPct float64 `json:"thirtyPct"`
	FortyPct  float64 `json:"fortyPct"`
	FiftyPct  float64 `json:"fiftyPct"`
}

// GenderTrendDTO slices one window's attrition by gender.
type GenderTrendDTO struct {
	Label     string  `json:"label"`
	MalePct   float64 `json:"malePct"`
	FemalePct float64 `json:"femalePct"`
}

// TenureTrendDTO slices one window's attrition by tenure band.
type TenureTrendDTO struct {
	Label        string  `json:"label"`
	ZeroSixPct   float64 `json:"zeroSixPct"`
	SixTwelvePct float64 `json:"sixTwelvePct"`
	OneTwoPct    float64 `json:"oneTwoPct"`
	TwoFourPct   float64 `json:"twoFourPct"`
	FourTenPct   float64 `json:"fourTenPct"`
	TenPlusPct   float64 `json:"tenPlusPct"`
}

// AttritionResponse is the full cohort attrition payload.
type AttritionResponse struct {
	Overall     []CohortRateDTO  `json:"overall"`
	Entities    []EntityRateDTO  `json:"entities"`
	AgeTrend    []AgeTrendDTO    `json:"ageTrend"`
	GenderTrend []GenderTrendDTO `json:"genderTrend"`
	TenureTrend []TenureTrendDTO `json:"tenureTrend"`
	MonthKey    *string          `json:"monthKey"`
}

// =============================================================================
// ORGANIZATIONS, MONTHS, UPLOADS
// =============================================================================

// OrganizationDTO represents a tenant in API responses.
type OrganizationDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateOrganizationRequest is the request to create an organization.
type CreateOrganizationRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MonthDTO represents a reporting month.
type MonthDTO struct {
	ID       string `json:"id"`
	MonthKey string `json:"monthKey"`
	Label    string `json:"label"`
}

// UploadRowRequest is one roster row posted as JSON.
type UploadRowRequest struct {
	PrimaryID       string   `json:"primaryId"`
	SecondaryID     string   `json:"secondaryId"`
	Name            string   `json:"name"`
	HireDate        string   `json:"hireDate"`
	ExitDate        string   `json:"exitDate"`
	Entity          string   `json:"entity"`
	Gender          string   `json:"gender"`
	Age             *float64 `json:"age"`
	TenureYears     *float64 `json:"tenureYears"`
	WorkLevel       string   `json:"workLevel"`
	CTC             string   `json:"ctc"`
	Location        string   `json:"location"`
	PayrollLocation string   `json:"payrollLocation"`
	Email           string   `json:"email"`
	Designation     string   `json:"designation"`
}

// CreateUploadRequest is the JSON form of an upload.
type CreateUploadRequest struct {
	OrganizationID string             `json:"organizationId"`
	MonthKey       string             `json:"monthKey"`
	MonthLabel     string             `json:"monthLabel"`
	Rows           []UploadRowRequest `json:"rows"`
	CSV            string             `json:"csv"`
}

// UploadResponse reports the outcome of an upload.
type UploadResponse struct {
	UploadID string       `json:"uploadId"`
	Records  int          `json:"records"`
	Warnings []WarningDTO `json:"warnings"`
}

// WarningDTO is a non-fatal ingestion issue keyed to a source row.
type WarningDTO struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeSearchItemDTO is one search hit.
type EmployeeSearchItemDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EmpID       string `json:"empId,omitempty"`
	NewEmpID    string `json:"newEmpId,omitempty"`
	Email       string `json:"email,omitempty"`
	Designation string `json:"designation,omitempty"`
	Entity      string `json:"entity,omitempty"`
}

// EmployeeSearchResponse wraps the search hits.
type EmployeeSearchResponse struct {
	OrganizationID string                  `json:"organizationId"`
	Query          string                  `json:"query"`
	Results        []EmployeeSearchItemDTO `json:"results"`
}

// EmployeeProfileDTO is the full profile of one roster record.
type EmployeeProfileDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	EmpID           string   `json:"empId,omitempty"`
	NewEmpID        string   `json:"newEmpId,omitempty"`
	Designation     string   `json:"designation,omitempty"`
	Entity          string   `json:"entity,omitempty"`
	Location        string   `json:"location,omitempty"`
	PayrollLocation string   `json:"payrollLocation,omitempty"`
	Email           string   `json:"email,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	DOJ             *string  `json:"doj"`
	LWD             *string  `json:"lwd"`
	Tenure          *float64 `json:"tenure"`
	Age             *float64 `json:"age"`
	WorkLevel       string   `json:"worklevel,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toRampDTOs(points []analytics.RampPoint) []RampPointDTO {
	dtos := make([]RampPointDTO, len(points))
	for i, p := range points {
		dtos[i] = RampPointDTO{
			PeriodStart:      p.PeriodStart.Format(dateLayout),
			Headcount:        p.Headcount,
			OpeningHeadcount: p.OpeningHeadcount,
			RampChange:       p.RampChange,
			RampPct:          p.RampPct,
		}
	}
	return dtos
}

func toFlowDTOs(points []analytics.FlowPoint) []FlowPointDTO {
	dtos := make([]FlowPointDTO, len(points))
	for i, p := range points {
		dtos[i] = FlowPointDTO{
			PeriodStart: p.PeriodStart.Format(dateLayout),
			Hires:       p.Hires,
			Exits:       p.Exits,
		}
	}
	return dtos
}

func toWorklevelDTOs(report analytics.DemographicsReport) []WorklevelDTO {
	dtos := make([]WorklevelDTO, 0, len(report.Groups)+1)
	for _, g := range report.Groups {
		dtos = append(dtos, WorklevelDTO{
			Worklevel:    g.Key,
			Headcount:    g.Headcount,
			HeadcountPct: g.HeadcountPct,
			CostPct:      g.CostPct,
			FemalePct:    g.FemalePct,
			AvgTenure:    g.AvgTenure,
			AvgAge:       g.AvgAge,
		})
	}
	dtos = append(dtos, WorklevelDTO{
		Worklevel:    "Total",
		Headcount:    report.Total.Headcount,
		HeadcountPct: report.Total.HeadcountPct,
		CostPct:      report.Total.CostPct,
		FemalePct:    report.Total.FemalePct,
		AvgTenure:    report.Total.AvgTenure,
		AvgAge:       report.Total.AvgAge,
		IsTotal:      true,
	})
	return dtos
}

func toEntityRowDTOs(report analytics.DemographicsReport) []EntityRowDTO {
	dtos := make([]EntityRowDTO, len(report.Groups))
	for i, g := range report.Groups {
		dtos[i] = EntityRowDTO{
			Entity:       g.Key,
			Headcount:    g.Headcount,
			HeadcountPct: g.HeadcountPct,
			CostPct:      g.CostPct,
			FemalePct:    g.FemalePct,
			AvgTenure:    g.AvgTenure,
			AvgAge:       g.AvgAge,
		}
	}
	return dtos
}

func toAttritionResponse(report analytics.AttritionReport, monthKey *string) AttritionResponse {
	resp := AttritionResponse{
		Overall:     make([]CohortRateDTO, len(report.Overall)),
		Entities:    make([]EntityRateDTO, len(report.Entities)),
		AgeTrend:    make([]AgeTrendDTO, len(report.AgeTrend)),
		GenderTrend: make([]GenderTrendDTO, len(report.GenderTrend)),
		TenureTrend: make([]TenureTrendDTO, len(report.TenureTrend)),
		MonthKey:    monthKey,
	}
	for i, r := range report.Overall {
		resp.Overall[i] = CohortRateDTO{Label: r.Label, AttritionPct: r.AttritionPct}
	}
	for i, r := range report.Entities {
		resp.Entities[i] = EntityRateDTO{Entity: r.Entity, Label: r.Label, AttritionPct: r.AttritionPct}
	}
	for i, p := range report.AgeTrend {
		resp.AgeTrend[i] = AgeTrendDTO{
			Label:     p.Label,
			TwentyPct: p.Twenties,
			ThirtyPct: p.Thirties,
			FortyPct:  p.Forties,
			FiftyPct:  p.FiftyPlus,
		}
	}
	for i, p := range report.GenderTrend {
		resp.GenderTrend[i] = GenderTrendDTO{
			Label:     p.Label,
			MalePct:   p.Male,
			FemalePct: p.Female,
		}
	}
	for i, p := range report.TenureTrend {
		resp.TenureTrend[i] = TenureTrendDTO{
			Label:        p.Label,
			ZeroSixPct:   p.ZeroToSix,
			SixTwelvePct: p.SixToTwelve,
			OneTwoPct:    p.OneToTwo,
			TwoFourPct:   p.TwoToFour,
			FourTenPct:   p.FourToTen,
			TenPlusPct:   p.TenPlus,
		}
	}
	return resp
}

func toProfileDTO(rec workforce.EmployeeRecord) EmployeeProfileDTO {
	dto := EmployeeProfileDTO{
		ID:              rec.RecordID,
		Name:            rec.Name,
		EmpID:           rec.SecondaryID,
		NewEmpID:        rec.PrimaryID,
		Designation:     rec.Designation,
		Entity:          rec.Entity,
		Location:        rec.Location,
		PayrollLocation: rec.PayrollLocation,
		Email:           rec.Email,
		Gender:          rec.Gender,
		WorkLevel:       rec.WorkLevel,
		Age:             rec.Age,
	}
	if rec.HasHireDate() {
		doj := rec.HireDate.Format(dateLayout)
		dto.DOJ = &doj
	}
	if rec.ExitDate != nil {
		lwd := rec.ExitDate.Format(dateLayout)
		dto.LWD = &lwd
	}
	return dto
}
