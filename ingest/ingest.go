/*
Package ingest turns roster CSV exports into employee records.

PURPOSE:
  The upload boundary. Takes raw CSV bytes as exported by HR tooling,
  normalizes encoding and headers, maps the many spellings of each
  column to one canonical field, and coerces cell values. The output is
  a batch of records ready to persist as a single upload.

TOLERANCE:
  Roster exports are messy. A bad cell produces a warning and a partial
  record, never a hard failure; an employee with no usable name and no
  identifier at all is the only thing a row gets dropped for. Dates are
  accepted in several layouts, numbers with stray currency formatting.

USAGE:
  result, err := ingest.Parse(data)
  if err != nil {
      // the file itself was unreadable (no header, no rows)
  }
  // result.Records -> store.CreateUpload
  // result.Warnings -> surfaced to the uploader
*/
package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/workforce-insights/workforce"
)

// columnAliases maps the header spellings seen in real exports to
// canonical field names. Matching is case-insensitive on the trimmed
// header.
var columnAliases = map[string]string{
	"new emp id":                     "primary_id",
	"employee id":                    "primary_id",
	"emp id":                         "secondary_id",
	"old emp id":                     "secondary_id",
	"employee name":                  "name",
	"name":                           "name",
	"doj":                            "hire_date",
	"date of joining":                "hire_date",
	"final lwd":                      "exit_date",
	"lwd":                            "exit_date",
	"last working day":               "exit_date",
	"entity":                         "entity",
	"gender":                         "gender",
	"age":                            "age",
	"tenure":                         "tenure",
	"worklevel":                      "work_level",
	"work level":                     "work_level",
	"ctc":                            "ctc",
	"employee physical location":     "location",
	"location":                       "location",
	"entity location as per payroll": "payroll_location",
	"payroll location":               "payroll_location",
	"official email id":              "email",
	"email":                          "email",
	"internal designation":           "designation",
	"designation":                    "designation",
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Result is the outcome of parsing one roster file.
type Result struct {
	Records  []workforce.EmployeeRecord
	Warnings []Warning
}

// Parse converts roster CSV bytes into employee records. It returns an
// error only when the file as a whole is unusable; cell-level problems
// become warnings.
func Parse(data []byte) (*Result, error) {
	rows, warnings, err := rawRows(data)
	if err != nil {
		return nil, err
	}

	result := &Result{Warnings: warnings}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1
		fields := canonicalize(row)

		rec, warns := buildRecord(fields, rowNum)
		result.Warnings = append(result.Warnings, warns...)
		if rec == nil {
			continue
		}
		result.Records = append(result.Records, *rec)
	}
	return result, nil
}

// canonicalize collapses a header-keyed row into canonical field names.
// Unknown headers are ignored; when two aliases of the same field both
// appear, the first non-empty value wins.
func canonicalize(row map[string]string) map[string]string {
	fields := make(map[string]string)
	for header, value := range row {
		canon, ok := columnAliases[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			continue
		}
		if fields[canon] == "" {
			fields[canon] = strings.TrimSpace(value)
		}
	}
	return fields
}

func buildRecord(fields map[string]string, rowNum int) (*workforce.EmployeeRecord, []Warning) {
	var warns []Warning
	warn := func(format string, args ...any) {
		warns = append(warns, Warning{Row: rowNum, Message: fmt.Sprintf(format, args...)})
	}

	rec := workforce.EmployeeRecord{
		RecordID:        uuid.NewString(),
		PrimaryID:       fields["primary_id"],
		SecondaryID:     fields["secondary_id"],
		Name:            fields["name"],
		Entity:          fields["entity"],
		Gender:          fields["gender"],
		WorkLevel:       fields["work_level"],
		Location:        fields["location"],
		PayrollLocation: fields["payroll_location"],
		Email:           fields["email"],
		Designation:     fields["designation"],
	}

	if rec.PrimaryID == "" && rec.SecondaryID == "" && rec.Name == "" {
		warn("row has no identifier or name, skipped")
		return nil, warns
	}

	if v := fields["hire_date"]; v != "" {
		if t, ok := parseDate(v); ok {
			rec.HireDate = t
		} else {
			warn("unparseable joining date %q", v)
		}
	}
	if v := fields["exit_date"]; v != "" {
		if t, ok := parseDate(v); ok {
			rec.ExitDate = &t
		} else {
			warn("unparseable last working day %q", v)
		}
	}
	if v := fields["age"]; v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rec.Age = &f
		} else {
			warn("unparseable age %q", v)
		}
	}
	if v := fields["tenure"]; v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rec.TenureYears = &f
		} else {
			warn("unparseable tenure %q", v)
		}
	}
	if v := fields["ctc"]; v != "" {
		if d, err := decimal.NewFromString(cleanNumber(v)); err == nil {
			rec.CTC = &d
		} else {
			warn("unparseable CTC %q", v)
		}
	}

	return &rec, warns
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	// Spreadsheets sometimes export dates with a time suffix.
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// cleanNumber strips thousands separators and currency noise that
// spreadsheet exports leave in pay columns.
func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	return strings.TrimSpace(s)
}
