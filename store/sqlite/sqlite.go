/*
Package sqlite provides the SQLite-backed store for roster history.

PURPOSE:
  Persists organizations, reporting months, uploads, and employee
  records, and loads the in-scope record history the engine computes
  over. In production the same patterns apply to PostgreSQL - only minor
  SQL dialect differences.

APPEND-ONLY ENFORCEMENT:
  employee_records is insert-only:
  - No UPDATE statements on employee_records
  - Corrections arrive as a new upload, never a mutation
  - The only DELETE is DeleteUpload, which removes an upload and all of
    its records in one transaction so a concurrent metrics query can
    never observe a half-deleted upload

KEY TABLES:
  organizations:     Tenants
  reporting_months:  Dashboard month registry ("2026-01" -> label)
  uploads:           Batch ingestion events
  employee_records:  One row per (employee, upload); seq is the
                     insertion-order tie-break used by deduplication

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened with WAL so
  readers don't block each other.

USAGE:
  store, err := sqlite.New("./data/workforce.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  ds, err := store.Dataset(ctx, scope)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool with versioned migrations.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/workforce-insights/workforce"
)

const dateLayout = "2006-01-02"

// Store implements roster persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reporting_months (
		id TEXT PRIMARY KEY,
		month_key TEXT NOT NULL UNIQUE,
		label TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS uploads (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL,
		month_id TEXT,
		uploaded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_uploads_org
		ON uploads(organization_id, uploaded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_uploads_month
		ON uploads(month_id) WHERE month_id IS NOT NULL;

	-- Append-only roster history. seq is the dedup tie-break.
	CREATE TABLE IF NOT EXISTS employee_records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id TEXT NOT NULL UNIQUE,
		upload_id TEXT NOT NULL,
		primary_id TEXT,
		secondary_id TEXT,
		name TEXT,
		hire_date TEXT,
		exit_date TEXT,
		entity TEXT,
		gender TEXT,
		age REAL,
		tenure_years REAL,
		work_level TEXT,
		ctc TEXT,
		location TEXT,
		payroll_location TEXT,
		email TEXT,
		designation TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_records_upload
		ON employee_records(upload_id);
	CREATE INDEX IF NOT EXISTS idx_records_entity
		ON employee_records(entity) WHERE entity IS NOT NULL;
	CREATE INDEX IF NOT EXISTS idx_records_hire
		ON employee_records(hire_date) WHERE hire_date IS NOT NULL;
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ORGANIZATIONS
// =============================================================================

// SaveOrganization inserts or renames an organization.
func (s *Store) SaveOrganization(ctx context.Context, org workforce.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		org.ID, org.Name, org.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

// GetOrganization returns nil if not found.
func (s *Store) GetOrganization(ctx context.Context, id string) (*workforce.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM organizations WHERE id = ?`, id)

	var org workforce.Organization
	var createdAt string
	if err := row.Scan(&org.ID, &org.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	org.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &org, nil
}

// ListOrganizations returns all organizations ordered by name.
func (s *Store) ListOrganizations(ctx context.Context) ([]workforce.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM organizations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []workforce.Organization
	for rows.Next() {
		var org workforce.Organization
		var createdAt string
		if err := rows.Scan(&org.ID, &org.Name, &createdAt); err != nil {
			return nil, err
		}
		org.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// DeleteOrganization removes an organization together with its uploads
// and every record derived from them, in one transaction.
func (s *Store) DeleteOrganization(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM employee_records
		WHERE upload_id IN (SELECT id FROM uploads WHERE organization_id = ?)`, id); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM uploads WHERE organization_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete uploads: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM organizations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return workforce.ErrOrganizationNotFound
	}
	return tx.Commit()
}

// =============================================================================
// REPORTING MONTHS
// =============================================================================

// UpsertReportingMonth registers or relabels a reporting month.
func (s *Store) UpsertReportingMonth(ctx context.Context, m workforce.ReportingMonth) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reporting_months (id, month_key, label)
		VALUES (?, ?, ?)
		ON CONFLICT(month_key) DO UPDATE SET label = excluded.label`,
		m.ID, m.Key, m.Label)
	if err != nil {
		return fmt.Errorf("failed to save reporting month: %w", err)
	}
	return nil
}

// GetReportingMonthByKey returns ErrMonthNotFound for an unknown key.
func (s *Store) GetReportingMonthByKey(ctx context.Context, key string) (*workforce.ReportingMonth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, month_key, label FROM reporting_months WHERE month_key = ?`, key)

	var m workforce.ReportingMonth
	if err := row.Scan(&m.ID, &m.Key, &m.Label); err != nil {
		if err == sql.ErrNoRows {
			return nil, workforce.ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to get reporting month: %w", err)
	}
	return &m, nil
}

// ListReportingMonths returns all known months, newest key first.
func (s *Store) ListReportingMonths(ctx context.Context) ([]workforce.ReportingMonth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, month_key, label FROM reporting_months ORDER BY month_key DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reporting months: %w", err)
	}
	defer rows.Close()

	var months []workforce.ReportingMonth
	for rows.Next() {
		var m workforce.ReportingMonth
		if err := rows.Scan(&m.ID, &m.Key, &m.Label); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// LatestUploadMonth returns the reporting month of the organization's
// most recent month-pinned upload, or nil when the org has none.
func (s *Store) LatestUploadMonth(ctx context.Context, orgID string) (*workforce.ReportingMonth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT m.id, m.month_key, m.label
		FROM uploads u
		JOIN reporting_months m ON m.id = u.month_id
		WHERE u.organization_id = ? AND u.month_id IS NOT NULL
		ORDER BY u.uploaded_at DESC
		LIMIT 1`, orgID)

	var m workforce.ReportingMonth
	if err := row.Scan(&m.ID, &m.Key, &m.Label); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve latest upload month: %w", err)
	}
	return &m, nil
}

// =============================================================================
// UPLOADS & RECORDS
// =============================================================================

// CreateUpload stores an upload and its records atomically. Record Seq
// values are assigned by the database in insertion order.
func (s *Store) CreateUpload(ctx context.Context, up workforce.Upload, records []workforce.EmployeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var monthID any
	if up.MonthID != "" {
		monthID = up.MonthID
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO uploads (id, organization_id, month_id, uploaded_at)
		VALUES (?, ?, ?, ?)`,
		up.ID, up.OrganizationID, monthID, up.UploadedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employee_records (
			record_id, upload_id, primary_id, secondary_id, name,
			hire_date, exit_date, entity, gender, age, tenure_years,
			work_level, ctc, location, payroll_location, email, designation
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			rec.RecordID, up.ID,
			nullString(rec.PrimaryID), nullString(rec.SecondaryID), nullString(rec.Name),
			nullDate(rec.HireDate), nullDatePtr(rec.ExitDate),
			nullString(rec.Entity), nullString(rec.Gender),
			nullFloat(rec.Age), nullFloat(rec.TenureYears),
			nullString(rec.WorkLevel), nullDecimal(rec.CTC),
			nullString(rec.Location), nullString(rec.PayrollLocation),
			nullString(rec.Email), nullString(rec.Designation)); err != nil {
			return fmt.Errorf("failed to insert record %s: %w", rec.RecordID, err)
		}
	}
	return tx.Commit()
}

// DeleteUpload removes an upload and all of its records in one
// transaction, keeping the identity-to-latest mapping consistent for
// any interleaved metrics query.
func (s *Store) DeleteUpload(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM employee_records WHERE upload_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM uploads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return workforce.ErrUploadNotFound
	}
	return tx.Commit()
}

// Dataset loads the in-scope record history. Org/month narrowing happens
// here with bound parameters; entity filtering stays in the engine.
func (s *Store) Dataset(ctx context.Context, scope workforce.Scope) (workforce.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT u.id, u.organization_id, COALESCE(u.month_id, ''), u.uploaded_at
		FROM uploads u
		WHERE 1 = 1`
	var args []any
	if scope.OrganizationID != "" {
		query += ` AND u.organization_id = ?`
		args = append(args, scope.OrganizationID)
	}
	if scope.MonthID != "" {
		query += ` AND u.month_id = ?`
		args = append(args, scope.MonthID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return workforce.Dataset{}, fmt.Errorf("failed to load uploads: %w", err)
	}
	defer rows.Close()

	uploads := make(map[string]workforce.Upload)
	var uploadIDs []any
	for rows.Next() {
		var up workforce.Upload
		var uploadedAt string
		if err := rows.Scan(&up.ID, &up.OrganizationID, &up.MonthID, &uploadedAt); err != nil {
			return workforce.Dataset{}, err
		}
		up.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
		uploads[up.ID] = up
		uploadIDs = append(uploadIDs, up.ID)
	}
	if err := rows.Err(); err != nil {
		return workforce.Dataset{}, err
	}
	if len(uploadIDs) == 0 {
		return workforce.Dataset{Uploads: uploads}, nil
	}

	recQuery := `
		SELECT seq, record_id, upload_id,
		       COALESCE(primary_id, ''), COALESCE(secondary_id, ''), COALESCE(name, ''),
		       hire_date, exit_date,
		       COALESCE(entity, ''), COALESCE(gender, ''), age, tenure_years,
		       COALESCE(work_level, ''), ctc,
		       COALESCE(location, ''), COALESCE(payroll_location, ''),
		       COALESCE(email, ''), COALESCE(designation, '')
		FROM employee_records
		WHERE upload_id IN (` + placeholders(len(uploadIDs)) + `)
		ORDER BY seq`

	recRows, err := s.db.QueryContext(ctx, recQuery, uploadIDs...)
	if err != nil {
		return workforce.Dataset{}, fmt.Errorf("failed to load records: %w", err)
	}
	defer recRows.Close()

	var records []workforce.EmployeeRecord
	for recRows.Next() {
		rec, err := scanRecord(recRows)
		if err != nil {
			return workforce.Dataset{}, err
		}
		records = append(records, rec)
	}
	return workforce.Dataset{Records: records, Uploads: uploads}, recRows.Err()
}

// ListEntities returns the distinct non-empty entity labels in scope,
// sorted.
func (s *Store) ListEntities(ctx context.Context, scope workforce.Scope) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT DISTINCT e.entity
		FROM employee_records e
		JOIN uploads u ON u.id = e.upload_id
		WHERE e.entity IS NOT NULL AND e.entity != ''`
	var args []any
	if scope.OrganizationID != "" {
		query += ` AND u.organization_id = ?`
		args = append(args, scope.OrganizationID)
	}
	if scope.MonthID != "" {
		query += ` AND u.month_id = ?`
		args = append(args, scope.MonthID)
	}
	query += ` ORDER BY e.entity`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	defer rows.Close()

	var entities []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// GetRecord returns a single record by record id, or ErrEmployeeNotFound.
func (s *Store) GetRecord(ctx context.Context, recordID string) (*workforce.EmployeeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT seq, record_id, upload_id,
		       COALESCE(primary_id, ''), COALESCE(secondary_id, ''), COALESCE(name, ''),
		       hire_date, exit_date,
		       COALESCE(entity, ''), COALESCE(gender, ''), age, tenure_years,
		       COALESCE(work_level, ''), ctc,
		       COALESCE(location, ''), COALESCE(payroll_location, ''),
		       COALESCE(email, ''), COALESCE(designation, '')
		FROM employee_records WHERE record_id = ?`, recordID)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, workforce.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &rec, nil
}

// =============================================================================
// SCAN & NULL HELPERS
// =============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (workforce.EmployeeRecord, error) {
	var rec workforce.EmployeeRecord
	var hireDate, exitDate, ctc sql.NullString
	var age, tenure sql.NullFloat64

	err := row.Scan(&rec.Seq, &rec.RecordID, &rec.UploadID,
		&rec.PrimaryID, &rec.SecondaryID, &rec.Name,
		&hireDate, &exitDate,
		&rec.Entity, &rec.Gender, &age, &tenure,
		&rec.WorkLevel, &ctc,
		&rec.Location, &rec.PayrollLocation,
		&rec.Email, &rec.Designation)
	if err != nil {
		return rec, err
	}

	if hireDate.Valid && hireDate.String != "" {
		rec.HireDate, _ = time.Parse(dateLayout, hireDate.String)
	}
	if exitDate.Valid && exitDate.String != "" {
		if t, err := time.Parse(dateLayout, exitDate.String); err == nil {
			rec.ExitDate = &t
		}
	}
	if age.Valid {
		v := age.Float64
		rec.Age = &v
	}
	if tenure.Valid {
		v := tenure.Float64
		rec.TenureYears = &v
	}
	if ctc.Valid && ctc.String != "" {
		if d, err := decimal.NewFromString(ctc.String); err == nil {
			rec.CTC = &d
		}
	}
	return rec, nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	out := "?"
	for i := 1; i < n; i++ {
		out += ", ?"
	}
	return out
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

func nullDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
