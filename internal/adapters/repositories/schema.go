package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"school-directory-service/internal/adapters/beacon"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/platform/db"
	"strings"
)

// Initialize the schools table. The DDL is valid for both sqlite and postgres.
func InitSchema(conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSchoolsQuery := `
	CREATE TABLE IF NOT EXISTS schools (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL DEFAULT '',
		enrolled INTEGER NOT NULL DEFAULT 0,
		applicants INTEGER NOT NULL DEFAULT 0,
		admitted INTEGER NOT NULL DEFAULT 0,
		tuition INTEGER NOT NULL DEFAULT 0,
		highest_degree TEXT NOT NULL DEFAULT '',
		county TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_schools_state
	ON schools(state);
	`

	statements := []string{
		createSchoolsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the schools table from a Beacon-shaped JSON file.
func SeedFromJSON(conn *sql.DB, dialect db.Dialect, jsonPath string) error {
	f, err := os.Open(jsonPath)
	if err != nil {
		return fmt.Errorf("seed schools: open %q: %w", jsonPath, err)
	}
	defer f.Close()

	data, err := beacon.DecodeEnvelope(f)
	if err != nil {
		return fmt.Errorf("seed schools: parse json: %w", err)
	}

	return Seed(conn, dialect, data)
}

// Upsert schools inside a single transaction.
func Seed(conn *sql.DB, dialect db.Dialect, schools []domain.School) error {
	if conn == nil {
		return errors.New("seed schools: DB is nil")
	}

	seen := make(map[string]struct{}, len(schools))
	for i, s := range schools {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("seed schools: item at index %d: id cannot be empty", i+1)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed schools: item at index %d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		if err := s.Validate(); err != nil {
			return fmt.Errorf("seed schools: item at index %d: %w", i+1, err)
		}
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seed schools: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := make([]string, 13)
	for i := range ph {
		ph[i] = dialect.Placeholder(i + 1)
	}

	// Only the placeholder structure is interpolated; all values remain parameterized.
	query := fmt.Sprintf(`
	INSERT INTO schools (
		id, name, type, zip_code, enrolled, applicants, admitted,
		tuition, highest_degree, county, state, latitude, longitude
	)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE
	SET name = excluded.name,
		type = excluded.type,
		zip_code = excluded.zip_code,
		enrolled = excluded.enrolled,
		applicants = excluded.applicants,
		admitted = excluded.admitted,
		tuition = excluded.tuition,
		highest_degree = excluded.highest_degree,
		county = excluded.county,
		state = excluded.state,
		latitude = excluded.latitude,
		longitude = excluded.longitude;
	`, strings.Join(ph, ", "))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed schools: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range schools {
		var lat, long sql.NullFloat64
		if s.Coordinates != nil {
			lat = sql.NullFloat64{Float64: s.Coordinates.Lat, Valid: true}
			long = sql.NullFloat64{Float64: s.Coordinates.Long, Valid: true}
		}

		if _, err := stmt.Exec(
			strings.TrimSpace(s.ID), s.Name, s.Type, s.ZipCode,
			s.Enrolled, s.Applicants, s.Admitted, s.Tuition,
			s.HighestDegree, s.County, s.State, lat, long,
		); err != nil {
			return fmt.Errorf("seed schools: insert id=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed schools: commit tx: %w", err)
	}

	return nil
}
