package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/platform/obs"

	"go.uber.org/zap"
)

// SQL-backed implementation of the SchoolDirectory port.
// The same queries serve sqlite and postgres.
type SQLSchoolRepository struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func NewSQLSchoolRepository(conn *sql.DB, logger *zap.Logger) *SQLSchoolRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLSchoolRepository{DB: conn, Logger: logger}
}

// Return all schools stored in the database.
func (s *SQLSchoolRepository) ListSchools(ctx context.Context) (_ []domain.School, err error) {
	defer obs.Time(ctx, s.Logger, "schools.repo.ListSchools")(&err)

	if s.DB == nil {
		return nil, errors.New("sql school repository: DB is nil")
	}

	query := `
	SELECT
		id, name, type, zip_code, enrolled, applicants, admitted,
		tuition, highest_degree, county, state, latitude, longitude
	FROM schools
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list schools: query schools table: %w", err)
	}
	defer rows.Close()

	schools := make([]domain.School, 0, 64)
	for rows.Next() {
		var sc domain.School
		var lat, long sql.NullFloat64
		err := rows.Scan(
			&sc.ID, &sc.Name, &sc.Type, &sc.ZipCode,
			&sc.Enrolled, &sc.Applicants, &sc.Admitted, &sc.Tuition,
			&sc.HighestDegree, &sc.County, &sc.State, &lat, &long,
		)
		if err != nil {
			return nil, fmt.Errorf("list schools: scan row: %w", err)
		}

		// Both halves are required; a half-present coordinate is treated as missing.
		if lat.Valid && long.Valid {
			sc.Coordinates = &domain.Coordinates{Lat: lat.Float64, Long: long.Float64}
		}
		schools = append(schools, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list schools: row iteration: %w", err)
	}

	return schools, nil
}
