package bootstrap

import (
	"fmt"
	"school-directory-service/internal/adapters/beacon"
	"school-directory-service/internal/adapters/fixture"
	"school-directory-service/internal/adapters/repositories"
	"school-directory-service/internal/config"
	"school-directory-service/internal/platform/db"
	"school-directory-service/internal/ports"

	"go.uber.org/zap"
)

// OpenDirectory builds the school directory adapter selected by cfg.Source.
// The returned close func releases any database connection and is never nil.
func OpenDirectory(cfg config.Config, logger *zap.Logger) (ports.SchoolDirectory, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.SourceBeacon:
		client, err := beacon.NewClient(cfg.BeaconURL, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("open directory: %w", err)
		}
		return client, noop, nil

	case config.SourceFile:
		return fixture.NewFileDirectory(cfg.SeedPath), noop, nil

	case config.SourceSQLite, config.SourcePostgres:
		dialect, dsn := db.DialectSQLite, cfg.DBPath
		if cfg.Source == config.SourcePostgres {
			dialect, dsn = db.DialectPostgres, cfg.DatabaseURL
		}

		conn, err := db.Open(dialect, dsn)
		if err != nil {
			return nil, noop, fmt.Errorf("open directory: %w", err)
		}
		return repositories.NewSQLSchoolRepository(conn, logger), conn.Close, nil
	}

	return nil, noop, fmt.Errorf("open directory: unknown source %q", cfg.Source)
}
