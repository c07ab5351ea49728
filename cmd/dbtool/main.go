package main

import (
	"database/sql"
	"flag"
	"log"
	"school-directory-service/internal/adapters/repositories"
	"school-directory-service/internal/config"
	"school-directory-service/internal/platform/db"
	"school-directory-service/internal/platform/obs"
	"strings"

	"go.uber.org/zap"
)

func main() {
	dialectFlag := flag.String("dialect", "", "sqlite or postgres (defaults to SCHOOL_SOURCE)")
	flag.Parse()

	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	name := *dialectFlag
	if name == "" {
		name = config.Get("SCHOOL_SOURCE", string(db.DialectSQLite))
	}
	dialect, err := db.ParseDialect(strings.ToLower(name))
	if err != nil {
		logger.Fatal("invalid dialect", zap.Error(err))
	}

	dsn := config.Get("DB_PATH", "data/schools.db")
	if dialect == db.DialectPostgres {
		dsn = config.Get("DATABASE_URL", "")
		if strings.TrimSpace(dsn) == "" {
			logger.Fatal("DATABASE_URL is required")
		}
	}

	conn, err := db.Open(dialect, dsn)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/schools.json")
	if err := initAndSeed(conn, dialect, seedPath, logger); err != nil {
		logger.Fatal("init and seed", zap.Error(err))
	}
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string, logger *zap.Logger) error {
	logger.Info("initializing database schema", zap.String("dialect", string(dialect)))
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("seed_path", seedPath))
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return err
	}
	logger.Info("seeding complete")

	return nil
}
