package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Source names a school directory backend.
type Source string

const (
	SourceBeacon   Source = "beacon"
	SourceSQLite   Source = "sqlite"
	SourcePostgres Source = "postgres"
	SourceFile     Source = "file"
)

const DefaultBeaconURL = "https://api.sendbeacon.com/team/schools"

type Config struct {
	Port        string
	Source      Source
	BeaconURL   string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	LogLevel    string
}

// Get reads key from the environment, falling back when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file if present. It reports whether one was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Defaults reads the configuration from the environment without validating it.
func Defaults() Config {
	return Config{
		Port:        Get("PORT", "8080"),
		Source:      Source(strings.ToLower(Get("SCHOOL_SOURCE", string(SourceBeacon)))),
		BeaconURL:   Get("BEACON_URL", DefaultBeaconURL),
		DBPath:      Get("DB_PATH", "data/schools.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SeedPath:    Get("SEED_PATH", "data/seeds/schools.json"),
		LogLevel:    Get("LOG_LEVEL", "info"),
	}
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceBeacon:
		if strings.TrimSpace(c.BeaconURL) == "" {
			return fmt.Errorf("config: BEACON_URL is required for source %q", c.Source)
		}
	case SourceSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: DB_PATH is required for source %q", c.Source)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for source %q", c.Source)
		}
	case SourceFile:
		if strings.TrimSpace(c.SeedPath) == "" {
			return fmt.Errorf("config: SEED_PATH is required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("config: unknown SCHOOL_SOURCE %q", c.Source)
	}
	return nil
}
