package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCHOOL_SOURCE", "")
	t.Setenv("PORT", "")
	t.Setenv("BEACON_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceBeacon, cfg.Source)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, DefaultBeaconURL, cfg.BeaconURL)
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("SCHOOL_SOURCE", "Postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/schools")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourcePostgres, cfg.Source)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("SCHOOL_SOURCE", "redis")

	_, err := Load()
	require.ErrorContains(t, err, "unknown SCHOOL_SOURCE")
}

func TestDefaultsSkipsValidation(t *testing.T) {
	t.Setenv("SCHOOL_SOURCE", "redis")

	cfg := Defaults()
	require.Equal(t, Source("redis"), cfg.Source)
	require.Error(t, cfg.Validate())
}
