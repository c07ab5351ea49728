package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"school-directory-service/internal/adapters/beacon"
	"school-directory-service/internal/adapters/fixture"
	"school-directory-service/internal/adapters/repositories"
	"school-directory-service/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDirectorySelectsAdapter(t *testing.T) {
	dir, closeFn, err := OpenDirectory(config.Config{Source: config.SourceBeacon, BeaconURL: config.DefaultBeaconURL}, nil)
	require.NoError(t, err)
	require.IsType(t, &beacon.Client{}, dir)
	require.NoError(t, closeFn())

	dir, closeFn, err = OpenDirectory(config.Config{Source: config.SourceFile, SeedPath: "schools.json"}, nil)
	require.NoError(t, err)
	require.IsType(t, &fixture.FileDirectory{}, dir)
	require.NoError(t, closeFn())

	_, closeFn, err = OpenDirectory(config.Config{Source: "carrier-pigeon"}, nil)
	require.Error(t, err)
	require.NotNil(t, closeFn)
}

func TestOpenDirectorySQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schools.db")

	dir, closeFn, err := OpenDirectory(config.Config{Source: config.SourceSQLite, DBPath: path}, nil)
	require.NoError(t, err)
	defer closeFn()

	repo, ok := dir.(*repositories.SQLSchoolRepository)
	require.True(t, ok)
	require.NoError(t, repositories.InitSchema(repo.DB))

	schools, err := dir.ListSchools(context.Background())
	require.NoError(t, err)
	require.Empty(t, schools)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
