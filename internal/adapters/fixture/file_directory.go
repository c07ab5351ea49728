package fixture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"school-directory-service/internal/adapters/beacon"
	"school-directory-service/internal/domain"
)

// FileDirectory serves a Beacon-shaped JSON document from disk.
// The file is re-read on every call.
type FileDirectory struct {
	Path string
}

func NewFileDirectory(path string) *FileDirectory {
	return &FileDirectory{Path: path}
}

func (d *FileDirectory) ListSchools(ctx context.Context) ([]domain.School, error) {
	if d.Path == "" {
		return nil, errors.New("file directory: path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("file directory: open %q: %w", d.Path, err)
	}
	defer f.Close()

	schools, err := beacon.DecodeEnvelope(f)
	if err != nil {
		return nil, fmt.Errorf("file directory: %q: %w", d.Path, err)
	}
	return schools, nil
}
