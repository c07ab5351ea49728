package fixture

import (
	"context"
	"school-directory-service/internal/domain"
	"slices"
	"sync/atomic"
)

// StaticDirectory returns a fixed list, or Err when set.
type StaticDirectory struct {
	Schools []domain.School
	Err     error

	calls atomic.Int64
}

func NewStaticDirectory(schools []domain.School) *StaticDirectory {
	return &StaticDirectory{Schools: schools}
}

func (d *StaticDirectory) ListSchools(ctx context.Context) ([]domain.School, error) {
	d.calls.Add(1)
	if d.Err != nil {
		return nil, d.Err
	}
	return slices.Clone(d.Schools), nil
}

// Calls reports how many times ListSchools ran.
func (d *StaticDirectory) Calls() int64 { return d.calls.Load() }
