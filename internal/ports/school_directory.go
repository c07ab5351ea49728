package ports

import (
	"context"
	"school-directory-service/internal/domain"
)

// Port: a boundary for retrieving the school directory from a data source.
type SchoolDirectory interface {
	// Retrieve every school the source knows about, in source order.
	ListSchools(ctx context.Context) ([]domain.School, error)
}
