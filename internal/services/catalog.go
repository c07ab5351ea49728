package services

import (
	"context"
	"errors"
	"fmt"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/platform/obs"
	"school-directory-service/internal/ports"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrCatalogLoading     = errors.New("school directory is loading")
	ErrCatalogUnavailable = errors.New("school directory is unavailable")
)

// LoadState describes the lifecycle of the directory snapshot.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// View is one arranged rendering of the catalog.
type View struct {
	Strategy Strategy
	Total    int
	Schools  []domain.School
	LoadedAt time.Time
}

// Catalog owns the school list fetched from a directory and re-arranges it on demand.
//
// The snapshot is replaced wholesale on every successful load and never mutated
// afterwards, so views computed concurrently never observe a partial list.
// The catalog is safe for concurrent use.
type Catalog struct {
	dir    ports.SchoolDirectory
	logger *zap.Logger

	// loadMu serialises Load so an older fetch never overwrites a newer one.
	loadMu sync.Mutex

	mu       sync.RWMutex
	state    LoadState
	schools  []domain.School
	loadErr  error
	loadedAt time.Time
}

func NewCatalog(dir ports.SchoolDirectory, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		dir:    dir,
		logger: logger,
		state:  StateLoading,
	}
}

// Load fetches the directory once. There is no retry; a failure leaves the
// previous snapshot in place if one exists, otherwise the catalog becomes failed.
func (c *Catalog) Load(ctx context.Context) (err error) {
	defer obs.Time(ctx, c.logger, "catalog.Load")(&err)

	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if c.dir == nil {
		err := errors.New("directory is nil")
		c.fail(err)
		return fmt.Errorf("load catalog: %w", err)
	}

	schools, err := c.dir.ListSchools(ctx)
	if err != nil {
		c.fail(err)
		return fmt.Errorf("load catalog: list schools: %w", err)
	}

	// Duplicates are kept; the directory is shown as the source returned it.
	seen := make(map[string]struct{}, len(schools))
	for i, s := range schools {
		if _, ok := seen[s.ID]; ok {
			c.logger.Warn("duplicate school id in directory, keeping both", zap.String("id", s.ID), zap.Int("index", i))
		}
		seen[s.ID] = struct{}{}
	}

	snapshot := make([]domain.School, len(schools))
	copy(snapshot, schools)

	c.mu.Lock()
	c.schools = snapshot
	c.state = StateReady
	c.loadErr = nil
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info("school directory loaded", zap.Int("schools", len(snapshot)))
	return nil
}

func (c *Catalog) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schools == nil {
		c.state = StateFailed
	}
	c.loadErr = err
}

// State reports the current lifecycle state and the last load error, if any.
func (c *Catalog) State() (LoadState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.loadErr
}

// View arranges the current snapshot for a reference location and search query.
func (c *Catalog) View(origin *domain.Coordinates, query string) (View, error) {
	c.mu.RLock()
	state, schools, loadErr, loadedAt := c.state, c.schools, c.loadErr, c.loadedAt
	c.mu.RUnlock()

	switch state {
	case StateLoading:
		return View{}, ErrCatalogLoading
	case StateFailed:
		return View{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, loadErr)
	}

	arranged, strategy, err := Arrange(schools, origin, query)
	if err != nil {
		return View{}, fmt.Errorf("catalog view: %w", err)
	}

	return View{
		Strategy: strategy,
		Total:    len(schools),
		Schools:  arranged,
		LoadedAt: loadedAt,
	}, nil
}
