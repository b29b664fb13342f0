package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/pkg/telemetry"
	gardendomain "github.com/ghuser/grow/services/garden/domain"
	"github.com/ghuser/grow/services/garden/domain/models"
	"github.com/ghuser/grow/services/garden/domain/repositories"
	domainsvcs "github.com/ghuser/grow/services/garden/domain/services"
)

// BedService owns index assignment and bulk replacement for the bed
// collection. Every write runs inside one store transaction, so concurrent
// single creates never share an index and replacements are all-or-nothing.
// Reads by id are served from Redis when a cache is configured.
type BedService struct {
	store   repositories.BedStore
	cache   *pkgcache.BedCache
	metrics *telemetry.BedMetrics
}

// NewBedService returns a BedService over store. bedCache may be nil.
func NewBedService(store repositories.BedStore, bedCache *pkgcache.BedCache) *BedService {
	return &BedService{store: store, cache: bedCache}
}

// WithMetrics makes the service count bed writes on m.
func (s *BedService) WithMetrics(m *telemetry.BedMetrics) *BedService {
	s.metrics = m
	return s
}

func newDimensions(length, width int) (models.Dimensions, error) {
	dims, err := models.NewDimensions(length, width)
	if err != nil {
		return models.Dimensions{}, fmt.Errorf("%w: %w", gardendomain.ErrInvalidBedDimensions, err)
	}
	return dims, nil
}

func newBatch(count, length, width int) ([]*models.Bed, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: number of beds must be at least 1, got %d", gardendomain.ErrInvalidBedCount, count)
	}
	dims, err := newDimensions(length, width)
	if err != nil {
		return nil, err
	}
	beds, err := models.NewBedBatch(count, dims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gardendomain.ErrInvalidBedCount, err)
	}
	if err := domainsvcs.ValidateBatchForCreation(beds); err != nil {
		return nil, fmt.Errorf("%w: %w", gardendomain.ErrInvalidBedDimensions, err)
	}
	return beds, nil
}

// CreateBed appends one bed at the next index after the current maximum.
func (s *BedService) CreateBed(ctx context.Context, length, width int) (*models.Bed, error) {
	dims, err := newDimensions(length, width)
	if err != nil {
		return nil, err
	}

	var created *models.Bed
	err = s.store.WithinTx(ctx, func(tx repositories.BedRepository) error {
		maxIndex, err := tx.MaxIndex(ctx)
		if err != nil {
			return err
		}
		bed, err := models.NewBed(domainsvcs.NextIndex(maxIndex), dims)
		if err != nil {
			return err
		}
		if err := domainsvcs.ValidateBedForCreation(bed); err != nil {
			return fmt.Errorf("%w: %w", gardendomain.ErrInvalidBedDimensions, err)
		}
		created, err = tx.InsertOne(ctx, bed)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bed: %w", err)
	}
	s.metrics.Created(ctx, "single", 1)
	return created, nil
}

// CreateBeds inserts count identical beds numbered 1..count. It fails with
// ErrBedIndexConflict, writing nothing, when any of those indices is taken.
func (s *BedService) CreateBeds(ctx context.Context, count, length, width int) ([]*models.Bed, error) {
	beds, err := newBatch(count, length, width)
	if err != nil {
		return nil, err
	}

	var created []*models.Bed
	err = s.store.WithinTx(ctx, func(tx repositories.BedRepository) error {
		created, err = tx.InsertMany(ctx, beds)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create beds: %w", err)
	}
	s.metrics.Created(ctx, "batch", len(created))
	return created, nil
}

// ReplaceBeds deletes every bed and inserts count new ones numbered 1..count
// in a single transaction.
func (s *BedService) ReplaceBeds(ctx context.Context, count, length, width int) ([]*models.Bed, error) {
	beds, err := newBatch(count, length, width)
	if err != nil {
		return nil, err
	}

	var (
		created []*models.Bed
		removed int
	)
	err = s.store.WithinTx(ctx, func(tx repositories.BedRepository) error {
		if removed, err = tx.DeleteAll(ctx); err != nil {
			return err
		}
		created, err = tx.InsertMany(ctx, beds)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replace beds: %w", err)
	}
	s.purgeCache(ctx)
	s.metrics.Deleted(ctx, "replace", removed)
	s.metrics.Created(ctx, "replace", len(created))
	return created, nil
}

// ListBeds returns every bed ordered by index.
func (s *BedService) ListBeds(ctx context.Context) ([]*models.Bed, error) {
	beds, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	return beds, nil
}

// GetBed retrieves a bed using a read-through cache:
//  1. Check Redis first.
//  2. On a miss or cache error, note the cache generation and query the store.
//  3. Warm the cache with the store result unless a write bumped the
//     generation in between.
func (s *BedService) GetBed(ctx context.Context, id uuid.UUID) (*models.Bed, error) {
	var (
		gen  int64
		warm bool
	)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Bed{
				ID:            cached.ID,
				Index:         cached.Index,
				Dimensions:    models.Dimensions{Length: cached.Length, Width: cached.Width},
				PlantFamilies: cached.PlantFamilies,
			}, nil
		}
		var err error
		gen, err = s.cache.Generation(ctx)
		warm = err == nil
	}

	bed, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bed: %w", err)
	}

	if warm {
		_ = s.cache.Set(context.WithoutCancel(ctx), ToCachedBed(bed), gen)
	}
	return bed, nil
}

// UpdateBed overwrites a bed's length and width. Its id and index never change.
func (s *BedService) UpdateBed(ctx context.Context, id uuid.UUID, length, width int) (*models.Bed, error) {
	dims, err := newDimensions(length, width)
	if err != nil {
		return nil, err
	}

	var updated *models.Bed
	err = s.store.WithinTx(ctx, func(tx repositories.BedRepository) error {
		updated, err = tx.UpdateFields(ctx, id, dims)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update bed: %w", err)
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// DeleteBed removes one bed and reports whether it existed. Remaining beds
// keep their indices.
func (s *BedService) DeleteBed(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete bed: %w", err)
	}
	if deleted {
		s.invalidate(ctx, id)
		s.metrics.Deleted(ctx, "single", 1)
	}
	return deleted, nil
}

// DeleteAllBeds removes every bed and returns how many were removed. The next
// create starts again at index 1.
func (s *BedService) DeleteAllBeds(ctx context.Context) (int, error) {
	var removed int
	err := s.store.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		removed, err = tx.DeleteAll(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete all beds: %w", err)
	}
	s.purgeCache(ctx)
	s.metrics.Deleted(ctx, "all", removed)
	return removed, nil
}

func (s *BedService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), id)
	}
}

func (s *BedService) purgeCache(ctx context.Context) {
	if s.cache != nil {
		_, _ = s.cache.Purge(context.WithoutCancel(ctx))
	}
}

// ToCachedBed converts a bed to its cache read model.
func ToCachedBed(bed *models.Bed) *pkgcache.CachedBed {
	return &pkgcache.CachedBed{
		ID:            bed.ID,
		Index:         bed.Index,
		Length:        bed.Length,
		Width:         bed.Width,
		PlantFamilies: bed.PlantFamilies,
	}
}
