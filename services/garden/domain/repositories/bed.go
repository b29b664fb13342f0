package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/garden/domain/models"
)

// BedRepository is the persistence contract for the bed collection.
// The domain layer owns this interface; infrastructure implements it.
type BedRepository interface {
	// InsertOne persists a single bed. Returns ErrBedIndexConflict if its
	// index is already taken by a live bed.
	InsertOne(ctx context.Context, bed *models.Bed) (*models.Bed, error)

	// InsertMany persists beds atomically and returns them in input order.
	// Returns ErrBedIndexConflict if any index is already taken; nothing is
	// written in that case.
	InsertMany(ctx context.Context, beds []*models.Bed) ([]*models.Bed, error)

	// FindByID returns ErrBedNotFound when no bed has the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Bed, error)

	// FindAll returns every live bed ordered by index ascending.
	FindAll(ctx context.Context) ([]*models.Bed, error)

	// UpdateFields overwrites length and width only. Returns ErrBedNotFound
	// when no bed has the given id.
	UpdateFields(ctx context.Context, id uuid.UUID, dims models.Dimensions) (*models.Bed, error)

	// DeleteByID reports whether a bed existed and was removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteAll removes every bed and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)

	// MaxIndex returns the highest live index, or 0 when the collection is empty.
	MaxIndex(ctx context.Context) (int, error)
}

// BedStore is a BedRepository that can scope several operations into one
// unit of work.
type BedStore interface {
	BedRepository

	// WithinTx runs fn with exclusive write access to the bed collection.
	// Writes made through tx become visible to other callers together when fn
	// returns nil, and are discarded when it returns an error. Readers never
	// observe a partially applied fn.
	WithinTx(ctx context.Context, fn func(tx BedRepository) error) error
}
