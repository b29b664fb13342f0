// Package memory provides an in-memory BedStore used by tests and
// ephemeral environments.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	gardendomain "github.com/ghuser/grow/services/garden/domain"
	"github.com/ghuser/grow/services/garden/domain/models"
	"github.com/ghuser/grow/services/garden/domain/repositories"
)

var _ repositories.BedStore = (*BedRepository)(nil)

type bedState struct {
	beds map[uuid.UUID]*models.Bed
}

func newBedState() bedState {
	return bedState{beds: make(map[uuid.UUID]*models.Bed)}
}

func (s bedState) clone() bedState {
	c := bedState{beds: make(map[uuid.UUID]*models.Bed, len(s.beds))}
	for id, b := range s.beds {
		c.beds[id] = b.Clone()
	}
	return c
}

// BedRepository keeps beds in a map. Writers hold an exclusive lock and work
// on a private clone that replaces the live state only when they succeed, so
// readers see either the old or the new collection.
type BedRepository struct {
	mu    sync.RWMutex
	state bedState
}

// NewBedRepository returns an empty store.
func NewBedRepository() *BedRepository {
	return &BedRepository{state: newBedState()}
}

// WithinTx runs fn against a clone of the collection and publishes the clone
// when fn returns nil.
func (r *BedRepository) WithinTx(ctx context.Context, fn func(tx repositories.BedRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state.clone()
	if err := fn(&bedTx{state: &next}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.state = next
	return nil
}

func (r *BedRepository) view() *bedTx {
	return &bedTx{state: &r.state}
}

func (r *BedRepository) InsertOne(ctx context.Context, bed *models.Bed) (*models.Bed, error) {
	var out *models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.InsertOne(ctx, bed)
		return err
	})
	return out, err
}

func (r *BedRepository) InsertMany(ctx context.Context, beds []*models.Bed) ([]*models.Bed, error) {
	var out []*models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.InsertMany(ctx, beds)
		return err
	})
	return out, err
}

func (r *BedRepository) UpdateFields(ctx context.Context, id uuid.UUID, dims models.Dimensions) (*models.Bed, error) {
	var out *models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.UpdateFields(ctx, id, dims)
		return err
	})
	return out, err
}

func (r *BedRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		deleted, err = tx.DeleteByID(ctx, id)
		return err
	})
	return deleted, err
}

func (r *BedRepository) DeleteAll(ctx context.Context) (int, error) {
	var n int
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		n, err = tx.DeleteAll(ctx)
		return err
	})
	return n, err
}

func (r *BedRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Bed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view().FindByID(ctx, id)
}

func (r *BedRepository) FindAll(ctx context.Context) ([]*models.Bed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view().FindAll(ctx)
}

func (r *BedRepository) MaxIndex(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view().MaxIndex(ctx)
}

// bedTx operates on one state value. Inside WithinTx that value is a private
// clone; for reads it is the live state under the read lock.
type bedTx struct {
	state *bedState
}

func (t *bedTx) indexTaken(index int) bool {
	for _, b := range t.state.beds {
		if b.Index == index {
			return true
		}
	}
	return false
}

func (t *bedTx) InsertOne(_ context.Context, bed *models.Bed) (*models.Bed, error) {
	if _, ok := t.state.beds[bed.ID]; ok {
		return nil, fmt.Errorf("insert bed: duplicate id %s", bed.ID)
	}
	if t.indexTaken(bed.Index) {
		return nil, gardendomain.ErrBedIndexConflict
	}
	stored := bed.Clone()
	t.state.beds[stored.ID] = stored
	return stored.Clone(), nil
}

func (t *bedTx) InsertMany(ctx context.Context, beds []*models.Bed) ([]*models.Bed, error) {
	out := make([]*models.Bed, 0, len(beds))
	for _, b := range beds {
		stored, err := t.InsertOne(ctx, b)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

func (t *bedTx) FindByID(_ context.Context, id uuid.UUID) (*models.Bed, error) {
	b, ok := t.state.beds[id]
	if !ok {
		return nil, gardendomain.ErrBedNotFound
	}
	return b.Clone(), nil
}

func (t *bedTx) FindAll(_ context.Context) ([]*models.Bed, error) {
	out := make([]*models.Bed, 0, len(t.state.beds))
	for _, b := range t.state.beds {
		out = append(out, b.Clone())
	}
	slices.SortFunc(out, func(a, b *models.Bed) int { return cmp.Compare(a.Index, b.Index) })
	return out, nil
}

func (t *bedTx) UpdateFields(_ context.Context, id uuid.UUID, dims models.Dimensions) (*models.Bed, error) {
	b, ok := t.state.beds[id]
	if !ok {
		return nil, gardendomain.ErrBedNotFound
	}
	b.Dimensions = dims
	return b.Clone(), nil
}

func (t *bedTx) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := t.state.beds[id]; !ok {
		return false, nil
	}
	delete(t.state.beds, id)
	return true, nil
}

func (t *bedTx) DeleteAll(_ context.Context) (int, error) {
	n := len(t.state.beds)
	clear(t.state.beds)
	return n, nil
}

func (t *bedTx) MaxIndex(_ context.Context) (int, error) {
	maxIndex := 0
	for _, b := range t.state.beds {
		maxIndex = max(maxIndex, b.Index)
	}
	return maxIndex, nil
}
