// Package storetest holds the behaviour every BedStore implementation must
// share. Adapter packages run it from their own tests.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gardendomain "github.com/ghuser/grow/services/garden/domain"
	"github.com/ghuser/grow/services/garden/domain/models"
	"github.com/ghuser/grow/services/garden/domain/repositories"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) repositories.BedStore

var dims = models.Dimensions{Length: 200, Width: 100}

func mustBed(t *testing.T, index int) *models.Bed {
	t.Helper()
	b, err := models.NewBed(index, dims)
	require.NoError(t, err)
	return b
}

func indices(beds []*models.Bed) []int {
	out := make([]int, len(beds))
	for i, b := range beds {
		out[i] = b.Index
	}
	return out
}

// Run executes the contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		s := newStore(t)
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		maxIndex, err := s.MaxIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, maxIndex)

		_, err = s.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, gardendomain.ErrBedNotFound)
	})

	t.Run("insert one and find", func(t *testing.T) {
		s := newStore(t)
		bed := mustBed(t, 1)

		stored, err := s.InsertOne(ctx, bed)
		require.NoError(t, err)
		assert.Equal(t, bed.ID, stored.ID)

		got, err := s.FindByID(ctx, bed.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Index)
		assert.Equal(t, dims, got.Dimensions)
		assert.NotNil(t, got.PlantFamilies)
		assert.Empty(t, got.PlantFamilies)
	})

	t.Run("insert many preserves order", func(t *testing.T) {
		s := newStore(t)
		batch, err := models.NewBedBatch(4, dims)
		require.NoError(t, err)

		stored, err := s.InsertMany(ctx, batch)
		require.NoError(t, err)
		require.Len(t, stored, 4)
		for i := range batch {
			assert.Equal(t, batch[i].ID, stored[i].ID)
		}

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, indices(all))

		maxIndex, err := s.MaxIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, maxIndex)
	})

	t.Run("find all orders by index", func(t *testing.T) {
		s := newStore(t)
		for _, idx := range []int{3, 1, 2} {
			_, err := s.InsertOne(ctx, mustBed(t, idx))
			require.NoError(t, err)
		}
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, indices(all))
	})

	t.Run("duplicate index conflicts", func(t *testing.T) {
		s := newStore(t)
		_, err := s.InsertOne(ctx, mustBed(t, 1))
		require.NoError(t, err)

		_, err = s.InsertOne(ctx, mustBed(t, 1))
		assert.ErrorIs(t, err, gardendomain.ErrBedIndexConflict)
	})

	t.Run("conflicting batch writes nothing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.InsertOne(ctx, mustBed(t, 2))
		require.NoError(t, err)

		batch, err := models.NewBedBatch(3, dims)
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, batch)
		assert.ErrorIs(t, err, gardendomain.ErrBedIndexConflict)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, indices(all))
	})

	t.Run("update changes dimensions only", func(t *testing.T) {
		s := newStore(t)
		bed := mustBed(t, 1)
		_, err := s.InsertOne(ctx, bed)
		require.NoError(t, err)

		updated, err := s.UpdateFields(ctx, bed.ID, models.Dimensions{Length: 50, Width: 60})
		require.NoError(t, err)
		assert.Equal(t, bed.ID, updated.ID)
		assert.Equal(t, 1, updated.Index)
		assert.Equal(t, 50, updated.Length)
		assert.Equal(t, 60, updated.Width)

		_, err = s.UpdateFields(ctx, uuid.New(), dims)
		assert.ErrorIs(t, err, gardendomain.ErrBedNotFound)
	})

	t.Run("delete by id leaves a gap", func(t *testing.T) {
		s := newStore(t)
		batch, err := models.NewBedBatch(3, dims)
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, batch)
		require.NoError(t, err)

		deleted, err := s.DeleteByID(ctx, batch[1].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.DeleteByID(ctx, batch[1].ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, indices(all))

		maxIndex, err := s.MaxIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, maxIndex)
	})

	t.Run("delete all", func(t *testing.T) {
		s := newStore(t)
		n, err := s.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		batch, err := models.NewBedBatch(5, dims)
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, batch)
		require.NoError(t, err)

		n, err = s.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, n)

		maxIndex, err := s.MaxIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, maxIndex)
	})

	t.Run("transaction commits together", func(t *testing.T) {
		s := newStore(t)
		old, err := models.NewBedBatch(2, dims)
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, old)
		require.NoError(t, err)

		next, err := models.NewBedBatch(3, models.Dimensions{Length: 300, Width: 200})
		require.NoError(t, err)
		err = s.WithinTx(ctx, func(tx repositories.BedRepository) error {
			if _, err := tx.DeleteAll(ctx); err != nil {
				return err
			}
			_, err := tx.InsertMany(ctx, next)
			return err
		})
		require.NoError(t, err)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, b := range all {
			assert.Equal(t, next[i].ID, b.ID)
			assert.Equal(t, 300, b.Length)
		}
		for _, b := range old {
			_, err := s.FindByID(ctx, b.ID)
			assert.ErrorIs(t, err, gardendomain.ErrBedNotFound)
		}
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		s := newStore(t)
		old, err := models.NewBedBatch(2, dims)
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, old)
		require.NoError(t, err)

		boom := errors.New("storage failure")
		err = s.WithinTx(ctx, func(tx repositories.BedRepository) error {
			if _, err := tx.DeleteAll(ctx); err != nil {
				return err
			}
			if _, err := tx.InsertOne(ctx, mustBed(t, 1)); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, old[0].ID, all[0].ID)
		assert.Equal(t, old[1].ID, all[1].ID)
	})

	t.Run("transaction sees its own writes", func(t *testing.T) {
		s := newStore(t)
		err := s.WithinTx(ctx, func(tx repositories.BedRepository) error {
			if _, err := tx.InsertOne(ctx, mustBed(t, 1)); err != nil {
				return err
			}
			maxIndex, err := tx.MaxIndex(ctx)
			if err != nil {
				return err
			}
			assert.Equal(t, 1, maxIndex)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("concurrent max plus one inserts stay dense", func(t *testing.T) {
		s := newStore(t)
		const n = 20

		var wg sync.WaitGroup
		errs := make(chan error, n)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.WithinTx(ctx, func(tx repositories.BedRepository) error {
					maxIndex, err := tx.MaxIndex(ctx)
					if err != nil {
						return err
					}
					bed, err := models.NewBed(maxIndex+1, dims)
					if err != nil {
						return err
					}
					_, err = tx.InsertOne(ctx, bed)
					return err
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		want := make([]int, n)
		for i := range want {
			want[i] = i + 1
		}
		assert.Equal(t, want, indices(all))
	})

	t.Run("readers never see a mixed generation", func(t *testing.T) {
		s := newStore(t)
		first, err := models.NewBedBatch(5, models.Dimensions{Length: 1, Width: 1})
		require.NoError(t, err)
		_, err = s.InsertMany(ctx, first)
		require.NoError(t, err)

		done := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(done)
			for gen := 2; gen < 12; gen++ {
				batch, err := models.NewBedBatch(5, models.Dimensions{Length: gen, Width: gen})
				if err != nil {
					t.Error(err)
					return
				}
				err = s.WithinTx(ctx, func(tx repositories.BedRepository) error {
					if _, err := tx.DeleteAll(ctx); err != nil {
						return err
					}
					_, err := tx.InsertMany(ctx, batch)
					return err
				})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				wg.Wait()
				return
			default:
			}
			all, err := s.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 5)
			for _, b := range all {
				assert.Equal(t, all[0].Length, b.Length, "beds from two generations in one read")
			}
		}
	})
}
