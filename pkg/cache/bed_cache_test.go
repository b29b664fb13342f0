package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBedCache(t *testing.T) (*BedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	return NewBedCache(rc), mr
}

func TestBedCache_SetGet(t *testing.T) {
	ctx := context.Background()
	bc, mr := newTestBedCache(t)

	bed := &CachedBed{ID: uuid.New(), Index: 2, Length: 200, Width: 100, PlantFamilies: []uuid.UUID{uuid.New()}}
	require.NoError(t, bc.Set(ctx, bed, 0))

	got, err := bc.Get(ctx, bed.ID)
	require.NoError(t, err)
	assert.Equal(t, bed, got)
	assert.Equal(t, BedCacheTTL, mr.TTL(bedKey(bed.ID)))

	mr.FastForward(BedCacheTTL + time.Second)
	_, err = bc.Get(ctx, bed.ID)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestBedCache_SetOverwritesFamilies(t *testing.T) {
	ctx := context.Background()
	bc, _ := newTestBedCache(t)

	bed := &CachedBed{ID: uuid.New(), Index: 1, Length: 1, Width: 1, PlantFamilies: []uuid.UUID{uuid.New(), uuid.New()}}
	require.NoError(t, bc.Set(ctx, bed, 0))
	bed.PlantFamilies = []uuid.UUID{}
	require.NoError(t, bc.Set(ctx, bed, 0))

	got, err := bc.Get(ctx, bed.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PlantFamilies)
}

func TestBedCache_DeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	bc, mr := newTestBedCache(t)

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, bc.Set(ctx, &CachedBed{ID: ids[i], Index: i + 1, Length: 1, Width: 1}, 0))
	}
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, bc.Delete(ctx, ids[0]))
	_, err := bc.Get(ctx, ids[0])
	assert.ErrorIs(t, err, redis.Nil)

	n, err := bc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, mr.Exists("unrelated"))

	n, err = bc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBedCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	bc, mr := newTestBedCache(t)
	mr.Close()

	_, err := bc.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))
}

func TestBedCache_SetSkipsAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	bc, mr := newTestBedCache(t)

	bed := &CachedBed{ID: uuid.New(), Index: 1, Length: 200, Width: 100}
	gen, err := bc.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, bc.Delete(ctx, bed.ID))
	assert.ErrorIs(t, bc.Set(ctx, bed, gen), ErrStaleGeneration)
	assert.False(t, mr.Exists(bedKey(bed.ID)))

	gen, err = bc.Generation(ctx)
	require.NoError(t, err)
	_, err = bc.Purge(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, bc.Set(ctx, bed, gen), ErrStaleGeneration)
	assert.False(t, mr.Exists(bedKey(bed.ID)))

	gen, err = bc.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
	require.NoError(t, bc.Set(ctx, bed, gen))
	assert.True(t, mr.Exists(bedKey(bed.ID)))
}

func TestBedCache_DeleteMany(t *testing.T) {
	ctx := context.Background()
	bc, _ := newTestBedCache(t)

	a := &CachedBed{ID: uuid.New(), Index: 1, Length: 1, Width: 1}
	b := &CachedBed{ID: uuid.New(), Index: 2, Length: 1, Width: 1}
	require.NoError(t, bc.Set(ctx, a, 0))
	require.NoError(t, bc.Set(ctx, b, 0))

	require.NoError(t, bc.Delete(ctx, a.ID, b.ID))
	for _, id := range []uuid.UUID{a.ID, b.ID} {
		_, err := bc.Get(ctx, id)
		assert.ErrorIs(t, err, redis.Nil)
	}
}
