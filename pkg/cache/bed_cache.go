package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// BedCacheTTL is the time-to-live for cached beds.
	BedCacheTTL = time.Hour

	bedCacheKeyPrefix = "garden:bed"
	// Kept outside the bed prefix so Purge never scans it.
	bedGenerationKey = "garden:bedgen"
	purgeScanCount   = 500
)

// ErrStaleGeneration is returned by Set when a bed write happened after the
// caller read the generation. The entry is not written.
var ErrStaleGeneration = errors.New("cache: bed generation changed")

// CachedBed is the denormalised read model stored in Redis as a hash.
type CachedBed struct {
	ID            uuid.UUID   `json:"id"`
	Index         int         `json:"index"`
	Length        int         `json:"length"`
	Width         int         `json:"width"`
	PlantFamilies []uuid.UUID `json:"plant_families"`
}

// BedCache provides read/write operations for single-bed cache entries.
// Key format: "garden:bed:{bedID}"
type BedCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewBedCache creates a BedCache backed by the given RedisClient.
func NewBedCache(r *RedisClient) *BedCache {
	return &BedCache{client: r, ttl: BedCacheTTL}
}

// Get retrieves a cached bed. Returns redis.Nil when the key does not exist
// or has expired.
func (c *BedCache) Get(ctx context.Context, id uuid.UUID) (*CachedBed, error) {
	vals, err := c.client.Client().HGetAll(ctx, bedKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return decodeBed(vals)
}

// Generation returns the bed collection generation. Read it before loading a
// bed from the store and pass it to Set.
func (c *BedCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Client().Get(ctx, bedGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// Set writes a bed hash and its TTL only while the generation still equals
// gen. Otherwise it returns ErrStaleGeneration and writes nothing.
func (c *BedCache) Set(ctx context.Context, bed *CachedBed, gen int64) error {
	key := bedKey(bed.ID)
	rdb := c.client.Client()
	err := rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, bedGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key, encodeBed(bed))
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, bedGenerationKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return ErrStaleGeneration
	default:
		return fmt.Errorf("cache set: %w", err)
	}
}

// Delete bumps the generation and removes the given beds in one transaction.
func (c *BedCache) Delete(ctx context.Context, ids ...uuid.UUID) error {
	pipe := c.client.Client().TxPipeline()
	pipe.Incr(ctx, bedGenerationKey)
	if len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = bedKey(id)
		}
		pipe.Del(ctx, keys...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Purge bumps the generation, then removes every cached bed and returns the
// number of keys deleted.
func (c *BedCache) Purge(ctx context.Context) (int, error) {
	rdb := c.client.Client()
	if err := rdb.Incr(ctx, bedGenerationKey).Err(); err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	iter := rdb.Scan(ctx, 0, bedKeyPrefix()+"*", purgeScanCount).Iterator()

	removed := 0
	batch := make([]string, 0, purgeScanCount)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := rdb.Unlink(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("cache purge: %w", err)
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == purgeScanCount {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("cache purge scan: %w", err)
	}
	if err := flush(); err != nil {
		return removed, err
	}
	return removed, nil
}

func bedKeyPrefix() string {
	return bedCacheKeyPrefix + ":"
}

// bedKey builds the Redis key: "garden:bed:{bedID}"
func bedKey(id uuid.UUID) string {
	return bedKeyPrefix() + id.String()
}

func encodeBed(bed *CachedBed) map[string]any {
	families := make([]string, len(bed.PlantFamilies))
	for i, id := range bed.PlantFamilies {
		families[i] = id.String()
	}
	return map[string]any{
		"id":             bed.ID.String(),
		"index":          bed.Index,
		"length":         bed.Length,
		"width":          bed.Width,
		"plant_families": strings.Join(families, ","),
	}
}

func decodeBed(vals map[string]string) (*CachedBed, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	ints := make(map[string]int, 3)
	for _, field := range []string{"index", "length", "width"} {
		n, err := strconv.Atoi(vals[field])
		if err != nil {
			return nil, fmt.Errorf("cache parse %s: %w", field, err)
		}
		ints[field] = n
	}

	families := []uuid.UUID{}
	if raw := vals["plant_families"]; raw != "" {
		for _, s := range strings.Split(raw, ",") {
			fid, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("cache parse plant family: %w", err)
			}
			families = append(families, fid)
		}
	}

	return &CachedBed{
		ID:            id,
		Index:         ints["index"],
		Length:        ints["length"],
		Width:         ints["width"],
		PlantFamilies: families,
	}, nil
}
