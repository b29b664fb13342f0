package cache

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-valid-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "redis://localhost:19999")
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestBedKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	if got := bedKey(id); got != "garden:bed:123e4567-e89b-12d3-a456-426614174000" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestEncodeDecodeBed(t *testing.T) {
	t.Run("with plant families", func(t *testing.T) {
		in := &CachedBed{ID: uuid.New(), Index: 3, Length: 300, Width: 200, PlantFamilies: []uuid.UUID{uuid.New(), uuid.New()}}
		vals := map[string]string{}
		for k, v := range encodeBed(in) {
			switch v := v.(type) {
			case string:
				vals[k] = v
			case int:
				vals[k] = strconv.Itoa(v)
			}
		}
		out, err := decodeBed(vals)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.ID != in.ID || out.Index != 3 || out.Length != 300 || out.Width != 200 {
			t.Fatalf("unexpected bed: %+v", out)
		}
		if len(out.PlantFamilies) != 2 || out.PlantFamilies[1] != in.PlantFamilies[1] {
			t.Fatalf("unexpected plant families: %v", out.PlantFamilies)
		}
	})

	t.Run("empty plant families decode to empty slice", func(t *testing.T) {
		out, err := decodeBed(map[string]string{
			"id": uuid.NewString(), "index": "1", "length": "10", "width": "10", "plant_families": "",
		})
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.PlantFamilies == nil || len(out.PlantFamilies) != 0 {
			t.Fatalf("expected empty slice, got %v", out.PlantFamilies)
		}
	})

	t.Run("corrupt fields", func(t *testing.T) {
		if _, err := decodeBed(map[string]string{"id": "nope"}); err == nil {
			t.Fatal("expected error for bad id")
		}
		if _, err := decodeBed(map[string]string{"id": uuid.NewString(), "index": "x"}); err == nil {
			t.Fatal("expected error for bad index")
		}
	})
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	if err := rc.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	bc := NewBedCache(rc)
	if _, err := bc.Purge(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := bc.Get(ctx, uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Set_Get_Delete", func(t *testing.T) {
		bed := &CachedBed{ID: uuid.New(), Index: 1, Length: 200, Width: 100, PlantFamilies: []uuid.UUID{}}
		gen, err := bc.Generation(ctx)
		if err != nil {
			t.Fatalf("generation: %v", err)
		}
		if err := bc.Set(ctx, bed, gen); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := bc.Get(ctx, bed.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Index != 1 || got.Length != 200 {
			t.Fatalf("unexpected bed: %+v", got)
		}
		if err := bc.Delete(ctx, bed.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := bc.Get(ctx, bed.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected miss after delete, got %v", err)
		}
	})

	t.Run("Purge", func(t *testing.T) {
		gen, err := bc.Generation(ctx)
		if err != nil {
			t.Fatalf("generation: %v", err)
		}
		for i := 1; i <= 3; i++ {
			if err := bc.Set(ctx, &CachedBed{ID: uuid.New(), Index: i, Length: 1, Width: 1}, gen); err != nil {
				t.Fatalf("set: %v", err)
			}
		}
		n, err := bc.Purge(ctx)
		if err != nil {
			t.Fatalf("purge: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 keys purged, got %d", n)
		}
	})
}
