package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	redisAdapter "github.com/aretw0/weft/pkg/adapters/redis"
	"github.com/aretw0/weft/pkg/domain"
)

func newTestStore(t *testing.T, opts ...redisAdapter.Option) (*redisAdapter.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redisAdapter.NewFromClient(client, opts...)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	data := domain.ContextFromAny(map[string]any{
		"user": map[string]any{"name": "Ada"},
		"n":    float64(3),
	})
	if err := store.Save(ctx, "u1", data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, ok := loaded.Fetch([]string{"user", "name"}); !ok || !v.Equal(domain.String("Ada")) {
		t.Error("nested value lost in the round trip")
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrContextNotFound) {
		t.Errorf("expected ErrContextNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Save(ctx, "u1", domain.NewContext(nil))
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "u1"); !errors.Is(err, domain.ErrContextNotFound) {
		t.Errorf("deleted context must be gone, got %v", err)
	}
}

func TestStore_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, redisAdapter.WithPrefix("custom:"))

	if err := store.Save(ctx, "u1", domain.NewContext(nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !mr.Exists("custom:u1") {
		t.Errorf("expected key custom:u1, have %v", mr.Keys())
	}
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, redisAdapter.WithTTL(time.Minute))

	if err := store.Save(ctx, "u1", domain.NewContext(nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ttl := mr.TTL("weft:context:u1"); ttl != time.Minute {
		t.Errorf("expected 1m TTL, got %v", ttl)
	}

	// Past the deadline the context is gone.
	mr.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx, "u1"); !errors.Is(err, domain.ErrContextNotFound) {
		t.Errorf("expired context must be absent, got %v", err)
	}
}
