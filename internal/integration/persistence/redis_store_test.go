package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finanzas-genius/backend/internal/application/adapter"
)

func newTestRedisStore(t *testing.T) adapter.KVStore {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreLoadAbsentKey(t *testing.T) {
	store := newTestRedisStore(t)

	value, err := store.Load(context.Background(), adapter.KeyAccounts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if value != nil {
		t.Errorf("Load() = %q, want nil for absent key", value)
	}
}

func TestRedisStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	document := []byte(`[{"id":"1","name":"Banco"}]`)
	if err := store.Save(ctx, adapter.KeyAccounts, document); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, adapter.KeyAccounts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(document) {
		t.Errorf("Load() = %s, want %s", got, document)
	}

	// Overwrite replaces the whole document.
	if err := store.Save(ctx, adapter.KeyAccounts, []byte(`[]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, _ = store.Load(ctx, adapter.KeyAccounts)
	if string(got) != `[]` {
		t.Errorf("Load() after overwrite = %s, want []", got)
	}
}

func TestRedisStoreDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	for _, key := range []string{adapter.KeyAccounts, adapter.KeyDebts, adapter.KeySettings} {
		if err := store.Save(ctx, key, []byte(`{}`)); err != nil {
			t.Fatalf("Save(%s) error = %v", key, err)
		}
	}

	if err := store.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}

	for _, key := range []string{adapter.KeyAccounts, adapter.KeyDebts, adapter.KeySettings} {
		value, err := store.Load(ctx, key)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", key, err)
		}
		if value != nil {
			t.Errorf("key %s survived DeleteAll", key)
		}
	}
}
