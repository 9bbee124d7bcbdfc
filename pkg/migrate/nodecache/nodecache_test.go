package nodecache

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestGetMissing(t *testing.T) {
	cache := openTestCache(t)

	id, ok, err := cache.Get(context.Background(), "https://example.com/a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || id != "" {
		t.Errorf("got (%q, %v), want miss", id, ok)
	}
}

func TestPutGet(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "https://example.com/a", "482"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	id, ok, err := cache.Get(ctx, "https://example.com/a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || id != "482" {
		t.Errorf("got (%q, %v), want (482, true)", id, ok)
	}
}

func TestPutOverwrites(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "https://example.com/a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := cache.Put(ctx, "https://example.com/a", "2"); err != nil {
		t.Fatal(err)
	}

	id, ok, _ := cache.Get(ctx, "https://example.com/a")
	if !ok || id != "2" {
		t.Errorf("got (%q, %v), want (2, true)", id, ok)
	}
}

func TestPutEmptyIDIgnored(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "https://example.com/a", ""); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "https://example.com/a"); ok {
		t.Error("empty id should not be cached")
	}
}

func TestRunID(t *testing.T) {
	cache := openTestCache(t)
	if cache.RunID() == "" {
		t.Error("expected a run id")
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Put(ctx, "https://example.com/a", "9"); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	id, ok, err := second.Get(ctx, "https://example.com/a")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || id != "9" {
		t.Errorf("got (%q, %v), want (9, true)", id, ok)
	}
}
