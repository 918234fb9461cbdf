package storage

import (
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, "wishlist/device-1", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "wishlist/device-1")
	if err != nil || string(got) != `{"version":1}` {
		t.Fatalf("Get: %q, %v", got, err)
	}

	if err := store.Delete(ctx, "wishlist/device-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "wishlist/device-1"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "wishlist/device-1"); err != nil {
		t.Fatalf("double delete should be a no-op, got %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("abc")
	if err := store.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'z'

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}
}

func TestNotifierFansOutPerKey(t *testing.T) {
	notifier := NewNotifier(NewMemoryStore())
	ctx := context.Background()

	var sawA, sawB int
	notifier.Subscribe("a", func([]byte) { sawA++ })
	notifier.Subscribe("a", func([]byte) { sawA++ })
	notifier.Subscribe("b", func([]byte) { sawB++ })

	if err := notifier.Set(ctx, "a", []byte("1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if sawA != 2 || sawB != 0 {
		t.Fatalf("expected both a-subscribers and no b-subscriber, got %d/%d", sawA, sawB)
	}
}
