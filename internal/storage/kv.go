package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrKeyNotFound is returned by Get for keys that were never written.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the device-local key-value storage the browser's localStorage used
// to be: opaque byte payloads, synchronous all-or-nothing writes. Callers own
// the payload schema (see the wishlist and session envelopes).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Notifier adds in-process change fan-out on top of a Store, so several
// rendered views of the same key converge after a write. Subscriptions are
// per-key; the callback runs synchronously on the writer's goroutine, which
// keeps writes naturally serialized.
type Notifier struct {
	Store

	mu   sync.Mutex
	subs map[string][]func([]byte)
}

func NewNotifier(store Store) *Notifier {
	return &Notifier{Store: store, subs: make(map[string][]func([]byte))}
}

func (n *Notifier) Subscribe(key string, fn func(value []byte)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[key] = append(n.subs[key], fn)
}

func (n *Notifier) Set(ctx context.Context, key string, value []byte) error {
	if err := n.Store.Set(ctx, key, value); err != nil {
		return err
	}
	n.mu.Lock()
	subs := append([]func([]byte){}, n.subs[key]...)
	n.mu.Unlock()
	for _, fn := range subs {
		fn(value)
	}
	return nil
}
