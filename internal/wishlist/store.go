package wishlist

import (
	"context"
	"encoding/json"
	"errors"

	"basobasFront/internal/storage"
)

// envelopeVersion tags the persisted payload so a future format change does
// not silently corrupt old wishlists. Unknown versions read as empty.
const envelopeVersion = 1

const keyPrefix = "wishlist/"

type envelope struct {
	Version int      `json:"version"`
	IDs     []string `json:"ids"`
}

// Store keeps one wishlist per device: an ordered, duplicate-free list of
// listing ids (rooms and roommates mixed). Membership is the only semantic;
// order is preserved for display consistency.
type Store struct {
	kv *storage.Notifier
}

func NewStore(kv *storage.Notifier) *Store {
	return &Store{kv: kv}
}

func key(deviceID string) string {
	return keyPrefix + deviceID
}

// IDs returns the current wishlist. Malformed or alien-version payloads read
// as an empty wishlist, never an error.
func (s *Store) IDs(ctx context.Context, deviceID string) ([]string, error) {
	raw, err := s.kv.Get(ctx, key(deviceID))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != envelopeVersion {
		return []string{}, nil
	}
	if env.IDs == nil {
		return []string{}, nil
	}
	return env.IDs, nil
}

func (s *Store) IsMember(ctx context.Context, deviceID, id string) (bool, error) {
	ids, err := s.IDs(ctx, deviceID)
	if err != nil {
		return false, err
	}
	for _, member := range ids {
		if member == id {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership of id and persists the whole updated list in one
// synchronous write. It returns the new list and whether id is now a member.
func (s *Store) Toggle(ctx context.Context, deviceID, id string) ([]string, bool, error) {
	ids, err := s.IDs(ctx, deviceID)
	if err != nil {
		return nil, false, err
	}

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, member := range ids {
		if member == id {
			removed = true
			continue
		}
		next = append(next, member)
	}
	if !removed {
		next = append(next, id)
	}

	raw, err := json.Marshal(envelope{Version: envelopeVersion, IDs: next})
	if err != nil {
		return nil, false, err
	}
	if err := s.kv.Set(ctx, key(deviceID), raw); err != nil {
		return nil, false, err
	}
	return next, !removed, nil
}

// Subscribe registers a callback for wishlist changes on one device, so every
// rendered view of the same wishlist converges after a toggle.
func (s *Store) Subscribe(deviceID string, fn func(ids []string)) {
	s.kv.Subscribe(key(deviceID), func(raw []byte) {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Version != envelopeVersion {
			fn([]string{})
			return
		}
		fn(env.IDs)
	})
}
