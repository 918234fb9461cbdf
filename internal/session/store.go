package session

import (
	"context"
	"encoding/json"
	"errors"

	"basobasFront/internal/models"
	"basobasFront/internal/storage"
)

const (
	envelopeVersion = 1
	keyPrefix       = "session/"
)

type envelope struct {
	Version int            `json:"version"`
	Session models.Session `json:"session"`
}

// Store persists the per-device session the browser kept in localStorage.
// A missing, malformed or alien-version payload reads as a logged-out
// session, never as an error.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

func key(deviceID string) string {
	return keyPrefix + deviceID
}

func (s *Store) Load(ctx context.Context, deviceID string) (models.Session, error) {
	raw, err := s.kv.Get(ctx, key(deviceID))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != envelopeVersion {
		return models.Session{}, nil
	}
	return env.Session, nil
}

func (s *Store) Save(ctx context.Context, deviceID string, sess models.Session) error {
	raw, err := json.Marshal(envelope{Version: envelopeVersion, Session: sess})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key(deviceID), raw)
}

func (s *Store) Clear(ctx context.Context, deviceID string) error {
	return s.kv.Delete(ctx, key(deviceID))
}
