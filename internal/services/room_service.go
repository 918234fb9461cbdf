package services

import (
	"context"

	"basobasFront/internal/api"
	"basobasFront/internal/listings"
	"basobasFront/internal/models"
)

type RoomService struct {
	API *api.Client
}

// ListRooms fetches the visible rooms and applies the filter bar locally,
// exactly the way the browser page did. The location dropdown values come
// from the unfiltered collection.
func (s *RoomService) ListRooms(ctx context.Context, token string, filter models.RoomFilter) (models.RoomsPageView, error) {
	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		return models.RoomsPageView{}, err
	}

	addresses := make([]string, len(rooms))
	for i, room := range rooms {
		addresses[i] = room.Address
	}

	return models.RoomsPageView{
		Rooms:     listings.FilterRooms(rooms, filter),
		Locations: listings.Locations(addresses),
	}, nil
}

func (s *RoomService) GetRoom(ctx context.Context, token, id string) (models.Room, error) {
	return s.API.GetRoom(ctx, token, id)
}

func (s *RoomService) CreateRoom(ctx context.Context, sess models.Session, form models.RoomForm) (models.Room, error) {
	return s.API.CreateRoom(ctx, sess.Token, form)
}

// UpdateRoom lets the owner (or an admin) edit a listing. Ownership is
// checked against the fresh record, not the submitted form.
func (s *RoomService) UpdateRoom(ctx context.Context, sess models.Session, id string, form models.RoomForm) (models.Room, error) {
	existing, err := s.API.GetRoom(ctx, sess.Token, id)
	if err != nil {
		return models.Room{}, err
	}
	if existing.UserID != sess.UserID && !sess.IsAdmin() {
		return models.Room{}, models.ErrNotOwner
	}
	return s.API.UpdateRoom(ctx, sess.Token, id, form)
}

func (s *RoomService) DeleteRoom(ctx context.Context, sess models.Session, id string) error {
	existing, err := s.API.GetRoom(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if existing.UserID != sess.UserID && !sess.IsAdmin() {
		return models.ErrNotOwner
	}
	return s.API.DeleteRoom(ctx, sess.Token, id)
}

func (s *RoomService) RoomsByUser(ctx context.Context, token, userID string) ([]models.Room, error) {
	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.UserID == userID {
			mine = append(mine, room)
		}
	}
	return mine, nil
}
