package services

import (
	"context"

	"basobasFront/internal/api"
	"basobasFront/internal/models"
	"basobasFront/internal/wishlist"
)

type WishlistService struct {
	API      *api.Client
	Wishlist *wishlist.Store
}

func (s *WishlistService) Toggle(ctx context.Context, deviceID, id string) ([]string, bool, error) {
	return s.Wishlist.Toggle(ctx, deviceID, id)
}

func (s *WishlistService) IsMember(ctx context.Context, deviceID, id string) (bool, error) {
	return s.Wishlist.IsMember(ctx, deviceID, id)
}

// View resolves the saved ids against fresh collections. Ids whose listing
// has vanished are skipped silently; the wishlist itself is not rewritten,
// so a listing that reappears shows up again.
func (s *WishlistService) View(ctx context.Context, token, deviceID string) (models.WishlistView, error) {
	ids, err := s.Wishlist.IDs(ctx, deviceID)
	if err != nil {
		return models.WishlistView{}, err
	}
	view := models.WishlistView{Rooms: []models.Room{}, Roommates: []models.Roommate{}, IDs: ids}
	if len(ids) == 0 {
		return view, nil
	}

	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}

	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		return models.WishlistView{}, err
	}
	for _, room := range rooms {
		if _, ok := member[room.ID]; ok {
			view.Rooms = append(view.Rooms, room)
		}
	}

	mates, err := s.API.ListRoommates(ctx, token)
	if err != nil {
		return models.WishlistView{}, err
	}
	for _, mate := range mates {
		if _, ok := member[mate.ID]; ok {
			view.Roommates = append(view.Roommates, mate)
		}
	}
	return view, nil
}
