package services

import (
	"context"

	"basobasFront/internal/api"
	"basobasFront/internal/models"
)

// AdminService backs the moderation dashboard: full listing and user tables
// plus removals. Handlers gate every call behind the admin capability check.
type AdminService struct {
	API *api.Client
}

func (s *AdminService) Overview(ctx context.Context, token string) (models.AdminOverview, error) {
	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		return models.AdminOverview{}, err
	}
	mates, err := s.API.ListRoommates(ctx, token)
	if err != nil {
		return models.AdminOverview{}, err
	}
	users, err := s.API.ListUsers(ctx, token)
	if err != nil {
		return models.AdminOverview{}, err
	}
	return models.AdminOverview{
		Rooms:     rooms,
		Roommates: mates,
		Users:     users,
		RoomCount: len(rooms),
		MateCount: len(mates),
		UserCount: len(users),
	}, nil
}

func (s *AdminService) RemoveRoom(ctx context.Context, token, id string) error {
	return s.API.DeleteRoom(ctx, token, id)
}

func (s *AdminService) RemoveRoommate(ctx context.Context, token, id string) error {
	return s.API.DeleteRoommate(ctx, token, id)
}

func (s *AdminService) RemoveUser(ctx context.Context, token, id string) error {
	return s.API.DeleteUser(ctx, token, id)
}
