package services

import (
	"context"

	"basobasFront/internal/api"
	"basobasFront/internal/listings"
	"basobasFront/internal/models"
)

type RoommateService struct {
	API *api.Client
}

func (s *RoommateService) ListRoommates(ctx context.Context, token string, filter models.RoommateFilter) (models.RoommatesPageView, error) {
	mates, err := s.API.ListRoommates(ctx, token)
	if err != nil {
		return models.RoommatesPageView{}, err
	}

	addresses := make([]string, len(mates))
	for i, mate := range mates {
		addresses[i] = mate.PreferredLocation
	}

	seen := make(map[string]struct{})
	genders := make([]string, 0, 3)
	for _, mate := range mates {
		if mate.Gender == "" {
			continue
		}
		if _, ok := seen[mate.Gender]; ok {
			continue
		}
		seen[mate.Gender] = struct{}{}
		genders = append(genders, mate.Gender)
	}

	return models.RoommatesPageView{
		Roommates: listings.FilterRoommates(mates, filter),
		Locations: listings.Locations(addresses),
		Genders:   genders,
	}, nil
}

func (s *RoommateService) GetRoommate(ctx context.Context, token, id string) (models.Roommate, error) {
	return s.API.GetRoommate(ctx, token, id)
}

func (s *RoommateService) CreateRoommate(ctx context.Context, sess models.Session, form models.RoommateForm) (models.Roommate, error) {
	return s.API.CreateRoommate(ctx, sess.Token, form)
}

func (s *RoommateService) UpdateRoommate(ctx context.Context, sess models.Session, id string, form models.RoommateForm) (models.Roommate, error) {
	existing, err := s.API.GetRoommate(ctx, sess.Token, id)
	if err != nil {
		return models.Roommate{}, err
	}
	if existing.UserID != sess.UserID && !sess.IsAdmin() {
		return models.Roommate{}, models.ErrNotOwner
	}
	return s.API.UpdateRoommate(ctx, sess.Token, id, form)
}

func (s *RoommateService) DeleteRoommate(ctx context.Context, sess models.Session, id string) error {
	existing, err := s.API.GetRoommate(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if existing.UserID != sess.UserID && !sess.IsAdmin() {
		return models.ErrNotOwner
	}
	return s.API.DeleteRoommate(ctx, sess.Token, id)
}

func (s *RoommateService) RoommatesByUser(ctx context.Context, token, userID string) ([]models.Roommate, error) {
	mates, err := s.API.ListRoommates(ctx, token)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Roommate, 0, len(mates))
	for _, mate := range mates {
		if mate.UserID == userID {
			mine = append(mine, mate)
		}
	}
	return mine, nil
}
