package services

import (
	"context"
	"strings"

	"basobasFront/internal/api"
	"basobasFront/internal/listings"
	"basobasFront/internal/models"
)

const maxSuggestions = 8

// DashboardService assembles the four home-page strips. Each strip has its
// own rotator with its own offset and timer; they never share state.
type DashboardService struct {
	API *api.Client

	HotDeals   *listings.Rotator
	Roommates  *listings.Rotator
	Sasto      *listings.Rotator
	Commercial *listings.Rotator
}

func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{
		API:        client,
		HotDeals:   listings.NewRotator(listings.DefaultWindowSize, listings.DefaultAdvanceEvery),
		Roommates:  listings.NewRotator(listings.DefaultWindowSize, listings.DefaultAdvanceEvery),
		Sasto:      listings.NewRotator(listings.DefaultWindowSize, listings.DefaultAdvanceEvery),
		Commercial: listings.NewRotator(listings.DefaultWindowSize, listings.DefaultAdvanceEvery),
	}
}

// Stop halts all strip timers; called on shutdown so no tick outlives the
// views it feeds.
func (s *DashboardService) Stop() {
	s.HotDeals.Stop()
	s.Roommates.Stop()
	s.Sasto.Stop()
	s.Commercial.Stop()
}

// View fetches fresh collections and returns the current window of each
// strip. A failed fetch degrades that strip to empty rather than failing the
// page (the browser page behaved the same way).
func (s *DashboardService) View(ctx context.Context, token string) models.DashboardView {
	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		rooms = []models.Room{}
	}
	mates, err := s.API.ListRoommates(ctx, token)
	if err != nil {
		mates = []models.Roommate{}
	}

	sasto := listings.SastoRooms(rooms)
	commercial := listings.CommercialRooms(rooms)

	s.HotDeals.SetLength(len(rooms))
	s.Roommates.SetLength(len(mates))
	s.Sasto.SetLength(len(sasto))
	s.Commercial.SetLength(len(commercial))

	size := listings.DefaultWindowSize
	return models.DashboardView{
		HotDeals:   listings.Window(rooms, size, s.HotDeals.Index()),
		Roommates:  listings.Window(mates, size, s.Roommates.Index()),
		Sasto:      listings.Window(sasto, size, s.Sasto.Index()),
		Commercial: listings.Window(commercial, size, s.Commercial.Index()),
	}
}

// Suggest returns the top matches for the dashboard search dropdown, reusing
// the page filters' substring semantics.
func (s *DashboardService) Suggest(ctx context.Context, token, kind, query string) ([]models.Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Suggestion{}, nil
	}

	out := make([]models.Suggestion, 0, maxSuggestions)
	if kind == "roommates" {
		mates, err := s.API.ListRoommates(ctx, token)
		if err != nil {
			return nil, err
		}
		matched := listings.FilterRoommates(mates, models.RoommateFilter{Search: query})
		for _, mate := range matched {
			if len(out) == maxSuggestions {
				break
			}
			out = append(out, models.Suggestion{ID: mate.ID, Title: mate.Name, Subtitle: mate.PreferredLocation, Image: mate.Image})
		}
		return out, nil
	}

	rooms, err := s.API.ListRooms(ctx, token)
	if err != nil {
		return nil, err
	}
	matched := listings.FilterRooms(rooms, models.RoomFilter{Search: query})
	for _, room := range matched {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, models.Suggestion{ID: room.ID, Title: room.Description, Subtitle: room.Address, Image: room.Image})
	}
	return out, nil
}
