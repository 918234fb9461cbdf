package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"basobasFront/internal/api"
	"basobasFront/internal/models"
)

func newTestBackend(t *testing.T, rooms []models.Room, mates []models.Roommate) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rooms)
	})
	mux.HandleFunc("/api/rooms/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/rooms/"):]
		for _, room := range rooms {
			if room.ID == id {
				json.NewEncoder(w).Encode(room)
				return
			}
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/api/roommates", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(mates)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListRoomsAppliesFilterAndLocations(t *testing.T) {
	rooms := []models.Room{
		{ID: "r1", Description: "Sunny room", Address: "Baneshwor, Kathmandu", RentPrice: 8000},
		{ID: "r2", Description: "Big flat", Address: "Patan, Lalitpur", RentPrice: 15000},
		{ID: "r3", Description: "Tiny room", Address: "Baneshwor, Kathmandu", RentPrice: 9500},
	}
	srv := newTestBackend(t, rooms, nil)
	svc := &RoomService{API: api.NewClient(srv.Client(), srv.URL)}

	view, err := svc.ListRooms(context.Background(), "", models.RoomFilter{PriceBand: "lt10k"})
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Rooms) != 2 {
		t.Fatalf("got %d rooms; want 2", len(view.Rooms))
	}
	if view.Rooms[0].ID != "r1" || view.Rooms[1].ID != "r3" {
		t.Errorf("got rooms %s, %s; want r1, r3", view.Rooms[0].ID, view.Rooms[1].ID)
	}
	// Dropdown values come from the whole collection, not the filtered one.
	if len(view.Locations) != 2 {
		t.Errorf("got %d locations; want 2 (deduplicated)", len(view.Locations))
	}
}

func TestUpdateRoomOwnership(t *testing.T) {
	rooms := []models.Room{
		{ID: "r1", Description: "Sunny room", Address: "Kathmandu", RentPrice: 8000, UserID: "u1"},
	}
	srv := newTestBackend(t, rooms, nil)
	svc := &RoomService{API: api.NewClient(srv.Client(), srv.URL)}

	stranger := models.Session{UserID: "u2", Role: models.RoleUser, Token: "t"}
	if _, err := svc.UpdateRoom(context.Background(), stranger, "r1", models.RoomForm{}); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("stranger update: got %v; want ErrNotOwner", err)
	}
	if err := svc.DeleteRoom(context.Background(), stranger, "r1"); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("stranger delete: got %v; want ErrNotOwner", err)
	}
}

func TestDashboardViewWindows(t *testing.T) {
	rooms := make([]models.Room, 6)
	for i := range rooms {
		rooms[i] = models.Room{ID: fmt.Sprintf("r%d", i), RentPrice: 12000}
	}
	mates := []models.Roommate{{ID: "m1"}, {ID: "m2"}}
	srv := newTestBackend(t, rooms, mates)

	svc := NewDashboardService(api.NewClient(srv.Client(), srv.URL))
	defer svc.Stop()

	view := svc.View(context.Background(), "")
	if len(view.HotDeals) != 4 {
		t.Errorf("got %d hot deals; want window of 4", len(view.HotDeals))
	}
	// Fewer items than the window means the whole collection comes back.
	if len(view.Roommates) != 2 {
		t.Errorf("got %d roommates; want 2", len(view.Roommates))
	}
	if len(view.Sasto) != 0 || len(view.Commercial) != 0 {
		t.Errorf("got %d sasto, %d commercial; want 0, 0", len(view.Sasto), len(view.Commercial))
	}
}

func TestDashboardViewDegradesWhenBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewDashboardService(api.NewClient(srv.Client(), srv.URL))
	defer svc.Stop()

	view := svc.View(context.Background(), "")
	if len(view.HotDeals) != 0 || len(view.Roommates) != 0 {
		t.Errorf("got %d hot deals, %d roommates; want empty strips", len(view.HotDeals), len(view.Roommates))
	}
}

func TestSuggestCapsResults(t *testing.T) {
	rooms := make([]models.Room, 12)
	for i := range rooms {
		rooms[i] = models.Room{ID: fmt.Sprintf("r%d", i), Description: "cozy room near campus", Address: "Kathmandu"}
	}
	srv := newTestBackend(t, rooms, nil)

	svc := NewDashboardService(api.NewClient(srv.Client(), srv.URL))
	defer svc.Stop()

	got, err := svc.Suggest(context.Background(), "", "rooms", "cozy")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Errorf("got %d suggestions; want 8", len(got))
	}

	got, err = svc.Suggest(context.Background(), "", "rooms", "   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("blank query: got %d suggestions; want 0", len(got))
	}
}
