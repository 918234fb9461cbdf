package models

// View models for the page routes. Each is everything one page needs in a
// single response.

type DashboardView struct {
	HotDeals   []Room     `json:"hot_deals"`
	Roommates  []Roommate `json:"roommates"`
	Sasto      []Room     `json:"sasto"`
	Commercial []Room     `json:"commercial"`
}

type RoomsPageView struct {
	Rooms     []Room   `json:"rooms"`
	Locations []string `json:"locations"`
}

type RoommatesPageView struct {
	Roommates []Roommate `json:"roommates"`
	Locations []string   `json:"locations"`
	Genders   []string   `json:"genders"`
}

type WishlistView struct {
	Rooms     []Room     `json:"rooms"`
	Roommates []Roommate `json:"roommates"`
	IDs       []string   `json:"ids"`
}

type MyListingsView struct {
	Rooms     []Room     `json:"rooms"`
	Roommates []Roommate `json:"roommates"`
}

type AdminOverview struct {
	Rooms      []Room     `json:"rooms"`
	Roommates  []Roommate `json:"roommates"`
	Users      []User     `json:"users"`
	RoomCount  int        `json:"room_count"`
	MateCount  int        `json:"roommate_count"`
	UserCount  int        `json:"user_count"`
}

// Suggestion is one row of the search dropdown on the dashboard.
type Suggestion struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image,omitempty"`
}
