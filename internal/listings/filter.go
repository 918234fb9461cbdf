package listings

import (
	"strings"

	"basobasFront/internal/models"
)

// Price band names as the filter bar sends them. An empty or unknown band
// leaves the price predicate inactive.
const (
	BandBelow10k = "lt10k"
	Band10to20k  = "10k-20k"
	Band20to30k  = "20k-30k"
	BandAbove30k = "gt30k"
)

// SastoLimit and CommercialFloor bound the two price-driven dashboard strips.
const (
	SastoLimit      = 10000
	CommercialFloor = 30000
)

func matchesBand(band string, price float64) bool {
	switch band {
	case BandBelow10k:
		return price < 10000
	case Band10to20k:
		return price >= 10000 && price <= 20000
	case Band20to30k:
		return price > 20000 && price <= 30000
	case BandAbove30k:
		return price > 30000
	default:
		return true
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterRooms returns the rooms matching every active predicate, preserving
// the original order. The input slice is never mutated.
func FilterRooms(rooms []models.Room, f models.RoomFilter) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if f.Search != "" && !containsFold(room.Description, f.Search) && !containsFold(room.Address, f.Search) {
			continue
		}
		if f.Location != "" && !containsFold(room.Address, f.Location) {
			continue
		}
		if !matchesBand(f.PriceBand, room.RentPrice) {
			continue
		}
		out = append(out, room)
	}
	return out
}

// FilterRoommates applies the roommate filter bar: substring search over name
// and bio, location substring, exact gender, and the budget band.
func FilterRoommates(mates []models.Roommate, f models.RoommateFilter) []models.Roommate {
	out := make([]models.Roommate, 0, len(mates))
	for _, mate := range mates {
		if f.Search != "" && !containsFold(mate.Name, f.Search) && !containsFold(mate.Bio, f.Search) {
			continue
		}
		if f.Location != "" && !containsFold(mate.PreferredLocation, f.Location) {
			continue
		}
		if f.Gender != "" && mate.Gender != f.Gender {
			continue
		}
		if !matchesBand(f.BudgetBand, mate.Budget) {
			continue
		}
		out = append(out, mate)
	}
	return out
}

// SastoRooms and CommercialRooms feed the two price-bound dashboard strips.
func SastoRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.RentPrice < SastoLimit {
			out = append(out, room)
		}
	}
	return out
}

func CommercialRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.RentPrice > CommercialFloor {
			out = append(out, room)
		}
	}
	return out
}

// Locations lists the distinct leading address segments, for the location
// dropdown. Blank segments are skipped.
func Locations(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		head := strings.TrimSpace(strings.SplitN(addr, ",", 2)[0])
		if head == "" {
			continue
		}
		if _, ok := seen[head]; ok {
			continue
		}
		seen[head] = struct{}{}
		out = append(out, head)
	}
	return out
}
