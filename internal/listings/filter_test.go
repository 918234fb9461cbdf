package listings

import (
	"reflect"
	"testing"

	"basobasFront/internal/models"
)

func roomsWithRents(rents ...float64) []models.Room {
	rooms := make([]models.Room, len(rents))
	for i, rent := range rents {
		rooms[i] = models.Room{ID: string(rune('a' + i)), RentPrice: rent}
	}
	return rooms
}

func TestFilterRoomsEmptyFilterIsIdentity(t *testing.T) {
	rooms := []models.Room{
		{ID: "1", Description: "Sunny flat", Address: "Baneshwor, Kathmandu", RentPrice: 12000},
		{ID: "2", Description: "Shared room", Address: "Patan", RentPrice: 8000},
	}

	got := FilterRooms(rooms, models.RoomFilter{})
	if !reflect.DeepEqual(got, rooms) {
		t.Fatalf("expected identity, got %#v", got)
	}
}

func TestFilterRoomsEmptyCollection(t *testing.T) {
	got := FilterRooms(nil, models.RoomFilter{Search: "flat", PriceBand: BandBelow10k})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}

func TestFilterRoomsSearchMatchesDescriptionOrAddress(t *testing.T) {
	rooms := []models.Room{
		{ID: "1", Description: "Cozy FLAT near campus", Address: "Kirtipur"},
		{ID: "2", Description: "Single room", Address: "Flat Street 5"},
		{ID: "3", Description: "Penthouse", Address: "Lazimpat"},
		{ID: "4"}, // missing text fields must read as empty, not panic
	}

	got := FilterRooms(rooms, models.RoomFilter{Search: "flat"})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestFilterRoomsPriceBands(t *testing.T) {
	rooms := roomsWithRents(5000, 12000, 25000, 35000, 8000, 15000, 22000, 9000, 40000, 18000)

	cases := []struct {
		name string
		band string
		want []float64
	}{
		{"below 10k", BandBelow10k, []float64{5000, 8000, 9000}},
		{"10k to 20k", Band10to20k, []float64{12000, 15000, 18000}},
		{"20k to 30k", Band20to30k, []float64{25000, 22000}},
		{"above 30k", BandAbove30k, []float64{35000, 40000}},
		{"unknown band inactive", "everything", []float64{5000, 12000, 25000, 35000, 8000, 15000, 22000, 9000, 40000, 18000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterRooms(rooms, models.RoomFilter{PriceBand: tc.band})
			prices := make([]float64, len(got))
			for i, room := range got {
				prices[i] = room.RentPrice
			}
			if !reflect.DeepEqual(prices, tc.want) {
				t.Fatalf("band %s: expected %v got %v", tc.band, tc.want, prices)
			}
		})
	}
}

func TestFilterRoomsIdempotent(t *testing.T) {
	rooms := roomsWithRents(5000, 12000, 25000, 8000)
	f := models.RoomFilter{PriceBand: BandBelow10k}

	once := FilterRooms(rooms, f)
	twice := FilterRooms(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", once, twice)
	}
}

func TestFilterRoomsDoesNotMutateInput(t *testing.T) {
	rooms := roomsWithRents(5000, 12000)
	snapshot := make([]models.Room, len(rooms))
	copy(snapshot, rooms)

	FilterRooms(rooms, models.RoomFilter{PriceBand: BandBelow10k})
	if !reflect.DeepEqual(rooms, snapshot) {
		t.Fatal("input collection was mutated")
	}
}

func TestFilterRoommatesAllPredicatesAnded(t *testing.T) {
	mates := []models.Roommate{
		{ID: "1", Name: "Anita", Bio: "student", PreferredLocation: "Baneshwor", Gender: "female", Budget: 9000},
		{ID: "2", Name: "Bikash", Bio: "quiet student", PreferredLocation: "Baneshwor", Gender: "male", Budget: 9500},
		{ID: "3", Name: "Chandra", Bio: "student", PreferredLocation: "Patan", Gender: "female", Budget: 9000},
		{ID: "4", Name: "Devi", Bio: "student", PreferredLocation: "Baneshwor", Gender: "female", Budget: 25000},
	}

	got := FilterRoommates(mates, models.RoommateFilter{
		Search:     "student",
		Location:   "baneshwor",
		Gender:     "female",
		BudgetBand: BandBelow10k,
	})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only roommate 1, got %#v", got)
	}
}

func TestFilterRoommatesGenderExactMatch(t *testing.T) {
	mates := []models.Roommate{
		{ID: "1", Gender: "male"},
		{ID: "2", Gender: "female"},
	}

	got := FilterRoommates(mates, models.RoommateFilter{Gender: "male"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestSastoAndCommercialRooms(t *testing.T) {
	rooms := roomsWithRents(5000, 10000, 30000, 30001, 9999)

	sasto := SastoRooms(rooms)
	if len(sasto) != 2 || sasto[0].RentPrice != 5000 || sasto[1].RentPrice != 9999 {
		t.Fatalf("unexpected sasto rooms: %#v", sasto)
	}

	commercial := CommercialRooms(rooms)
	if len(commercial) != 1 || commercial[0].RentPrice != 30001 {
		t.Fatalf("unexpected commercial rooms: %#v", commercial)
	}
}

func TestLocationsDedupesLeadingSegment(t *testing.T) {
	got := Locations([]string{"Baneshwor, Kathmandu", "Baneshwor, Lalitpur", "Patan", "", " , x"})
	want := []string{"Baneshwor", "Patan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}
