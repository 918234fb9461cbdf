package models

import "time"

// Room is a room listing as the remote API returns it. IDs are opaque strings
// that stay stable across refetches; they are also what the wishlist stores.
type Room struct {
	ID          string     `json:"_id"`
	Description string     `json:"roomDescription"`
	Address     string     `json:"address"`
	RentPrice   float64    `json:"rentPrice"`
	Floor       string     `json:"floor,omitempty"`
	Parking     string     `json:"parking,omitempty"`
	Bathroom    string     `json:"bathroom,omitempty"`
	ContactNo   string     `json:"contactNo"`
	Image       string     `json:"roomImage,omitempty"`
	UserID      string     `json:"userId"`
	Show        bool       `json:"show"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// RoomFilter carries the filter bar values from the rooms page. Empty fields
// are inactive predicates.
type RoomFilter struct {
	Search    string `json:"search"`
	Location  string `json:"location"`
	PriceBand string `json:"price"`
}

// RoomForm is the multipart payload for creating or updating a room listing.
// Image is optional; the remote API keeps the old image when it is absent.
type RoomForm struct {
	Description string
	Floor       string
	Address     string
	RentPrice   string
	Parking     string
	ContactNo   string
	Bathroom    string
	ImageName   string
	Image       []byte
}
