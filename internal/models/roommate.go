package models

import "time"

// Roommate is a roommate profile listing from the remote API.
type Roommate struct {
	ID                string     `json:"_id"`
	Name              string     `json:"name"`
	Bio               string     `json:"bio"`
	PreferredLocation string     `json:"preferredLocation"`
	Gender            string     `json:"gender"`
	Age               int        `json:"age"`
	Budget            float64    `json:"budget"`
	ContactNo         string     `json:"contactNo"`
	Image             string     `json:"roommateImage,omitempty"`
	UserID            string     `json:"userId"`
	Show              bool       `json:"show"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

type RoommateFilter struct {
	Search     string `json:"search"`
	Location   string `json:"location"`
	Gender     string `json:"gender"`
	BudgetBand string `json:"budget"`
}

type RoommateForm struct {
	Name              string
	Bio               string
	PreferredLocation string
	Gender            string
	Age               string
	Budget            string
	ContactNo         string
	ImageName         string
	Image             []byte
}
