package models

import (
	"errors"
)

var (
	ErrNoRecord        = errors.New("models: no matching record found")
	ErrUnauthenticated = errors.New("models: not logged in")
	ErrForbidden       = errors.New("models: forbidden")
	ErrRoomNotFound    = errors.New("models: room not found")
	ErrMateNotFound    = errors.New("models: roommate not found")
	ErrUserNotFound    = errors.New("models: user not found")
	ErrAPIUnavailable  = errors.New("models: listings api unavailable")
	ErrNotOwner        = errors.New("models: listing belongs to another user")
)
