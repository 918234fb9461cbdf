package utils

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// NewDeviceID mints the identifier stored in the device cookie. The wishlist
// and session stores key everything under it.
func NewDeviceID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%x", uuid.NewString(), b), nil
}
