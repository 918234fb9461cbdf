package api

import (
	"context"
	"encoding/json"

	"basobasFront/internal/models"
)

// ListUsers fetches the customer accounts for the admin dashboard. The remote
// API answers either a bare array or {"users":[...]}; both are accepted.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/user/customer", token, &raw); err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err == nil {
		return users, nil
	}
	var wrapped struct {
		Users []models.User `json:"users"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Users == nil {
		wrapped.Users = []models.User{}
	}
	return wrapped.Users, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/user/"+id, token)
}
