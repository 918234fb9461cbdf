package api

import (
	"context"
	"net/http"

	"basobasFront/internal/models"
)

// ListRooms fetches the visible room listings. Collections are fetched fresh
// on every page view; there is no cache on this side.
func (c *Client) ListRooms(ctx context.Context, token string) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.getJSON(ctx, "/api/rooms?show=true", token, &rooms); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, token, id string) (models.Room, error) {
	var room models.Room
	if err := c.getJSON(ctx, "/api/rooms/"+id, token, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func roomFields(form models.RoomForm) map[string]string {
	return map[string]string{
		"roomDescription": form.Description,
		"floor":           form.Floor,
		"address":         form.Address,
		"rentPrice":       form.RentPrice,
		"parking":         form.Parking,
		"contactNo":       form.ContactNo,
		"bathroom":        form.Bathroom,
	}
}

func (c *Client) CreateRoom(ctx context.Context, token string, form models.RoomForm) (models.Room, error) {
	body, contentType, err := multipartBody(roomFields(form), "roomImage", form.ImageName, form.Image)
	if err != nil {
		return models.Room{}, err
	}
	var room models.Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms", token, body, contentType, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (c *Client) UpdateRoom(ctx context.Context, token, id string, form models.RoomForm) (models.Room, error) {
	body, contentType, err := multipartBody(roomFields(form), "roomImage", form.ImageName, form.Image)
	if err != nil {
		return models.Room{}, err
	}
	var room models.Room
	if err := c.do(ctx, http.MethodPut, "/api/rooms/"+id, token, body, contentType, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/rooms/"+id, token)
}
