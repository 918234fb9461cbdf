package api

import (
	"context"
	"net/http"

	"basobasFront/internal/models"
)

func (c *Client) ListRoommates(ctx context.Context, token string) ([]models.Roommate, error) {
	var mates []models.Roommate
	if err := c.getJSON(ctx, "/api/roommates?show=true", token, &mates); err != nil {
		return nil, err
	}
	if mates == nil {
		mates = []models.Roommate{}
	}
	return mates, nil
}

func (c *Client) GetRoommate(ctx context.Context, token, id string) (models.Roommate, error) {
	var mate models.Roommate
	if err := c.getJSON(ctx, "/api/roommates/"+id, token, &mate); err != nil {
		return models.Roommate{}, err
	}
	return mate, nil
}

func roommateFields(form models.RoommateForm) map[string]string {
	return map[string]string{
		"name":              form.Name,
		"bio":               form.Bio,
		"preferredLocation": form.PreferredLocation,
		"gender":            form.Gender,
		"age":               form.Age,
		"budget":            form.Budget,
		"contactNo":         form.ContactNo,
	}
}

func (c *Client) CreateRoommate(ctx context.Context, token string, form models.RoommateForm) (models.Roommate, error) {
	body, contentType, err := multipartBody(roommateFields(form), "roommateImage", form.ImageName, form.Image)
	if err != nil {
		return models.Roommate{}, err
	}
	var mate models.Roommate
	if err := c.do(ctx, http.MethodPost, "/api/roommates", token, body, contentType, &mate); err != nil {
		return models.Roommate{}, err
	}
	return mate, nil
}

func (c *Client) UpdateRoommate(ctx context.Context, token, id string, form models.RoommateForm) (models.Roommate, error) {
	body, contentType, err := multipartBody(roommateFields(form), "roommateImage", form.ImageName, form.Image)
	if err != nil {
		return models.Roommate{}, err
	}
	var mate models.Roommate
	if err := c.do(ctx, http.MethodPut, "/api/roommates/"+id, token, body, contentType, &mate); err != nil {
		return models.Roommate{}, err
	}
	return mate, nil
}

func (c *Client) DeleteRoommate(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/roommates/"+id, token)
}
