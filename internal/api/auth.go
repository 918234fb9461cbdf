package api

import (
	"context"

	"basobasFront/internal/models"
)

// Auth endpoints are consumed as opaque token-issuing calls: this side never
// interprets credentials or token contents beyond presence.

func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.postJSON(ctx, "/api/user/register", "", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.postJSON(ctx, "/api/user/login", "", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.postJSON(ctx, "/api/user/forgot-password", "", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.postJSON(ctx, "/api/user/reset-password", "", req, nil)
}
