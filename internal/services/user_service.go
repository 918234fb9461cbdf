package services

import (
	"context"

	"basobasFront/internal/api"
	"basobasFront/internal/models"
	"basobasFront/internal/session"
)

type UserService struct {
	API      *api.Client
	Sessions *session.Store
}

// SignIn exchanges credentials for a token at the remote auth service and
// persists the resulting session for the device. Identity fields missing
// from the reply are recovered from the token claims.
func (s *UserService) SignIn(ctx context.Context, deviceID string, req models.SignInRequest) (models.Session, error) {
	resp, err := s.API.SignIn(ctx, req)
	if err != nil {
		return models.Session{}, err
	}
	sess := session.Hydrate(models.Session{
		UserID: resp.UserID,
		Name:   resp.Name,
		Email:  resp.Email,
		Role:   resp.Role,
		Token:  resp.Token,
	})
	if err := s.Sessions.Save(ctx, deviceID, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	return s.API.SignUp(ctx, req)
}

func (s *UserService) SignOut(ctx context.Context, deviceID string) error {
	return s.Sessions.Clear(ctx, deviceID)
}

func (s *UserService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return s.API.ForgotPassword(ctx, req)
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return s.API.ResetPassword(ctx, req)
}
