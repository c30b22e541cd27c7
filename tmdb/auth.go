package tmdb

import (
	"context"
	"fmt"
	"net/http"
)

// AuthService handles v3 authentication. Sessions it creates are attached to
// the client.
type AuthService service

// CreateRequestToken creates a request token the user has to approve
func (s *AuthService) CreateRequestToken(ctx context.Context) (*RequestToken, error) {
	return get[RequestToken](ctx, s.client, v3("authentication/token/new"), nil)
}

// ValidateWithLogin approves a request token with the user's credentials
func (s *AuthService) ValidateWithLogin(ctx context.Context, username, password, requestToken string) (*RequestToken, error) {
	body := map[string]string{
		"username":      username,
		"password":      password,
		"request_token": requestToken,
	}
	return send[RequestToken](ctx, s.client, http.MethodPost, v3("authentication/token/validate_with_login"), body)
}

// CreateSession exchanges an approved request token for a session
func (s *AuthService) CreateSession(ctx context.Context, requestToken string) (*Session, error) {
	body := map[string]string{"request_token": requestToken}
	session, err := send[Session](ctx, s.client, http.MethodPost, v3("authentication/session/new"), body)
	if err != nil {
		return nil, err
	}
	s.client.SetSession(*session)
	return session, nil
}

// CreateSessionFromV4 creates a v3 session from an approved v4 access token
func (s *AuthService) CreateSessionFromV4(ctx context.Context, accessToken string) (*Session, error) {
	body := map[string]string{"access_token": accessToken}
	session, err := send[Session](ctx, s.client, http.MethodPost, v3("authentication/session/convert/4"), body)
	if err != nil {
		return nil, err
	}
	s.client.SetSession(*session)
	return session, nil
}

// CreateGuestSession creates a guest session, valid until it is unused for 24 hours
func (s *AuthService) CreateGuestSession(ctx context.Context) (*Session, error) {
	session, err := get[Session](ctx, s.client, v3("authentication/guest_session/new"), nil)
	if err != nil {
		return nil, err
	}
	session.Guest = true
	s.client.SetSession(*session)
	return session, nil
}

// DeleteSession invalidates a session; the client session is cleared on success
func (s *AuthService) DeleteSession(ctx context.Context, sessionID string) (*StatusResponse, error) {
	body := map[string]string{"session_id": sessionID}
	resp, err := send[StatusResponse](ctx, s.client, http.MethodDelete, v3("authentication/session"), body)
	if err != nil {
		return nil, err
	}
	if resp.Success {
		s.client.ClearSession()
	}
	return resp, nil
}

// Login runs the full username/password flow: request token, validation and
// session creation.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := s.CreateRequestToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create request token: %w", err)
	}

	validated, err := s.ValidateWithLogin(ctx, username, password, token.RequestToken)
	if err != nil {
		return nil, fmt.Errorf("failed to validate request token: %w", err)
	}

	session, err := s.CreateSession(ctx, validated.RequestToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.client.logger.Info().Msg("Logged in to TMDB")
	return session, nil
}
