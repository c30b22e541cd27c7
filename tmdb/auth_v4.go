package tmdb

import (
	"context"
	"net/http"
)

// AuthV4Service handles v4 user authentication. These calls need the
// application's read access token.
type AuthV4Service service

type redirectBody struct {
	RedirectTo string `json:"redirect_to,omitempty"`
}

// CreateRequestToken creates a v4 request token. The user approves it at
// https://www.themoviedb.org/auth/access?request_token=<token>, after which
// they are sent to redirectTo when set.
func (s *AuthV4Service) CreateRequestToken(ctx context.Context, redirectTo string) (*RequestTokenV4, error) {
	return send[RequestTokenV4](ctx, s.client, http.MethodPost, v4("auth/request_token"), redirectBody{RedirectTo: redirectTo})
}

// CreateAccessToken exchanges an approved request token for a user access
// token, which then replaces the client's bearer token.
func (s *AuthV4Service) CreateAccessToken(ctx context.Context, requestToken string) (*AccessTokenV4, error) {
	body := map[string]string{"request_token": requestToken}
	token, err := send[AccessTokenV4](ctx, s.client, http.MethodPost, v4("auth/access_token"), body)
	if err != nil {
		return nil, err
	}
	s.client.SetAccessToken(token.AccessToken)
	return token, nil
}

// DeleteAccessToken logs the user out; the bearer token is removed on success
func (s *AuthV4Service) DeleteAccessToken(ctx context.Context, accessToken string) (*StatusResponse, error) {
	body := map[string]string{"access_token": accessToken}
	resp, err := send[StatusResponse](ctx, s.client, http.MethodDelete, v4("auth/access_token"), body)
	if err != nil {
		return nil, err
	}
	if resp.Success {
		s.client.SetAccessToken("")
	}
	return resp, nil
}
