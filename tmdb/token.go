package tmdb

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims are the claims TMDB embeds in v4 access and read access tokens.
//
// Audience holds the v3 API key of the owning application and Subject the v4
// account object id of the user.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Scopes  []string `json:"scopes"`
	Version int      `json:"version"`
}

// AccountObjectID returns the v4 account id the token was issued for
func (c *AccessTokenClaims) AccountObjectID() string {
	return c.Subject
}

// HasScope reports whether the token grants scope (e.g. "api_read", "api_write")
func (c *AccessTokenClaims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ParseAccessToken decodes the claims of a v4 token without verifying its
// signature; only TMDB holds the signing key.
func ParseAccessToken(token string) (*AccessTokenClaims, error) {
	if err := validateAccessToken(token); err != nil {
		return nil, err
	}

	claims := &AccessTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	return claims, nil
}
