package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrInvalidAccessToken indicates a v4 access token that is not a three segment token
	ErrInvalidAccessToken = errors.New("api v4 access read token has a wrong format")
	// ErrUnknownMediaType indicates a media_type discriminator this package cannot decode
	ErrUnknownMediaType = errors.New("unknown media type")
	// ErrNoAccessToken indicates an operation that needs a v4 access token was called without one
	ErrNoAccessToken = errors.New("no v4 access token configured")
)

// APIError represents a non-2xx TMDB response.
//
// TMDB answers failures with a body of the form
// {"status_code": 34, "status_message": "The resource you requested could not be found."}.
type APIError struct {
	HTTPStatus    int    `json:"-"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Body          string `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusMessage == "" {
		return fmt.Sprintf("tmdb API error: status %d", e.HTTPStatus)
	}
	return fmt.Sprintf("tmdb API error: status %d: %s (code %d)", e.HTTPStatus, e.StatusMessage, e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden
}
