package tmdb

import (
	"maps"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
)

// redactedParams are never written to logs in clear text
var redactedParams = []string{paramAPIKey, paramSessionID, paramGuestSessionID}

// AuthTransport is an http.RoundTripper that decorates every outgoing request with
// the current set of auth query parameters and headers.
//
// The parameter and header sets are mutable at any time; a change applies to every
// request sent after it.
type AuthTransport struct {
	base    http.RoundTripper
	logger  zerolog.Logger
	mu      sync.RWMutex
	params  map[string]string
	headers map[string]string
}

// NewAuthTransport creates a new AuthTransport wrapping base. A nil base uses
// http.DefaultTransport. The params map is copied.
func NewAuthTransport(base http.RoundTripper, params map[string]string, logger zerolog.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	p := make(map[string]string, len(params))
	maps.Copy(p, params)

	return &AuthTransport{
		base:    base,
		logger:  logger,
		params:  p,
		headers: make(map[string]string),
	}
}

// AddQueryParams adds or replaces query parameters
func (t *AuthTransport) AddQueryParams(params map[string]string) {
	t.mu.Lock()
	maps.Copy(t.params, params)
	t.mu.Unlock()
}

// RemoveQueryParams removes query parameters by key
func (t *AuthTransport) RemoveQueryParams(keys ...string) {
	t.mu.Lock()
	for _, k := range keys {
		delete(t.params, k)
	}
	t.mu.Unlock()
}

// AddHeaders adds or replaces headers
func (t *AuthTransport) AddHeaders(headers map[string]string) {
	t.mu.Lock()
	maps.Copy(t.headers, headers)
	t.mu.Unlock()
}

// RemoveHeaders removes headers by name
func (t *AuthTransport) RemoveHeaders(names ...string) {
	t.mu.Lock()
	for _, n := range names {
		delete(t.headers, n)
	}
	t.mu.Unlock()
}

// QueryParams returns a copy of the current query parameters
func (t *AuthTransport) QueryParams() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.params)
}

// Headers returns a copy of the current headers
func (t *AuthTransport) Headers() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.headers)
}

// RoundTrip implements http.RoundTripper. The incoming request is not modified.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	t.mu.RLock()
	q := r.URL.Query()
	for k, v := range t.params {
		q.Set(k, v)
	}
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	t.mu.RUnlock()

	r.URL.RawQuery = q.Encode()

	t.logger.Debug().
		Str("method", r.Method).
		Str("url", redactURL(r.URL)).
		Msg("Making TMDB API request")

	return t.base.RoundTrip(r)
}

// redactURL renders u with credential query values masked
func redactURL(u *url.URL) string {
	c := *u
	q := c.Query()
	for _, k := range redactedParams {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	c.RawQuery = q.Encode()
	return c.String()
}
