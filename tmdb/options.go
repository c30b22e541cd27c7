package tmdb

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	timeout      time.Duration
	httpClient   *http.Client
	accessToken  *string
	sessionID    string
	guest        bool
	language     string
	region       string
	includeAdult *bool
	userAgent    string
	registerer   prometheus.Registerer
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		userAgent: "tmdbkit",
	}
}

// WithBaseURL overrides the API root, mainly for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient uses a custom HTTP client. Its transport is wrapped, not replaced.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAccessToken sets the v4 access (or read access) token sent as a bearer token.
func WithAccessToken(token string) Option {
	return func(o *clientOptions) {
		o.accessToken = &token
	}
}

// WithSession attaches an existing session. Guest sessions are sent as
// guest_session_id, user sessions as session_id.
func WithSession(sessionID string, guest bool) Option {
	return func(o *clientOptions) {
		o.sessionID = sessionID
		o.guest = guest
	}
}

// WithLanguage sets the default ISO 639-1 language (e.g. "en-US") for requests
// that don't specify one.
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		o.language = language
	}
}

// WithRegion sets the default ISO 3166-1 region for list and search requests.
func WithRegion(region string) Option {
	return func(o *clientOptions) {
		o.region = region
	}
}

// WithIncludeAdult sets the default include_adult flag for discover and search.
func WithIncludeAdult(include bool) Option {
	return func(o *clientOptions) {
		o.includeAdult = &include
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}
