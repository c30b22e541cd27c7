package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the TMDB API. Versioned paths ("3/...", "4/...")
// are resolved against it.
const DefaultBaseURL = "https://api.themoviedb.org/"

const (
	paramAPIKey         = "api_key"
	paramSessionID      = "session_id"
	paramGuestSessionID = "guest_session_id"
	paramLanguage       = "language"
	paramRegion         = "region"
	paramIncludeAdult   = "include_adult"

	headerAuthorization = "Authorization"
	contentTypeJSON     = "application/json;charset=utf-8"
)

// service is shared by every service group; each group is a named copy of it
type service struct {
	client *Client
}

// Client represents a TMDB API client
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	auth         *AuthTransport
	logger       zerolog.Logger
	language     string
	region       string
	includeAdult *bool
	userAgent    string

	mu          sync.RWMutex
	accessToken string

	common service

	Auth           *AuthService
	AuthV4         *AuthV4Service
	Account        *AccountService
	AccountV4      *AccountV4Service
	Certifications *CertificationsService
	Changes        *ChangesService
	Collections    *CollectionsService
	Configuration  *ConfigurationService
	Discover       *DiscoverService
	Genres         *GenresService
	Keywords       *KeywordsService
	Lists          *ListsService
	Movies         *MoviesService
	Networks       *NetworksService
	People         *PeopleService
	Reviews        *ReviewsService
	Search         *SearchService
	Trending       *TrendingService
	TVShows        *TVShowsService
	TVSeasons      *TVSeasonsService
	TVEpisodes     *TVEpisodesService
}

// NewClient creates a new TMDB client authenticated with a v3 API key.
//
// A v4 access token passed through WithAccessToken must consist of exactly three
// dot separated segments, otherwise ErrInvalidAccessToken is returned.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.accessToken != nil {
		if err := validateAccessToken(*o.accessToken); err != nil {
			return nil, err
		}
	}

	baseURL := o.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %w", ErrInvalidConfig, o.baseURL, err)
	}

	httpClient := &http.Client{Timeout: o.timeout}
	var rt http.RoundTripper
	if o.httpClient != nil {
		custom := *o.httpClient
		httpClient = &custom
		rt = custom.Transport
	}
	if rt == nil {
		rt = http.DefaultTransport
	}
	if o.registerer != nil {
		rt = &meteredTransport{base: rt, metrics: newMetrics(o.registerer)}
	}

	auth := NewAuthTransport(rt, map[string]string{paramAPIKey: apiKey}, logger)
	httpClient.Transport = auth

	c := &Client{
		baseURL:      base,
		httpClient:   httpClient,
		auth:         auth,
		logger:       logger,
		language:     o.language,
		region:       o.region,
		includeAdult: o.includeAdult,
		userAgent:    o.userAgent,
	}
	c.common.client = c

	c.Auth = (*AuthService)(&c.common)
	c.AuthV4 = (*AuthV4Service)(&c.common)
	c.Account = (*AccountService)(&c.common)
	c.AccountV4 = (*AccountV4Service)(&c.common)
	c.Certifications = (*CertificationsService)(&c.common)
	c.Changes = (*ChangesService)(&c.common)
	c.Collections = (*CollectionsService)(&c.common)
	c.Configuration = (*ConfigurationService)(&c.common)
	c.Discover = (*DiscoverService)(&c.common)
	c.Genres = (*GenresService)(&c.common)
	c.Keywords = (*KeywordsService)(&c.common)
	c.Lists = (*ListsService)(&c.common)
	c.Movies = (*MoviesService)(&c.common)
	c.Networks = (*NetworksService)(&c.common)
	c.People = (*PeopleService)(&c.common)
	c.Reviews = (*ReviewsService)(&c.common)
	c.Search = (*SearchService)(&c.common)
	c.Trending = (*TrendingService)(&c.common)
	c.TVShows = (*TVShowsService)(&c.common)
	c.TVSeasons = (*TVSeasonsService)(&c.common)
	c.TVEpisodes = (*TVEpisodesService)(&c.common)

	if o.accessToken != nil {
		c.SetAccessToken(*o.accessToken)
	}
	if o.sessionID != "" {
		s := Session{Success: true, Guest: o.guest}
		if o.guest {
			s.GuestSessionID = o.sessionID
		} else {
			s.SessionID = o.sessionID
		}
		c.SetSession(s)
	}

	return c, nil
}

// validateAccessToken checks the token has the three segments of a JWT
func validateAccessToken(token string) error {
	if len(strings.Split(token, ".")) != 3 {
		return ErrInvalidAccessToken
	}
	return nil
}

// Transport exposes the auth interceptor, e.g. to add custom query parameters
func (c *Client) Transport() *AuthTransport {
	return c.auth
}

// SetSession replaces the current session. Both session parameters are removed
// first; a successful session is then attached as guest_session_id or session_id
// depending on s.Guest.
func (c *Client) SetSession(s Session) {
	c.auth.RemoveQueryParams(paramSessionID, paramGuestSessionID)

	if !s.Success || s.ID() == "" {
		return
	}

	name := paramSessionID
	if s.Guest {
		name = paramGuestSessionID
	}
	c.auth.AddQueryParams(map[string]string{name: s.ID()})

	c.logger.Debug().Bool("guest", s.Guest).Msg("Session attached")
}

// ClearSession detaches any session
func (c *Client) ClearSession() {
	c.SetSession(Session{})
}

// Session returns the currently attached session id and whether it is a guest
// session. The id is empty when no session is attached.
func (c *Client) Session() (string, bool) {
	params := c.auth.QueryParams()
	if id, ok := params[paramGuestSessionID]; ok {
		return id, true
	}
	return params[paramSessionID], false
}

// SetAccessToken replaces the v4 bearer token. A blank token removes the
// Authorization header.
func (c *Client) SetAccessToken(token string) {
	token = strings.TrimSpace(token)
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()

	if token == "" {
		c.auth.RemoveHeaders(headerAuthorization)
		return
	}
	c.auth.AddHeaders(map[string]string{headerAuthorization: "Bearer " + token})
}

// AccessToken returns the current v4 bearer token, if any
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// AccessTokenClaims decodes the claims of the current v4 access token
func (c *Client) AccessTokenClaims() (*AccessTokenClaims, error) {
	token := c.AccessToken()
	if token == "" {
		return nil, ErrNoAccessToken
	}
	return ParseAccessToken(token)
}

// query encodes params and applies the client's defaults. Language is always
// defaulted; region and include_adult only when named in defaults.
func (c *Client) query(params any, defaults ...string) (url.Values, error) {
	values := url.Values{}
	switch p := params.(type) {
	case nil:
	case url.Values:
		for k, vs := range p {
			values[k] = append([]string(nil), vs...)
		}
	default:
		v, err := query.Values(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query parameters: %w", err)
		}
		values = v
	}

	if c.language != "" && !values.Has(paramLanguage) {
		values.Set(paramLanguage, c.language)
	}
	for _, d := range defaults {
		if values.Has(d) {
			continue
		}
		switch d {
		case paramRegion:
			if c.region != "" {
				values.Set(paramRegion, c.region)
			}
		case paramIncludeAdult:
			if c.includeAdult != nil {
				values.Set(paramIncludeAdult, strconv.FormatBool(*c.includeAdult))
			}
		}
	}

	return values, nil
}

// newRequest builds a request for a versioned path such as "3/movie/550"
func (c *Client) newRequest(ctx context.Context, method, path string, values url.Values, body any) (*http.Request, error) {
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// call performs a request and decodes a successful response into out
func (c *Client) call(ctx context.Context, method, path string, params, body, out any, defaults ...string) error {
	values, err := c.query(params, defaults...)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, values, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("TMDB API response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode, Body: string(data)}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func get[T any](ctx context.Context, c *Client, path string, params any, defaults ...string) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodGet, path, params, nil, &out, defaults...); err != nil {
		return nil, err
	}
	return &out, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var out T
	if err := c.call(ctx, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func v3(format string, args ...any) string {
	return "3/" + fmt.Sprintf(format, args...)
}

func v4(format string, args ...any) string {
	return "4/" + fmt.Sprintf(format, args...)
}
