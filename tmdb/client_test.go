package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// testToken is a syntactically valid three segment token
const testToken = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhYmMifQ.c2ln"

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient(testAPIKey, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr error
	}{
		{
			name:   "valid config",
			apiKey: testAPIKey,
		},
		{
			name:    "missing API key",
			apiKey:  "  ",
			wantErr: ErrInvalidConfig,
		},
		{
			name:   "valid access token",
			apiKey: testAPIKey,
			opts:   []Option{WithAccessToken(testToken)},
		},
		{
			name:    "access token with one separator",
			apiKey:  testAPIKey,
			opts:    []Option{WithAccessToken("abc.def")},
			wantErr: ErrInvalidAccessToken,
		},
		{
			name:    "access token with three separators",
			apiKey:  testAPIKey,
			opts:    []Option{WithAccessToken("a.b.c.d")},
			wantErr: ErrInvalidAccessToken,
		},
		{
			name:    "invalid base URL",
			apiKey:  testAPIKey,
			opts:    []Option{WithBaseURL("http://[::1")},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, logger, tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client.Movies)
			assert.NotNil(t, client.TVEpisodes)
			assert.Equal(t, tt.apiKey, client.Transport().QueryParams()[paramAPIKey])
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(testAPIKey, logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
		assert.Nil(t, custom.Transport, "caller's client must not be modified")
	})

	t.Run("base URL gets a trailing slash", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithBaseURL("http://localhost:8080/proxy"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/proxy/", client.baseURL.String())
	})

	t.Run("with access token", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithAccessToken(testToken))
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+testToken, client.Transport().Headers()[headerAuthorization])
		assert.Equal(t, testToken, client.AccessToken())
	})

	t.Run("with guest session", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithSession("guest-1", true))
		require.NoError(t, err)
		id, guest := client.Session()
		assert.Equal(t, "guest-1", id)
		assert.True(t, guest)
	})
}

func TestClient_SetSession(t *testing.T) {
	client, err := NewClient(testAPIKey, zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name      string
		session   Session
		wantParam string
		absent    string
	}{
		{
			name:      "user session",
			session:   Session{Success: true, SessionID: "user-1"},
			wantParam: paramSessionID,
			absent:    paramGuestSessionID,
		},
		{
			name:      "guest session",
			session:   Session{Success: true, GuestSessionID: "guest-1", Guest: true},
			wantParam: paramGuestSessionID,
			absent:    paramSessionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client.SetSession(tt.session)
			params := client.Transport().QueryParams()
			assert.Equal(t, tt.session.ID(), params[tt.wantParam])
			assert.NotContains(t, params, tt.absent)
		})
	}

	t.Run("failed session detaches", func(t *testing.T) {
		client.SetSession(Session{Success: true, SessionID: "user-1"})
		client.SetSession(Session{Success: false, SessionID: "user-2"})
		params := client.Transport().QueryParams()
		assert.NotContains(t, params, paramSessionID)
		assert.NotContains(t, params, paramGuestSessionID)
		assert.Contains(t, params, paramAPIKey)
	})

	t.Run("clear session", func(t *testing.T) {
		client.SetSession(Session{Success: true, SessionID: "user-1"})
		client.ClearSession()
		id, guest := client.Session()
		assert.Empty(t, id)
		assert.False(t, guest)
	})
}

func TestClient_SetAccessToken(t *testing.T) {
	client, err := NewClient(testAPIKey, zerolog.Nop())
	require.NoError(t, err)

	client.SetAccessToken("new-token")
	assert.Equal(t, "Bearer new-token", client.Transport().Headers()[headerAuthorization])

	client.SetAccessToken("  abc  ")
	assert.Equal(t, "abc", client.AccessToken())
	assert.Equal(t, "Bearer abc", client.Transport().Headers()[headerAuthorization])

	client.SetAccessToken("   ")
	assert.NotContains(t, client.Transport().Headers(), headerAuthorization)
	assert.Empty(t, client.AccessToken())

	_, err = client.AccessTokenClaims()
	assert.ErrorIs(t, err, ErrNoAccessToken)
}

func TestClient_Defaults(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.RawQuery)
		mu.Unlock()
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "tmdbkit-test", r.Header.Get("User-Agent"))
		writeJSON(t, w, ResultPage[Movie]{Page: 1})
	}, WithLanguage("it-IT"), WithRegion("IT"), WithIncludeAdult(false), WithUserAgent("tmdbkit-test"))

	ctx := context.Background()

	_, err := client.Movies.Popular(ctx, nil)
	require.NoError(t, err)
	_, err = client.Movies.Popular(ctx, &RegionPageOptions{Language: "en-US", Region: "US"})
	require.NoError(t, err)
	_, err = client.Movies.Similar(ctx, 550, nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Equal(t, "api_key=test-key&language=it-IT&region=IT", got[0])
	assert.Equal(t, "api_key=test-key&language=en-US&region=US", got[1])
	assert.Equal(t, "api_key=test-key&language=it-IT", got[2], "region is only defaulted where the endpoint takes one")
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`)
	})

	_, err := client.Movies.Details(context.Background(), 1, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsUnauthorized())
	assert.Equal(t, 34, apiErr.StatusCode)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Error(), "could not be found")
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Account.Details(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "tmdb API error: status 401", apiErr.Error())
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id": "not a number"`)
	})

	_, err := client.Movies.Details(context.Background(), 550, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestClient_TransportError(t *testing.T) {
	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL("http://127.0.0.1:1"), WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.Movies.Latest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestMoviesService_Rate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/3/movie/550/rating", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get(paramSessionID))
		assert.Equal(t, contentTypeJSON, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"value": 8.5}`, string(body))

		writeJSON(t, w, StatusResponse{Success: true, StatusCode: 1, StatusMessage: "Success."})
	}, WithSession("user-1", false))

	resp, err := client.Movies.Rate(context.Background(), 550, 8.5)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestMoviesService_Details(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/550", r.URL.Path)
		assert.Equal(t, "credits,videos", r.URL.Query().Get("append_to_response"))
		_, _ = io.WriteString(w, `{
			"id": 550,
			"title": "Fight Club",
			"release_date": "1999-10-15",
			"genres": [{"id": 18, "name": "Drama"}],
			"runtime": 139,
			"credits": {"cast": [{"id": 819, "name": "Edward Norton", "character": "The Narrator"}],
				"crew": [{"id": 7467, "name": "David Fincher", "job": "Director"}]},
			"videos": {"results": [{"key": "abc", "site": "YouTube", "type": "Trailer"}]}
		}`)
	})

	movie, err := client.Movies.Details(context.Background(), 550, &DetailsOptions{
		AppendToResponse: []string{"credits", "videos"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, 1999, movie.ReleaseYear())
	require.NotNil(t, movie.Credits)
	assert.Equal(t, "Edward Norton", movie.Credits.Cast[0].Name)
	assert.Equal(t, "David Fincher", movie.Credits.Directors()[0].Name)
	require.NotNil(t, movie.Videos)
	assert.Len(t, movie.Videos.Results, 1)
	assert.Nil(t, movie.Translations)
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, Movie{ID: 550})
	}, WithMetrics(reg))

	_, err := client.Movies.Details(context.Background(), 550, nil)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "tmdb_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			counts[labels["version"]+" "+labels["method"]+" "+labels["code"]] += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"3 GET 200": 1}, counts)
}

func TestResultPage_NextPage(t *testing.T) {
	page := ResultPage[Movie]{Page: 1, TotalPages: 2}
	assert.True(t, page.HasMorePages())
	next, err := page.NextPage()
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	last := ResultPage[Movie]{Page: 2, TotalPages: 2}
	assert.False(t, last.HasMorePages())
	_, err = last.NextPage()
	assert.Error(t, err)
}

func TestClient_DefaultBaseURL(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.themoviedb.org").
		Get("/3/movie/550").
		MatchParam("api_key", testAPIKey).
		MatchHeader("Accept", "application/json").
		Reply(200).
		JSON(map[string]any{"id": 550, "title": "Fight Club"})

	// created after gock replaced http.DefaultTransport
	client, err := NewClient(testAPIKey, zerolog.Nop())
	require.NoError(t, err)

	movie, err := client.Movies.Details(context.Background(), 550, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.True(t, gock.IsDone())
}
