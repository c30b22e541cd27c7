package tmdb

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// recorder returns a transport that stores the last request it saw
func recorder() (*AuthTransport, func() *http.Request) {
	var (
		mu   sync.Mutex
		last *http.Request
	)
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		mu.Lock()
		last = r
		mu.Unlock()
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}")), Request: r}, nil
	})
	t := NewAuthTransport(base, map[string]string{paramAPIKey: "key"}, zerolog.Nop())
	return t, func() *http.Request {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func doRequest(t *testing.T, rt http.RoundTripper, method, rawURL string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, rawURL, body)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
	return req
}

func TestAuthTransport_QueryParams(t *testing.T) {
	rt, last := recorder()

	t.Run("added param is sent exactly once", func(t *testing.T) {
		rt.AddQueryParams(map[string]string{"extra": "1"})
		doRequest(t, rt, http.MethodGet, "https://api.themoviedb.org/3/movie/550?extra=0", nil)

		q := last().URL.Query()
		assert.Equal(t, []string{"1"}, q["extra"])
		assert.Equal(t, []string{"key"}, q[paramAPIKey])
	})

	t.Run("removed param is omitted", func(t *testing.T) {
		rt.RemoveQueryParams("extra")
		doRequest(t, rt, http.MethodGet, "https://api.themoviedb.org/3/movie/550", nil)

		q := last().URL.Query()
		assert.False(t, q.Has("extra"))
		assert.True(t, q.Has(paramAPIKey))
	})

	t.Run("request params are kept", func(t *testing.T) {
		doRequest(t, rt, http.MethodGet, "https://api.themoviedb.org/3/search/movie?query=fight+club&page=2", nil)

		q := last().URL.Query()
		assert.Equal(t, "fight club", q.Get("query"))
		assert.Equal(t, "2", q.Get("page"))
	})
}

func TestAuthTransport_Headers(t *testing.T) {
	rt, last := recorder()

	rt.AddHeaders(map[string]string{headerAuthorization: "Bearer abc"})
	doRequest(t, rt, http.MethodGet, "https://api.themoviedb.org/4/list/1", nil)
	assert.Equal(t, "Bearer abc", last().Header.Get(headerAuthorization))

	rt.RemoveHeaders(headerAuthorization)
	doRequest(t, rt, http.MethodGet, "https://api.themoviedb.org/4/list/1", nil)
	assert.Empty(t, last().Header.Get(headerAuthorization))
	assert.Empty(t, rt.Headers())
}

func TestAuthTransport_DoesNotModifyRequest(t *testing.T) {
	rt, last := recorder()
	rt.AddHeaders(map[string]string{"X-Test": "1"})

	req := doRequest(t, rt, http.MethodPost, "https://api.themoviedb.org/3/movie/550/rating", strings.NewReader(`{"value":8}`))

	assert.Empty(t, req.URL.RawQuery)
	assert.Empty(t, req.Header.Get("X-Test"))

	sent := last()
	assert.Equal(t, http.MethodPost, sent.Method)
	assert.Equal(t, "1", sent.Header.Get("X-Test"))
	body, err := io.ReadAll(sent.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"value":8}`, string(body))
}

func TestAuthTransport_ParamsAreCopied(t *testing.T) {
	params := map[string]string{paramAPIKey: "key"}
	rt := NewAuthTransport(nil, params, zerolog.Nop())

	params[paramAPIKey] = "changed"
	assert.Equal(t, "key", rt.QueryParams()[paramAPIKey])

	got := rt.QueryParams()
	got["other"] = "x"
	assert.NotContains(t, rt.QueryParams(), "other")
	assert.Equal(t, http.DefaultTransport, rt.base)
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.themoviedb.org/3/account?api_key=secret&session_id=s1&page=2")
	require.NoError(t, err)

	got := redactURL(u)
	assert.NotContains(t, got, "secret")
	assert.NotContains(t, got, "s1")
	assert.Contains(t, got, "api_key=REDACTED")
	assert.Contains(t, got, "page=2")
	assert.Equal(t, "api_key=secret&session_id=s1&page=2", u.RawQuery)
}

func TestAPIVersion(t *testing.T) {
	tests := map[string]string{
		"/3/movie/550": "3",
		"/4/list/1":    "4",
		"/":            "unknown",
		"/health":      "unknown",
	}
	for path, want := range tests {
		assert.Equal(t, want, apiVersion(path), path)
	}
}
