package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/tmdb"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  map[int]int
	opts   []*tmdb.DetailsOptions
	movies map[int]tmdb.Movie
	fail   map[int]error
}

func newFakeFetcher(movies ...tmdb.Movie) *fakeFetcher {
	f := &fakeFetcher{
		calls:  make(map[int]int),
		movies: make(map[int]tmdb.Movie),
		fail:   make(map[int]error),
	}
	for _, m := range movies {
		f.movies[m.ID] = m
	}
	return f
}

func (f *fakeFetcher) Details(_ context.Context, id int, opts *tmdb.DetailsOptions) (*tmdb.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[id]++
	f.opts = append(f.opts, opts)
	if err, ok := f.fail[id]; ok {
		return nil, err
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, &tmdb.APIError{HTTPStatus: 404, StatusCode: 34, StatusMessage: "The resource you requested could not be found."}
	}
	return &m, nil
}

func (f *fakeFetcher) callCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func TestCachedMovies_Get(t *testing.T) {
	s := newTestStore(t)
	f := newFakeFetcher(fightClub())
	c := NewCachedMovies(s, f, zerolog.Nop())
	ctx := context.Background()

	m, err := c.Get(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", m.Title)
	assert.Equal(t, 1, f.callCount(550))
	require.Len(t, f.opts, 1)
	assert.Equal(t, []string{"credits"}, f.opts[0].AppendToResponse)

	// second read is served from the cache
	m, err = c.Get(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", m.Title)
	require.NotNil(t, m.Credits)
	assert.Equal(t, "David Fincher", m.Credits.Directors()[0].Name)
	assert.Equal(t, 1, f.callCount(550))
}

func TestCachedMovies_GetFetchError(t *testing.T) {
	s := newTestStore(t)
	c := NewCachedMovies(s, newFakeFetcher(), zerolog.Nop())

	_, err := c.Get(context.Background(), 404)
	require.Error(t, err)

	var apiErr *tmdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 34, apiErr.StatusCode)

	_, err = s.GetMovie(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedMovies_Refresh(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stale := fightClub()
	stale.VoteCount = 1
	require.NoError(t, s.InsertMovie(ctx, stale))

	f := newFakeFetcher(fightClub(), tmdb.Movie{ID: 13, Title: "Forrest Gump"}, tmdb.Movie{ID: 680, Title: "Pulp Fiction"})
	boom := errors.New("connection reset")
	f.fail[603] = boom
	c := NewCachedMovies(s, f, zerolog.Nop())

	res := c.Refresh(ctx, []int{680, 603, 550, 13})
	assert.Equal(t, 4, res.Requested)

	var titles []string
	for _, m := range res.Refreshed {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"Pulp Fiction", "Fight Club", "Forrest Gump"}, titles)

	require.Len(t, res.Failed, 1)
	assert.Equal(t, 603, res.Failed[0].MovieID)
	assert.ErrorIs(t, res.Failed[0], boom)

	got, err := s.GetMovie(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, 26280, got.VoteCount)
}

func TestCachedMovies_RefreshEmpty(t *testing.T) {
	c := NewCachedMovies(newTestStore(t), newFakeFetcher(), zerolog.Nop())

	res := c.Refresh(context.Background(), nil)
	assert.Equal(t, RefreshResult{}, res)
}

func TestCachedMovies_RefreshAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertMovie(ctx, tmdb.Movie{ID: 550, Title: "Old"}))

	f := newFakeFetcher(fightClub())
	c := NewCachedMovies(s, f, zerolog.Nop())

	res, err := c.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Requested)
	require.Len(t, res.Refreshed, 1)
	assert.Equal(t, "Fight Club", res.Refreshed[0].Title)
	assert.Equal(t, 1, f.callCount(550))
}
