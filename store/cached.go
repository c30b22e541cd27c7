package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// RefreshConcurrency bounds the parallel fetches of CachedMovies.Refresh
const RefreshConcurrency = 5

// CachedMovies reads movies through the local cache
type CachedMovies struct {
	store   *Store
	fetcher tmdb.MovieFetcher
	logger  zerolog.Logger
}

// NewCachedMovies serves movies from store, fetching missing ones with fetcher
// (usually client.Movies).
func NewCachedMovies(store *Store, fetcher tmdb.MovieFetcher, logger zerolog.Logger) *CachedMovies {
	return &CachedMovies{store: store, fetcher: fetcher, logger: logger}
}

var detailsWithCredits = &tmdb.DetailsOptions{AppendToResponse: []string{"credits"}}

// Get returns the cached movie, fetching and caching it on a miss
func (c *CachedMovies) Get(ctx context.Context, id int) (*tmdb.Movie, error) {
	m, err := c.store.GetMovie(ctx, id)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c.logger.Debug().Int("movie_id", id).Msg("Cache miss, fetching from TMDB")
	return c.fetch(ctx, id)
}

func (c *CachedMovies) fetch(ctx context.Context, id int) (*tmdb.Movie, error) {
	m, err := c.fetcher.Details(ctx, id, detailsWithCredits)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}
	if err := c.store.InsertMovie(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// RefreshResult contains the results of a refresh
type RefreshResult struct {
	Requested int
	Refreshed []tmdb.Movie
	Failed    []RefreshError
}

// RefreshError describes a movie that could not be refreshed
type RefreshError struct {
	MovieID int
	Err     error
}

// Error implements the error interface
func (e RefreshError) Error() string {
	return fmt.Sprintf("failed to refresh movie %d: %v", e.MovieID, e.Err)
}

func (e RefreshError) Unwrap() error {
	return e.Err
}

// Refresh re-fetches ids from TMDB and overwrites their cached rows. A failing
// id does not stop the others; results keep the order of ids.
func (c *CachedMovies) Refresh(ctx context.Context, ids []int) RefreshResult {
	result := RefreshResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(RefreshConcurrency)

	var mu sync.Mutex
	movies := make([]*tmdb.Movie, len(ids))
	failed := make(map[int]error)

	for i, id := range ids {
		g.Go(func() error {
			m, err := c.fetch(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[i] = err
				return nil
			}
			movies[i] = m
			return nil
		})
	}

	_ = g.Wait()

	for i, m := range movies {
		if m != nil {
			result.Refreshed = append(result.Refreshed, *m)
			continue
		}
		if err, ok := failed[i]; ok {
			result.Failed = append(result.Failed, RefreshError{MovieID: ids[i], Err: err})
		}
	}

	c.logger.Info().
		Int("requested", result.Requested).
		Int("refreshed", len(result.Refreshed)).
		Int("failed", len(result.Failed)).
		Msg("Refreshed cached movies")

	return result
}

// RefreshAll refreshes every cached movie
func (c *CachedMovies) RefreshAll(ctx context.Context) (RefreshResult, error) {
	cached, err := c.store.ListMovies(ctx)
	if err != nil {
		return RefreshResult{}, err
	}

	ids := make([]int, 0, len(cached))
	for _, m := range cached {
		ids = append(ids, m.ID)
	}
	return c.Refresh(ctx, ids), nil
}
