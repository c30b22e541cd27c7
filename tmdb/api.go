package tmdb

import (
	"context"
)

// MovieFetcher fetches movie details
type MovieFetcher interface {
	// Details returns a movie by TMDB id
	Details(ctx context.Context, id int, opts *DetailsOptions) (*Movie, error)
}

// MovieDiscoverer lists movies matching discovery filters
type MovieDiscoverer interface {
	Movies(ctx context.Context, opts *DiscoverMovieOptions) (*ResultPage[Movie], error)
}

// SessionHolder is the auth state a client carries between requests
type SessionHolder interface {
	SetSession(s Session)
	ClearSession()
	Session() (string, bool)
	SetAccessToken(token string)
	AccessToken() string
}

var (
	_ MovieFetcher    = (*MoviesService)(nil)
	_ MovieDiscoverer = (*DiscoverService)(nil)
	_ SessionHolder   = (*Client)(nil)
)
