package tmdb

import "context"

// AccountV4Service covers the v4 account endpoints. They need a user access
// token; accountObjectID is the "sub" claim of that token.
type AccountV4Service service

// AccountRating is the account's rating in v4 listings
type AccountRating struct {
	CreatedAt string  `json:"created_at"`
	Value     float64 `json:"value"`
}

// RatedMovieV4 is a movie with the account's v4 rating
type RatedMovieV4 struct {
	Movie
	AccountRating AccountRating `json:"account_rating"`
}

// RatedTVShowV4 is a TV show with the account's v4 rating
type RatedTVShowV4 struct {
	TVShow
	AccountRating AccountRating `json:"account_rating"`
}

// Lists returns the lists created by the account
func (s *AccountV4Service) Lists(ctx context.Context, accountObjectID string, opts *PageOptions) (*ResultPage[ListSummary], error) {
	return get[ResultPage[ListSummary]](ctx, s.client, v4("account/%s/lists", accountObjectID), opts)
}

func (s *AccountV4Service) FavoriteMovies(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v4("account/%s/movie/favorites", accountObjectID), opts)
}

func (s *AccountV4Service) FavoriteTV(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v4("account/%s/tv/favorites", accountObjectID), opts)
}

func (s *AccountV4Service) RatedMovies(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[RatedMovieV4], error) {
	return get[ResultPage[RatedMovieV4]](ctx, s.client, v4("account/%s/movie/rated", accountObjectID), opts)
}

func (s *AccountV4Service) RatedTV(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[RatedTVShowV4], error) {
	return get[ResultPage[RatedTVShowV4]](ctx, s.client, v4("account/%s/tv/rated", accountObjectID), opts)
}

func (s *AccountV4Service) RecommendedMovies(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v4("account/%s/movie/recommendations", accountObjectID), opts)
}

func (s *AccountV4Service) RecommendedTV(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v4("account/%s/tv/recommendations", accountObjectID), opts)
}

func (s *AccountV4Service) WatchlistMovies(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v4("account/%s/movie/watchlist", accountObjectID), opts)
}

func (s *AccountV4Service) WatchlistTV(ctx context.Context, accountObjectID string, opts *AccountListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v4("account/%s/tv/watchlist", accountObjectID), opts)
}
