package tmdb

import (
	"context"
	"net/http"
)

// AccountService covers the v3 account endpoints. They need a user session.
type AccountService service

// RatedMovie is a movie with the account's rating
type RatedMovie struct {
	Movie
	Rating float64 `json:"rating"`
}

// RatedTVShow is a TV show with the account's rating
type RatedTVShow struct {
	TVShow
	Rating float64 `json:"rating"`
}

type favoriteBody struct {
	MediaType MediaType `json:"media_type"`
	MediaID   int       `json:"media_id"`
	Favorite  bool      `json:"favorite"`
}

type watchlistBody struct {
	MediaType MediaType `json:"media_type"`
	MediaID   int       `json:"media_id"`
	Watchlist bool      `json:"watchlist"`
}

// Details returns the account owning the current session
func (s *AccountService) Details(ctx context.Context) (*Account, error) {
	return get[Account](ctx, s.client, v3("account"), nil)
}

func (s *AccountService) FavoriteMovies(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("account/%d/favorite/movies", accountID), opts)
}

func (s *AccountService) FavoriteTV(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("account/%d/favorite/tv", accountID), opts)
}

func (s *AccountService) RatedMovies(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[RatedMovie], error) {
	return get[ResultPage[RatedMovie]](ctx, s.client, v3("account/%d/rated/movies", accountID), opts)
}

func (s *AccountService) RatedTV(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[RatedTVShow], error) {
	return get[ResultPage[RatedTVShow]](ctx, s.client, v3("account/%d/rated/tv", accountID), opts)
}

func (s *AccountService) WatchlistMovies(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("account/%d/watchlist/movies", accountID), opts)
}

func (s *AccountService) WatchlistTV(ctx context.Context, accountID int, opts *AccountListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("account/%d/watchlist/tv", accountID), opts)
}

// MarkAsFavorite adds or removes a movie or TV show from the favorites
func (s *AccountService) MarkAsFavorite(ctx context.Context, accountID int, mediaType MediaType, mediaID int, favorite bool) (*StatusResponse, error) {
	body := favoriteBody{MediaType: mediaType, MediaID: mediaID, Favorite: favorite}
	return send[StatusResponse](ctx, s.client, http.MethodPost, v3("account/%d/favorite", accountID), body)
}

// AddToWatchlist adds or removes a movie or TV show from the watchlist
func (s *AccountService) AddToWatchlist(ctx context.Context, accountID int, mediaType MediaType, mediaID int, watchlist bool) (*StatusResponse, error) {
	body := watchlistBody{MediaType: mediaType, MediaID: mediaID, Watchlist: watchlist}
	return send[StatusResponse](ctx, s.client, http.MethodPost, v3("account/%d/watchlist", accountID), body)
}
