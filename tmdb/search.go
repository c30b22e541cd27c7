package tmdb

import (
	"context"
	"fmt"
)

// SearchService searches by text
type SearchService service

// SearchMovieOptions narrows a movie search
type SearchMovieOptions struct {
	Page               int    `url:"page,omitempty"`
	Language           string `url:"language,omitempty"`
	IncludeAdult       *bool  `url:"include_adult,omitempty"`
	Region             string `url:"region,omitempty"`
	Year               int    `url:"year,omitempty"`
	PrimaryReleaseYear int    `url:"primary_release_year,omitempty"`
}

// SearchTVOptions narrows a TV search
type SearchTVOptions struct {
	Page             int    `url:"page,omitempty"`
	Language         string `url:"language,omitempty"`
	IncludeAdult     *bool  `url:"include_adult,omitempty"`
	FirstAirDateYear int    `url:"first_air_date_year,omitempty"`
	Year             int    `url:"year,omitempty"`
}

// SearchOptions narrows people and multi searches
type SearchOptions struct {
	Page         int    `url:"page,omitempty"`
	Language     string `url:"language,omitempty"`
	IncludeAdult *bool  `url:"include_adult,omitempty"`
}

// Movies searches movies by title. Region and include_adult default to the
// client settings.
func (s *SearchService) Movies(ctx context.Context, text string, opts *SearchMovieOptions) (*ResultPage[Movie], error) {
	return search[Movie](ctx, s.client, "movie", text, opts, paramRegion, paramIncludeAdult)
}

// TV searches TV shows by name. include_adult defaults to the client setting.
func (s *SearchService) TV(ctx context.Context, text string, opts *SearchTVOptions) (*ResultPage[TVShow], error) {
	return search[TVShow](ctx, s.client, "tv", text, opts, paramIncludeAdult)
}

// People searches people by name. include_adult defaults to the client setting.
func (s *SearchService) People(ctx context.Context, text string, opts *SearchOptions) (*ResultPage[Person], error) {
	return search[Person](ctx, s.client, "person", text, opts, paramIncludeAdult)
}

// Multi searches movies, TV shows and people at once
func (s *SearchService) Multi(ctx context.Context, text string, opts *SearchOptions) (*ResultPage[MediaItem], error) {
	return search[MediaItem](ctx, s.client, "multi", text, opts, paramIncludeAdult)
}

// Companies searches production companies by name
func (s *SearchService) Companies(ctx context.Context, text string, opts *PageOptions) (*ResultPage[Company], error) {
	return search[Company](ctx, s.client, "company", text, opts)
}

// Collections searches movie collections by name
func (s *SearchService) Collections(ctx context.Context, text string, opts *PageOptions) (*ResultPage[CollectionSummary], error) {
	return search[CollectionSummary](ctx, s.client, "collection", text, opts)
}

// Keywords searches keywords by name
func (s *SearchService) Keywords(ctx context.Context, text string, opts *PageOptions) (*ResultPage[Keyword], error) {
	return search[Keyword](ctx, s.client, "keyword", text, opts)
}

func search[T any](ctx context.Context, c *Client, kind, text string, opts any, defaults ...string) (*ResultPage[T], error) {
	values, err := withQuery(text, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	return get[ResultPage[T]](ctx, c, v3("search/%s", kind), values, defaults...)
}
