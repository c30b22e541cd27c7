package tmdb

import (
	"context"
	"net/http"
)

// MoviesService reads movies and rates them
type MoviesService service

// Details returns a movie. Sub-resources named in AppendToResponse are filled
// into the matching optional fields.
func (s *MoviesService) Details(ctx context.Context, id int, opts *DetailsOptions) (*Movie, error) {
	return get[Movie](ctx, s.client, v3("movie/%d", id), opts)
}

// AccountStates needs a user or guest session
func (s *MoviesService) AccountStates(ctx context.Context, id int) (*AccountStates, error) {
	return get[AccountStates](ctx, s.client, v3("movie/%d/account_states", id), nil)
}

func (s *MoviesService) AlternativeTitles(ctx context.Context, id int, opts *AlternativeTitlesOptions) (*AlternativeTitles, error) {
	return get[AlternativeTitles](ctx, s.client, v3("movie/%d/alternative_titles", id), opts)
}

func (s *MoviesService) Credits(ctx context.Context, id int, opts *LanguageOptions) (*Credits, error) {
	return get[Credits](ctx, s.client, v3("movie/%d/credits", id), opts)
}

func (s *MoviesService) ExternalIDs(ctx context.Context, id int) (*ExternalIDs, error) {
	return get[ExternalIDs](ctx, s.client, v3("movie/%d/external_ids", id), nil)
}

func (s *MoviesService) Images(ctx context.Context, id int, opts *ImagesOptions) (*Images, error) {
	return get[Images](ctx, s.client, v3("movie/%d/images", id), opts)
}

func (s *MoviesService) Keywords(ctx context.Context, id int) (*Keywords, error) {
	return get[Keywords](ctx, s.client, v3("movie/%d/keywords", id), nil)
}

func (s *MoviesService) ReleaseDates(ctx context.Context, id int) (*ReleaseDates, error) {
	return get[ReleaseDates](ctx, s.client, v3("movie/%d/release_dates", id), nil)
}

func (s *MoviesService) Videos(ctx context.Context, id int, opts *LanguageOptions) (*Videos, error) {
	return get[Videos](ctx, s.client, v3("movie/%d/videos", id), opts)
}

func (s *MoviesService) Translations(ctx context.Context, id int) (*Translations[MovieTranslationData], error) {
	return get[Translations[MovieTranslationData]](ctx, s.client, v3("movie/%d/translations", id), nil)
}

func (s *MoviesService) Recommendations(ctx context.Context, id int, opts *PageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/%d/recommendations", id), opts)
}

func (s *MoviesService) Similar(ctx context.Context, id int, opts *PageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/%d/similar", id), opts)
}

func (s *MoviesService) Reviews(ctx context.Context, id int, opts *PageOptions) (*ResultPage[Review], error) {
	return get[ResultPage[Review]](ctx, s.client, v3("movie/%d/reviews", id), opts)
}

// Rate rates a movie from 0.5 to 10.0 in steps of 0.5, as the session's user
// or guest.
func (s *MoviesService) Rate(ctx context.Context, id int, value float64) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodPost, v3("movie/%d/rating", id), ratingBody{Value: value})
}

func (s *MoviesService) DeleteRating(ctx context.Context, id int) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodDelete, v3("movie/%d/rating", id), nil)
}

// Latest returns the most recently created movie
func (s *MoviesService) Latest(ctx context.Context) (*Movie, error) {
	return get[Movie](ctx, s.client, v3("movie/latest"), nil)
}

func (s *MoviesService) NowPlaying(ctx context.Context, opts *RegionPageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/now_playing"), opts, paramRegion)
}

func (s *MoviesService) Popular(ctx context.Context, opts *RegionPageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/popular"), opts, paramRegion)
}

func (s *MoviesService) TopRated(ctx context.Context, opts *RegionPageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/top_rated"), opts, paramRegion)
}

func (s *MoviesService) Upcoming(ctx context.Context, opts *RegionPageOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("movie/upcoming"), opts, paramRegion)
}
