package tmdb

import (
	"context"
	"net/http"
)

// TVShowsService reads TV shows and rates them
type TVShowsService service

// TVListOptions pages the TV listings; Timezone applies to airing today and
// on the air.
type TVListOptions struct {
	Page     int    `url:"page,omitempty"`
	Language string `url:"language,omitempty"`
	Timezone string `url:"timezone,omitempty"`
}

func (s *TVShowsService) Details(ctx context.Context, id int, opts *DetailsOptions) (*TVShow, error) {
	return get[TVShow](ctx, s.client, v3("tv/%d", id), opts)
}

// AccountStates needs a user or guest session
func (s *TVShowsService) AccountStates(ctx context.Context, id int) (*AccountStates, error) {
	return get[AccountStates](ctx, s.client, v3("tv/%d/account_states", id), nil)
}

func (s *TVShowsService) AlternativeTitles(ctx context.Context, id int) (*AlternativeTitles, error) {
	return get[AlternativeTitles](ctx, s.client, v3("tv/%d/alternative_titles", id), nil)
}

func (s *TVShowsService) ContentRatings(ctx context.Context, id int) (*ContentRatings, error) {
	return get[ContentRatings](ctx, s.client, v3("tv/%d/content_ratings", id), nil)
}

func (s *TVShowsService) Credits(ctx context.Context, id int, opts *LanguageOptions) (*Credits, error) {
	return get[Credits](ctx, s.client, v3("tv/%d/credits", id), opts)
}

func (s *TVShowsService) ExternalIDs(ctx context.Context, id int) (*ExternalIDs, error) {
	return get[ExternalIDs](ctx, s.client, v3("tv/%d/external_ids", id), nil)
}

func (s *TVShowsService) Images(ctx context.Context, id int, opts *ImagesOptions) (*Images, error) {
	return get[Images](ctx, s.client, v3("tv/%d/images", id), opts)
}

func (s *TVShowsService) Keywords(ctx context.Context, id int) (*Keywords, error) {
	return get[Keywords](ctx, s.client, v3("tv/%d/keywords", id), nil)
}

func (s *TVShowsService) Recommendations(ctx context.Context, id int, opts *PageOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/%d/recommendations", id), opts)
}

func (s *TVShowsService) Similar(ctx context.Context, id int, opts *PageOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/%d/similar", id), opts)
}

func (s *TVShowsService) Reviews(ctx context.Context, id int, opts *PageOptions) (*ResultPage[Review], error) {
	return get[ResultPage[Review]](ctx, s.client, v3("tv/%d/reviews", id), opts)
}

func (s *TVShowsService) Translations(ctx context.Context, id int) (*Translations[TVTranslationData], error) {
	return get[Translations[TVTranslationData]](ctx, s.client, v3("tv/%d/translations", id), nil)
}

func (s *TVShowsService) Videos(ctx context.Context, id int, opts *LanguageOptions) (*Videos, error) {
	return get[Videos](ctx, s.client, v3("tv/%d/videos", id), opts)
}

func (s *TVShowsService) Rate(ctx context.Context, id int, value float64) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodPost, v3("tv/%d/rating", id), ratingBody{Value: value})
}

func (s *TVShowsService) DeleteRating(ctx context.Context, id int) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodDelete, v3("tv/%d/rating", id), nil)
}

// Latest returns the most recently created TV show
func (s *TVShowsService) Latest(ctx context.Context) (*TVShow, error) {
	return get[TVShow](ctx, s.client, v3("tv/latest"), nil)
}

func (s *TVShowsService) AiringToday(ctx context.Context, opts *TVListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/airing_today"), opts)
}

// OnTheAir returns shows with an episode airing in the next 7 days
func (s *TVShowsService) OnTheAir(ctx context.Context, opts *TVListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/on_the_air"), opts)
}

func (s *TVShowsService) Popular(ctx context.Context, opts *TVListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/popular"), opts)
}

func (s *TVShowsService) TopRated(ctx context.Context, opts *TVListOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("tv/top_rated"), opts)
}
