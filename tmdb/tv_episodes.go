package tmdb

import (
	"context"
	"net/http"
)

// TVEpisodesService reads and rates single episodes
type TVEpisodesService service

func episodePath(tvID, season, episode int, suffix string) string {
	return v3("tv/%d/season/%d/episode/%d%s", tvID, season, episode, suffix)
}

func (s *TVEpisodesService) Details(ctx context.Context, tvID, season, episode int, opts *DetailsOptions) (*Episode, error) {
	return get[Episode](ctx, s.client, episodePath(tvID, season, episode, ""), opts)
}

// AccountStates needs a user or guest session
func (s *TVEpisodesService) AccountStates(ctx context.Context, tvID, season, episode int) (*AccountStates, error) {
	return get[AccountStates](ctx, s.client, episodePath(tvID, season, episode, "/account_states"), nil)
}

func (s *TVEpisodesService) Credits(ctx context.Context, tvID, season, episode int) (*EpisodeCredits, error) {
	return get[EpisodeCredits](ctx, s.client, episodePath(tvID, season, episode, "/credits"), nil)
}

func (s *TVEpisodesService) ExternalIDs(ctx context.Context, tvID, season, episode int) (*ExternalIDs, error) {
	return get[ExternalIDs](ctx, s.client, episodePath(tvID, season, episode, "/external_ids"), nil)
}

// Images returns the episode's stills
func (s *TVEpisodesService) Images(ctx context.Context, tvID, season, episode int) (*Images, error) {
	return get[Images](ctx, s.client, episodePath(tvID, season, episode, "/images"), nil)
}

func (s *TVEpisodesService) Videos(ctx context.Context, tvID, season, episode int, opts *LanguageOptions) (*Videos, error) {
	return get[Videos](ctx, s.client, episodePath(tvID, season, episode, "/videos"), opts)
}

func (s *TVEpisodesService) Rate(ctx context.Context, tvID, season, episode int, value float64) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodPost, episodePath(tvID, season, episode, "/rating"), ratingBody{Value: value})
}

func (s *TVEpisodesService) DeleteRating(ctx context.Context, tvID, season, episode int) (*StatusResponse, error) {
	return send[StatusResponse](ctx, s.client, http.MethodDelete, episodePath(tvID, season, episode, "/rating"), nil)
}
