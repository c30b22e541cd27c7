package tmdb

import "context"

// TVSeasonsService reads the seasons of a TV show
type TVSeasonsService service

// EpisodeAccountState is the account state of one episode of a season
type EpisodeAccountState struct {
	ID            int   `json:"id"`
	EpisodeNumber int   `json:"episode_number"`
	Rated         Rated `json:"rated"`
}

// SeasonAccountStates lists the ratings of a season's episodes
type SeasonAccountStates struct {
	ID      int                   `json:"id"`
	Results []EpisodeAccountState `json:"results"`
}

func (s *TVSeasonsService) Details(ctx context.Context, tvID, season int, opts *DetailsOptions) (*Season, error) {
	return get[Season](ctx, s.client, v3("tv/%d/season/%d", tvID, season), opts)
}

// AccountStates needs a user or guest session
func (s *TVSeasonsService) AccountStates(ctx context.Context, tvID, season int) (*SeasonAccountStates, error) {
	return get[SeasonAccountStates](ctx, s.client, v3("tv/%d/season/%d/account_states", tvID, season), nil)
}

func (s *TVSeasonsService) Credits(ctx context.Context, tvID, season int, opts *LanguageOptions) (*Credits, error) {
	return get[Credits](ctx, s.client, v3("tv/%d/season/%d/credits", tvID, season), opts)
}

func (s *TVSeasonsService) ExternalIDs(ctx context.Context, tvID, season int) (*ExternalIDs, error) {
	return get[ExternalIDs](ctx, s.client, v3("tv/%d/season/%d/external_ids", tvID, season), nil)
}

func (s *TVSeasonsService) Images(ctx context.Context, tvID, season int, opts *ImagesOptions) (*Images, error) {
	return get[Images](ctx, s.client, v3("tv/%d/season/%d/images", tvID, season), opts)
}

func (s *TVSeasonsService) Videos(ctx context.Context, tvID, season int, opts *LanguageOptions) (*Videos, error) {
	return get[Videos](ctx, s.client, v3("tv/%d/season/%d/videos", tvID, season), opts)
}
