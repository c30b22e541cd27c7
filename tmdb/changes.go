package tmdb

import "context"

// ChangesService lists the ids of entities changed in a time window (24 hours
// by default)
type ChangesService service

func (s *ChangesService) Movies(ctx context.Context, opts *ChangesOptions) (*ResultPage[ChangedItem], error) {
	return get[ResultPage[ChangedItem]](ctx, s.client, v3("movie/changes"), opts)
}

func (s *ChangesService) TV(ctx context.Context, opts *ChangesOptions) (*ResultPage[ChangedItem], error) {
	return get[ResultPage[ChangedItem]](ctx, s.client, v3("tv/changes"), opts)
}

func (s *ChangesService) People(ctx context.Context, opts *ChangesOptions) (*ResultPage[ChangedItem], error) {
	return get[ResultPage[ChangedItem]](ctx, s.client, v3("person/changes"), opts)
}
