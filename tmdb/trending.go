package tmdb

import "context"

// TrendingService lists what is trending on TMDB
type TrendingService service

// Get returns the trending items of a kind over a window. Results carry their
// media_type so they decode into movies, TV shows or people.
func (s *TrendingService) Get(ctx context.Context, kind TrendingType, window TimeWindow, opts *PageOptions) (*ResultPage[MediaItem], error) {
	if kind == "" {
		kind = TrendingAll
	}
	if window == "" {
		window = TimeWindowDay
	}
	return get[ResultPage[MediaItem]](ctx, s.client, v3("trending/%s/%s", kind, window), opts)
}
