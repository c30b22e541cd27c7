package tmdb

import (
	"context"
	"net/url"
)

// ReviewsService reads single reviews
type ReviewsService service

func (s *ReviewsService) Details(ctx context.Context, id string) (*Review, error) {
	return get[Review](ctx, s.client, v3("review/%s", url.PathEscape(id)), nil)
}
