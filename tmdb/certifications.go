package tmdb

import "context"

// CertificationsService lists the official content ratings per country
type CertificationsService service

func (s *CertificationsService) Movie(ctx context.Context) (*Certifications, error) {
	return get[Certifications](ctx, s.client, v3("certification/movie/list"), nil)
}

func (s *CertificationsService) TV(ctx context.Context) (*Certifications, error) {
	return get[Certifications](ctx, s.client, v3("certification/tv/list"), nil)
}
