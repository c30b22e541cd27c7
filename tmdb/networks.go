package tmdb

import "context"

// NetworksService reads TV networks
type NetworksService service

// AlternativeName is another name a network is known by
type AlternativeName struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// AlternativeNames lists a network's alternative names
type AlternativeNames struct {
	ID      int               `json:"id"`
	Results []AlternativeName `json:"results"`
}

func (s *NetworksService) Details(ctx context.Context, id int) (*Network, error) {
	return get[Network](ctx, s.client, v3("network/%d", id), nil)
}

func (s *NetworksService) AlternativeNames(ctx context.Context, id int) (*AlternativeNames, error) {
	return get[AlternativeNames](ctx, s.client, v3("network/%d/alternative_names", id), nil)
}

// Images returns the network's logos
func (s *NetworksService) Images(ctx context.Context, id int) (*Images, error) {
	return get[Images](ctx, s.client, v3("network/%d/images", id), nil)
}
