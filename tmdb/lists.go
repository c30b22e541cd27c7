package tmdb

import "context"

// ListsService reads v4 lists
type ListsService service

// ListOptions pages and sorts the items of a list
type ListOptions struct {
	Page     int    `url:"page,omitempty"`
	Language string `url:"language,omitempty"`
	SortBy   string `url:"sort_by,omitempty"`
}

// Get returns a list with one page of its items. Private lists need the
// owner's access token.
func (s *ListsService) Get(ctx context.Context, listID int, opts *ListOptions) (*List, error) {
	return get[List](ctx, s.client, v4("list/%d", listID), opts)
}
