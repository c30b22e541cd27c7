package tmdb

import "context"

// KeywordsService reads keywords
type KeywordsService service

func (s *KeywordsService) Details(ctx context.Context, id int) (*Keyword, error) {
	return get[Keyword](ctx, s.client, v3("keyword/%d", id), nil)
}

// KeywordMoviesOptions pages the movies tagged with a keyword
type KeywordMoviesOptions struct {
	Page         int    `url:"page,omitempty"`
	Language     string `url:"language,omitempty"`
	IncludeAdult *bool  `url:"include_adult,omitempty"`
}

// Movies returns the movies tagged with a keyword
func (s *KeywordsService) Movies(ctx context.Context, id int, opts *KeywordMoviesOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("keyword/%d/movies", id), opts, paramIncludeAdult)
}
