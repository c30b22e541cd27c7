package tmdb

import "context"

// GenresService lists the official movie and TV genres
type GenresService service

type genreList struct {
	Genres []Genre `json:"genres"`
}

// MovieList returns the movie genres, named in the requested language
func (s *GenresService) MovieList(ctx context.Context, opts *LanguageOptions) ([]Genre, error) {
	list, err := get[genreList](ctx, s.client, v3("genre/movie/list"), opts)
	if err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// TVList returns the TV genres, named in the requested language
func (s *GenresService) TVList(ctx context.Context, opts *LanguageOptions) ([]Genre, error) {
	list, err := get[genreList](ctx, s.client, v3("genre/tv/list"), opts)
	if err != nil {
		return nil, err
	}
	return list.Genres, nil
}
