package tmdb

import "context"

// PeopleService reads people
type PeopleService service

func (s *PeopleService) Details(ctx context.Context, id int, opts *DetailsOptions) (*Person, error) {
	return get[Person](ctx, s.client, v3("person/%d", id), opts)
}

func (s *PeopleService) MovieCredits(ctx context.Context, id int, opts *LanguageOptions) (*PersonMovieCredits, error) {
	return get[PersonMovieCredits](ctx, s.client, v3("person/%d/movie_credits", id), opts)
}

func (s *PeopleService) TVCredits(ctx context.Context, id int, opts *LanguageOptions) (*PersonTVCredits, error) {
	return get[PersonTVCredits](ctx, s.client, v3("person/%d/tv_credits", id), opts)
}

func (s *PeopleService) ExternalIDs(ctx context.Context, id int) (*ExternalIDs, error) {
	return get[ExternalIDs](ctx, s.client, v3("person/%d/external_ids", id), nil)
}

// Images returns the person's profile pictures
func (s *PeopleService) Images(ctx context.Context, id int) (*Images, error) {
	return get[Images](ctx, s.client, v3("person/%d/images", id), nil)
}

func (s *PeopleService) Translations(ctx context.Context, id int) (*Translations[PersonTranslationData], error) {
	return get[Translations[PersonTranslationData]](ctx, s.client, v3("person/%d/translations", id), nil)
}

func (s *PeopleService) Popular(ctx context.Context, opts *PageOptions) (*ResultPage[Person], error) {
	return get[ResultPage[Person]](ctx, s.client, v3("person/popular"), opts)
}

// Latest returns the most recently created person
func (s *PeopleService) Latest(ctx context.Context) (*Person, error) {
	return get[Person](ctx, s.client, v3("person/latest"), nil)
}
