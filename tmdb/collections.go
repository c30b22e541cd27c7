package tmdb

import "context"

// CollectionsService reads movie collections
type CollectionsService service

func (s *CollectionsService) Details(ctx context.Context, id int, opts *LanguageOptions) (*Collection, error) {
	return get[Collection](ctx, s.client, v3("collection/%d", id), opts)
}

func (s *CollectionsService) Images(ctx context.Context, id int, opts *ImagesOptions) (*Images, error) {
	return get[Images](ctx, s.client, v3("collection/%d/images", id), opts)
}

func (s *CollectionsService) Translations(ctx context.Context, id int) (*Translations[CollectionTranslationData], error) {
	return get[Translations[CollectionTranslationData]](ctx, s.client, v3("collection/%d/translations", id), nil)
}
