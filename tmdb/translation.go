package tmdb

// Translations lists the translations of an entity; T is the translated payload
type Translations[T any] struct {
	ID           int              `json:"id,omitempty"`
	Translations []Translation[T] `json:"translations"`
}

// Find returns the translation for an ISO 639-1 language and, when non-empty,
// ISO 3166-1 country.
func (t *Translations[T]) Find(language, country string) (Translation[T], bool) {
	for _, tr := range t.Translations {
		if tr.ISO6391 != language {
			continue
		}
		if country == "" || tr.ISO31661 == country {
			return tr, true
		}
	}
	return Translation[T]{}, false
}

// Translation is one language version of an entity
type Translation[T any] struct {
	ISO31661    string `json:"iso_3166_1"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Data        T      `json:"data"`
}

// Locale returns the "xx-YY" form of the translation's language and country
func (t Translation[T]) Locale() string {
	if t.ISO31661 == "" {
		return t.ISO6391
	}
	return t.ISO6391 + "-" + t.ISO31661
}

// MovieTranslationData is the translated part of a movie
type MovieTranslationData struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Tagline  string `json:"tagline"`
	Homepage string `json:"homepage"`
	Runtime  int    `json:"runtime"`
}

// TVTranslationData is the translated part of a TV show, season or episode
type TVTranslationData struct {
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Tagline  string `json:"tagline,omitempty"`
	Homepage string `json:"homepage,omitempty"`
}

// CollectionTranslationData is the translated part of a collection
type CollectionTranslationData struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Homepage string `json:"homepage"`
}

// PersonTranslationData is the translated part of a person
type PersonTranslationData struct {
	Biography string `json:"biography"`
}
