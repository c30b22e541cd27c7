package tmdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MediaType is the discriminator TMDB uses in mixed listings
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTV     MediaType = "tv"
	MediaTypePerson MediaType = "person"
)

// Media is implemented by *Movie, *TVShow and *Person
type Media interface {
	MediaType() MediaType
	MediaID() int
	DisplayName() string
}

// Movie represents a TMDB movie. The optional fields are filled when requested
// with append_to_response.
type Movie struct {
	Adult               bool               `json:"adult"`
	BackdropPath        string             `json:"backdrop_path"`
	BelongsToCollection *CollectionSummary `json:"belongs_to_collection,omitempty"`
	Budget              int64              `json:"budget,omitempty"`
	Genres              []Genre            `json:"genres,omitempty"`
	GenreIDs            []int              `json:"genre_ids,omitempty"`
	Homepage            string             `json:"homepage,omitempty"`
	ID                  int                `json:"id"`
	IMDbID              string             `json:"imdb_id,omitempty"`
	OriginalLanguage    string             `json:"original_language"`
	OriginalTitle       string             `json:"original_title"`
	Overview            string             `json:"overview"`
	Popularity          float64            `json:"popularity"`
	PosterPath          string             `json:"poster_path"`
	ProductionCompanies []Company          `json:"production_companies,omitempty"`
	ProductionCountries []Country          `json:"production_countries,omitempty"`
	ReleaseDate         string             `json:"release_date"`
	Revenue             int64              `json:"revenue,omitempty"`
	Runtime             int                `json:"runtime,omitempty"`
	SpokenLanguages     []Language         `json:"spoken_languages,omitempty"`
	Status              string             `json:"status,omitempty"`
	Tagline             string             `json:"tagline,omitempty"`
	Title               string             `json:"title"`
	Video               bool               `json:"video"`
	VoteAverage         float64            `json:"vote_average"`
	VoteCount           int                `json:"vote_count"`

	Credits      *Credits                            `json:"credits,omitempty"`
	Videos       *Videos                             `json:"videos,omitempty"`
	Images       *Images                             `json:"images,omitempty"`
	Keywords     *Keywords                           `json:"keywords,omitempty"`
	ExternalIDs  *ExternalIDs                        `json:"external_ids,omitempty"`
	Translations *Translations[MovieTranslationData] `json:"translations,omitempty"`
	ReleaseDates *ReleaseDates                       `json:"release_dates,omitempty"`
}

func (m *Movie) MediaType() MediaType { return MediaTypeMovie }
func (m *Movie) MediaID() int         { return m.ID }
func (m *Movie) DisplayName() string  { return m.Title }

// ReleaseYear returns the year of the release date, or 0 when unknown
func (m *Movie) ReleaseYear() int {
	return yearOf(m.ReleaseDate)
}

// CreatedBy is a creator of a TV show
type CreatedBy struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// SeasonSummary is the short season form embedded in TV show details
type SeasonSummary struct {
	AirDate      string  `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	SeasonNumber int     `json:"season_number"`
	VoteAverage  float64 `json:"vote_average"`
}

// TVShow represents a TMDB TV show
type TVShow struct {
	Adult               bool             `json:"adult"`
	BackdropPath        string           `json:"backdrop_path"`
	CreatedBy           []CreatedBy      `json:"created_by,omitempty"`
	EpisodeRunTime      []int            `json:"episode_run_time,omitempty"`
	FirstAirDate        string           `json:"first_air_date"`
	Genres              []Genre          `json:"genres,omitempty"`
	GenreIDs            []int            `json:"genre_ids,omitempty"`
	Homepage            string           `json:"homepage,omitempty"`
	ID                  int              `json:"id"`
	InProduction        bool             `json:"in_production,omitempty"`
	Languages           []string         `json:"languages,omitempty"`
	LastAirDate         string           `json:"last_air_date,omitempty"`
	LastEpisodeToAir    *Episode         `json:"last_episode_to_air,omitempty"`
	Name                string           `json:"name"`
	NextEpisodeToAir    *Episode         `json:"next_episode_to_air,omitempty"`
	Networks            []Network        `json:"networks,omitempty"`
	NumberOfEpisodes    int              `json:"number_of_episodes,omitempty"`
	NumberOfSeasons     int              `json:"number_of_seasons,omitempty"`
	OriginCountry       []string         `json:"origin_country,omitempty"`
	OriginalLanguage    string           `json:"original_language"`
	OriginalName        string           `json:"original_name"`
	Overview            string           `json:"overview"`
	Popularity          float64          `json:"popularity"`
	PosterPath          string           `json:"poster_path"`
	ProductionCompanies []Company        `json:"production_companies,omitempty"`
	ProductionCountries []Country        `json:"production_countries,omitempty"`
	Seasons             []SeasonSummary  `json:"seasons,omitempty"`
	SpokenLanguages     []Language       `json:"spoken_languages,omitempty"`
	Status              string           `json:"status,omitempty"`
	Tagline             string           `json:"tagline,omitempty"`
	Type                string           `json:"type,omitempty"`
	VoteAverage         float64          `json:"vote_average"`
	VoteCount           int              `json:"vote_count"`

	Credits      *Credits                         `json:"credits,omitempty"`
	Videos       *Videos                          `json:"videos,omitempty"`
	Images       *Images                          `json:"images,omitempty"`
	Keywords     *Keywords                        `json:"keywords,omitempty"`
	ExternalIDs  *ExternalIDs                     `json:"external_ids,omitempty"`
	Translations *Translations[TVTranslationData] `json:"translations,omitempty"`
}

func (t *TVShow) MediaType() MediaType { return MediaTypeTV }
func (t *TVShow) MediaID() int         { return t.ID }
func (t *TVShow) DisplayName() string  { return t.Name }

// FirstAirYear returns the year of the first air date, or 0 when unknown
func (t *TVShow) FirstAirYear() int {
	return yearOf(t.FirstAirDate)
}

// Person represents a TMDB person
type Person struct {
	Adult              bool        `json:"adult"`
	AlsoKnownAs        []string    `json:"also_known_as,omitempty"`
	Biography          string      `json:"biography,omitempty"`
	Birthday           string      `json:"birthday,omitempty"`
	Deathday           string      `json:"deathday,omitempty"`
	Gender             int         `json:"gender"`
	Homepage           string      `json:"homepage,omitempty"`
	ID                 int         `json:"id"`
	IMDbID             string      `json:"imdb_id,omitempty"`
	KnownFor           []MediaItem `json:"known_for,omitempty"`
	KnownForDepartment string      `json:"known_for_department"`
	Name               string      `json:"name"`
	PlaceOfBirth       string      `json:"place_of_birth,omitempty"`
	Popularity         float64     `json:"popularity"`
	ProfilePath        string      `json:"profile_path"`

	MovieCredits *PersonMovieCredits                  `json:"movie_credits,omitempty"`
	TVCredits    *PersonTVCredits                     `json:"tv_credits,omitempty"`
	Images       *Images                              `json:"images,omitempty"`
	ExternalIDs  *ExternalIDs                         `json:"external_ids,omitempty"`
	Translations *Translations[PersonTranslationData] `json:"translations,omitempty"`
}

func (p *Person) MediaType() MediaType { return MediaTypePerson }
func (p *Person) MediaID() int         { return p.ID }
func (p *Person) DisplayName() string  { return p.Name }

// Season is a TV season with its episodes
type Season struct {
	InternalID   string    `json:"_id,omitempty"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes,omitempty"`
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	VoteAverage  float64   `json:"vote_average"`

	Credits     *Credits     `json:"credits,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
}

// Episode is a TV episode
type Episode struct {
	AirDate        string  `json:"air_date"`
	Crew           []Crew  `json:"crew,omitempty"`
	EpisodeNumber  int     `json:"episode_number"`
	EpisodeType    string  `json:"episode_type,omitempty"`
	GuestStars     []Cast  `json:"guest_stars,omitempty"`
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	ProductionCode string  `json:"production_code"`
	Runtime        int     `json:"runtime"`
	SeasonNumber   int     `json:"season_number"`
	ShowID         int     `json:"show_id,omitempty"`
	StillPath      string  `json:"still_path"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`

	Credits     *EpisodeCredits `json:"credits,omitempty"`
	Videos      *Videos         `json:"videos,omitempty"`
	Images      *Images         `json:"images,omitempty"`
	ExternalIDs *ExternalIDs    `json:"external_ids,omitempty"`
}

// MediaItem wraps a Media so mixed listings decode into the right type
type MediaItem struct {
	Media
}

// Movie returns the wrapped movie, if the item is one
func (i MediaItem) Movie() (*Movie, bool) {
	m, ok := i.Media.(*Movie)
	return m, ok
}

// TVShow returns the wrapped TV show, if the item is one
func (i MediaItem) TVShow() (*TVShow, bool) {
	t, ok := i.Media.(*TVShow)
	return t, ok
}

// Person returns the wrapped person, if the item is one
func (i MediaItem) Person() (*Person, bool) {
	p, ok := i.Media.(*Person)
	return p, ok
}

// MarshalJSON writes the wrapped value's fields plus its media_type
func (i MediaItem) MarshalJSON() ([]byte, error) {
	if i.Media == nil {
		return []byte("null"), nil
	}

	data, err := json.Marshal(i.Media)
	if err != nil {
		return nil, err
	}
	if len(data) < 2 || data[0] != '{' {
		return nil, fmt.Errorf("media %T did not encode to an object", i.Media)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"media_type":`)
	buf.WriteString(strconv.Quote(string(i.Media.MediaType())))
	if rest := bytes.TrimSpace(data[1:]); len(rest) > 0 && rest[0] != '}' {
		buf.WriteByte(',')
	}
	buf.Write(data[1:])
	return buf.Bytes(), nil
}

// UnmarshalJSON dispatches on media_type
func (i *MediaItem) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		i.Media = nil
		return nil
	}

	var probe struct {
		MediaType MediaType `json:"media_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	var m Media
	switch probe.MediaType {
	case MediaTypeMovie:
		m = &Movie{}
	case MediaTypeTV:
		m = &TVShow{}
	case MediaTypePerson:
		m = &Person{}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMediaType, probe.MediaType)
	}

	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	i.Media = m
	return nil
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
