package tmdb

import (
	"context"
	"time"
)

// DiscoverService finds movies and TV shows by filters rather than by text
type DiscoverService service

// DiscoverMovieOptions are the movie discovery filters. Gte/Lte fields are
// inclusive bounds. Certification filters need CertificationCountry.
type DiscoverMovieOptions struct {
	Page         int       `url:"page,omitempty"`
	SortBy       MovieSort `url:"sort_by,omitempty"`
	IncludeAdult *bool     `url:"include_adult,omitempty"`
	IncludeVideo *bool     `url:"include_video,omitempty"`
	Language     string    `url:"language,omitempty"`
	Region       string    `url:"region,omitempty"`

	Year                  int       `url:"year,omitempty"`
	PrimaryReleaseYear    int       `url:"primary_release_year,omitempty"`
	PrimaryReleaseDateGte time.Time `url:"primary_release_date.gte,omitempty" layout:"2006-01-02"`
	PrimaryReleaseDateLte time.Time `url:"primary_release_date.lte,omitempty" layout:"2006-01-02"`
	ReleaseDateGte        time.Time `url:"release_date.gte,omitempty" layout:"2006-01-02"`
	ReleaseDateLte        time.Time `url:"release_date.lte,omitempty" layout:"2006-01-02"`
	WithReleaseType       IDs       `url:"with_release_type"`

	VoteAverageGte float64 `url:"vote_average.gte,omitempty"`
	VoteAverageLte float64 `url:"vote_average.lte,omitempty"`
	VoteCountGte   int     `url:"vote_count.gte,omitempty"`
	VoteCountLte   int     `url:"vote_count.lte,omitempty"`

	WithGenres           IDs    `url:"with_genres"`
	WithoutGenres        IDs    `url:"without_genres"`
	WithKeywords         IDs    `url:"with_keywords"`
	WithoutKeywords      IDs    `url:"without_keywords"`
	WithPeople           IDs    `url:"with_people"`
	WithCast             IDs    `url:"with_cast"`
	WithCrew             IDs    `url:"with_crew"`
	WithCompanies        IDs    `url:"with_companies"`
	WithOriginalLanguage string `url:"with_original_language,omitempty"`
	WithRuntimeGte       int    `url:"with_runtime.gte,omitempty"`
	WithRuntimeLte       int    `url:"with_runtime.lte,omitempty"`

	Certification        string `url:"certification,omitempty"`
	CertificationLte     string `url:"certification.lte,omitempty"`
	CertificationCountry string `url:"certification_country,omitempty"`
}

// DiscoverTVOptions are the TV discovery filters
type DiscoverTVOptions struct {
	Page         int    `url:"page,omitempty"`
	SortBy       TVSort `url:"sort_by,omitempty"`
	IncludeAdult *bool  `url:"include_adult,omitempty"`
	Language     string `url:"language,omitempty"`
	Timezone     string `url:"timezone,omitempty"`

	AirDateGte               time.Time `url:"air_date.gte,omitempty" layout:"2006-01-02"`
	AirDateLte               time.Time `url:"air_date.lte,omitempty" layout:"2006-01-02"`
	FirstAirDateGte          time.Time `url:"first_air_date.gte,omitempty" layout:"2006-01-02"`
	FirstAirDateLte          time.Time `url:"first_air_date.lte,omitempty" layout:"2006-01-02"`
	FirstAirDateYear         int       `url:"first_air_date_year,omitempty"`
	IncludeNullFirstAirDates *bool     `url:"include_null_first_air_dates,omitempty"`
	ScreenedTheatrically     *bool     `url:"screened_theatrically,omitempty"`

	VoteAverageGte float64 `url:"vote_average.gte,omitempty"`
	VoteAverageLte float64 `url:"vote_average.lte,omitempty"`
	VoteCountGte   int     `url:"vote_count.gte,omitempty"`
	VoteCountLte   int     `url:"vote_count.lte,omitempty"`

	WithGenres           IDs    `url:"with_genres"`
	WithoutGenres        IDs    `url:"without_genres"`
	WithKeywords         IDs    `url:"with_keywords"`
	WithoutKeywords      IDs    `url:"without_keywords"`
	WithNetworks         IDs    `url:"with_networks"`
	WithCompanies        IDs    `url:"with_companies"`
	WithOriginalLanguage string `url:"with_original_language,omitempty"`
	WithRuntimeGte       int    `url:"with_runtime.gte,omitempty"`
	WithRuntimeLte       int    `url:"with_runtime.lte,omitempty"`
}

// Movies discovers movies. Unset region and include_adult fall back to the
// client defaults.
func (s *DiscoverService) Movies(ctx context.Context, opts *DiscoverMovieOptions) (*ResultPage[Movie], error) {
	return get[ResultPage[Movie]](ctx, s.client, v3("discover/movie"), opts, paramRegion, paramIncludeAdult)
}

// TV discovers TV shows
func (s *DiscoverService) TV(ctx context.Context, opts *DiscoverTVOptions) (*ResultPage[TVShow], error) {
	return get[ResultPage[TVShow]](ctx, s.client, v3("discover/tv"), opts, paramIncludeAdult)
}
