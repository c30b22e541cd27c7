package tmdb

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverMovieOptions_Encode(t *testing.T) {
	adult := true
	opts := DiscoverMovieOptions{
		Page:                 2,
		SortBy:               MovieVoteAverageDesc,
		IncludeAdult:         &adult,
		VoteAverageGte:       7.5,
		VoteCountGte:         100,
		ReleaseDateGte:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		ReleaseDateLte:       time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
		WithGenres:           And(28, 12),
		WithoutGenres:        Or(27, 53),
		WithReleaseType:      Or(2, 3),
		WithOriginalLanguage: "en",
		WithRuntimeGte:       90,
		CertificationLte:     "PG-13",
		CertificationCountry: "US",
	}

	values, err := query.Values(opts)
	require.NoError(t, err)

	want := url.Values{
		"page":                   {"2"},
		"sort_by":                {"vote_average.desc"},
		"include_adult":          {"true"},
		"vote_average.gte":       {"7.5"},
		"vote_count.gte":         {"100"},
		"release_date.gte":       {"2020-01-01"},
		"release_date.lte":       {"2020-12-31"},
		"with_genres":            {"28,12"},
		"without_genres":         {"27|53"},
		"with_release_type":      {"2|3"},
		"with_original_language": {"en"},
		"with_runtime.gte":       {"90"},
		"certification.lte":      {"PG-13"},
		"certification_country":  {"US"},
	}
	assert.Equal(t, want, values)
}

func TestDiscoverTVOptions_Encode(t *testing.T) {
	null := false
	values, err := query.Values(DiscoverTVOptions{
		SortBy:                   TVFirstAirDateDesc,
		FirstAirDateYear:         2011,
		WithNetworks:             And(49),
		WithKeywords:             Or("818", "9714"),
		IncludeNullFirstAirDates: &null,
		Timezone:                 "America/New_York",
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"sort_by":                      {"first_air_date.desc"},
		"first_air_date_year":          {"2011"},
		"with_networks":                {"49"},
		"with_keywords":                {"818|9714"},
		"include_null_first_air_dates": {"false"},
		"timezone":                     {"America/New_York"},
	}, values)
}

func TestIDs(t *testing.T) {
	assert.True(t, IDs{}.IsZero())
	assert.Equal(t, "1,2,3", And(1, 2, 3).String())
	assert.Equal(t, "a|b", Or("a", "b").String())

	values, err := query.Values(DiscoverMovieOptions{})
	require.NoError(t, err)
	assert.Empty(t, values, "zero options encode to nothing")
}

func TestDiscoverService_Movies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/discover/movie", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "GB", q.Get("region"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "en-GB", q.Get("language"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))

		writeJSON(t, w, ResultPage[Movie]{
			Page:         1,
			Results:      []Movie{{ID: 550, Title: "Fight Club"}},
			TotalPages:   3,
			TotalResults: 60,
		})
	}, WithLanguage("en-GB"), WithRegion("GB"), WithIncludeAdult(false))

	page, err := client.Discover.Movies(context.Background(), &DiscoverMovieOptions{SortBy: MoviePopularityDesc})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Fight Club", page.Results[0].Title)
	assert.True(t, page.HasMorePages())
}

func TestDiscoverService_TV(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/discover/tv", r.URL.Path)
		assert.Equal(t, "16", r.URL.Query().Get("with_genres"))
		assert.False(t, r.URL.Query().Has("region"))
		writeJSON(t, w, ResultPage[TVShow]{Page: 1, Results: []TVShow{{ID: 1, Name: "Show"}}})
	}, WithRegion("GB"))

	page, err := client.Discover.TV(context.Background(), &DiscoverTVOptions{WithGenres: And(16)})
	require.NoError(t, err)
	assert.Equal(t, "Show", page.Results[0].Name)
}
