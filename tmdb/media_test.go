package tmdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaItem_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		media Media
	}{
		{
			name: "movie",
			media: &Movie{
				ID:          550,
				Title:       "Fight Club",
				ReleaseDate: "1999-10-15",
				GenreIDs:    []int{18},
				VoteAverage: 8.4,
			},
		},
		{
			name: "tv show",
			media: &TVShow{
				ID:            1399,
				Name:          "Game of Thrones",
				FirstAirDate:  "2011-04-17",
				OriginCountry: []string{"US"},
			},
		},
		{
			name: "person",
			media: &Person{
				ID:   287,
				Name: "Brad Pitt",
				KnownFor: []MediaItem{
					{Media: &Movie{ID: 550, Title: "Fight Club"}},
					{Media: &TVShow{ID: 1, Name: "Friends"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(MediaItem{Media: tt.media})
			require.NoError(t, err)

			var probe map[string]any
			require.NoError(t, json.Unmarshal(data, &probe))
			assert.Equal(t, string(tt.media.MediaType()), probe["media_type"])

			var got MediaItem
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.media, got.Media)
		})
	}
}

func TestMediaItem_Unmarshal(t *testing.T) {
	t.Run("dispatches on media_type", func(t *testing.T) {
		data := `{"page":1,"results":[
			{"media_type":"movie","id":550,"title":"Fight Club"},
			{"media_type":"tv","id":1399,"name":"Game of Thrones"},
			{"media_type":"person","id":287,"name":"Brad Pitt","known_for":[{"media_type":"movie","id":550}]}
		],"total_pages":1,"total_results":3}`

		var page ResultPage[MediaItem]
		require.NoError(t, json.Unmarshal([]byte(data), &page))
		require.Len(t, page.Results, 3)

		movie, ok := page.Results[0].Movie()
		require.True(t, ok)
		assert.Equal(t, "Fight Club", movie.DisplayName())

		show, ok := page.Results[1].TVShow()
		require.True(t, ok)
		assert.Equal(t, 1399, show.MediaID())

		person, ok := page.Results[2].Person()
		require.True(t, ok)
		require.Len(t, person.KnownFor, 1)
		assert.Equal(t, MediaTypeMovie, person.KnownFor[0].MediaType())

		_, ok = page.Results[0].TVShow()
		assert.False(t, ok)
	})

	t.Run("unknown media type", func(t *testing.T) {
		var item MediaItem
		err := json.Unmarshal([]byte(`{"media_type":"podcast","id":1}`), &item)
		assert.ErrorIs(t, err, ErrUnknownMediaType)
	})

	t.Run("missing media type", func(t *testing.T) {
		var item MediaItem
		err := json.Unmarshal([]byte(`{"id":1,"title":"No type"}`), &item)
		assert.ErrorIs(t, err, ErrUnknownMediaType)
	})

	t.Run("null", func(t *testing.T) {
		item := MediaItem{Media: &Movie{}}
		require.NoError(t, json.Unmarshal([]byte(`null`), &item))
		assert.Nil(t, item.Media)
	})
}

func TestMediaItem_MarshalNil(t *testing.T) {
	data, err := json.Marshal(MediaItem{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal([]MediaItem{{Media: &Movie{ID: 1}}, {}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"media_type":"movie"`)
	assert.Contains(t, string(data), `,null]`)
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 1999, (&Movie{ReleaseDate: "1999-10-15"}).ReleaseYear())
	assert.Equal(t, 0, (&Movie{}).ReleaseYear())
	assert.Equal(t, 0, (&Movie{ReleaseDate: "soon"}).ReleaseYear())
	assert.Equal(t, 2011, (&TVShow{FirstAirDate: "2011-04-17"}).FirstAirYear())
}

func TestRated(t *testing.T) {
	var states AccountStates
	require.NoError(t, json.Unmarshal([]byte(`{"id":550,"favorite":true,"rated":{"value":8.5},"watchlist":false}`), &states))
	assert.True(t, states.Rated.IsSet)
	assert.Equal(t, 8.5, states.Rated.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"id":550,"rated":false}`), &states))
	assert.False(t, states.Rated.IsSet)

	data, err := json.Marshal(Rated{})
	require.NoError(t, err)
	assert.Equal(t, "false", string(data))
}
