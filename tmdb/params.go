package tmdb

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// PageOptions selects a page of a listing
type PageOptions struct {
	Page     int    `url:"page,omitempty"`
	Language string `url:"language,omitempty"`
}

// RegionPageOptions selects a page of a region aware listing
type RegionPageOptions struct {
	Page     int    `url:"page,omitempty"`
	Language string `url:"language,omitempty"`
	Region   string `url:"region,omitempty"`
}

// LanguageOptions overrides the client's default language
type LanguageOptions struct {
	Language string `url:"language,omitempty"`
}

// DetailsOptions controls detail lookups. AppendToResponse names extra
// sub-resources (e.g. "credits", "videos") returned in the same response.
type DetailsOptions struct {
	Language         string   `url:"language,omitempty"`
	AppendToResponse []string `url:"append_to_response,comma,omitempty"`
}

// ImagesOptions filters image listings by language; "null" selects images
// without text.
type ImagesOptions struct {
	Language             string   `url:"language,omitempty"`
	IncludeImageLanguage []string `url:"include_image_language,comma,omitempty"`
}

// AccountListOptions pages and sorts account listings
type AccountListOptions struct {
	Page     int      `url:"page,omitempty"`
	Language string   `url:"language,omitempty"`
	SortBy   ListSort `url:"sort_by,omitempty"`
}

// AlternativeTitlesOptions narrows alternative titles to a country
type AlternativeTitlesOptions struct {
	Country string `url:"country,omitempty"`
}

// ChangesOptions bounds a change listing; dates are YYYY-MM-DD and at most 14
// days apart.
type ChangesOptions struct {
	StartDate string `url:"start_date,omitempty"`
	EndDate   string `url:"end_date,omitempty"`
	Page      int    `url:"page,omitempty"`
}

// IDs is an id filter. Built with And it is comma separated, with Or it is
// pipe separated.
type IDs struct {
	values []string
	sep    string
}

// And matches items having all of ids
func And[T int | string](ids ...T) IDs {
	return IDs{values: stringify(ids), sep: ","}
}

// Or matches items having any of ids
func Or[T int | string](ids ...T) IDs {
	return IDs{values: stringify(ids), sep: "|"}
}

func stringify[T int | string](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		switch v := any(id).(type) {
		case int:
			out = append(out, strconv.Itoa(v))
		case string:
			out = append(out, v)
		}
	}
	return out
}

// IsZero reports whether the filter is empty
func (l IDs) IsZero() bool {
	return len(l.values) == 0
}

func (l IDs) String() string {
	return strings.Join(l.values, l.sep)
}

// EncodeValues implements query.Encoder
func (l IDs) EncodeValues(key string, v *url.Values) error {
	if l.IsZero() {
		return nil
	}
	v.Set(key, l.String())
	return nil
}

var _ query.Encoder = IDs{}

// withQuery encodes opts and adds the search text
func withQuery(text string, opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	v.Set("query", text)
	return v, nil
}

type ratingBody struct {
	Value float64 `json:"value"`
}
