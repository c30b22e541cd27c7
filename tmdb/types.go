package tmdb

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResultPage is one page of a paginated TMDB listing
type ResultPage[T any] struct {
	Page         int        `json:"page"`
	Results      []T        `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Dates        *DateRange `json:"dates,omitempty"`
}

// HasMorePages checks if there are more pages to fetch
func (p *ResultPage[T]) HasMorePages() bool {
	return p.Page < p.TotalPages
}

// NextPage returns the next page number, or an error if there are no more pages
func (p *ResultPage[T]) NextPage() (int, error) {
	if !p.HasMorePages() {
		return 0, fmt.Errorf("no more pages available")
	}
	return p.Page + 1, nil
}

// DateRange is the release window attached to now playing and upcoming listings
type DateRange struct {
	Maximum string `json:"maximum"`
	Minimum string `json:"minimum"`
}

// Genre represents a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company represents a production company
type Company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Headquarters  string `json:"headquarters,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Network represents a TV network
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Headquarters  string `json:"headquarters,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Country is an ISO 3166-1 country
type Country struct {
	ISO31661    string `json:"iso_3166_1"`
	Name        string `json:"name,omitempty"`
	EnglishName string `json:"english_name,omitempty"`
	NativeName  string `json:"native_name,omitempty"`
}

// Language is an ISO 639-1 language
type Language struct {
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// Keyword represents a keyword tag
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Keywords is the keyword listing of a movie ("keywords") or TV show ("results")
type Keywords struct {
	ID       int       `json:"id,omitempty"`
	Keywords []Keyword `json:"keywords,omitempty"`
	Results  []Keyword `json:"results,omitempty"`
}

// All returns the keywords regardless of which key the endpoint used
func (k *Keywords) All() []Keyword {
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

// CollectionSummary is the short collection form embedded in movies and search results
type CollectionSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// Collection is a movie collection with its parts
type Collection struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Parts        []Movie `json:"parts"`
}

// Image describes a poster, backdrop, logo, profile or still
type Image struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	ISO6391     string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// Images groups the image kinds an endpoint can return
type Images struct {
	ID        int     `json:"id,omitempty"`
	Backdrops []Image `json:"backdrops,omitempty"`
	Posters   []Image `json:"posters,omitempty"`
	Logos     []Image `json:"logos,omitempty"`
	Profiles  []Image `json:"profiles,omitempty"`
	Stills    []Image `json:"stills,omitempty"`
}

// Video is a trailer, teaser, clip or featurette hosted on a video site
type Video struct {
	ID          string `json:"id"`
	ISO6391     string `json:"iso_639_1"`
	ISO31661    string `json:"iso_3166_1"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

// Videos is a video listing
type Videos struct {
	ID      int     `json:"id,omitempty"`
	Results []Video `json:"results"`
}

// ExternalIDs maps a TMDB entity to other databases
type ExternalIDs struct {
	ID          int    `json:"id,omitempty"`
	IMDbID      string `json:"imdb_id,omitempty"`
	TVDBID      int    `json:"tvdb_id,omitempty"`
	TVRageID    int    `json:"tvrage_id,omitempty"`
	FreebaseID  string `json:"freebase_id,omitempty"`
	FreebaseMID string `json:"freebase_mid,omitempty"`
	WikidataID  string `json:"wikidata_id,omitempty"`
	FacebookID  string `json:"facebook_id,omitempty"`
	InstagramID string `json:"instagram_id,omitempty"`
	TwitterID   string `json:"twitter_id,omitempty"`
	TikTokID    string `json:"tiktok_id,omitempty"`
}

// AlternativeTitle is a title used in a given country
type AlternativeTitle struct {
	ISO31661 string `json:"iso_3166_1"`
	Title    string `json:"title"`
	Type     string `json:"type"`
}

// AlternativeTitles lists a movie's ("titles") or TV show's ("results") alternative titles
type AlternativeTitles struct {
	ID      int                `json:"id"`
	Titles  []AlternativeTitle `json:"titles,omitempty"`
	Results []AlternativeTitle `json:"results,omitempty"`
}

// AccountStates is the signed-in user's rating, favorite and watchlist state for an item
type AccountStates struct {
	ID        int   `json:"id"`
	Favorite  bool  `json:"favorite"`
	Rated     Rated `json:"rated"`
	Watchlist bool  `json:"watchlist"`
}

// Rated is either false (not rated) or an object carrying the rating value
type Rated struct {
	Value float64 `json:"value"`
	IsSet bool    `json:"-"`
}

// UnmarshalJSON decodes the false-or-object form TMDB uses for ratings
func (r *Rated) UnmarshalJSON(data []byte) error {
	if string(data) == "false" || string(data) == "null" {
		*r = Rated{}
		return nil
	}
	var v struct {
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Rated{Value: v.Value, IsSet: true}
	return nil
}

// MarshalJSON writes false when no rating is set
func (r Rated) MarshalJSON() ([]byte, error) {
	if !r.IsSet {
		return []byte("false"), nil
	}
	return json.Marshal(struct {
		Value float64 `json:"value"`
	}{r.Value})
}

// StatusResponse is the generic acknowledgement of write endpoints
type StatusResponse struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// Certification is a content rating of a country
type Certification struct {
	Certification string `json:"certification"`
	Meaning       string `json:"meaning"`
	Order         int    `json:"order"`
}

// Certifications maps ISO 3166-1 country codes to their certifications
type Certifications struct {
	Certifications map[string][]Certification `json:"certifications"`
}

// ReleaseDate is one release of a movie in a country
type ReleaseDate struct {
	Certification string   `json:"certification"`
	Descriptors   []string `json:"descriptors,omitempty"`
	ISO6391       string   `json:"iso_639_1"`
	Note          string   `json:"note"`
	ReleaseDate   string   `json:"release_date"`
	Type          int      `json:"type"`
}

// ReleaseDates groups releases per country
type ReleaseDates struct {
	ID      int `json:"id,omitempty"`
	Results []struct {
		ISO31661     string        `json:"iso_3166_1"`
		ReleaseDates []ReleaseDate `json:"release_dates"`
	} `json:"results"`
}

// ContentRating is a TV show certification in a country
type ContentRating struct {
	ISO31661 string `json:"iso_3166_1"`
	Rating   string `json:"rating"`
}

// ContentRatings lists a TV show's certifications
type ContentRatings struct {
	ID      int             `json:"id"`
	Results []ContentRating `json:"results"`
}

// AuthorDetails describes the author of a review
type AuthorDetails struct {
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	AvatarPath string   `json:"avatar_path"`
	Rating     *float64 `json:"rating"`
}

// Review is a user review of a movie or TV show
type Review struct {
	ID            string        `json:"id"`
	Author        string        `json:"author"`
	AuthorDetails AuthorDetails `json:"author_details"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	URL           string        `json:"url"`
	ISO6391       string        `json:"iso_639_1,omitempty"`
	MediaID       int           `json:"media_id,omitempty"`
	MediaTitle    string        `json:"media_title,omitempty"`
	MediaType     string        `json:"media_type,omitempty"`
}

// ChangedItem is an entry of the change listings
type ChangedItem struct {
	ID    int   `json:"id"`
	Adult *bool `json:"adult"`
}

// Avatar holds the account's avatar sources
type Avatar struct {
	Gravatar struct {
		Hash string `json:"hash"`
	} `json:"gravatar"`
	TMDB struct {
		AvatarPath string `json:"avatar_path"`
	} `json:"tmdb"`
}

// Account represents a TMDB user account
type Account struct {
	Avatar       Avatar `json:"avatar"`
	ID           int    `json:"id"`
	ISO6391      string `json:"iso_639_1"`
	ISO31661     string `json:"iso_3166_1"`
	Name         string `json:"name"`
	IncludeAdult bool   `json:"include_adult"`
	Username     string `json:"username"`
}

// DisplayName returns the account name, falling back to the username
func (a *Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// Session is the result of creating a user or guest session
type Session struct {
	Success        bool   `json:"success"`
	SessionID      string `json:"session_id,omitempty"`
	GuestSessionID string `json:"guest_session_id,omitempty"`
	ExpiresAt      string `json:"expires_at,omitempty"`
	Guest          bool   `json:"-"`
}

// ID returns the session identifier matching the session kind
func (s Session) ID() string {
	if s.Guest && s.GuestSessionID != "" {
		return s.GuestSessionID
	}
	if s.SessionID != "" {
		return s.SessionID
	}
	return s.GuestSessionID
}

// RequestToken is a v3 request token to be approved by the user
type RequestToken struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// RequestTokenV4 is a v4 request token to be approved by the user
type RequestTokenV4 struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	RequestToken  string `json:"request_token"`
}

// AccessTokenV4 is a user scoped v4 access token
type AccessTokenV4 struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	AccessToken   string `json:"access_token"`
	AccountID     string `json:"account_id"`
}

// Department lists the jobs of a crew department
type Department struct {
	Department string   `json:"department"`
	Jobs       []string `json:"jobs"`
}

// Timezones lists the zones of a country
type Timezones struct {
	ISO31661 string   `json:"iso_3166_1"`
	Zones    []string `json:"zones"`
}

// List is a v4 user list; its items mix movies and TV shows
type List struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Public        bool        `json:"public"`
	ISO6391       string      `json:"iso_639_1"`
	ISO31661      string      `json:"iso_3166_1"`
	SortBy        string      `json:"sort_by"`
	AverageRating float64     `json:"average_rating"`
	Runtime       int         `json:"runtime"`
	Revenue       int64       `json:"revenue"`
	PosterPath    string      `json:"poster_path"`
	BackdropPath  string      `json:"backdrop_path"`
	CreatedBy     *ListAuthor `json:"created_by,omitempty"`
	Page          int         `json:"page"`
	TotalPages    int         `json:"total_pages"`
	TotalResults  int         `json:"total_results"`
	Results       []MediaItem `json:"results"`
}

// ListAuthor is the creator of a v4 list
type ListAuthor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	GravatarID string `json:"gravatar_hash"`
}

// ListSummary is a v4 list as returned by account list listings
type ListSummary struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Public          int     `json:"public"`
	NumberOfItems   int     `json:"number_of_items"`
	AverageRating   float64 `json:"average_rating"`
	ISO6391         string  `json:"iso_639_1"`
	ISO31661        string  `json:"iso_3166_1"`
	PosterPath      string  `json:"poster_path"`
	BackdropPath    string  `json:"backdrop_path"`
	SortBy          int     `json:"sort_by"`
	Runtime         int     `json:"runtime"`
	Revenue         float64 `json:"revenue"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	AccountObjectID string  `json:"account_object_id"`
}
