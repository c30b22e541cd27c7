package tmdb

// MovieSort is a sort_by value accepted by movie discovery
type MovieSort string

const (
	MoviePopularityAsc          MovieSort = "popularity.asc"
	MoviePopularityDesc         MovieSort = "popularity.desc"
	MovieReleaseDateAsc         MovieSort = "release_date.asc"
	MovieReleaseDateDesc        MovieSort = "release_date.desc"
	MoviePrimaryReleaseDateAsc  MovieSort = "primary_release_date.asc"
	MoviePrimaryReleaseDateDesc MovieSort = "primary_release_date.desc"
	MovieRevenueAsc             MovieSort = "revenue.asc"
	MovieRevenueDesc            MovieSort = "revenue.desc"
	MovieOriginalTitleAsc       MovieSort = "original_title.asc"
	MovieOriginalTitleDesc      MovieSort = "original_title.desc"
	MovieTitleAsc               MovieSort = "title.asc"
	MovieTitleDesc              MovieSort = "title.desc"
	MovieVoteAverageAsc         MovieSort = "vote_average.asc"
	MovieVoteAverageDesc        MovieSort = "vote_average.desc"
	MovieVoteCountAsc           MovieSort = "vote_count.asc"
	MovieVoteCountDesc          MovieSort = "vote_count.desc"
)

// TVSort is a sort_by value accepted by TV discovery
type TVSort string

const (
	TVPopularityAsc    TVSort = "popularity.asc"
	TVPopularityDesc   TVSort = "popularity.desc"
	TVFirstAirDateAsc  TVSort = "first_air_date.asc"
	TVFirstAirDateDesc TVSort = "first_air_date.desc"
	TVNameAsc          TVSort = "name.asc"
	TVNameDesc         TVSort = "name.desc"
	TVOriginalNameAsc  TVSort = "original_name.asc"
	TVOriginalNameDesc TVSort = "original_name.desc"
	TVVoteAverageAsc   TVSort = "vote_average.asc"
	TVVoteAverageDesc  TVSort = "vote_average.desc"
	TVVoteCountAsc     TVSort = "vote_count.asc"
	TVVoteCountDesc    TVSort = "vote_count.desc"
)

// ListSort is a sort_by value accepted by account and list listings
type ListSort string

const (
	CreatedAtAsc  ListSort = "created_at.asc"
	CreatedAtDesc ListSort = "created_at.desc"
)

// TimeWindow is the trending window
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// TrendingType selects which media kinds trending returns
type TrendingType string

const (
	TrendingAll    TrendingType = "all"
	TrendingMovie  TrendingType = "movie"
	TrendingTV     TrendingType = "tv"
	TrendingPerson TrendingType = "person"
)
