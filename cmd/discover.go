package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/filter"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var discoverFlags struct {
	sort           string
	page           int
	year           int
	genres         string
	anyGenres      string
	withoutGenres  string
	minRating      float64
	minVotes       int
	releasedAfter  string
	releasedBefore string
	language       string
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover movies and TV shows by criteria",
}

var discoverMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Discover movies",
	Long: `Discover movies with TMDB filters. --genres requires every listed genre,
--any-genres matches at least one. --filter narrows the returned page locally.`,
	Example: `  tmdbkit discover movies --genres 28,12 --min-rating 7 --sort vote_average.desc
  tmdbkit discover movies --released-after 2020-01-01 --filter 'Runtime < 100'`,
	Args: cobra.NoArgs,
	RunE: runDiscoverMovies,
}

var discoverTVCmd = &cobra.Command{
	Use:   "tv",
	Short: "Discover TV shows",
	Args:  cobra.NoArgs,
	RunE:  runDiscoverTV,
}

func init() {
	for _, c := range []*cobra.Command{discoverMoviesCmd, discoverTVCmd} {
		c.Flags().StringVar(&discoverFlags.sort, "sort", "popularity.desc", "sort order, e.g. vote_average.desc")
		c.Flags().IntVar(&discoverFlags.page, "page", 1, "result page")
		c.Flags().IntVar(&discoverFlags.year, "year", 0, "release (or first air) year")
		c.Flags().StringVar(&discoverFlags.genres, "genres", "", "comma separated genre ids, all required")
		c.Flags().StringVar(&discoverFlags.anyGenres, "any-genres", "", "comma separated genre ids, any matches")
		c.Flags().StringVar(&discoverFlags.withoutGenres, "without-genres", "", "comma separated genre ids to exclude")
		c.Flags().Float64Var(&discoverFlags.minRating, "min-rating", 0, "minimum vote average")
		c.Flags().IntVar(&discoverFlags.minVotes, "min-votes", 0, "minimum vote count")
		c.Flags().StringVar(&discoverFlags.releasedAfter, "released-after", "", "earliest date (YYYY-MM-DD)")
		c.Flags().StringVar(&discoverFlags.releasedBefore, "released-before", "", "latest date (YYYY-MM-DD)")
		c.Flags().StringVar(&discoverFlags.language, "original-language", "", "ISO 639-1 original language")
	}
	addFilterFlags(discoverMoviesCmd)

	discoverCmd.AddCommand(discoverMoviesCmd, discoverTVCmd)
	rootCmd.AddCommand(discoverCmd)
}

func runDiscoverMovies(cmd *cobra.Command, args []string) error {
	opts, err := movieDiscoverOptions()
	if err != nil {
		return err
	}

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	return discoverMovies(cmd.Context(), cmd.OutOrStdout(), client.Discover, opts, expr)
}

// discoverMovies fetches a discovery page and applies expr to its results
func discoverMovies(ctx context.Context, w io.Writer, d tmdb.MovieDiscoverer, opts *tmdb.DiscoverMovieOptions, expr string) error {
	logger.Debug().Str("sort", string(opts.SortBy)).Int("page", opts.Page).Msg("Discovering movies")

	page, err := d.Movies(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to discover movies: %w", err)
	}

	movies, err := filter.Apply(ctx, expr, page.Results)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}
	if expr != "" {
		logger.Info().Str("filter", expr).Int("matched", len(movies)).Int("fetched", len(page.Results)).Msg("Filtered results")
	}

	if err := printMovies(w, movies); err != nil {
		return err
	}
	printPageFooter(w, page)
	return nil
}

func movieDiscoverOptions() (*tmdb.DiscoverMovieOptions, error) {
	opts := &tmdb.DiscoverMovieOptions{
		Page:                 discoverFlags.page,
		SortBy:               tmdb.MovieSort(discoverFlags.sort),
		PrimaryReleaseYear:   discoverFlags.year,
		VoteAverageGte:       discoverFlags.minRating,
		VoteCountGte:         discoverFlags.minVotes,
		WithOriginalLanguage: discoverFlags.language,
	}

	var err error
	if opts.WithGenres, err = genreFilter(discoverFlags.genres, discoverFlags.anyGenres); err != nil {
		return nil, err
	}
	if opts.WithoutGenres, err = parseIDs(discoverFlags.withoutGenres, tmdb.Or[int]); err != nil {
		return nil, err
	}
	if opts.PrimaryReleaseDateGte, err = parseDate(discoverFlags.releasedAfter); err != nil {
		return nil, err
	}
	if opts.PrimaryReleaseDateLte, err = parseDate(discoverFlags.releasedBefore); err != nil {
		return nil, err
	}
	return opts, nil
}

func runDiscoverTV(cmd *cobra.Command, args []string) error {
	opts := &tmdb.DiscoverTVOptions{
		Page:                 discoverFlags.page,
		SortBy:               tmdb.TVSort(discoverFlags.sort),
		FirstAirDateYear:     discoverFlags.year,
		VoteAverageGte:       discoverFlags.minRating,
		VoteCountGte:         discoverFlags.minVotes,
		WithOriginalLanguage: discoverFlags.language,
	}

	var err error
	if opts.WithGenres, err = genreFilter(discoverFlags.genres, discoverFlags.anyGenres); err != nil {
		return err
	}
	if opts.WithoutGenres, err = parseIDs(discoverFlags.withoutGenres, tmdb.Or[int]); err != nil {
		return err
	}
	if opts.FirstAirDateGte, err = parseDate(discoverFlags.releasedAfter); err != nil {
		return err
	}
	if opts.FirstAirDateLte, err = parseDate(discoverFlags.releasedBefore); err != nil {
		return err
	}

	page, err := client.Discover.TV(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to discover TV shows: %w", err)
	}

	w := cmd.OutOrStdout()
	if err := printTVShows(w, page.Results); err != nil {
		return err
	}
	printPageFooter(w, page)
	return nil
}

// genreFilter combines --genres (all of) and --any-genres (one of)
func genreFilter(all, anyOf string) (tmdb.IDs, error) {
	if all != "" && anyOf != "" {
		return tmdb.IDs{}, fmt.Errorf("--genres and --any-genres cannot be combined")
	}
	if anyOf != "" {
		return parseIDs(anyOf, tmdb.Or[int])
	}
	return parseIDs(all, tmdb.And[int])
}

// parseIDs parses a comma separated id list and joins it with join
func parseIDs(s string, join func(...int) tmdb.IDs) (tmdb.IDs, error) {
	if strings.TrimSpace(s) == "" {
		return tmdb.IDs{}, nil
	}

	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return tmdb.IDs{}, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return join(ids...), nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
