package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/filter"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	searchPage int
	searchYear int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies, TV shows and people by text",
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <query>",
	Short: "Search movies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := getFilterExpression()
		if err != nil {
			return err
		}

		page, err := client.Search.Movies(cmd.Context(), strings.Join(args, " "), &tmdb.SearchMovieOptions{
			Page: searchPage,
			Year: searchYear,
		})
		if err != nil {
			return fmt.Errorf("failed to search movies: %w", err)
		}

		movies, err := filter.Apply(cmd.Context(), expr, page.Results)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		w := cmd.OutOrStdout()
		if err := printMovies(w, movies); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var searchTVCmd = &cobra.Command{
	Use:   "tv <query>",
	Short: "Search TV shows",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.Search.TV(cmd.Context(), strings.Join(args, " "), &tmdb.SearchTVOptions{
			Page:             searchPage,
			FirstAirDateYear: searchYear,
		})
		if err != nil {
			return fmt.Errorf("failed to search TV shows: %w", err)
		}

		w := cmd.OutOrStdout()
		if err := printTVShows(w, page.Results); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var searchPersonCmd = &cobra.Command{
	Use:   "person <query>",
	Short: "Search people",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.Search.People(cmd.Context(), strings.Join(args, " "), &tmdb.SearchOptions{Page: searchPage})
		if err != nil {
			return fmt.Errorf("failed to search people: %w", err)
		}

		w := cmd.OutOrStdout()
		if err := printPeople(w, page.Results); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var searchMultiCmd = &cobra.Command{
	Use:   "multi <query>",
	Short: "Search movies, TV shows and people at once",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.Search.Multi(cmd.Context(), strings.Join(args, " "), &tmdb.SearchOptions{Page: searchPage})
		if err != nil {
			return fmt.Errorf("failed to search: %w", err)
		}

		w := cmd.OutOrStdout()
		if err := printMedia(w, page.Results); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

func init() {
	searchCmd.PersistentFlags().IntVar(&searchPage, "page", 1, "result page")
	searchMovieCmd.Flags().IntVar(&searchYear, "year", 0, "release year")
	searchTVCmd.Flags().IntVar(&searchYear, "year", 0, "first air year")
	addFilterFlags(searchMovieCmd)

	searchCmd.AddCommand(searchMovieCmd, searchTVCmd, searchPersonCmd, searchMultiCmd)
	rootCmd.AddCommand(searchCmd)
}
