package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var detailsFlags struct {
	credits      bool
	translations bool
	videos       bool
}

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show movie details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		m, err := client.Movies.Details(cmd.Context(), id, detailsOptions("credits", "translations", "videos"))
		if err != nil {
			return fmt.Errorf("failed to get movie %d: %w", id, err)
		}
		return printMovie(cmd.OutOrStdout(), m)
	},
}

var tvCmd = &cobra.Command{
	Use:   "tv <id>",
	Short: "Show TV show details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, err := client.TVShows.Details(cmd.Context(), id, detailsOptions("credits", "translations", "videos"))
		if err != nil {
			return fmt.Errorf("failed to get TV show %d: %w", id, err)
		}
		return printTVShow(cmd.OutOrStdout(), s)
	},
}

var personCmd = &cobra.Command{
	Use:   "person <id>",
	Short: "Show person details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := client.People.Details(cmd.Context(), id, detailsOptions("movie_credits,tv_credits", "translations", ""))
		if err != nil {
			return fmt.Errorf("failed to get person %d: %w", id, err)
		}
		return printPerson(cmd.OutOrStdout(), p)
	},
}

func init() {
	for _, c := range []*cobra.Command{movieCmd, tvCmd, personCmd} {
		c.Flags().BoolVar(&detailsFlags.credits, "credits", false, "include credits")
		c.Flags().BoolVar(&detailsFlags.translations, "translations", false, "include translations")
	}
	movieCmd.Flags().BoolVar(&detailsFlags.videos, "videos", false, "include videos")
	tvCmd.Flags().BoolVar(&detailsFlags.videos, "videos", false, "include videos")

	rootCmd.AddCommand(movieCmd, tvCmd, personCmd)
}

// detailsOptions maps the detail flags onto append_to_response values
func detailsOptions(credits, translations, videos string) *tmdb.DetailsOptions {
	var appends []string
	if detailsFlags.credits && credits != "" {
		appends = append(appends, credits)
	}
	if detailsFlags.translations && translations != "" {
		appends = append(appends, translations)
	}
	if detailsFlags.videos && videos != "" {
		appends = append(appends, videos)
	}
	return &tmdb.DetailsOptions{AppendToResponse: appends}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
