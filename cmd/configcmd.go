package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var imageConfigCmd = &cobra.Command{
	Use:     "config [path]",
	Aliases: []string{"images"},
	Short:   "Show the TMDB image configuration",
	Long: `Show the image base URL and sizes TMDB serves. With a path such as
/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg the URL of every poster size is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := client.Configuration.API(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get configuration: %w", err)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, conf)
		}

		img := conf.Images
		if len(args) == 1 {
			for _, size := range img.PosterSizes {
				fmt.Fprintf(w, "%-9s %s\n", size, img.ImageURL(args[0], size))
			}
			return nil
		}

		fmt.Fprintf(w, "Base URL:   %s\n", img.SecureBaseURL)
		fmt.Fprintf(w, "Posters:    %s\n", strings.Join(img.PosterSizes, " "))
		fmt.Fprintf(w, "Backdrops:  %s\n", strings.Join(img.BackdropSizes, " "))
		fmt.Fprintf(w, "Profiles:   %s\n", strings.Join(img.ProfileSizes, " "))
		fmt.Fprintf(w, "Stills:     %s\n", strings.Join(img.StillSizes, " "))
		fmt.Fprintf(w, "Logos:      %s\n", strings.Join(img.LogoSizes, " "))
		return nil
	},
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List movie and TV genre ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		movies, err := client.Genres.MovieList(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to get movie genres: %w", err)
		}
		shows, err := client.Genres.TVList(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to get TV genres: %w", err)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, map[string]any{"movie": movies, "tv": shows})
		}

		tw := newTable(w, "ID", "GENRE", "KIND")
		for _, g := range movies {
			fmt.Fprintf(tw, "%d\t%s\tmovie\n", g.ID, g.Name)
		}
		for _, g := range shows {
			fmt.Fprintf(tw, "%d\t%s\ttv\n", g.ID, g.Name)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(imageConfigCmd, genresCmd)
}
