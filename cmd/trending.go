package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var trendingFlags struct {
	kind   string
	window string
	page   int
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending movies, TV shows and people",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := tmdb.TrendingType(trendingFlags.kind)
		switch kind {
		case tmdb.TrendingAll, tmdb.TrendingMovie, tmdb.TrendingTV, tmdb.TrendingPerson:
		default:
			return fmt.Errorf("invalid --type %q (all, movie, tv or person)", trendingFlags.kind)
		}

		window := tmdb.TimeWindow(trendingFlags.window)
		if window != tmdb.TimeWindowDay && window != tmdb.TimeWindowWeek {
			return fmt.Errorf("invalid --window %q (day or week)", trendingFlags.window)
		}

		page, err := client.Trending.Get(cmd.Context(), kind, window, &tmdb.PageOptions{Page: trendingFlags.page})
		if err != nil {
			return fmt.Errorf("failed to get trending: %w", err)
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
	trendingCmd.Flags().StringVar(&trendingFlags.kind, "type", "all", "all, movie, tv or person")
	trendingCmd.Flags().StringVar(&trendingFlags.window, "window", "day", "day or week")
	trendingCmd.Flags().IntVar(&trendingFlags.page, "page", 1, "result page")

	rootCmd.AddCommand(trendingCmd)
}
