package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/filter"
	"github.com/s0up4200/tmdbkit/store"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local movie cache",
	Long: `Manage the local SQLite cache of movie details. Cached movies include
their credits and can be filtered with expressions or presets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeApp(cmd, args); err != nil {
			return err
		}
		return requireCache()
	},
}

var cacheGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a movie, fetching it into the cache on a miss",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		m, err := store.NewCachedMovies(cache, client.Movies, logger).Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		if err := printMovie(cmd.OutOrStdout(), m); err != nil {
			return err
		}
		printMatchingPresets(cmd.OutOrStdout(), m)
		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached movies",
	Example: `  tmdbkit cache list --filter 'hasGenre("Horror") and VoteAverage > 7'
  tmdbkit cache list --preset classics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := getFilterExpression()
		if err != nil {
			return err
		}

		movies, err := cache.ListMovies(cmd.Context())
		if err != nil {
			return err
		}

		matched, err := filter.Apply(cmd.Context(), expr, movies)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		if expr != "" {
			logger.Info().Str("filter", expr).Int("matched", len(matched)).Int("cached", len(movies)).Msg("Filtered cache")
		}
		return printMovies(cmd.OutOrStdout(), matched)
	},
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh [id...]",
	Short: "Re-fetch cached movies from TMDB",
	Long:  `Re-fetch the given movies, or every cached movie when no ids are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cached := store.NewCachedMovies(cache, client.Movies, logger)

		var result store.RefreshResult
		if len(args) == 0 {
			var err error
			if result, err = cached.RefreshAll(ctx); err != nil {
				return err
			}
		} else {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			result = cached.Refresh(ctx, ids)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Refreshed %d of %d movies\n", len(result.Refreshed), result.Requested)
		for _, f := range result.Failed {
			fmt.Fprintf(w, "  ✗ %v\n", f)
		}
		if len(result.Failed) > 0 {
			return fmt.Errorf("%d movies failed to refresh", len(result.Failed))
		}
		return nil
	},
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a movie from the cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := cache.DeleteMovie(cmd.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("movie %d is not cached", id)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed movie %d\n", id)
		return nil
	},
}

var cachePresetsCmd = &cobra.Command{
	Use:   "presets [name...]",
	Short: "Count cached movies matching each configured preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manager, err := presetManager()
		if err != nil {
			return err
		}
		if len(manager.Names()) == 0 {
			return fmt.Errorf("no presets configured under filter.presets")
		}

		movies, err := cache.ListMovies(ctx)
		if err != nil {
			return err
		}

		var results []filter.PresetResult
		if len(args) > 0 {
			results, err = manager.ApplySelected(ctx, args, movies)
		} else {
			results, err = manager.ApplyAll(ctx, movies)
		}
		if err != nil {
			return err
		}
		return printPresetResults(cmd.OutOrStdout(), results)
	},
}

// presetManager compiles the configured presets
func presetManager() (*filter.Manager, error) {
	presets := make([]filter.Preset, 0, len(cfg.Filter.Presets))
	for name, p := range cfg.Filter.Presets {
		presets = append(presets, filter.Preset{Name: name, Expression: p.Expression, Description: p.Description})
	}

	manager := filter.NewManager()
	if err := manager.RegisterAll(presets...); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}
	return manager, nil
}

func printPresetResults(w io.Writer, results []filter.PresetResult) error {
	if jsonOutput {
		return printJSON(w, results)
	}

	tw := newTable(w, "PRESET", "MATCHES", "DESCRIPTION")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Name, len(r.Matches), r.Description)
	}
	return tw.Flush()
}

// printMatchingPresets lists the presets a movie falls under
func printMatchingPresets(w io.Writer, m *tmdb.Movie) {
	if jsonOutput || len(cfg.Filter.Presets) == 0 {
		return
	}
	manager, err := presetManager()
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping presets")
		return
	}
	if names := manager.Match(*m); len(names) > 0 {
		fmt.Fprintf(w, "\nPresets:   %s\n", strings.Join(names, ", "))
	}
}

var cacheWatchInterval time.Duration

var cacheWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Print a cached movie every time it changes",
	Long: `Print the cached movie and then every update made to it. With --every the
movie is re-fetched from TMDB on that interval. Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		updates := cache.WatchMovie(ctx, id)

		if cacheWatchInterval > 0 {
			cached := store.NewCachedMovies(cache, client.Movies, logger)
			go func() {
				ticker := time.NewTicker(cacheWatchInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if res := cached.Refresh(ctx, []int{id}); len(res.Failed) > 0 {
							logger.Warn().Err(res.Failed[0]).Msg("Refresh failed")
						}
					}
				}
			}()
		}

		w := cmd.OutOrStdout()
		for m := range updates {
			fmt.Fprintf(w, "%s  %s  rating %.1f (%d votes)\n", time.Now().Format(time.TimeOnly), m.Title, m.VoteAverage, m.VoteCount)
		}
		return nil
	},
}

func init() {
	addFilterFlags(cacheListCmd)
	cacheWatchCmd.Flags().DurationVar(&cacheWatchInterval, "every", 0, "re-fetch the movie on this interval (e.g. 10m)")

	cacheCmd.AddCommand(cacheGetCmd, cacheListCmd, cacheRefreshCmd, cacheDeleteCmd, cachePresetsCmd, cacheWatchCmd)
	rootCmd.AddCommand(cacheCmd)
}
