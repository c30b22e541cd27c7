package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var accountFlags struct {
	favorites bool
	watchlist bool
	rated     bool
	tv        bool
	page      int
	sort      string
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the logged in account and its lists",
	Example: `  tmdbkit account
  tmdbkit account --watchlist
  tmdbkit account --rated --tv --sort created_at.desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()

		if id, guest := client.Session(); id == "" || guest {
			return fmt.Errorf("a user session is required, run 'tmdbkit auth login' first")
		}

		account, err := client.Account.Details(ctx)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		opts := &tmdb.AccountListOptions{Page: accountFlags.page, SortBy: tmdb.ListSort(accountFlags.sort)}

		switch {
		case accountFlags.favorites:
			return printAccountList(ctx, w, account.ID, opts, client.Account.FavoriteMovies, client.Account.FavoriteTV)
		case accountFlags.watchlist:
			return printAccountList(ctx, w, account.ID, opts, client.Account.WatchlistMovies, client.Account.WatchlistTV)
		case accountFlags.rated:
			return printRated(ctx, w, account.ID, opts)
		}

		if jsonOutput {
			return printJSON(w, account)
		}
		fmt.Fprintf(w, "%s (id %d)\n", account.DisplayName(), account.ID)
		fmt.Fprintf(w, "Username:  %s\n", account.Username)
		fmt.Fprintf(w, "Locale:    %s-%s\n", account.ISO6391, account.ISO31661)
		fmt.Fprintf(w, "Adult:     %t\n", account.IncludeAdult)
		return nil
	},
}

func init() {
	accountCmd.Flags().BoolVar(&accountFlags.favorites, "favorites", false, "list favorites")
	accountCmd.Flags().BoolVar(&accountFlags.watchlist, "watchlist", false, "list the watchlist")
	accountCmd.Flags().BoolVar(&accountFlags.rated, "rated", false, "list rated titles")
	accountCmd.Flags().BoolVar(&accountFlags.tv, "tv", false, "list TV shows instead of movies")
	accountCmd.Flags().IntVar(&accountFlags.page, "page", 1, "result page")
	accountCmd.Flags().StringVar(&accountFlags.sort, "sort", "", "created_at.asc or created_at.desc")
	accountCmd.MarkFlagsMutuallyExclusive("favorites", "watchlist", "rated")

	rootCmd.AddCommand(accountCmd)
}

type listFunc[T any] func(ctx context.Context, accountID int, opts *tmdb.AccountListOptions) (*tmdb.ResultPage[T], error)

func printAccountList(ctx context.Context, w io.Writer, accountID int, opts *tmdb.AccountListOptions,
	movies listFunc[tmdb.Movie], shows listFunc[tmdb.TVShow]) error {
	if accountFlags.tv {
		page, err := shows(ctx, accountID, opts)
		if err != nil {
			return fmt.Errorf("failed to list TV shows: %w", err)
		}
		if err := printTVShows(w, page.Results); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	}

	page, err := movies(ctx, accountID, opts)
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}
	if err := printMovies(w, page.Results); err != nil {
		return err
	}
	printPageFooter(w, page)
	return nil
}

func printRated(ctx context.Context, w io.Writer, accountID int, opts *tmdb.AccountListOptions) error {
	if accountFlags.tv {
		page, err := client.Account.RatedTV(ctx, accountID, opts)
		if err != nil {
			return fmt.Errorf("failed to list rated TV shows: %w", err)
		}
		if jsonOutput {
			return printJSON(w, page.Results)
		}
		tw := newTable(w, "ID", "NAME", "FIRST AIRED", "RATED")
		for _, s := range page.Results {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\n", s.ID, s.Name, yearOrDash(s.FirstAirYear()), s.Rating)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	}

	page, err := client.Account.RatedMovies(ctx, accountID, opts)
	if err != nil {
		return fmt.Errorf("failed to list rated movies: %w", err)
	}
	if jsonOutput {
		return printJSON(w, page.Results)
	}
	tw := newTable(w, "ID", "TITLE", "YEAR", "RATED")
	for _, m := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\n", m.ID, m.Title, yearOrDash(m.ReleaseYear()), m.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printPageFooter(w, page)
	return nil
}
