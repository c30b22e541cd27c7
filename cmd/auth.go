package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/store"
	"github.com/s0up4200/tmdbkit/tmdb"
)

const approveURL = "https://www.themoviedb.org/auth/access?request_token="

var authFlags struct {
	username    string
	password    string
	redirect    string
	withSession bool
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage TMDB sessions and access tokens",
	Long: `Manage TMDB authentication. Sessions and access tokens are saved in the
local cache database and reused by later commands.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a user session with a TMDB username and password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()

		username := authFlags.username
		if username == "" {
			username = prompt(cmd.InOrStdin(), w, "Username: ")
		}
		password := authFlags.password
		if password == "" {
			password = os.Getenv("TMDBKIT_PASSWORD")
		}
		if password == "" {
			password = prompt(cmd.InOrStdin(), w, "Password: ")
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}

		session, err := client.Auth.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := saveSession(ctx, *session); err != nil {
			return err
		}

		logger.Info().Str("username", username).Msg("Logged in")
		fmt.Fprintln(w, "✓ Logged in")
		return nil
	},
}

var authGuestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Create a guest session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		session, err := client.Auth.CreateGuestSession(ctx)
		if err != nil {
			return fmt.Errorf("failed to create guest session: %w", err)
		}

		if err := saveSession(ctx, *session); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Guest session created (expires %s)\n", session.ExpiresAt)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the current session and access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()

		// guest sessions cannot be deleted remotely; they expire on their own
		if id, guest := client.Session(); id != "" && !guest {
			if _, err := client.Auth.DeleteSession(ctx, id); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
		}
		client.ClearSession()

		// only user tokens created by "auth token" are revoked, never the configured read token
		if token := client.AccessToken(); token != "" && cache != nil {
			if stored, err := cache.Token(ctx, store.TokenAccessToken); err == nil && stored == token {
				if _, err := client.AuthV4.DeleteAccessToken(ctx, token); err != nil {
					logger.Warn().Err(err).Msg("Failed to revoke access token")
				}
			}
		}

		if cache != nil {
			for _, name := range []string{store.TokenSessionID, store.TokenGuestSessionID, store.TokenAccessToken} {
				if err := cache.DeleteToken(ctx, name); err != nil {
					return err
				}
			}
		}

		fmt.Fprintln(w, "✓ Logged out")
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Create a user access token with the v4 approval flow",
	Long: `Create a v4 user access token. The configured read access token is used to
request approval; open the printed URL, approve the request, then press Enter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()

		if client.AccessToken() == "" {
			return fmt.Errorf("tmdb.access_token must be set to request a user access token")
		}

		rt, err := client.AuthV4.CreateRequestToken(ctx, authFlags.redirect)
		if err != nil {
			return fmt.Errorf("failed to create request token: %w", err)
		}

		fmt.Fprintf(w, "Approve the request at:\n  %s%s\n", approveURL, rt.RequestToken)
		prompt(cmd.InOrStdin(), w, "Press Enter once approved: ")

		at, err := client.AuthV4.CreateAccessToken(ctx, rt.RequestToken)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		if cache != nil {
			if err := cache.SaveToken(ctx, store.TokenAccessToken, at.AccessToken); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "Access token (set tmdb.access_token to reuse it):\n  %s\n", at.AccessToken)
		}

		if authFlags.withSession {
			session, err := client.Auth.CreateSessionFromV4(ctx, at.AccessToken)
			if err != nil {
				return fmt.Errorf("failed to convert access token to a session: %w", err)
			}
			if err := saveSession(ctx, *session); err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "✓ Access token created for account %s\n", at.AccountID)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session and access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAuthStatus(cmd.OutOrStdout(), client)
	},
}

func init() {
	authLoginCmd.Flags().StringVarP(&authFlags.username, "username", "u", "", "TMDB username")
	authLoginCmd.Flags().StringVar(&authFlags.password, "password", "", "TMDB password (or TMDBKIT_PASSWORD)")
	authTokenCmd.Flags().StringVar(&authFlags.redirect, "redirect", "", "URL TMDB redirects to after approval")
	authTokenCmd.Flags().BoolVar(&authFlags.withSession, "session", false, "also create a v3 session from the access token")

	authCmd.AddCommand(authLoginCmd, authGuestCmd, authLogoutCmd, authTokenCmd, authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

// saveSession persists a session so later runs reuse it
func saveSession(ctx context.Context, s tmdb.Session) error {
	if cache == nil {
		key := "tmdb.session_id"
		if s.Guest {
			key += " (with tmdb.guest: true)"
		}
		fmt.Fprintf(os.Stderr, "Cache disabled, set %s to reuse the session:\n  %s\n", key, s.ID())
		return nil
	}

	keep, drop := store.TokenSessionID, store.TokenGuestSessionID
	if s.Guest {
		keep, drop = drop, keep
	}
	if err := cache.SaveToken(ctx, keep, s.ID()); err != nil {
		return err
	}
	return cache.DeleteToken(ctx, drop)
}

func printAuthStatus(w io.Writer, c *tmdb.Client) error {
	id, guest := c.Session()
	switch {
	case id == "":
		fmt.Fprintln(w, "Session:      none")
	case guest:
		fmt.Fprintf(w, "Session:      guest (%s)\n", id)
	default:
		fmt.Fprintf(w, "Session:      user (%s)\n", id)
	}

	claims, err := c.AccessTokenClaims()
	if errors.Is(err, tmdb.ErrNoAccessToken) {
		fmt.Fprintln(w, "Access token: none")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to decode access token: %w", err)
	}

	fmt.Fprintf(w, "Access token: account %s, scopes %s\n", claims.AccountObjectID(), strings.Join(claims.Scopes, ", "))
	if claims.ExpiresAt != nil {
		fmt.Fprintf(w, "Expires:      %s\n", claims.ExpiresAt.Format("2006-01-02"))
	}
	return nil
}

func prompt(r io.Reader, w io.Writer, label string) string {
	fmt.Fprint(w, label)
	line, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(line)
}
