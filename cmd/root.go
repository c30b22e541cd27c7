package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/config"
	"github.com/s0up4200/tmdbkit/store"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *tmdb.Client
	cache    *store.Store
	registry *prometheus.Registry

	// Global flags
	languageFlag string
	jsonOutput   bool
	showStats    bool

	// Filter flags shared by listing commands
	filterExpr string
	preset     string
)

// skipInit marks commands that run without configuration
const skipInit = "skip-init"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbkit",
	Short: "Browse The Movie Database from the command line",
	Long: `tmdbkit is a CLI for The Movie Database (TMDB) API. It discovers and
searches movies, TV shows and people, manages TMDB sessions and account lists,
and keeps a local SQLite cache of movie details that can be filtered with
expressions.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.tmdbkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&languageFlag, "language", "", "override the response language (e.g. de-DE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "log TMDB request counts on exit")
}

// initializeApp loads configuration and creates the client and cache
func initializeApp(cmd *cobra.Command, args []string) error {
	if _, ok := cmd.Annotations[skipInit]; ok {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	if cmd.Flags().Changed("language") {
		cfg.TMDB.Language = languageFlag
	}

	if showStats {
		registry = prometheus.NewRegistry()
	}

	client, err = newClient(cfg.TMDB, logger, registry)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	if cfg.Cache.Enabled {
		cache, err = openStore(cmd.Context(), cfg.Cache.Path, logger)
		if err != nil {
			return err
		}
		restoreCredentials(cmd.Context(), client, cache, cfg.TMDB)
	}

	return nil
}

// closeApp releases the cache and reports request stats
func closeApp(cmd *cobra.Command, args []string) error {
	if registry != nil {
		logRequestStats(logger, registry)
	}
	if cache != nil {
		err := cache.Close()
		cache = nil
		return err
	}
	return nil
}

// newClient builds a TMDB client from configuration
func newClient(c config.TMDBConfig, logger zerolog.Logger, reg prometheus.Registerer) (*tmdb.Client, error) {
	opts := []tmdb.Option{
		tmdb.WithBaseURL(c.BaseURL),
		tmdb.WithTimeout(c.Timeout),
		tmdb.WithLanguage(c.Language),
		tmdb.WithIncludeAdult(c.IncludeAdult),
		tmdb.WithUserAgent("tmdbkit/" + version),
	}
	if c.Region != "" {
		opts = append(opts, tmdb.WithRegion(c.Region))
	}
	if c.AccessToken != "" {
		opts = append(opts, tmdb.WithAccessToken(c.AccessToken))
	}
	if c.SessionID != "" {
		opts = append(opts, tmdb.WithSession(c.SessionID, c.Guest))
	}
	if reg != nil {
		opts = append(opts, tmdb.WithMetrics(reg))
	}

	return tmdb.NewClient(c.APIKey, logger, opts...)
}

// openStore opens the cache database, creating its directory
func openStore(ctx context.Context, path string, logger zerolog.Logger) (*store.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	s, err := store.Open(ctx, path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	return s, nil
}

// restoreCredentials attaches the session and access token saved by the auth
// commands. Values from the config file take precedence.
func restoreCredentials(ctx context.Context, c *tmdb.Client, s *store.Store, tc config.TMDBConfig) {
	if tc.SessionID == "" {
		if id, err := s.Token(ctx, store.TokenSessionID); err == nil {
			c.SetSession(tmdb.Session{Success: true, SessionID: id})
		} else if id, err := s.Token(ctx, store.TokenGuestSessionID); err == nil {
			c.SetSession(tmdb.Session{Success: true, GuestSessionID: id, Guest: true})
		}
	}

	if tc.AccessToken == "" {
		token, err := s.Token(ctx, store.TokenAccessToken)
		switch {
		case err == nil:
			c.SetAccessToken(token)
		case !errors.Is(err, store.ErrNotFound):
			logger.Warn().Err(err).Msg("Failed to read saved access token")
		}
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// logRequestStats logs the tmdb_requests_total counters
func logRequestStats(logger zerolog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to gather request stats")
		return
	}

	for _, mf := range families {
		if mf.GetName() != "tmdb_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			event := logger.Info()
			for _, l := range m.GetLabel() {
				event = event.Str(l.GetName(), l.GetValue())
			}
			event.Float64("count", m.GetCounter().GetValue()).Msg("TMDB requests")
		}
	}
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > none
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if p, ok := cfg.Filter.Presets[strings.ToLower(preset)]; ok {
			return p.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// addFilterFlags registers --filter and --preset on cmd
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// requireCache fails when the cache is disabled
func requireCache() error {
	if cache == nil {
		return fmt.Errorf("the cache is disabled (cache.enabled: false)")
	}
	return nil
}
