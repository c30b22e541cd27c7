package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TMDBKIT_TMDB_API_KEY
const EnvPrefix = "TMDBKIT"

const placeholderAPIKey = "your-api-key-here"

// Load loads the configuration from file and environment. Without an explicit
// path a missing config file is not an error, so the CLI can run from
// environment variables alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tmdbkit"))
		}
		v.AddConfigPath("/etc/tmdbkit/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Cache.Path = ExpandPath(cfg.Cache.Path)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.access_token", "")
	v.SetDefault("tmdb.session_id", "")
	v.SetDefault("tmdb.guest", false)
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.region", "")
	v.SetDefault("tmdb.include_adult", false)
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/")
	v.SetDefault("tmdb.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "~/.tmdbkit/cache.db")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIKey == "" || cfg.TMDB.APIKey == placeholderAPIKey {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	if cfg.TMDB.AccessToken != "" && len(strings.Split(cfg.TMDB.AccessToken, ".")) != 3 {
		return fmt.Errorf("tmdb.access_token must be a three segment token")
	}

	if cfg.TMDB.Timeout <= 0 {
		return fmt.Errorf("tmdb.timeout must be positive, got %s", cfg.TMDB.Timeout)
	}

	if cfg.TMDB.Guest && cfg.TMDB.SessionID == "" {
		return fmt.Errorf("tmdb.guest requires tmdb.session_id")
	}

	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		return fmt.Errorf("cache.path is required when the cache is enabled")
	}

	for name, p := range cfg.Filter.Presets {
		if strings.TrimSpace(p.Expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
