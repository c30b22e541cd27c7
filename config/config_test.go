package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:   "valid-api-key",
			Language: "en-US",
			Timeout:  30 * time.Second,
		},
		Cache: CacheConfig{Enabled: true, Path: "/tmp/cache.db"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "" },
			wantErr: "tmdb.api_key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr: "tmdb.api_key",
		},
		{
			name:   "three segment access token",
			mutate: func(c *Config) { c.TMDB.AccessToken = "a.b.c" },
		},
		{
			name:    "malformed access token",
			mutate:  func(c *Config) { c.TMDB.AccessToken = "a.b" },
			wantErr: "tmdb.access_token",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TMDB.Timeout = 0 },
			wantErr: "tmdb.timeout",
		},
		{
			name:    "guest without session",
			mutate:  func(c *Config) { c.TMDB.Guest = true },
			wantErr: "tmdb.guest",
		},
		{
			name:    "cache without path",
			mutate:  func(c *Config) { c.Cache.Path = "" },
			wantErr: "cache.path",
		},
		{
			name: "disabled cache without path",
			mutate: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.Path = ""
			},
		},
		{
			name: "empty preset",
			mutate: func(c *Config) {
				c.Filter.Presets = map[string]PresetConfig{"classics": {Expression: " "}}
			},
			wantErr: `filter preset "classics"`,
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: file-key
  region: GB
  timeout: 5s
cache:
  path: /var/lib/tmdbkit/cache.db
filter:
  presets:
    classics:
      expression: Year < 1980 and VoteAverage >= 7.5
      description: Highly rated older films
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "GB", cfg.TMDB.Region)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "/var/lib/tmdbkit/cache.db", cfg.Cache.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// defaults
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, "https://api.themoviedb.org/", cfg.TMDB.BaseURL)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Logging.Color)

	require.Contains(t, cfg.Filter.Presets, "classics")
	assert.Equal(t, "Highly rated older films", cfg.Filter.Presets["classics"].Description)
	assert.Equal(t, "Year < 1980 and VoteAverage >= 7.5", cfg.Filter.Presets["classics"].Expression)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: file-key
`)
	t.Setenv("TMDBKIT_TMDB_API_KEY", "env-key")
	t.Setenv("TMDBKIT_TMDB_LANGUAGE", "de-DE")
	t.Setenv("TMDBKIT_CACHE_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: your-api-key-here
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".tmdbkit", "cache.db"), ExpandPath("~/.tmdbkit/cache.db"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/abs/cache.db", ExpandPath("/abs/cache.db"))
	assert.Equal(t, "~user/cache.db", ExpandPath("~user/cache.db"))
}
