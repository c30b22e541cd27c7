package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API credentials and request defaults
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	AccessToken  string        `mapstructure:"access_token"`
	SessionID    string        `mapstructure:"session_id"`
	Guest        bool          `mapstructure:"guest"`
	Language     string        `mapstructure:"language"`
	Region       string        `mapstructure:"region"`
	IncludeAdult bool          `mapstructure:"include_adult"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// CacheConfig controls the local SQLite movie cache
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// FilterConfig contains named filter presets
type FilterConfig struct {
	Presets map[string]PresetConfig `mapstructure:"presets"`
}

// PresetConfig is a reusable filter expression
type PresetConfig struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
