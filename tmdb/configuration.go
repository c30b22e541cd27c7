package tmdb

import (
	"context"
	"strings"
)

// ConfigurationService reads the API's system wide configuration
type ConfigurationService service

// APIConfiguration is the image and change key configuration
type APIConfiguration struct {
	Images     ImagesConfiguration `json:"images"`
	ChangeKeys []string            `json:"change_keys"`
}

// ImagesConfiguration describes how image paths are turned into URLs
type ImagesConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL builds the URL of an image path at a size such as "w500" or
// "original". An empty path yields an empty URL.
func (c *ImagesConfiguration) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	base := c.SecureBaseURL
	if base == "" {
		base = c.BaseURL
	}
	if size == "" {
		size = "original"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + size + path
}

func (s *ConfigurationService) API(ctx context.Context) (*APIConfiguration, error) {
	return get[APIConfiguration](ctx, s.client, v3("configuration"), nil)
}

func (s *ConfigurationService) Countries(ctx context.Context) ([]Country, error) {
	return list[Country](ctx, s.client, v3("configuration/countries"))
}

func (s *ConfigurationService) Jobs(ctx context.Context) ([]Department, error) {
	return list[Department](ctx, s.client, v3("configuration/jobs"))
}

func (s *ConfigurationService) Languages(ctx context.Context) ([]Language, error) {
	return list[Language](ctx, s.client, v3("configuration/languages"))
}

// PrimaryTranslations returns the locales TMDB considers primary, e.g. "en-US"
func (s *ConfigurationService) PrimaryTranslations(ctx context.Context) ([]string, error) {
	return list[string](ctx, s.client, v3("configuration/primary_translations"))
}

func (s *ConfigurationService) Timezones(ctx context.Context) ([]Timezones, error) {
	return list[Timezones](ctx, s.client, v3("configuration/timezones"))
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	out, err := get[[]T](ctx, c, path, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
