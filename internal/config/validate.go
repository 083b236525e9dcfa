package config

import (
	"fmt"
	"net/url"
)

// ExportFormats lists the supported export format identifiers.
var ExportFormats = map[string]bool{
	"json": true, "csv": true, "excel": true, "html": true,
}

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher.timeout must be > 0")
	}
	if cfg.Fetcher.MaxBodySize <= 0 {
		return fmt.Errorf("fetcher.max_body_size must be > 0")
	}
	if cfg.Fetcher.MaxRedirects < 0 {
		return fmt.Errorf("fetcher.max_redirects must be >= 0")
	}
	if cfg.Fetcher.ProxyURL != "" {
		if _, err := url.Parse(cfg.Fetcher.ProxyURL); err != nil {
			return fmt.Errorf("invalid proxy URL %q: %w", cfg.Fetcher.ProxyURL, err)
		}
	}

	if cfg.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper.base_url must not be empty")
	}
	if err := ValidateURL(cfg.Scraper.BaseURL); err != nil {
		return fmt.Errorf("scraper.base_url: %w", err)
	}

	if !ExportFormats[cfg.Export.Format] {
		return fmt.Errorf("export.format %q is not supported (valid: json, csv, excel, html)", cfg.Export.Format)
	}
	if cfg.Export.BaseFilename == "" {
		return fmt.Errorf("export.base_filename must not be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}

// ValidateURL checks if a URL string is valid for fetching.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
