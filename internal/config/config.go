package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// DefaultBaseURL is the site origin scheme-less URLs resolve against.
const DefaultBaseURL = "https://www.quora.com"

// Config is the root configuration for qscrape.
type Config struct {
	Fetcher Fetcher `mapstructure:"fetcher" yaml:"fetcher"`
	Scraper Scraper `mapstructure:"scraper" yaml:"scraper"`
	Export  Export  `mapstructure:"export"  yaml:"export"`
	Logging Logging `mapstructure:"logging" yaml:"logging"`
}

// Fetcher controls the HTTP fetcher.
type Fetcher struct {
	Timeout         time.Duration     `mapstructure:"timeout"          yaml:"timeout"`
	UserAgent       string            `mapstructure:"user_agent"       yaml:"user_agent"`
	AcceptLanguage  string            `mapstructure:"accept_language"  yaml:"accept_language"`
	Cookies         map[string]string `mapstructure:"cookies"          yaml:"cookies"`
	ProxyURL        string            `mapstructure:"proxy_url"        yaml:"proxy_url"`
	FollowRedirects bool              `mapstructure:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects    int               `mapstructure:"max_redirects"    yaml:"max_redirects"`
	MaxBodySize     int64             `mapstructure:"max_body_size"    yaml:"max_body_size"`
	TLSInsecure     bool              `mapstructure:"tls_insecure"     yaml:"tls_insecure"`
	IdleConnTimeout time.Duration     `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"   yaml:"max_idle_conns"`
}

// Scraper controls URL handling and listing traversal.
type Scraper struct {
	BaseURL        string `mapstructure:"base_url"         yaml:"base_url"`
	LimitPerSearch int    `mapstructure:"limit_per_search" yaml:"limit_per_search"`
}

// Export controls output files.
type Export struct {
	OutputDir    string `mapstructure:"output_dir"    yaml:"output_dir"`
	BaseFilename string `mapstructure:"base_filename" yaml:"base_filename"`
	Format       string `mapstructure:"format"        yaml:"format"`
}

// Logging controls logging behavior.
type Logging struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: Fetcher{
			Timeout: 20 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
				"AppleWebKit/537.36 (KHTML, like Gecko) " +
				"Chrome/120.0 Safari/537.36",
			AcceptLanguage:  "en-US,en;q=0.9",
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Scraper: Scraper{
			BaseURL:        DefaultBaseURL,
			LimitPerSearch: 0, // unlimited
		},
		Export: Export{
			OutputDir:    "./output",
			BaseFilename: "quora_results",
			Format:       "json",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}
