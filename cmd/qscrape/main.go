package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qscrape/qscrape/internal/config"
	"github.com/qscrape/qscrape/internal/export"
	"github.com/qscrape/qscrape/internal/fetcher"
	"github.com/qscrape/qscrape/internal/pipeline"
	"github.com/qscrape/qscrape/internal/scraper"
)

var (
	cfgFile      string
	verbose      bool
	outputDir    string
	baseFilename string
	format       string
	limit        int
	timeout      string
	userAgent    string
	proxyURL     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qscrape",
		Short: "qscrape — Quora search results and question answers scraper",
		Long: `qscrape fetches Quora question pages or search result listings,
extracts answer records with heuristic HTML parsing, and exports them
to JSON, CSV, Excel or HTML.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scrapeCmd creates the "scrape" subcommand.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [url...]",
		Short: "Scrape question or search URLs and export the records",
		Long: `Scrape one or more URLs. Search listing URLs fan out into the
question pages they reference; question URLs are parsed directly.
All extracted records are aggregated and exported once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScrape,
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: json, csv, excel, html")
	cmd.Flags().StringVar(&baseFilename, "base-name", "", "base filename for export files")
	cmd.Flags().IntVarP(&limit, "limit", "l", -1, "max question pages per search listing (-1 = unlimited)")
	cmd.Flags().StringVar(&timeout, "timeout", "", "request timeout (e.g. 20s)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "custom User-Agent string")
	cmd.Flags().StringVar(&proxyURL, "proxy", "", "proxy URL")

	return cmd
}

// runScrape executes the scrape command.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg)

	httpFetcher, err := fetcher.NewHTTPFetcher(cfg, logger)
	if err != nil {
		return fmt.Errorf("create fetcher: %w", err)
	}
	defer httpFetcher.Close()

	pipe := pipeline.New(logger)
	pipe.Use(&pipeline.TrimMiddleware{})

	s, err := scraper.New(cfg, httpFetcher, pipe, logger)
	if err != nil {
		return fmt.Errorf("create scraper: %w", err)
	}

	// A listing limit is applied when set on the CLI or in config.
	var perSearch *int
	if cmd.Flags().Changed("limit") && limit >= 0 {
		perSearch = &limit
	} else if cfg.Scraper.LimitPerSearch > 0 {
		perSearch = &cfg.Scraper.LimitPerSearch
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting scrape",
		"urls", args,
		"format", cfg.Export.Format,
		"output", cfg.Export.OutputDir,
	)

	start := time.Now()
	all := s.Scrape(ctx, args[0], perSearch)
	for _, rawURL := range args[1:] {
		all = append(all, s.Scrape(ctx, rawURL, perSearch)...)
	}

	exporter := export.New(cfg.Export.OutputDir, cfg.Export.BaseFilename, logger)
	path, err := exporter.Export(all, cfg.Export.Format)
	if err != nil {
		return fmt.Errorf("export records: %w", err)
	}

	logger.Info("scrape complete",
		"elapsed", time.Since(start),
		"records", len(all),
		"path", path,
	)

	fmt.Printf("Scraped %d records in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Output: %s\n", path)
	return nil
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qscrape %s\n", config.Version)
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Fetcher:\n")
			fmt.Printf("  Timeout:          %s\n", cfg.Fetcher.Timeout)
			fmt.Printf("  User-Agent:       %s\n", cfg.Fetcher.UserAgent)
			fmt.Printf("  Proxy:            %s\n", orNone(cfg.Fetcher.ProxyURL))
			fmt.Printf("  Cookies:          %d configured\n", len(cfg.Fetcher.Cookies))
			fmt.Printf("  Follow Redirects: %v\n", cfg.Fetcher.FollowRedirects)
			fmt.Printf("  Max Body Size:    %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nScraper:\n")
			fmt.Printf("  Base URL:         %s\n", cfg.Scraper.BaseURL)
			fmt.Printf("  Limit Per Search: %d\n", cfg.Scraper.LimitPerSearch)
			fmt.Printf("\nExport:\n")
			fmt.Printf("  Output Dir:       %s\n", cfg.Export.OutputDir)
			fmt.Printf("  Base Filename:    %s\n", cfg.Export.BaseFilename)
			fmt.Printf("  Format:           %s\n", cfg.Export.Format)
			fmt.Printf("\nLogging:\n")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			return nil
		},
	}
}

// setupLogger creates a structured logger from the logging config.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if outputDir != "" {
		cfg.Export.OutputDir = outputDir
	}
	if baseFilename != "" {
		cfg.Export.BaseFilename = baseFilename
	}
	if format != "" {
		cfg.Export.Format = strings.ToLower(format)
	}
	if timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.Fetcher.Timeout = d
		}
	}
	if userAgent != "" {
		cfg.Fetcher.UserAgent = userAgent
	}
	if proxyURL != "" {
		cfg.Fetcher.ProxyURL = proxyURL
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
