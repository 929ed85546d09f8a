package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/logger"
	"github.com/pfrederiksen/passing-stats/internal/passing"
	"github.com/pfrederiksen/passing-stats/internal/scraper"
	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/pfrederiksen/passing-stats/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	DefaultCacheDir = "~/.cache/passing-stats"
)

var (
	flagYear        int
	flagFormat      string
	flagSort        []string
	flagInteractive bool
	flagCacheDir    string
	flagRedisAddr   string
	flagChromeURL   string
	flagNoBrowser   bool
	flagVerbose     bool
)

// Fetcher returns the raw passing page for a season.
type Fetcher interface {
	Fetch(ctx context.Context, year int) (string, error)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passing-stats",
		Short: "Show a season's top NFL passers with normalized scores",
		Long: `Fetches a season's passing table from pro-football-reference.com, keeps the
top 40 passers by yardage and scores their yards, touchdowns and passer rating
(QBR from 2006) as z-scores relative to that group.`,
		RunE:          runFetch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", envOr("PASSING_STATS_CACHE_DIR", DefaultCacheDir), "Directory for cached season pages (or env: PASSING_STATS_CACHE_DIR)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging (otherwise env: PASSING_STATS_LOG_LEVEL, default WARN)")

	cmd.Flags().IntVar(&flagYear, "year", season.Max, fmt.Sprintf("Season to show (%d-%d)", season.Min, season.Max))
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or csv")
	cmd.Flags().StringArrayVar(&flagSort, "sort", nil, "Sort by column; repeat the same column to reverse the order")
	cmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Read column names from stdin and re-sort after each")
	cmd.Flags().StringVar(&flagRedisAddr, "redis-addr", os.Getenv("PASSING_STATS_REDIS_ADDR"), "Cache pages in Redis at this address instead of on disk (or env: PASSING_STATS_REDIS_ADDR)")
	cmd.Flags().StringVar(&flagChromeURL, "chrome-url", os.Getenv("PASSING_STATS_CHROME_URL"), "DevTools URL of a running Chrome for the browser fallback (or env: PASSING_STATS_CHROME_URL)")
	cmd.Flags().BoolVar(&flagNoBrowser, "no-browser", false, "Never fall back to a headless browser")

	cmd.AddCommand(newSchemaCmd(), newCacheCmd())

	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func setupLogging() {
	level := logger.ParseLevel(envOr("PASSING_STATS_LOG_LEVEL", string(logger.LevelWarn)))
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	setupLogging()
	defer logger.Sync() // nolint:errcheck

	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if err := season.Validate(flagYear); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []scraper.Option{scraper.WithStore(store)}
	if !flagNoBrowser {
		if chrome := scraper.NewChrome(flagChromeURL); chrome.Available() {
			opts = append(opts, scraper.WithBrowser(chrome))
		} else {
			logger.Debug("No Chrome/Chromium found, browser fallback disabled", nil)
		}
	}
	sc := scraper.New(opts...)

	rs, err := Load(ctx, sc, flagYear)
	if err != nil {
		return errors.Wrap(err, "failed to fetch stats")
	}

	table := NewTable(rs)
	for _, col := range flagSort {
		if err := table.SortBy(col); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if err := WriteOutput(out, table, format); err != nil {
		return errors.Wrap(err, "writing output")
	}

	if flagInteractive {
		if err := interact(cmd.InOrStdin(), out, cmd.ErrOrStderr(), table, format); err != nil {
			return err
		}
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields(logger.GetMetricsSnapshot()))
	}
	return nil
}

// Load runs one fetch-and-build pass for year.
func Load(ctx context.Context, f Fetcher, year int) (*passing.ResultSet, error) {
	page, err := f.Fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	rs, err := passing.FromHTML(page, year)
	if err != nil {
		return nil, err
	}

	logger.SetGauge("result.records", float64(len(rs.Records)))
	logger.Info("Built result set", logger.Fields{
		"year":    year,
		"schema":  rs.Band.Version,
		"records": len(rs.Records),
	})
	return rs, nil
}

func openStore(ctx context.Context) (storage.Store, func(), error) {
	if flagRedisAddr != "" {
		rs, err := storage.NewRedis(ctx, flagRedisAddr)
		if err != nil {
			return nil, nil, errors.Wrap(err, "initializing cache")
		}
		return rs, func() { rs.Close() }, nil // nolint:errcheck
	}

	fs, err := storage.New(flagCacheDir)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initializing cache")
	}
	logger.Debug("Using file cache", logger.Fields{"dir": fs.Dir()})
	return fs, func() {}, nil
}

// interact re-sorts the table for every column name read from in. An empty
// line or EOF ends the session.
func interact(in io.Reader, out, prompt io.Writer, table *Table, format OutputFormat) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(prompt, "\nSort by column (blank to quit): ")
		if !scanner.Scan() {
			fmt.Fprintln(prompt)
			return scanner.Err()
		}
		col := strings.TrimSpace(scanner.Text())
		if col == "" {
			return nil
		}
		if err := table.SortBy(col); err != nil {
			fmt.Fprintf(prompt, "%v\n", err)
			continue
		}
		if err := WriteOutput(out, table, format); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
