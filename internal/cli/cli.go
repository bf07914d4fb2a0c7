package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/config"
	"github.com/pfrederiksen/weather-cli/internal/favorites"
	"github.com/pfrederiksen/weather-cli/internal/report"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is set via ldflags during release builds
var Version = "dev"

// errQueriesFailed signals that at least one city lookup failed after
// the per-city errors were already written to the output. Execute maps
// it to a non-zero exit code without printing it again.
var errQueriesFailed = errors.New("one or more lookups failed")

var (
	flagUnits   string
	flagFormat  string
	flagDataDir string
	flagTimeout time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-cli [city[+|++]...]",
		Short: "Look up current weather conditions for one or more cities",
		Long: `A CLI tool to look up current weather conditions via OpenWeatherMap.
Append '+' to a city for coordinates and observation time, '++' for the
full report (timezone, pressure, humidity, visibility, wind). With no
cities given, saved favorites are queried.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runQuery,
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", config.DefaultDataDir, "Data directory for favorites")

	cmd.Flags().StringVar(&flagUnits, "units", "", "Units: metric, imperial or standard (default from WEATHER_UNITS or metric)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-request timeout (default 10s)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newFavoritesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runQuery is the main command logic
func runQuery(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.DataDir = dataDir(cmd)
	if flagUnits != "" {
		units, err := report.ParseUnits(strings.ToLower(flagUnits))
		if err != nil {
			return err
		}
		cfg.Units = units
	}

	// No cities on the command line means query the saved favorites
	raws := args
	if len(raws) == 0 {
		store, err := favorites.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("initializing favorites: %w", err)
		}
		raws, err = store.List()
		if err != nil {
			return fmt.Errorf("loading favorites: %w", err)
		}
		if len(raws) == 0 {
			return fmt.Errorf("no cities given and no favorites saved (try 'weather-cli favorites add <city>')")
		}
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Querying %d favorites\n", len(raws))
		}
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	client := cfg.NewClient()
	if flagTimeout > 0 {
		client.HTTPClient.Timeout = flagTimeout
	}

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Units:     string(cfg.Units),
	}

	failed := false
	for _, raw := range raws {
		city := &CityResult{Query: strings.TrimSpace(raw)}
		result.Results = append(result.Results, city)

		q, err := report.ParseQuery(raw)
		if err != nil {
			city.Error = err.Error()
			failed = true
			continue
		}
		city.Query = q.String()

		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Fetching weather for %s (%s detail)\n", q.City, q.Detail)
		}

		rep, err := client.Current(cmd.Context(), q)
		if err != nil {
			city.Error = err.Error()
			failed = true
			continue
		}
		city.Report = rep
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if failed {
		return errQueriesFailed
	}
	return nil
}

// dataDir resolves the data directory: an explicit flag wins over the
// WEATHER_DATA_DIR environment variable, which wins over the default
func dataDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("data-dir") {
		return flagDataDir
	}
	if v := os.Getenv("WEATHER_DATA_DIR"); v != "" {
		return v
	}
	return config.DefaultDataDir
}

// newVersionCmd creates the version subcommand
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weather-cli %s\n", Version)
		},
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errQueriesFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(ExitError)
	}
}
