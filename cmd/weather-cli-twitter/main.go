package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/config"
	"github.com/pfrederiksen/weather-cli/internal/favorites"
	"github.com/pfrederiksen/weather-cli/internal/notifier"
	"github.com/pfrederiksen/weather-cli/internal/report"
)

var (
	dryRun    = flag.Bool("dry-run", false, "Print tweets without posting")
	maxTweets = flag.Int("max-tweets", 10, "Maximum number of tweets to post")
	units     = flag.String("units", "", "Units: metric, imperial or standard")
	timeout   = flag.Duration("timeout", 2*time.Minute, "Overall run timeout")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *units != "" {
		u, err := report.ParseUnits(strings.ToLower(*units))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Units = u
	}

	// Cities come from the command line, falling back to saved favorites
	raws := flag.Args()
	if len(raws) == 0 {
		store, err := favorites.New(cfg.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing favorites: %v\n", err)
			os.Exit(1)
		}
		raws, err = store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading favorites: %v\n", err)
			os.Exit(1)
		}
	}

	if len(raws) == 0 {
		fmt.Println("No cities to tweet")
		os.Exit(0)
	}

	if len(raws) > *maxTweets {
		raws = raws[:*maxTweets]
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := cfg.NewClient()

	reports := make([]*report.Report, 0, len(raws))
	for _, raw := range raws {
		q, err := report.ParseQuery(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %q: %v\n", raw, err)
			continue
		}

		rep, err := client.Current(ctx, q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", q.City, err)
			continue
		}
		reports = append(reports, rep)
	}

	if len(reports) == 0 {
		fmt.Fprintln(os.Stderr, "No reports fetched, nothing to tweet")
		os.Exit(1)
	}

	var tw notifier.Notifier
	if *dryRun {
		tw = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would tweet %d reports:\n\n", len(reports))
	} else {
		client, err := notifier.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		tw = client
	}

	if err := tw.Notify(reports); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting tweets: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully posted %d tweets\n", len(reports))
	}
}
