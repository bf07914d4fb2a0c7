package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/report"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// CityResult is the outcome of one city query
type CityResult struct {
	Query  string         `json:"query"`
	Report *report.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time     `json:"checked_at"`
	Units     string        `json:"units"`
	Results   []*CityResult `json:"results"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs one aligned table section per city
func writeText(w io.Writer, result *OutputResult) error {
	for i, city := range result.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		if city.Error != "" {
			fmt.Fprintf(w, "%s: %s\n", city.Query, city.Error)
			continue
		}

		rep := city.Report
		if rep.Country != "" {
			fmt.Fprintf(w, "%s, %s\n", rep.City, rep.Country)
		} else {
			fmt.Fprintf(w, "%s\n", rep.City)
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range rep.Fields() {
			fmt.Fprintf(tw, "  %s\t%s\n", f.Label, f.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
