// Package cli implements the command-line interface for weather-cli.
//
// The cli package provides the Cobra-based CLI for looking up current weather
// conditions. City arguments carry an optional verbosity suffix ("london",
// "london+", "london++"), output is rendered as aligned text tables or JSON,
// and saved favorites are queried when no cities are given. It coordinates the
// openweather, report, favorites and config packages.
package cli
