// Package web implements the HTTP server for the weather form page and JSON API.
//
// The server renders a single HTML page with a city input; submitted queries
// carry the same verbosity suffixes as the CLI. A small JSON API exposes the
// same lookups at /api/weather, a metrics snapshot at /api/metrics, and a
// health check at /healthz.
package web
