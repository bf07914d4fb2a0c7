// Package openweather provides an HTTP client for the OpenWeatherMap
// current-weather API.
//
// The client fetches current conditions for a city and maps the API response
// onto the report model. Transient failures (network errors, 429s, 5xx) are
// retried with exponential backoff; an unknown city or a rejected API key is
// reported through sentinel errors that callers can test with errors.Is.
package openweather
