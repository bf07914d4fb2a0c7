package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pfrederiksen/weather-cli/internal/report"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	UserAgent      = "weather-cli/1.0 (github.com/pfrederiksen/weather-cli)"
	Timeout        = 10 * time.Second

	// maxRetries is the number of retries after the first attempt
	maxRetries = 2
)

var (
	// ErrCityNotFound means the API has no data for the queried city
	ErrCityNotFound = errors.New("city not found")

	// ErrBadCredentials means the API rejected the configured key
	ErrBadCredentials = errors.New("invalid API key")
)

// Client is a client for the OpenWeatherMap current-weather API.
// The API key never appears in returned errors.
type Client struct {
	APIKey     string
	BaseURL    string
	Units      report.Units
	HTTPClient *http.Client
	UserAgent  string
}

// New creates a new OpenWeatherMap client with metric units
func New(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Units:   report.UnitsMetric,
		HTTPClient: &http.Client{
			Timeout: Timeout,
		},
		UserAgent: UserAgent,
	}
}

// currentResponse is the subset of the /data/2.5/weather payload we consume
type currentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Dt       int64 `json:"dt"`
	Timezone int   `json:"timezone"`
	Sys      struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

// Current fetches current conditions for the queried city
func (c *Client) Current(ctx context.Context, q report.Query) (*report.Report, error) {
	params := url.Values{}
	params.Set("q", q.City)
	params.Set("appid", c.APIKey)
	params.Set("units", string(c.Units))

	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.BaseURL, params.Encode())

	var body currentResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", c.UserAgent)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			// url.Error echoes the full request URL, key included
			return fmt.Errorf("fetching weather for %s: %w", q.City, redactURL(err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to decode
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("no weather info for %s: %w", q.City, ErrCityNotFound))
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(fmt.Errorf("authenticating with OpenWeatherMap: %w", ErrBadCredentials))
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		body = currentResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return backoff.Permanent(fmt.Errorf("parsing response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 5 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)); err != nil {
		return nil, err
	}

	return body.toReport(q, c.Units), nil
}

// redactURL strips the request URL from transport errors so the
// appid query parameter never reaches callers or logs
func redactURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// toReport maps the API payload onto the report model
func (cr *currentResponse) toReport(q report.Query, units report.Units) *report.Report {
	description := ""
	if len(cr.Weather) > 0 {
		description = cr.Weather[0].Description
	}

	return &report.Report{
		City:        q.City,
		Country:     cr.Sys.Country,
		Latitude:    cr.Coord.Lat,
		Longitude:   cr.Coord.Lon,
		TimezoneSec: cr.Timezone,
		ObservedAt:  time.Unix(cr.Dt, 0).UTC(),
		Temperature: cr.Main.Temp,
		FeelsLike:   cr.Main.FeelsLike,
		Pressure:    cr.Main.Pressure,
		Humidity:    cr.Main.Humidity,
		Visibility:  cr.Visibility,
		WindSpeed:   cr.Wind.Speed,
		Description: description,
		Units:       units,
		Detail:      q.Detail,
	}
}
