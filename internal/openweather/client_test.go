package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/report"
)

func fixtureServer(t *testing.T, fixture string, capture *http.Request) *httptest.Server {
	t.Helper()

	data, err := os.ReadFile("../../testdata/fixtures/" + fixture)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = *r
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data) //nolint:errcheck
	}))
}

func TestCurrent(t *testing.T) {
	var captured http.Request
	server := fixtureServer(t, "current_london.json", &captured)
	defer server.Close()

	client := New("test-key")
	client.BaseURL = server.URL

	q := report.Query{City: "london", Detail: report.DetailFull}
	rep, err := client.Current(context.Background(), q)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if captured.URL.Path != "/data/2.5/weather" {
		t.Errorf("path = %s, want /data/2.5/weather", captured.URL.Path)
	}
	params := captured.URL.Query()
	if got := params.Get("q"); got != "london" {
		t.Errorf("q param = %q, want %q", got, "london")
	}
	if got := params.Get("appid"); got != "test-key" {
		t.Errorf("appid param = %q, want %q", got, "test-key")
	}
	if got := params.Get("units"); got != "metric" {
		t.Errorf("units param = %q, want %q", got, "metric")
	}
	if got := captured.Header.Get("User-Agent"); got != UserAgent {
		t.Errorf("User-Agent = %q, want %q", got, UserAgent)
	}

	if rep.City != "london" {
		t.Errorf("City = %q, want %q", rep.City, "london")
	}
	if rep.Country != "GB" {
		t.Errorf("Country = %q, want %q", rep.Country, "GB")
	}
	if rep.Latitude != 51.5085 || rep.Longitude != -0.1257 {
		t.Errorf("coords = (%v, %v), want (51.5085, -0.1257)", rep.Latitude, rep.Longitude)
	}
	if rep.Temperature != 18.4 {
		t.Errorf("Temperature = %v, want 18.4", rep.Temperature)
	}
	if rep.FeelsLike != 17.9 {
		t.Errorf("FeelsLike = %v, want 17.9", rep.FeelsLike)
	}
	if rep.Pressure != 1012 {
		t.Errorf("Pressure = %v, want 1012", rep.Pressure)
	}
	if rep.Humidity != 72 {
		t.Errorf("Humidity = %v, want 72", rep.Humidity)
	}
	if rep.Visibility != 10000 {
		t.Errorf("Visibility = %v, want 10000", rep.Visibility)
	}
	if rep.WindSpeed != 4.6 {
		t.Errorf("WindSpeed = %v, want 4.6", rep.WindSpeed)
	}
	if rep.Description != "light rain" {
		t.Errorf("Description = %q, want %q", rep.Description, "light rain")
	}
	if rep.TimezoneSec != 3600 {
		t.Errorf("TimezoneSec = %v, want 3600", rep.TimezoneSec)
	}
	if want := time.Unix(1787841000, 0).UTC(); !rep.ObservedAt.Equal(want) {
		t.Errorf("ObservedAt = %v, want %v", rep.ObservedAt, want)
	}
	if rep.Detail != report.DetailFull {
		t.Errorf("Detail = %q, want %q", rep.Detail, report.DetailFull)
	}
	if rep.Units != report.UnitsMetric {
		t.Errorf("Units = %q, want %q", rep.Units, report.UnitsMetric)
	}
}

func TestCurrentMissingVisibility(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":30.0,"feels_like":28.5},"dt":1787841000,"name":"Cairo"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New("test-key")
	client.BaseURL = server.URL

	rep, err := client.Current(context.Background(), report.Query{City: "cairo", Detail: report.DetailFull})
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if rep.Visibility != 0 {
		t.Errorf("Visibility = %v, want 0 when absent from payload", rep.Visibility)
	}
	if rep.Description != "clear sky" {
		t.Errorf("Description = %q, want %q", rep.Description, "clear sky")
	}
}

func TestCurrentEmptyWeatherList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[],"main":{"temp":10},"dt":1787841000}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New("test-key")
	client.BaseURL = server.URL

	rep, err := client.Current(context.Background(), report.Query{City: "nowhere", Detail: report.DetailBasic})
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if rep.Description != "" {
		t.Errorf("Description = %q, want empty for empty weather list", rep.Description)
	}
}
