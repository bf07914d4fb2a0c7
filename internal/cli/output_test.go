package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/report"
)

func testResult() *OutputResult {
	return &OutputResult{
		CheckedAt: time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC),
		Units:     "metric",
		Results: []*CityResult{
			{
				Query: "london++",
				Report: &report.Report{
					City:        "london",
					Country:     "GB",
					Latitude:    51.5085,
					Longitude:   -0.1257,
					TimezoneSec: 3600,
					ObservedAt:  time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC),
					Temperature: 18.4,
					FeelsLike:   17.9,
					Pressure:    1012,
					Humidity:    72,
					Visibility:  10000,
					WindSpeed:   4.6,
					Description: "light rain",
					Units:       report.UnitsMetric,
					Detail:      report.DetailFull,
				},
			},
			{
				Query: "atlantis",
				Error: "no weather info for atlantis: city not found",
			},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(), FormatText); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"london, GB",
		"Temperature",
		"18.4 °C",
		"Feels like",
		"17.9 °C",
		"Pressure",
		"1012 hPa",
		"Humidity",
		"72%",
		"Wind speed",
		"4.6 m/s",
		"light rain",
		"2026-08-29 14:30:00 UTC",
		"UTC+01:00",
		"atlantis: no weather info for atlantis",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextBasicDetail(t *testing.T) {
	result := testResult()
	result.Results = result.Results[:1]
	result.Results[0].Report.Detail = report.DetailBasic

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Temperature") {
		t.Errorf("basic output missing Temperature:\n%s", out)
	}
	for _, absent := range []string{"Latitude", "Pressure", "Wind speed", "Timezone"} {
		if strings.Contains(out, absent) {
			t.Errorf("basic output should not contain %q:\n%s", absent, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded struct {
		CheckedAt time.Time `json:"checked_at"`
		Units     string    `json:"units"`
		Results   []struct {
			Query  string         `json:"query"`
			Report map[string]any `json:"report"`
			Error  string         `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Units != "metric" {
		t.Errorf("units = %q, want metric", decoded.Units)
	}
	if len(decoded.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(decoded.Results))
	}

	london := decoded.Results[0]
	if london.Query != "london++" {
		t.Errorf("query = %q, want london++", london.Query)
	}
	if london.Report["temperature"] != 18.4 {
		t.Errorf("temperature = %v, want 18.4", london.Report["temperature"])
	}
	if _, ok := london.Report["wind_speed"]; !ok {
		t.Error("full-detail report should include wind_speed")
	}

	failed := decoded.Results[1]
	if failed.Report != nil {
		t.Error("failed query should have no report")
	}
	if !strings.Contains(failed.Error, "no weather info") {
		t.Errorf("error = %q, want city-not-found message", failed.Error)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(), OutputFormat("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
