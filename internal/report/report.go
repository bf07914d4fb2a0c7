package report

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is how observation times are rendered
const DateLayout = "2006-01-02 15:04:05 UTC"

// Report holds the current weather conditions for one city.
// All fields are always populated from the API response; Detail controls
// which of them Fields and MarshalJSON expose.
type Report struct {
	City        string    // city name as queried (lowercase)
	Country     string    // ISO country code from the API
	Latitude    float64
	Longitude   float64
	TimezoneSec int       // offset from UTC in seconds
	ObservedAt  time.Time // observation time, UTC
	Temperature float64
	FeelsLike   float64
	Pressure    int       // hPa
	Humidity    int       // percent
	Visibility  int       // meters
	WindSpeed   float64
	Description string
	Units       Units
	Detail      Detail
}

// Field is one label/value pair of a rendered report
type Field struct {
	Label string
	Value string
}

// Fields returns the ordered label/value pairs for the report's detail level.
// The order matches the original report layout: location first, then the
// observation time, then conditions.
func (r *Report) Fields() []Field {
	var fields []Field

	if r.Detail == DetailExtended || r.Detail == DetailFull {
		fields = append(fields,
			Field{"Latitude", fmt.Sprintf("%.4f", r.Latitude)},
			Field{"Longitude", fmt.Sprintf("%.4f", r.Longitude)},
		)
		if r.Detail == DetailFull {
			fields = append(fields, Field{"Timezone", formatOffset(r.TimezoneSec)})
		}
		fields = append(fields, Field{"Date", r.ObservedAt.UTC().Format(DateLayout)})
	}

	fields = append(fields,
		Field{"Temperature", fmt.Sprintf("%.1f %s", r.Temperature, r.Units.TempSymbol())},
		Field{"Feels like", fmt.Sprintf("%.1f %s", r.FeelsLike, r.Units.TempSymbol())},
	)

	if r.Detail == DetailFull {
		fields = append(fields,
			Field{"Pressure", fmt.Sprintf("%d hPa", r.Pressure)},
			Field{"Humidity", fmt.Sprintf("%d%%", r.Humidity)},
			Field{"Visibility", fmt.Sprintf("%d m", r.Visibility)},
			Field{"Wind speed", fmt.Sprintf("%.1f %s", r.WindSpeed, r.Units.SpeedSymbol())},
		)
	}

	fields = append(fields, Field{"Description", r.Description})

	return fields
}

// MarshalJSON emits only the keys appropriate to the report's detail level
func (r *Report) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"temperature": r.Temperature,
		"feels_like":  r.FeelsLike,
		"description": r.Description,
	}

	if r.Detail == DetailExtended || r.Detail == DetailFull {
		m["latitude"] = r.Latitude
		m["longitude"] = r.Longitude
		m["date"] = r.ObservedAt.UTC().Format(DateLayout)
	}

	if r.Detail == DetailFull {
		m["timezone"] = r.TimezoneSec
		m["pressure"] = r.Pressure
		m["humidity"] = r.Humidity
		m["visibility"] = r.Visibility
		m["wind_speed"] = r.WindSpeed
	}

	return json.Marshal(m)
}

// formatOffset renders a UTC offset in seconds as "UTC+HH:MM"
func formatOffset(sec int) string {
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, sec/3600, (sec%3600)/60)
}
