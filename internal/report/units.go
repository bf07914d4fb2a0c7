package report

import "fmt"

// Units is the OpenWeatherMap measurement system for a request
type Units string

const (
	UnitsMetric   Units = "metric"   // Celsius, m/s
	UnitsImperial Units = "imperial" // Fahrenheit, mph
	UnitsStandard Units = "standard" // Kelvin, m/s
)

// ParseUnits validates a units value
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return Units(s), nil
	default:
		return "", fmt.Errorf("invalid units: %q (must be 'metric', 'imperial' or 'standard')", s)
	}
}

// TempSymbol returns the temperature unit symbol
func (u Units) TempSymbol() string {
	switch u {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	default:
		return "°C"
	}
}

// SpeedSymbol returns the wind speed unit symbol
func (u Units) SpeedSymbol() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}
