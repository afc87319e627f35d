// Package weather defines current weather observations and the reports derived from them.
package weather

import (
	"math"
	"strings"
)

// Units a report temperature may be expressed in
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
)

// Fallbacks for observations that carry no condition data
const (
	UnknownCondition   = "Unknown"
	MissingDescription = "No description"
	FahrenheitCountry  = "US"
)

// Observation is the raw current weather of a city as returned by the provider, in metric units
type Observation struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	TempCelsius float64 `json:"temp_celsius"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}

// Report is the user facing weather summary
type Report struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Temperature int    `json:"temperature"`
	Unit        string `json:"unit"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf, so -0.5 becomes 0
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// NewReport converts an observation into a report. Temperatures for US locations are given in Fahrenheit.
func NewReport(obs *Observation) *Report {
	report := &Report{
		City:        obs.City,
		Country:     obs.Country,
		Temperature: roundHalfUp(obs.TempCelsius),
		Unit:        UnitCelsius,
		Condition:   obs.Condition,
		Description: obs.Description,
	}

	if strings.EqualFold(obs.Country, FahrenheitCountry) {
		report.Temperature = roundHalfUp(obs.TempCelsius*9/5 + 32)
		report.Unit = UnitFahrenheit
	}
	if report.Condition == "" {
		report.Condition = UnknownCondition
	}
	if report.Description == "" {
		report.Description = MissingDescription
	}
	return report
}

// NormalizeCity produces the cache key form of a city name
func NormalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}
