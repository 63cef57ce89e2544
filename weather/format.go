package main

import (
	"fmt"
	"strings"
)

// blockSeparator sits between formatted entries in a multi-entry payload.
const blockSeparator = "\n---\n"

const (
	unknownField       = "Unknown"
	headlineFallback   = "No headline"
	windFallback       = "N/A"
	forecastFallback   = "No forecast available"
	defaultTemperature = "F"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// formatAlert renders one alert feature as a fixed-layout text block. Every
// field falls back independently; the formatter never fails.
func formatAlert(feature AlertFeature) string {
	p := feature.Properties
	lines := []string{
		"Event: " + orDefault(p.Event, unknownField),
		"Area: " + orDefault(p.AreaDesc, unknownField),
		"Severity: " + orDefault(p.Severity, unknownField),
		"Status: " + orDefault(p.Status, unknownField),
		"Headline: " + orDefault(p.Headline, headlineFallback),
	}
	return strings.Join(lines, "\n")
}

// formatPeriod renders one forecast period. A nil temperature renders as
// Unknown; a present temperature with no unit defaults to Fahrenheit.
func formatPeriod(period ForecastPeriod) string {
	temperature := unknownField
	if period.Temperature != nil {
		unit := orDefault(period.TemperatureUnit, defaultTemperature)
		temperature = fmt.Sprintf("%d°%s", *period.Temperature, unit)
	}

	lines := []string{
		orDefault(period.Name, unknownField) + ":",
		"Temperature: " + temperature,
		"Wind: " + orDefault(period.WindSpeed, windFallback) + " " + orDefault(period.WindDirection, windFallback),
		orDefault(period.ShortForecast, forecastFallback),
	}
	return strings.Join(lines, "\n")
}

func joinBlocks(blocks []string) string {
	return strings.Join(blocks, blockSeparator)
}
