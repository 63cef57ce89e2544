package main

// Wire types for the api.weather.gov geo-JSON documents. Only the fields the
// tools consume are decoded; everything the provider marks optional stays
// optional here.

// AlertsResponse is the /alerts/active document.
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is one alert in the active-alerts feature list.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

type AlertProperties struct {
	Event    string `json:"event"`
	AreaDesc string `json:"areaDesc"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Headline string `json:"headline"`
}

// PointsResponse is the /points/{lat},{lon} document.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

type PointsProperties struct {
	Forecast         string           `json:"forecast"`
	RelativeLocation RelativeLocation `json:"relativeLocation"`
}

type RelativeLocation struct {
	Properties RelativeLocationProperties `json:"properties"`
}

type RelativeLocationProperties struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// ForecastResponse is the gridpoint forecast document referenced by the
// points response.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastPeriod is one named time segment (e.g. "Tonight") of a forecast.
type ForecastPeriod struct {
	Number                     int               `json:"number"`
	Name                       string            `json:"name"`
	StartTime                  string            `json:"startTime"`
	EndTime                    string            `json:"endTime"`
	IsDaytime                  bool              `json:"isDaytime"`
	Temperature                *int              `json:"temperature"`
	TemperatureUnit            string            `json:"temperatureUnit"`
	ProbabilityOfPrecipitation QuantitativeValue `json:"probabilityOfPrecipitation"`
	Dewpoint                   QuantitativeValue `json:"dewpoint"`
	RelativeHumidity           QuantitativeValue `json:"relativeHumidity"`
	WindSpeed                  string            `json:"windSpeed"`
	WindDirection              string            `json:"windDirection"`
	ShortForecast              string            `json:"shortForecast"`
	DetailedForecast           string            `json:"detailedForecast"`
}

// QuantitativeValue is the provider's unit + nullable-value pair.
type QuantitativeValue struct {
	UnitCode string   `json:"unitCode"`
	Value    *float64 `json:"value"`
}

// Tool input types
type GetAlertsInput struct {
	State string `json:"state" jsonschema:"two-letter US state code (e.g. CA, NY)"`
}

type GetForecastInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude of the location (-90 to 90)"`
	Longitude float64 `json:"longitude" jsonschema:"longitude of the location (-180 to 180)"`
}
