package main

import "github.com/google/jsonschema-go/jsonschema"

// Explicit argument schemas for the two tools. The SDK validates incoming
// arguments against these before a handler runs, so schema violations are
// reported by the transport and never reach the handlers.

func intp(v int) *int {
	return &v
}

func floatp(v float64) *float64 {
	return &v
}

func getAlertsInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"state": {
				Type:        "string",
				Description: "two-letter US state code (e.g. CA, NY)",
				MinLength:   intp(2),
				MaxLength:   intp(2),
			},
		},
		Required: []string{"state"},
	}
}

func getForecastInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"latitude": {
				Type:        "number",
				Description: "latitude of the location",
				Minimum:     floatp(-90),
				Maximum:     floatp(90),
			},
			"longitude": {
				Type:        "number",
				Description: "longitude of the location",
				Minimum:     floatp(-180),
				Maximum:     floatp(180),
			},
		},
		Required: []string{"latitude", "longitude"},
	}
}
