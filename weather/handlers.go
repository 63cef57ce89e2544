package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps a text payload as a single-part tool result. Every
// handler outcome, including failures, goes back through here: the tools
// answer with text, never with a protocol-level error.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// NewGetAlertsHandler returns the get-alerts handler. The state code arrives
// length-validated by the input schema; the handler only normalizes case.
func NewGetAlertsHandler(client *Client, logger *Logger) func(context.Context, *mcp.CallToolRequest, GetAlertsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetAlertsInput) (*mcp.CallToolResult, any, error) {
		reqID := uuid.NewString()
		state := strings.ToUpper(input.State)
		RecordToolInvocation()
		logger.Debug("[%s] get-alerts state=%s", reqID, state)

		alerts, err := client.ActiveAlerts(ctx, state)
		if err != nil {
			RecordUpstreamFailure()
			logger.Error("[%s] alerts fetch for %s failed: %v", reqID, state, err)
			return textResult(fmt.Sprintf("Failed to retrieve active alerts for %s.", state)), nil, nil
		}

		if len(alerts.Features) == 0 {
			return textResult(fmt.Sprintf("No active weather alerts found for %s.", state)), nil, nil
		}

		// Upstream order is preserved; no sorting, no deduplication.
		blocks := make([]string, 0, len(alerts.Features))
		for _, feature := range alerts.Features {
			blocks = append(blocks, formatAlert(feature))
		}

		text := fmt.Sprintf("Active weather alerts for %s:\n\n%s", state, joinBlocks(blocks))
		return textResult(text), nil, nil
	}
}

// NewGetForecastHandler returns the get-forecast handler: resolve the
// coordinate to a grid point, then fetch the forecast the point names.
func NewGetForecastHandler(client *Client, logger *Logger) func(context.Context, *mcp.CallToolRequest, GetForecastInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetForecastInput) (*mcp.CallToolResult, any, error) {
		reqID := uuid.NewString()
		RecordToolInvocation()
		coords := fmt.Sprintf("%.4f, %.4f", input.Latitude, input.Longitude)
		logger.Debug("[%s] get-forecast %s", reqID, coords)

		points, err := client.Points(ctx, input.Latitude, input.Longitude)
		if err != nil {
			RecordUpstreamFailure()
			logger.Error("[%s] point lookup for %s failed: %v", reqID, coords, err)
			return textResult(fmt.Sprintf("Failed to retrieve forecast point data for %s.", coords)), nil, nil
		}

		// A resolved point without a forecast URL is not a transport failure:
		// the provider has no data for this place.
		if points.Properties.Forecast == "" {
			logger.Warn("[%s] no forecast URL for %s", reqID, coords)
			return textResult(fmt.Sprintf("No forecast is available for %s. This location may be outside the provider's coverage area.", coords)), nil, nil
		}

		label := coords
		loc := points.Properties.RelativeLocation.Properties
		if loc.City != "" && loc.State != "" {
			label = loc.City + ", " + loc.State
		}

		forecast, err := client.Forecast(ctx, points.Properties.Forecast)
		if err != nil {
			RecordUpstreamFailure()
			logger.Error("[%s] forecast fetch for %s failed: %v", reqID, label, err)
			return textResult(fmt.Sprintf("Failed to retrieve forecast data for %s.", label)), nil, nil
		}

		periods := forecast.Properties.Periods
		if len(periods) == 0 {
			return textResult(fmt.Sprintf("No forecast periods available for %s.", label)), nil, nil
		}

		blocks := make([]string, 0, len(periods))
		for _, period := range periods {
			blocks = append(blocks, formatPeriod(period))
		}

		text := fmt.Sprintf("Weather forecast for %s:\n\n%s", label, joinBlocks(blocks))
		return textResult(text), nil, nil
	}
}
