package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "v1.0.0"

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// A .env file is optional; the real environment wins.
	_ = godotenv.Load()
	InitLogger()
	logger := GetLogger()
	defer logger.Close()

	baseURL := getEnv("WEATHER_API_BASE", defaultBaseURL)
	userAgent := getEnv("WEATHER_USER_AGENT", defaultUserAgent)
	client := NewClient(baseURL, userAgent)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "weather",
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-alerts",
		Description: "Get active weather alerts for a US state",
		InputSchema: getAlertsInputSchema(),
	}, NewGetAlertsHandler(client, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-forecast",
		Description: "Get the weather forecast for a location by latitude and longitude",
		InputSchema: getForecastInputSchema(),
	}, NewGetForecastHandler(client, logger))

	logger.Info("Starting weather MCP server (upstream %s)", baseURL)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("Server terminated: %v", err)
		LogMetrics()
		logger.Close()
		os.Exit(1)
	}

	LogMetrics()
}
