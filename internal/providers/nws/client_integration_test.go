//go:build integration

package nws

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestClient_GetPointAndForecast_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.1154
	lon := -107.6584

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	client := NewClient(logger)

	t.Logf("Making API call to NWS Points API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	point, err := client.GetPoint(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get point data: %v", err)
	}

	rawJSON, err := json.MarshalIndent(point, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if point.Properties.Forecast == "" {
		t.Fatal("Forecast URL is empty")
	}
	t.Logf("  Forecast URL: %s", point.Properties.Forecast)

	forecast, err := client.GetForecast(context.Background(), point.Properties.Forecast)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	if len(forecast.Properties.Periods) == 0 {
		t.Fatal("Forecast has no periods")
	}

	for _, p := range forecast.Properties.Periods {
		t.Logf("  %s: %.0f%s - %s", p.Name, p.Temperature, p.TemperatureUnit, p.ShortForecast)
	}

	t.Log("✓ Points and forecast API calls successful")
}
