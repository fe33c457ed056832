package display

import (
	"fmt"

	"fhapp-weather/internal/types"
)

// FormatTemperature renders a Fahrenheit reading as e.g. "45°F" or "7°C".
func FormatTemperature(fahrenheit float64, celsius bool) string {
	return fmt.Sprintf("%d%s", types.DisplayTemperature(fahrenheit, celsius), types.UnitSymbol(celsius))
}

// PeriodLine composes the single-line summary of a forecast period,
// "Tonight: 45°F - Rain".
func PeriodLine(name string, fahrenheit float64, shortForecast string, celsius bool) string {
	return fmt.Sprintf("%s: %s - %s", name, FormatTemperature(fahrenheit, celsius), shortForecast)
}
