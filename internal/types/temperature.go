package types

import "math"

const (
	SymbolFahrenheit = "°F"
	SymbolCelsius    = "°C"
)

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	var celsius = (fahrenheit - 32) * 5 / 9
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

// Display returns the temperature rounded to a whole degree in the requested
// unit. Halves round away from zero.
func (t Temperature) Display(celsius bool) int {
	if celsius {
		return int(math.Round(t.Celsius))
	}
	return int(math.Round(t.Fahrenheit))
}

// DisplayTemperature converts a Fahrenheit reading into the whole-degree value
// shown to the user.
func DisplayTemperature(fahrenheit float64, celsius bool) int {
	return NewTemperatureFromFahrenheit(fahrenheit).Display(celsius)
}

// UnitSymbol returns the suffix printed after a display temperature.
func UnitSymbol(celsius bool) string {
	if celsius {
		return SymbolCelsius
	}
	return SymbolFahrenheit
}
