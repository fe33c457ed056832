package screen

import (
	"fhapp-weather/internal/display"
	"fhapp-weather/internal/providers/nws"
	"fhapp-weather/internal/types"
)

// Status is the explicit state of a weather screen.
type Status string

const (
	StatusLoading          Status = "loading"
	StatusReady            Status = "ready"
	StatusPermissionDenied Status = "permission_denied"
	StatusError            Status = "error"
)

// LoadingLabel is shown while no forecast document is available yet.
const LoadingLabel = "Loading weather data..."

// View is everything the presentation layer needs to draw the screen.
type View struct {
	Status        Status       `json:"status"`
	Message       string       `json:"message,omitempty"`
	Celsius       bool         `json:"celsius"`
	DetailVisible bool         `json:"detail_visible"`
	Timezone      string       `json:"timezone,omitempty"`
	Current       *CurrentView `json:"current,omitempty"`
	Periods       []PeriodView `json:"periods,omitempty"`
}

// CurrentView is the compact card showing the first forecast period.
type CurrentView struct {
	Name        string            `json:"name"`
	Condition   display.Condition `json:"condition"`
	Temperature string            `json:"temperature"`
	Label       string            `json:"label"`
}

// PeriodView is one row of the detail list.
type PeriodView struct {
	Name        string            `json:"name"`
	Condition   display.Condition `json:"condition"`
	Temperature int               `json:"temperature"`
	Unit        string            `json:"unit"`
	Text        string            `json:"text"`
}

// Options control how periods are presented.
type Options struct {
	MaxPeriods int
	WrapWidth  int
}

// BuildView renders doc for the given unit preference. A nil doc yields no
// current card and no periods.
func BuildView(doc *nws.ForecastAPIResponse, celsius bool, opts Options) (*CurrentView, []PeriodView) {
	if doc == nil || len(doc.Properties.Periods) == 0 {
		return nil, nil
	}

	periods := doc.Properties.Periods
	first := periods[0]
	temp := display.FormatTemperature(first.Temperature, celsius)
	current := &CurrentView{
		Name:        first.Name,
		Condition:   display.SelectCondition(first.ShortForecast),
		Temperature: temp,
		Label:       "Temperature: " + temp,
	}

	if opts.MaxPeriods > 0 && len(periods) > opts.MaxPeriods {
		periods = periods[:opts.MaxPeriods]
	}

	rows := make([]PeriodView, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, buildPeriod(p, celsius, opts.WrapWidth))
	}

	return current, rows
}

func buildPeriod(p nws.ForecastPeriod, celsius bool, wrapWidth int) PeriodView {
	line := display.PeriodLine(p.Name, p.Temperature, p.ShortForecast, celsius)
	return PeriodView{
		Name:        p.Name,
		Condition:   display.SelectCondition(p.ShortForecast),
		Temperature: types.DisplayTemperature(p.Temperature, celsius),
		Unit:        types.UnitSymbol(celsius),
		Text:        display.WrapText(line, wrapWidth),
	}
}
