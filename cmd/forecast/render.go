package main

import (
	"fmt"
	"io"
	"strings"

	"fhapp-weather/internal/display"
	"fhapp-weather/internal/screen"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// conditionLabel turns a condition key like "partly-cloudy" into
// "Partly Cloudy". The empty condition renders as "-".
func conditionLabel(c display.Condition) string {
	if c == display.ConditionNone {
		return "-"
	}
	return titleCaser.String(strings.ReplaceAll(string(c), "-", " "))
}

func render(w io.Writer, v screen.View) error {
	var b strings.Builder

	switch {
	case v.Status == screen.StatusPermissionDenied:
		fmt.Fprintf(&b, "Location permission denied: %s\n", v.Message)
	case v.Status == screen.StatusError:
		fmt.Fprintf(&b, "Unable to load forecast: %s\n", v.Message)
	case v.Status == screen.StatusLoading:
		fmt.Fprintln(&b, screen.LoadingLabel)
	case v.Current == nil:
		fmt.Fprintln(&b, "No forecast periods available")
	default:
		renderForecast(&b, v)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderForecast(b *strings.Builder, v screen.View) {
	fmt.Fprintln(b, v.Current.Name)
	fmt.Fprintln(b, v.Current.Label)
	fmt.Fprintf(b, "Condition: %s\n", conditionLabel(v.Current.Condition))
	if v.Timezone != "" {
		fmt.Fprintf(b, "Timezone: %s\n", v.Timezone)
	}
	if v.Message != "" {
		fmt.Fprintf(b, "(%s)\n", v.Message)
	}

	if !v.DetailVisible {
		return
	}
	for _, p := range v.Periods {
		fmt.Fprintln(b)
		fmt.Fprintf(b, "[%s]\n", conditionLabel(p.Condition))
		fmt.Fprintln(b, p.Text)
	}
}
