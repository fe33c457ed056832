package forecast

import (
	"errors"
	"fmt"
)

var (
	// ErrResolution marks a points response that carried no forecast URL.
	ErrResolution = errors.New("forecast URL not found in points response")

	// ErrFetch marks a network, HTTP, or decoding failure on either request.
	ErrFetch = errors.New("forecast fetch failed")
)

// Request stages reported by FetchError.
const (
	StagePoints   = "points"
	StageForecast = "forecast"
)

// ResolutionError is returned when the points lookup succeeds but does not
// name a forecast document.
type ResolutionError struct {
	Latitude  float64
	Longitude float64
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%v for %.4f,%.4f", ErrResolution, e.Latitude, e.Longitude)
}

func (e *ResolutionError) Unwrap() error {
	return ErrResolution
}

// FetchError wraps a failed points or forecast request.
type FetchError struct {
	Stage string
	URL   string
	Err   error
}

func (e *FetchError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%v (%s %s): %v", ErrFetch, e.Stage, e.URL, e.Err)
	}
	return fmt.Sprintf("%v (%s): %v", ErrFetch, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}
