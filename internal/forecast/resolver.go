package forecast

import (
	"context"
	"errors"
	"log/slog"

	"fhapp-weather/internal/providers/nws"
	"fhapp-weather/internal/types"
)

// Provider is the two-step forecast lookup offered by the weather API.
type Provider interface {
	GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error)
	GetForecast(ctx context.Context, forecastURL string) (*nws.ForecastAPIResponse, error)
}

var errEmptyDocument = errors.New("empty forecast response")

// Resolver turns a normalized coordinate into a forecast document. Each request
// is attempted once.
type Resolver struct {
	provider Provider
	logger   *slog.Logger
}

func NewResolver(provider Provider, logger *slog.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   logger.With("component", "forecast-resolver"),
	}
}

// Resolve looks up the forecast URL for coords and fetches the document behind
// it. Failures are logged here once and returned as *ResolutionError or
// *FetchError, or the context error if ctx ended first.
func (r *Resolver) Resolve(ctx context.Context, coords types.Coords) (*nws.ForecastAPIResponse, error) {
	point, err := r.provider.GetPoint(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Debug("points lookup abandoned", "error", ctxErr)
			return nil, ctxErr
		}
		fetchErr := &FetchError{Stage: StagePoints, Err: err}
		r.logger.Error("failed to fetch points data",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fetchErr
	}

	if point == nil || point.Properties.Forecast == "" {
		r.logger.Error("forecast URL not found in points response",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		return nil, &ResolutionError{Latitude: coords.Latitude, Longitude: coords.Longitude}
	}

	forecastURL := point.Properties.Forecast
	r.logger.Debug("resolved forecast URL",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"forecast_url", forecastURL,
	)

	doc, err := r.provider.GetForecast(ctx, forecastURL)
	if err == nil && doc == nil {
		err = errEmptyDocument
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Debug("forecast fetch abandoned", "error", ctxErr)
			return nil, ctxErr
		}
		r.logger.Error("failed to fetch forecast",
			"forecast_url", forecastURL,
			"error", err,
		)
		return nil, &FetchError{Stage: StageForecast, URL: forecastURL, Err: err}
	}

	return doc, nil
}
