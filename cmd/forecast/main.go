// Command forecast prints the NWS forecast for a coordinate to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fhapp-weather/internal/config"
	"fhapp-weather/internal/forecast"
	"fhapp-weather/internal/geolocation"
	"fhapp-weather/internal/providers/nws"
	"fhapp-weather/internal/screen"
	"fhapp-weather/internal/timezone"
	"fhapp-weather/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lat := flag.Float64("lat", cfg.Location.Latitude, "latitude in decimal degrees")
	lon := flag.Float64("lon", cfg.Location.Longitude, "longitude in decimal degrees")
	celsius := flag.Bool("celsius", cfg.Display.Celsius, "show temperatures in Celsius")
	detail := flag.Bool("detail", false, "show the forecast period list")
	width := flag.Int("width", cfg.Display.WrapWidth, "wrap width for period lines, at least 1")
	flag.Parse()

	opts := options{
		latitude:  *lat,
		longitude: *lon,
		celsius:   *celsius,
		detail:    *detail,
		width:     *width,
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	// Logs go to stderr so stdout carries only the forecast.
	logger := cfg.NewLoggerTo(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, opts); err != nil {
		os.Exit(1)
	}
}

type options struct {
	latitude  float64
	longitude float64
	celsius   bool
	detail    bool
	width     int
}

func (o options) validate() error {
	if o.width < 1 {
		return fmt.Errorf("--width must be at least 1, got %d", o.width)
	}
	if !types.NewCoords(o.latitude, o.longitude).Valid() {
		return fmt.Errorf("--lat/--lon out of range: %v,%v", o.latitude, o.longitude)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts options) error {
	client := nws.NewClient(logger,
		nws.WithBaseURL(cfg.NWS.BaseURL),
		nws.WithUserAgent(cfg.NWS.UserAgent),
		nws.WithHTTPClient(&http.Client{Timeout: cfg.NWS.Timeout}),
	)

	deps := screen.Deps{
		Resolver: forecast.NewResolver(client, logger),
		Logger:   logger,
		Options: screen.Options{
			MaxPeriods: cfg.Display.MaxPeriods,
			WrapWidth:  opts.width,
		},
		Celsius: opts.celsius,
	}
	if tzSvc, err := timezone.NewService(); err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	} else {
		deps.Timezones = tzSvc
	}

	return show(ctx, os.Stdout, geolocation.NewStatic(opts.latitude, opts.longitude), deps, opts.detail)
}

// show mounts a screen for locator, waits for its first forecast and renders
// it. The screen's own error is returned after the view is printed.
func show(ctx context.Context, w io.Writer, locator geolocation.Provider, deps screen.Deps, detail bool) error {
	s := screen.New(locator, deps)
	defer s.Unmount()

	mountErr := s.Mount(ctx)

	view := s.View()
	if detail && !view.DetailVisible {
		view = s.ToggleDetail()
	}

	if err := render(w, view); err != nil {
		return fmt.Errorf("failed to render forecast: %w", err)
	}
	return mountErr
}
