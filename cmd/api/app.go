package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fhapp-weather/internal/config"
	"fhapp-weather/internal/forecast"
	"fhapp-weather/internal/providers/nws"
	"fhapp-weather/internal/screen"
	"fhapp-weather/internal/timezone"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	logger   *slog.Logger
	screens  *screen.Registry
	janitor  *screen.Janitor
	cfg      *config.Config
	shutdown time.Duration
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	client := nws.NewClient(logger,
		nws.WithBaseURL(cfg.NWS.BaseURL),
		nws.WithUserAgent(cfg.NWS.UserAgent),
		nws.WithHTTPClient(&http.Client{Timeout: cfg.NWS.Timeout}),
	)

	return NewAppWithDeps(cfg, logger, screen.Deps{
		Resolver:  forecast.NewResolver(client, logger),
		Timezones: tzSvc,
		Logger:    logger,
		Options: screen.Options{
			MaxPeriods: cfg.Display.MaxPeriods,
			WrapWidth:  cfg.Display.WrapWidth,
		},
		Celsius: cfg.Display.Celsius,
	}), nil
}

// NewAppWithDeps creates an application around the given screen
// dependencies. This is useful for testing with mock providers
func NewAppWithDeps(cfg *config.Config, logger *slog.Logger, deps screen.Deps) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	screens := screen.NewRegistry(deps)

	app := &App{
		router:   router,
		logger:   logger,
		screens:  screens,
		janitor:  screen.NewJanitor(screens, cfg.Screens.SweepInterval, cfg.Screens.IdleTimeout, logger),
		cfg:      cfg,
		shutdown: 10 * time.Second,
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run starts the HTTP server and the idle screen sweep, and blocks until ctx
// is done. It then shuts down gracefully and unmounts every open screen.
func (app *App) Run(ctx context.Context, addr string) error {
	if err := app.janitor.Start(); err != nil {
		return err
	}
	defer app.janitor.Stop()

	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		app.screens.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.shutdown)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	app.screens.Close()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
