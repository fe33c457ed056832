package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fhapp-weather/internal/geolocation"
	"fhapp-weather/internal/providers/nws"
	"fhapp-weather/internal/timezone"
	"fhapp-weather/internal/types"
)

var (
	// ErrUnmounted is returned by operations on a screen that has been torn down.
	ErrUnmounted = errors.New("screen is unmounted")

	// ErrAlreadyMounted is returned when Mount is called a second time.
	ErrAlreadyMounted = errors.New("screen is already mounted")

	// ErrNotLocated is returned by Refresh before a position is known.
	ErrNotLocated = errors.New("screen has no location yet")

	// ErrDiscarded is returned when a fetch finished after the screen was
	// unmounted or a newer fetch was started; its result was dropped.
	ErrDiscarded = errors.New("forecast result discarded")
)

// Resolver fetches the forecast document for a normalized coordinate.
type Resolver interface {
	Resolve(ctx context.Context, coords types.Coords) (*nws.ForecastAPIResponse, error)
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Resolver  Resolver
	Timezones timezone.Service // optional
	Logger    *slog.Logger
	Options   Options
	Celsius   bool // initial unit preference
}

// Screen owns the state of one mounted weather screen. All state changes go
// through its methods; a fetch that completes after Unmount, or after a newer
// fetch started, is dropped by comparing generations.
type Screen struct {
	locator   geolocation.Provider
	resolver  Resolver
	timezones timezone.Service
	logger    *slog.Logger
	opts      Options

	mu            sync.Mutex
	status        Status
	message       string
	coords        *types.Coords
	tz            string
	doc           *nws.ForecastAPIResponse
	celsius       bool
	detailVisible bool
	mounted       bool
	unmounted     bool
	generation    uint64
	cancel        context.CancelFunc

	// status and message from before the current fetch, restored when the
	// caller's context ends before the fetch does
	prevStatus  Status
	prevMessage string
}

func New(locator geolocation.Provider, deps Deps) *Screen {
	return &Screen{
		locator:   locator,
		resolver:  deps.Resolver,
		timezones: deps.Timezones,
		logger:    deps.Logger.With("component", "weather-screen"),
		opts:      deps.Options,
		status:    StatusLoading,
		celsius:   deps.Celsius,
	}
}

// Mount locates the device and loads its forecast. Failures are recorded on
// the screen state and returned; none of them panic.
func (s *Screen) Mount(ctx context.Context) error {
	ctx, gen, err := s.begin(ctx, true)
	if err != nil {
		return err
	}

	coords, err := geolocation.Locate(ctx, s.locator)
	if err != nil {
		if errors.Is(err, geolocation.ErrPermissionDenied) {
			s.logger.Warn("location permission denied")
			return s.fail(gen, StatusPermissionDenied, err)
		}
		s.logger.Error("failed to locate device", "error", err)
		return s.fail(gen, StatusError, err)
	}

	tz := s.lookupTimezone(coords)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return ErrDiscarded
	}
	s.coords = &coords
	s.tz = tz
	s.mu.Unlock()

	return s.fetch(ctx, gen, coords)
}

// Refresh fetches the forecast again for the already known position. Any fetch
// still in flight is canceled and its result dropped.
func (s *Screen) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.coords == nil && !s.unmounted {
		s.mu.Unlock()
		return ErrNotLocated
	}
	s.mu.Unlock()

	ctx, gen, err := s.begin(ctx, false)
	if err != nil {
		return err
	}

	s.mu.Lock()
	coords := *s.coords
	s.mu.Unlock()

	return s.fetch(ctx, gen, coords)
}

// Unmount cancels any in-flight fetch. Later results are discarded and further
// calls to Mount or Refresh fail with ErrUnmounted.
func (s *Screen) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmounted {
		return
	}
	s.unmounted = true
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// ToggleUnit switches between Fahrenheit and Celsius. It never refetches.
func (s *Screen) ToggleUnit() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.celsius = !s.celsius
	return s.viewLocked()
}

// ToggleDetail opens or closes the forecast detail list.
func (s *Screen) ToggleDetail() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailVisible = !s.detailVisible
	return s.viewLocked()
}

// View renders the current state.
func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Status returns the current screen status.
func (s *Screen) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Unmounted reports whether Unmount has been called.
func (s *Screen) Unmounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unmounted
}

// Document returns the last successfully fetched forecast, or nil.
func (s *Screen) Document() *nws.ForecastAPIResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

func (s *Screen) viewLocked() View {
	v := View{
		Status:        s.status,
		Message:       s.message,
		Celsius:       s.celsius,
		DetailVisible: s.detailVisible,
		Timezone:      s.tz,
	}
	if s.status == StatusLoading && s.doc == nil {
		v.Message = LoadingLabel
	}
	v.Current, v.Periods = BuildView(s.doc, s.celsius, s.opts)
	return v
}

// begin starts a new generation with its own cancelable context, canceling
// the previous one.
func (s *Screen) begin(parent context.Context, mount bool) (context.Context, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmounted {
		return nil, 0, ErrUnmounted
	}
	if mount {
		if s.mounted {
			return nil, 0, ErrAlreadyMounted
		}
		s.mounted = true
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.prevStatus, s.prevMessage = s.status, s.message
	if s.doc == nil {
		s.status = StatusLoading
		s.message = ""
	}

	return ctx, s.generation, nil
}

func (s *Screen) fetch(ctx context.Context, gen uint64, coords types.Coords) error {
	doc, err := s.resolver.Resolve(ctx, coords)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding late forecast result", "generation", gen)
		return ErrDiscarded
	}
	// Checked before releaseLocked, which cancels ctx itself.
	abandoned := err != nil && ctx.Err() != nil
	s.releaseLocked()

	if abandoned {
		// The caller went away, e.g. an HTTP client disconnected mid-refresh.
		// That says nothing about the forecast, so the screen keeps its state.
		s.status, s.message = s.prevStatus, s.prevMessage
		s.logger.Debug("forecast fetch abandoned", "error", err)
		return err
	}

	if err != nil {
		// The resolver has already logged the failure.
		s.recordFailureLocked(StatusError, err)
		return err
	}

	s.doc = doc
	s.status = StatusReady
	s.message = ""
	return nil
}

func (s *Screen) fail(gen uint64, status Status, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrDiscarded
	}
	s.releaseLocked()
	s.recordFailureLocked(status, err)
	return err
}

// recordFailureLocked keeps a previously fetched document on screen, marking
// it stale through the message, and only switches status when there is
// nothing to show.
func (s *Screen) recordFailureLocked(status Status, err error) {
	if s.doc != nil {
		s.status = StatusReady
		s.message = fmt.Sprintf("showing last forecast: %v", err)
		return
	}
	s.status = status
	s.message = err.Error()
}

func (s *Screen) releaseLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Screen) lookupTimezone(coords types.Coords) string {
	if s.timezones == nil {
		return ""
	}
	tz, err := s.timezones.Lookup(coords)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return ""
	}
	return tz
}
