package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fhapp-weather/internal/geolocation"

	"github.com/google/uuid"
)

// ErrNotFound is returned for an unknown or already unmounted session id.
var ErrNotFound = errors.New("screen session not found")

// Registry tracks the mounted screens of all connected devices.
type Registry struct {
	deps   Deps
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

type session struct {
	screen     *Screen
	lastAccess time.Time
}

func NewRegistry(deps Deps) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		deps:     deps,
		logger:   deps.Logger.With("component", "screen-registry"),
		ctx:      ctx,
		cancel:   cancel,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Mount creates a screen for locator and starts loading its forecast in the
// background. The returned id addresses the screen in later calls.
func (r *Registry) Mount(locator geolocation.Provider) (uuid.UUID, *Screen) {
	s := New(locator, r.deps)
	id := uuid.New()

	r.mu.Lock()
	r.sessions[id] = &session{screen: s, lastAccess: r.now()}
	r.mu.Unlock()

	r.logger.Info("screen mounted", "session_id", id)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := s.Mount(r.ctx); err != nil {
			r.logger.Debug("screen mount finished with error", "session_id", id, "error", err)
		}
	}()

	return id, s
}

// Get returns the screen for id and marks it as recently used.
func (r *Registry) Get(id uuid.UUID) (*Screen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.lastAccess = r.now()
	return sess.screen, nil
}

// Unmount removes the screen for id and cancels its in-flight work.
func (r *Registry) Unmount(id uuid.UUID) error {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	sess.screen.Unmount()
	r.logger.Info("screen unmounted", "session_id", id)
	return nil
}

// EvictIdle unmounts every screen not fetched through Get for longer than
// maxIdle and returns how many were removed. Devices that disappear without
// unmounting are cleaned up this way.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var stale []*Screen
	for id, sess := range r.sessions {
		if sess.lastAccess.Before(cutoff) {
			stale = append(stale, sess.screen)
			delete(r.sessions, id)
			r.logger.Info("screen evicted", "session_id", id, "last_access", sess.lastAccess)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Unmount()
	}
	return len(stale)
}

// Len returns the number of mounted screens.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close unmounts every screen and waits for background loads to return.
func (r *Registry) Close() {
	r.cancel()

	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*session)
	r.mu.Unlock()

	for _, sess := range sessions {
		sess.screen.Unmount()
	}
	r.wg.Wait()
}

// Wait blocks until every background load started so far has returned.
func (r *Registry) Wait() {
	r.wg.Wait()
}
