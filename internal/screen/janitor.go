package screen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Janitor periodically evicts screens whose devices stopped polling.
type Janitor struct {
	scheduler *gocron.Scheduler
	registry  *Registry
	interval  time.Duration
	maxIdle   time.Duration
	logger    *slog.Logger
}

func NewJanitor(registry *Registry, interval, maxIdle time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		registry:  registry,
		interval:  interval,
		maxIdle:   maxIdle,
		logger:    logger.With("component", "screen-janitor"),
	}
}

// Start schedules the sweep and runs the scheduler in the background.
func (j *Janitor) Start() error {
	if j.interval <= 0 || j.maxIdle <= 0 {
		return fmt.Errorf("invalid janitor settings: interval %v, max idle %v", j.interval, j.maxIdle)
	}

	if _, err := j.scheduler.Every(j.interval).SingletonMode().Do(j.sweep); err != nil {
		return fmt.Errorf("failed to schedule idle screen sweep: %w", err)
	}

	j.scheduler.StartAsync()
	j.logger.Info("idle screen sweep scheduled", "interval", j.interval, "max_idle", j.maxIdle)
	return nil
}

// Stop stops the scheduler; no sweep starts afterwards.
func (j *Janitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}

func (j *Janitor) sweep() {
	if n := j.registry.EvictIdle(j.maxIdle); n > 0 {
		j.logger.Info("evicted idle screens", "count", n, "remaining", j.registry.Len())
	}
}
