// Package digest emails the vendor team the retailers that stopped ordering.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
)

// Config holds configuration for the at-risk digest worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Disabled       bool          `mapstructure:"disabled"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 7 * 24 * time.Hour,
	}
}

// Worker sends one at-risk digest per interval, skipping intervals with
// nobody at risk.
type Worker struct {
	repo   dependency.Repository
	mailer dependency.Mailer
	c      *Config
	ctx    context.Context
	stop   context.CancelFunc
}

// New creates a new digest worker.
func New(c *Config, repo dependency.Repository, mailer dependency.Mailer) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = DefaultConfig().WorkerInterval
	}
	return &Worker{
		repo:   repo,
		mailer: mailer,
		c:      c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("digest worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("digest worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	w.ctx = nil
	return nil
}
