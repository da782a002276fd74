package usecase

import (
	"context"
	"time"

	"wikiweird/internal/ports"
)

// Refresher wires the interval driver to periodic pipeline re-runs so the
// served snapshot can stay current without restarting the process.
type Refresher struct {
	driver   ports.Scheduler
	pipeline *Pipeline
}

// NewRefresher returns a helper to start/stop recurring extraction.
func NewRefresher(driver ports.Scheduler, pipeline *Pipeline) *Refresher {
	return &Refresher{driver: driver, pipeline: pipeline}
}

// Start registers the pipeline with the driver.
func (r *Refresher) Start(ctx context.Context) error {
	if r.driver == nil || r.pipeline == nil {
		return nil
	}

	job := func(time.Time) {
		if _, err := r.pipeline.Run(ctx); err != nil {
			r.pipeline.logger.Error("scheduled extraction failed", "error", err)
		}
	}
	return r.driver.Start(ctx, job)
}

// Stop tears down the underlying driver.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}
	return r.driver.Stop(ctx)
}
