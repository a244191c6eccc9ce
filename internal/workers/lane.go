// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package workers

import (
	"context"
	"sync"

	"github.com/dkoval/go-mail-sync/internal/logger"
)

const defaultLaneDepth = 128

type laneJob struct {
	fn   func() error
	done chan error
}

// Lane runs submitted jobs one at a time on a single goroutine, in
// submission order. Two lanes exist in the daemon: one serializing all sync
// work, one draining fire-and-forget side effects. Jobs on the same lane
// never overlap, which is what makes batch application safe without locks.
type Lane struct {
	name string
	jobs chan laneJob

	closeOnce sync.Once
	stopped   chan struct{}

	logger *logger.Logger
}

func NewLane(name string, log *logger.Logger) *Lane {
	return &Lane{
		name:    name,
		jobs:    make(chan laneJob, defaultLaneDepth),
		stopped: make(chan struct{}),
		logger:  log,
	}
}

// Run implements [Worker]. It starts the lane's executor goroutine and
// returns immediately.
func (l *Lane) Run() {
	go l.loop()
}

func (l *Lane) loop() {
	defer close(l.stopped)

	for job := range l.jobs {
		err := job.fn()
		if job.done != nil {
			job.done <- err
			continue
		}
		if err != nil {
			l.logger.Err(err).
				Str("func", "Lane.loop").
				Str("lane", l.name).
				Msg("fire-and-forget job failed")
		}
	}
}

// Do submits fn and blocks until the lane has executed it, returning fn's
// error. If ctx is cancelled before the job is picked up or finished, Do
// returns the context error; the job itself may still run.
func (l *Lane) Do(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)

	select {
	case l.jobs <- laneJob{fn: fn, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit queues fn without waiting for its result. Failures are logged by
// the lane. Submit blocks only when the lane's queue is full.
func (l *Lane) Submit(fn func() error) {
	l.jobs <- laneJob{fn: fn}
}

// Close stops accepting jobs and blocks until every queued job has run.
// Safe to call more than once.
func (l *Lane) Close() {
	l.closeOnce.Do(func() {
		close(l.jobs)
	})
	<-l.stopped
}
