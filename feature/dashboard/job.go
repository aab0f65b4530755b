package dashboard

import (
	"context"
	"errors"
	"time"

	"treeboard/core/tree"
	"treeboard/feature/dashboard/providers"
)

// Loader produces a fresh tree under the job's context.
type Loader func(ctx context.Context) (*tree.Tree, error)

// Job is one attempt to produce a fresh tree. It owns a cancellation
// signal, the previous tree as fallback, and the asynchronous computation.
// A job resolves exactly once; after that Cancel is a no-op and Duration
// stops advancing.
type Job struct {
	fallback *tree.Tree
	cancel   context.CancelFunc
	started  time.Time
	done     chan struct{}

	// Written once before done is closed, read only after.
	result   *tree.Tree
	err      error
	finished time.Time
}

// startJob launches load on its own goroutine and returns immediately.
func startJob(fallback *tree.Tree, load Loader) *Job {
	ctx, cancel := context.WithCancel(context.Background())
	j := &Job{
		fallback: fallback,
		cancel:   cancel,
		started:  time.Now(),
		done:     make(chan struct{}),
	}
	go func() {
		defer cancel()
		result, err := load(ctx)
		j.result, j.err = result, err
		j.finished = time.Now()
		close(j.done)
	}()
	return j
}

// Cancel signals the in-flight load to stop. Cancellation is cooperative:
// the loader observes it at its own await points.
func (j *Job) Cancel() {
	j.cancel()
}

// Await blocks until the job resolves or the waiter's own context ends,
// and returns the job's error (nil on success).
func (j *Job) Await(ctx context.Context) error {
	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Job) resolved() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// VisibleTree returns the tree this job presents to readers. It is never
// nil: a successful job shows its result, a quota-rejected job shows the
// fallback or the empty tree, and every other state shows the fallback.
func (j *Job) VisibleTree() *tree.Tree {
	if j == nil {
		return tree.Empty()
	}
	if j.resolved() && j.err == nil && j.result != nil {
		return j.result
	}
	if j.fallback != nil {
		return j.fallback
	}
	return tree.Empty()
}

// StartedAt returns the time the load began.
func (j *Job) StartedAt() time.Time {
	return j.started
}

// Duration returns the elapsed load time. It advances while the job is
// pending and freezes at the final elapsed time once the job resolves.
func (j *Job) Duration() time.Duration {
	if j.resolved() {
		return j.finished.Sub(j.started)
	}
	return time.Since(j.started)
}

// outcome classifies a resolved job's error for logging and notification.
type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeCancelled
	outcomeQuotaExceeded
	outcomeFailed
)

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSucceeded
	case errors.Is(err, context.Canceled):
		return outcomeCancelled
	case providers.IsQuotaExceeded(err):
		return outcomeQuotaExceeded
	default:
		return outcomeFailed
	}
}
