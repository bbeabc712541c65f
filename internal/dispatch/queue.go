// Package dispatch runs closures one at a time on a dedicated goroutine.
package dispatch

import (
	"sync"

	"github.com/emmaderbe/SocialApp/pkg/logger"
)

// Dispatcher accepts work to be run later on its own goroutine.
type Dispatcher interface {
	// Post enqueues fn. It returns false if the dispatcher no longer accepts work.
	Post(fn func()) bool
}

// Queue is a serial FIFO executor. Post never blocks, so work may enqueue more work.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	running bool
	closed  bool

	wake   chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once
}

func NewQueue() *Queue {
	return &Queue{
		wake:   make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the worker goroutine. Calling Start more than once has no effect.
func (q *Queue) Start() {
	q.mu.Lock()
	if q.running || q.closed {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()

	go q.loop()
}

// Post enqueues fn for execution.
func (q *Queue) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync runs fn on the queue and waits for it to finish. It must not be called from
// work running on the queue itself.
func (q *Queue) Sync(fn func()) bool {
	done := make(chan struct{})
	if !q.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}

	select {
	case <-done:
		return true
	case <-q.doneCh:
		// the worker may have run fn just before exiting
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// Stop rejects further work, drains what is already queued, and waits for the worker.
func (q *Queue) Stop() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		running := q.running
		q.mu.Unlock()

		close(q.stopCh)
		if !running {
			close(q.doneCh)
		}
	})
	<-q.doneCh
}

func (q *Queue) loop() {
	defer close(q.doneCh)

	for {
		q.drain()

		select {
		case <-q.wake:
		case <-q.stopCh:
			q.drain()
			return
		}
	}
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.run(fn)
	}
}

func (q *Queue) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("dispatched work panicked", "module", "dispatch", "action", "run", "result", "failed", "panic", r)
		}
	}()
	fn()
}

// Inline runs work immediately on the calling goroutine.
type Inline struct{}

func (Inline) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	fn()
	return true
}
