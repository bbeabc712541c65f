package scheduler

import (
	"sync"
	"time"

	"github.com/emmaderbe/SocialApp/pkg/logger"
)

// Refresher is the slice of the feed engine the scheduler drives.
type Refresher interface {
	RefreshRequested()
}

// Scheduler issues periodic refresh requests. An interval of zero disables it.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	started   bool
	stopped   bool
}

func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interval <= 0 {
		logger.Info("scheduler disabled", "module", "scheduler", "action", "start", "result", "skipped")
		return
	}
	if s.started || s.stopped {
		return
	}
	s.started = true

	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "start", "result", "ok", "interval", s.interval)
}

// Stop is safe to call more than once and before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	if started {
		logger.Info("scheduler stopped", "module", "scheduler", "action", "stop", "result", "ok")
	}
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// The engine already loads on view ready, so the first tick waits a full interval.
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Debug("scheduled refresh", "module", "scheduler", "action", "refresh", "resource", "feed")
			s.refresher.RefreshRequested()
		case <-s.stopCh:
			return
		}
	}
}
