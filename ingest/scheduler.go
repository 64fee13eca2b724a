// Package ingest is the sole writer of trade, trader and stock reference
// data: a periodic job that pulls disclosure batches from the upstream
// feed and upserts them through the store. The query engine never writes.
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/phuslu/log"
)

// Status is a snapshot of the scheduler's last run, served by the sync
// status endpoint.
type Status struct {
	Running   bool      `json:"running"`
	LastRun   time.Time `json:"lastRun"`
	LastError string    `json:"lastError,omitempty"`
	LastCount int       `json:"lastCount"`
	NextRun   time.Time `json:"nextRun"`
}

// Scheduler drives the sync job on a fixed interval with an explicit
// start/stop lifecycle. It shares no state with the query engine; the
// status snapshot is the only thing it exposes and it is mutex-guarded.
type Scheduler struct {
	interval time.Duration
	job      func(ctx context.Context) (int, error)

	mu     sync.Mutex
	status Status

	kick chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewScheduler builds a scheduler around a job returning the number of
// records it ingested.
func NewScheduler(interval time.Duration, job func(ctx context.Context) (int, error)) *Scheduler {
	return &Scheduler{
		interval: interval,
		job:      job,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the scheduler loop. The first run happens immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	s.status.Running = true
	s.status.NextRun = time.Now()
	s.mu.Unlock()
	go s.loop()
	log.Info().Dur("interval", s.interval).Msg("sync scheduler started")
}

// Stop halts the loop and waits for any in-flight run to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	s.mu.Lock()
	s.status.Running = false
	s.status.NextRun = time.Time{}
	s.mu.Unlock()
	log.Info().Msg("sync scheduler stopped")
}

// TriggerNow requests an immediate run without resetting the interval.
// No-op if a trigger is already pending.
func (s *Scheduler) TriggerNow() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Snapshot returns the current scheduler status.
func (s *Scheduler) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.runOnce()
		case <-s.kick:
			s.runOnce()
		}
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	start := time.Now()
	count, err := s.job(ctx)

	s.mu.Lock()
	s.status.LastRun = start
	s.status.LastCount = count
	s.status.NextRun = time.Now().Add(s.interval)
	if err != nil {
		s.status.LastError = err.Error()
	} else {
		s.status.LastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("sync run failed")
		return
	}
	log.Info().Int("records", count).Dur("took", time.Since(start)).Msg("sync run complete")
}
