package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
// A tick that finds the queue full is dropped; the next tick tries again.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "interval", interval)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
