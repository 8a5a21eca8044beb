package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/scheduler"
	"github.com/osse101/CraftMarket_Go/internal/worker"
)

// Background owns the worker pool and the scheduler feeding it.
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackground starts the worker pool and schedules the catalog reload.
// A non-positive interval disables the reload.
func StartBackground(cat *catalog.Catalog, notifier catalog.ReloadNotifier, interval time.Duration) *Background {
	pool := worker.NewPool(BackgroundWorkers, BackgroundQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if interval > 0 {
		sched.Schedule(interval, catalog.NewReloadJob(cat, notifier))
		slog.Info(LogMsgReloadScheduled, "interval", interval)
	}

	return &Background{Pool: pool, Scheduler: sched}
}

// Stop halts the scheduler first so no job is enqueued into a stopped pool.
func (b *Background) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
