package catalog

import (
	"context"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// ReloadEvent describes one finished reload
type ReloadEvent struct {
	Stats    Stats
	Duration time.Duration
	Err      error
}

// ReloadNotifier is told about every scheduled reload
type ReloadNotifier interface {
	ReloadFinished(ctx context.Context, event ReloadEvent) error
}

// ReloadJob refreshes a Catalog from storage. It runs on the worker pool.
type ReloadJob struct {
	catalog  *Catalog
	notifier ReloadNotifier
}

// NewReloadJob creates a reload job. notifier may be nil.
func NewReloadJob(c *Catalog, notifier ReloadNotifier) *ReloadJob {
	return &ReloadJob{catalog: c, notifier: notifier}
}

func (j *ReloadJob) Name() string {
	return ReloadJobName
}

// Process reloads the catalog and reports the outcome
func (j *ReloadJob) Process(ctx context.Context) error {
	start := time.Now()
	stats, err := j.catalog.Reload(ctx)
	event := ReloadEvent{Stats: stats, Duration: time.Since(start), Err: err}

	if j.notifier != nil {
		if nerr := j.notifier.ReloadFinished(ctx, event); nerr != nil {
			logger.FromContext(ctx).Warn(LogMsgNotifyFailed, "error", nerr)
		}
	}
	return err
}
