package worker

import (
	"context"
	"sync"
	"time"

	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

// Reloader re-reads a dataset from its source
type Reloader interface {
	Reload(ctx context.Context) error
}

// GuideReloadWorker periodically reloads the guide dataset from a
// directory-backed store so edits to the data file are picked up without a
// restart.
//
// Architecture assumptions:
// - Single server instance (no distributed coordination)
// - Reload failures keep the current table and retry next interval
type GuideReloadWorker struct {
	reloader Reloader
	interval time.Duration
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewGuideReloadWorker creates a worker reloading at the given interval
func NewGuideReloadWorker(reloader Reloader, interval time.Duration) *GuideReloadWorker {
	return &GuideReloadWorker{
		reloader: reloader,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background reload loop. It does not block server startup.
func (w *GuideReloadWorker) Start(ctx context.Context) error {
	logging.From(ctx).Info("guide reload worker starting", "interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion. Calling it more
// than once is safe; later calls just wait.
func (w *GuideReloadWorker) Stop() {
	w.stopOnce.Do(func() {
		logging.Default().Info("guide reload worker stopping")
		close(w.stopCh)
	})
	<-w.doneCh
}

func (w *GuideReloadWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.reloader.Reload(ctx); err != nil {
				logging.From(ctx).Error("guide reload failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.From(ctx).Info("guide reload worker context cancelled")
			return
		}
	}
}
