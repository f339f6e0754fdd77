package jobs

import (
	"context"
	"log/slog"
	"time"

	"basketlens/internal/dataset"
)

// Reloader is the part of the dataset store the watcher drives.
type Reloader interface {
	Path() string
	Changed() (bool, error)
	Load() (*dataset.Snapshot, error)
}

// DatasetWatcher rebuilds the encoded dataset when its file changes on disk.
type DatasetWatcher struct {
	store    Reloader
	interval time.Duration
	onReload func(*dataset.Snapshot)
}

// NewDatasetWatcher creates a watcher polling every interval. onReload, if
// set, runs after each successful reload.
func NewDatasetWatcher(store Reloader, interval time.Duration, onReload func(*dataset.Snapshot)) *DatasetWatcher {
	return &DatasetWatcher{
		store:    store,
		interval: interval,
		onReload: onReload,
	}
}

// Start begins the polling loop and blocks until ctx is cancelled.
func (w *DatasetWatcher) Start(ctx context.Context) {
	slog.Info("dataset watcher started", "path", w.store.Path(), "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("dataset watcher stopped")
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check reloads the dataset if the file changed. A failed reload keeps the
// previous snapshot in service and is not retried until the file changes.
func (w *DatasetWatcher) check() bool {
	changed, err := w.store.Changed()
	if err != nil {
		slog.Error("dataset watcher: failed to stat dataset", "path", w.store.Path(), "error", err)
		return false
	}
	if !changed {
		return false
	}

	snap, err := w.store.Load()
	if err != nil {
		slog.Error("dataset watcher: reload failed, keeping previous snapshot", "path", w.store.Path(), "error", err)
		return false
	}

	slog.Info("dataset reloaded",
		"path", w.store.Path(),
		"baskets", snap.Encoding.NumBaskets(),
		"items", len(snap.Encoding.Items()),
	)
	if w.onReload != nil {
		w.onReload(snap)
	}
	return true
}
