package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"basketlens/internal/dataset"
)

func writeDataset(t *testing.T, path, content string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestDatasetWatcher_Check(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")
	base := time.Now().Add(-time.Hour)
	writeDataset(t, path, "Member_number,Date,itemDescription\n1,d1,milk\n", base)

	store := dataset.NewStore(path)
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	reloads := 0
	w := NewDatasetWatcher(store, time.Minute, func(*dataset.Snapshot) { reloads++ })

	if w.check() {
		t.Error("check() reloaded an unchanged file")
	}

	writeDataset(t, path, "Member_number,Date,itemDescription\n1,d1,milk\n2,d1,bread\n", base.Add(time.Minute))
	if !w.check() {
		t.Fatal("check() did not reload a changed file")
	}
	if reloads != 1 {
		t.Errorf("onReload called %d times, want 1", reloads)
	}

	snap, _ := store.Current()
	if got := len(snap.Encoding.Items()); got != 2 {
		t.Errorf("items after reload = %d, want 2", got)
	}
}

func TestDatasetWatcher_BadReloadKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")
	base := time.Now().Add(-time.Hour)
	writeDataset(t, path, "Member_number,Date,itemDescription\n1,d1,milk\n", base)

	store := dataset.NewStore(path)
	before, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	writeDataset(t, path, "wrong,columns\n1,2\n", base.Add(time.Minute))

	w := NewDatasetWatcher(store, time.Minute, nil)
	if w.check() {
		t.Error("check() reported success for an invalid file")
	}

	after, _ := store.Current()
	if after != before {
		t.Error("snapshot replaced after a failed reload")
	}

	// The broken file is not parsed again on the next tick.
	if changed, err := store.Changed(); err != nil || changed {
		t.Errorf("Changed() after failed reload = %v, %v, want false", changed, err)
	}
	if w.check() {
		t.Error("check() retried an unchanged broken file")
	}

	reloads := 0
	w = NewDatasetWatcher(store, time.Minute, func(*dataset.Snapshot) { reloads++ })
	writeDataset(t, path, "Member_number,Date,itemDescription\n1,d1,milk\n2,d1,bread\n", base.Add(2*time.Minute))
	if !w.check() || reloads != 1 {
		t.Errorf("check() after fix: reloads = %d, want 1", reloads)
	}
}

func TestDatasetWatcher_StartStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")
	writeDataset(t, path, "Member_number,Date,itemDescription\n1,d1,milk\n", time.Now())

	store := dataset.NewStore(path)
	w := NewDatasetWatcher(store, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}
