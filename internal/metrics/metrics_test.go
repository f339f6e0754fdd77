package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"basketlens/internal/models"
)

type fakeStore struct {
	lookups []models.ChatLookup
	err     error
}

func (f *fakeStore) IncrementChatLookup(ctx context.Context, question, outcome string) error {
	return nil
}

func (f *fakeStore) GetAllChatLookups(ctx context.Context) ([]models.ChatLookup, error) {
	return f.lookups, f.err
}

func collect(c prometheus.Collector) int {
	ch := make(chan prometheus.Metric, 16)
	c.Collect(ch)
	close(ch)
	n := 0
	for range ch {
		n++
	}
	return n
}

func TestChatCollector_Collect(t *testing.T) {
	store := &fakeStore{lookups: []models.ChatLookup{
		{Question: "what is lift", Outcome: models.OutcomeMatched, Count: 4},
		{Question: "", Outcome: models.OutcomeNoMatch, Count: 2},
	}}

	if got := collect(&ChatCollector{store: store}); got != 2 {
		t.Errorf("Collect() emitted %d metrics, want 2", got)
	}
}

func TestChatCollector_CollectError(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}

	if got := collect(&ChatCollector{store: store}); got != 0 {
		t.Errorf("Collect() emitted %d metrics on error, want 0", got)
	}
}

func TestRecordChatLookup_WithoutInit(t *testing.T) {
	// Must be a no-op before Init.
	RecordChatLookup("what is lift", models.OutcomeMatched)
}
