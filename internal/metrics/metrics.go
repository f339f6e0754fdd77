package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"basketlens/internal/models"
)

var (
	chatLookupDesc = prometheus.NewDesc(
		"basketlens_chat_lookups_total",
		"Total chatbot lookup count by matched question and outcome",
		[]string{"question", "outcome"},
		nil,
	)

	associationQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketlens_association_queries_total",
			Help: "Total item pair association computations by classification",
		},
		[]string{"classification"},
	)

	datasetBaskets = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "basketlens_dataset_baskets",
		Help: "Number of baskets in the loaded dataset",
	})

	datasetItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "basketlens_dataset_items",
		Help: "Number of distinct items in the loaded dataset",
	})
)

// ChatLookupStore persists chatbot lookup counts.
type ChatLookupStore interface {
	IncrementChatLookup(ctx context.Context, question, outcome string) error
	GetAllChatLookups(ctx context.Context) ([]models.ChatLookup, error)
}

// ChatCollector is a custom Prometheus collector that reads chatbot lookup
// counts from the database on each scrape.
type ChatCollector struct {
	store ChatLookupStore
}

// Describe sends the metric descriptor to the channel.
func (c *ChatCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- chatLookupDesc
}

// Collect queries the database for all chat lookups and emits them as counters.
func (c *ChatCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllChatLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect chat lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			chatLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Question,
			l.Outcome,
		)
	}
}

// Recorder provides async chat lookup recording.
type Recorder struct {
	store ChatLookupStore
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder. A nil store
// skips the database-backed chat collector. Must be called once at startup.
func Init(store ChatLookupStore) {
	recorderOnce.Do(func() {
		prometheus.MustRegister(associationQueries, datasetBaskets, datasetItems)
		if store != nil {
			recorder = &Recorder{store: store}
			prometheus.MustRegister(&ChatCollector{store: store})
		}
	})
}

// RecordChatLookup asynchronously records a chatbot lookup outcome.
func RecordChatLookup(question, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.store.IncrementChatLookup(context.Background(), question, outcome); err != nil {
			slog.Error("failed to record chat lookup", "question", question, "outcome", outcome, "error", err)
		}
	}()
}

// RecordAssociation counts one pair computation.
func RecordAssociation(classification string) {
	associationQueries.WithLabelValues(classification).Inc()
}

// SetDatasetSize publishes the size of the loaded dataset.
func SetDatasetSize(baskets, items int) {
	datasetBaskets.Set(float64(baskets))
	datasetItems.Set(float64(items))
}
