package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"vanifolio/internal/faq"
	"vanifolio/internal/models"
)

var (
	lookupDesc = prometheus.NewDesc(
		"vanifolio_faq_lookups_total",
		"Total FAQ lookup count by top entry and outcome",
		[]string{"entry", "outcome"},
		nil,
	)

	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vanifolio",
			Name:      "faq_searches_total",
			Help:      "FAQ searches served by this process, by outcome",
		},
		[]string{"outcome"},
	)

	resultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vanifolio",
			Name:      "faq_ranked_results",
			Help:      "Number of ranked entries per FAQ search before fallback",
			Buckets:   []float64{0, 1, 2, 3},
		},
	)
)

// Store is the persistence the recorder and collector need.
type Store interface {
	IncrementLookup(ctx context.Context, entryID, outcome string) error
	GetAllLookups(ctx context.Context) ([]models.FAQLookup, error)
	InsertQueryLog(ctx context.Context, q *models.QueryLog) error
}

// LookupCollector is a custom Prometheus collector that reads FAQ lookup
// counts from the database on each scrape.
type LookupCollector struct {
	store  Store
	logger *zap.Logger
}

// Describe sends the metric descriptor to the channel.
func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lookupDesc
}

// Collect queries the database for all lookups and emits them as counters.
func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllLookups(context.Background())
	if err != nil {
		c.logger.Error("failed to collect faq lookup metrics", zap.Error(err))
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			lookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.EntryID,
			l.Outcome,
		)
	}
}

// Recorder provides async FAQ lookup recording.
type Recorder struct {
	store  Store
	logger *zap.Logger
	wg     sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
	registerOnce sync.Once
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesTotal, resultsReturned)
	})
}

// Init registers the metrics and, when store is non-nil, the lookup
// collector and the persistent recorder. Must be called once at startup.
func Init(store Store, logger *zap.Logger) {
	register()
	if store == nil {
		return
	}
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store, logger: logger}
		prometheus.MustRegister(&LookupCollector{store: store, logger: logger})
	})
}

// RecordSearch counts a search and, when a store is configured,
// asynchronously persists its outcome.
func RecordSearch(query, page, entryID, outcome string, ranked int) {
	register()
	searchesTotal.WithLabelValues(outcome).Inc()
	resultsReturned.Observe(float64(ranked))

	if recorder == nil {
		return
	}
	recorder.wg.Add(1)
	go func() {
		defer recorder.wg.Done()
		recorder.persist(models.NewQueryLog(query, outcome, entryID, page))
	}()
}

// RecordResponse records a served FAQ response. Fallback responses are
// attributed to no entry.
func RecordResponse(resp faq.Response, page string) {
	entryID, outcome, ranked := models.NoEntry, models.OutcomeFallback, 0
	if resp.Matched && len(resp.Results) > 0 {
		entryID = resp.Results[0].ID
		outcome = models.OutcomeMatched
		ranked = len(resp.Results)
	}
	RecordSearch(resp.Query, page, entryID, outcome, ranked)
}

func (r *Recorder) persist(q *models.QueryLog) {
	ctx := context.Background()
	if err := r.store.IncrementLookup(ctx, q.EntryID, q.Outcome); err != nil {
		r.logger.Error("failed to record faq lookup",
			zap.String("entry", q.EntryID), zap.String("outcome", q.Outcome), zap.Error(err))
	}
	if err := r.store.InsertQueryLog(ctx, q); err != nil {
		r.logger.Error("failed to record faq query", zap.Error(err))
	}
}

// Flush waits for in-flight recordings to finish.
func Flush() {
	if recorder != nil {
		recorder.wg.Wait()
	}
}
