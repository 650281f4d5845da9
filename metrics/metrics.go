package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	Batches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_batches_total",
		Help: "Total analysis batches started",
	})
	BatchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_batch_errors_total",
		Help: "Total analysis batches that failed",
	})
	BatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentinel_batch_duration_seconds",
		Help:    "Batch processing duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	TweetsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_tweets_processed_total",
		Help: "Total tweets scored by the analyzer",
	})
	TweetsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_tweets_stored_total",
		Help: "Total tweets persisted (excludes duplicates)",
	})
	AlertsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_alerts_created_total",
		Help: "Total alerts raised",
	})
)

func init() {
	prometheus.MustRegister(Batches, BatchErrors, BatchDuration, TweetsProcessed, TweetsStored, AlertsCreated)
}

// ObserveBatchDuration records elapsed time since start for one batch.
func ObserveBatchDuration(start time.Time) {
	BatchDuration.Observe(time.Since(start).Seconds())
}
