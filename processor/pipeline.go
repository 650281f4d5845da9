package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"go-sentinel/db"
	"go-sentinel/detection"
	"go-sentinel/metrics"
	"go-sentinel/nlp"
	"go-sentinel/scraper"
	"go-sentinel/summarization"
)

// ErrBatchInProgress is returned when a refresh is requested while the
// previous batch is still being processed or persisted. Batches never
// overlap.
var ErrBatchInProgress = errors.New("a batch is already being processed")

// Pipeline wires the feed source, the analyzer, and the store into the
// batch flow: fetch -> filter -> classify -> aggregate -> summarize ->
// evaluate alerts -> persist.
type Pipeline struct {
	Source   scraper.Source
	Analyzer *nlp.Analyzer
	Store    *db.Store
	Keywords []string
	// OpenAI is optional; when nil the summary keeps only the
	// deterministic digest. Model selects the completion model, empty
	// falls back to the summarization default.
	OpenAI *openai.Client
	Model  string

	mu sync.Mutex
}

// Run processes one batch end to end. Classification fans out per tweet;
// aggregation, summarization, and alerting run after all classifications
// finish; everything is persisted as one store transaction.
func (p *Pipeline) Run(ctx context.Context) error {
	if !p.mu.TryLock() {
		return ErrBatchInProgress
	}
	defer p.mu.Unlock()
	return p.run(ctx)
}

// Start begins a batch in the background. The overlap check happens
// synchronously, so callers get ErrBatchInProgress immediately instead of
// a fire-and-forget goroutine swallowing it.
func (p *Pipeline) Start(ctx context.Context) error {
	if !p.mu.TryLock() {
		return ErrBatchInProgress
	}
	go func() {
		defer p.mu.Unlock()
		if err := p.run(ctx); err != nil {
			log.Printf("Background batch failed: %v", err)
		}
	}()
	return nil
}

func (p *Pipeline) run(ctx context.Context) error {
	batchID := uuid.NewString()
	metrics.Batches.Inc()
	defer metrics.ObserveBatchDuration(time.Now())

	raw, err := p.Source.Fetch(ctx)
	if err != nil {
		metrics.BatchErrors.Inc()
		return fmt.Errorf("fetching feed: %w", err)
	}

	tweets := scraper.FilterCryptoTweets(raw, p.Keywords)
	log.Printf("Batch %s: %d crypto-related tweets out of %d scraped", batchID, len(tweets), len(raw))
	if len(tweets) == 0 {
		return nil
	}

	analyzed := AnalyzeTweets(p.Analyzer, tweets)
	metrics.TweetsProcessed.Add(float64(len(analyzed)))

	trending := TrendingCryptos(analyzed)
	summary := summarization.Summarize(analyzed, trending, time.Now())
	if p.OpenAI != nil {
		summarization.EnhanceSummary(ctx, p.OpenAI, p.Model, &summary)
	}
	alerts := detection.EvaluateAlerts(summary.SentimentOverview, trending)

	stored, err := p.Store.SaveBatch(ctx, analyzed, summary, alerts)
	if err != nil {
		metrics.BatchErrors.Inc()
		return fmt.Errorf("persisting batch: %w", err)
	}
	metrics.TweetsStored.Add(float64(stored))
	metrics.AlertsCreated.Add(float64(len(alerts)))

	log.Printf("Batch %s: stored %d new tweets, %d trending cryptos, %d alerts", batchID, stored, len(trending), len(alerts))
	return nil
}
