package processor

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go-sentinel/db"
	"go-sentinel/nlp"
	"go-sentinel/types"
)

// stubSource hands back a fixed batch and can block to simulate a slow fetch.
type stubSource struct {
	tweets  []types.Tweet
	err     error
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func (s *stubSource) Fetch(ctx context.Context) ([]types.Tweet, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.release != nil {
		<-s.release
	}
	return s.tweets, s.err
}

func newTestPipeline(t *testing.T, source *stubSource) *Pipeline {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "pipeline.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &Pipeline{
		Source:   source,
		Analyzer: nlp.NewAnalyzer(nlp.CryptoLexicon()),
		Store:    store,
	}
}

func TestPipelineRun(t *testing.T) {
	now := time.Now()
	source := &stubSource{tweets: []types.Tweet{
		{UserHandle: "alice", Text: "Bitcoin to the moon 🚀", ScrapeTime: now},
		{UserHandle: "bob", Text: "eth is a rugpull, selling", ScrapeTime: now},
		{UserHandle: "carol", Text: "new coffee machine at the office", ScrapeTime: now},
	}}
	p := newTestPipeline(t, source)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	ctx := context.Background()
	tweets, err := p.Store.GetTweets(ctx, 10, true, "")
	if err != nil {
		t.Fatalf("GetTweets: %v", err)
	}
	// The coffee tweet fails the crypto keyword filter.
	if len(tweets) != 2 {
		t.Fatalf("stored %d tweets, want 2", len(tweets))
	}

	summaries, err := p.Store.GetSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("GetSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("stored %d summaries, want 1", len(summaries))
	}
	if summaries[0].SentimentOverview.Total != 2 {
		t.Fatalf("overview = %+v", summaries[0].SentimentOverview)
	}
}

func TestPipelineRunEmptyBatchStoresNothing(t *testing.T) {
	source := &stubSource{tweets: []types.Tweet{
		{UserHandle: "carol", Text: "nothing about markets here"},
	}}
	p := newTestPipeline(t, source)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	summaries, err := p.Store.GetSummaries(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetSummaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("empty batch wrote %d summaries", len(summaries))
	}
}

func TestPipelineRunPropagatesFetchError(t *testing.T) {
	source := &stubSource{err: errors.New("instance down")}
	p := newTestPipeline(t, source)

	err := p.Run(context.Background())
	if err == nil || !errors.Is(err, source.err) {
		t.Fatalf("err = %v, want wrapped fetch error", err)
	}
}

func TestPipelineStartRejectsOverlapSynchronously(t *testing.T) {
	source := &stubSource{release: make(chan struct{})}
	p := newTestPipeline(t, source)

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	for {
		source.mu.Lock()
		started := source.calls > 0
		source.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// The overlap error comes back on the calling goroutine, before any
	// background work is spawned.
	if err := p.Start(context.Background()); !errors.Is(err, ErrBatchInProgress) {
		t.Fatalf("overlapping Start: err = %v, want ErrBatchInProgress", err)
	}

	close(source.release)
	// The background run releases the lock when it finishes.
	deadline := time.After(5 * time.Second)
	for {
		if err := p.Run(context.Background()); err == nil {
			break
		}
		select {
		case <-deadline:
			t.Fatal("pipeline never became idle after the background run")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestPipelineRunRejectsOverlap(t *testing.T) {
	source := &stubSource{release: make(chan struct{})}
	p := newTestPipeline(t, source)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	// Wait until the first run is inside Fetch.
	for {
		source.mu.Lock()
		started := source.calls > 0
		source.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := p.Run(context.Background()); !errors.Is(err, ErrBatchInProgress) {
		t.Fatalf("overlapping run: err = %v, want ErrBatchInProgress", err)
	}

	close(source.release)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}
}
