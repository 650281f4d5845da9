package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const nitterSearchPage = `<!DOCTYPE html>
<html><body>
<div class="timeline-item">
  <a class="fullname" href="/whale">Crypto Whale</a>
  <a class="username" href="/whale">@whale</a>
  <div class="tweet-content">Bitcoin to the moon 🚀</div>
  <span class="tweet-date"><a href="/whale/status/1" title="Aug 29, 2026 · 2:14 PM UTC">1h</a></span>
  <span class="tweet-stat">12</span>
  <span class="tweet-stat">34</span>
  <span class="tweet-stat">5</span>
  <span class="tweet-stat">1,234</span>
  <div class="attachments"><img src="/pic/x.jpg"></div>
</div>
<div class="timeline-item">
  <a class="fullname" href="/skeptic">Skeptic</a>
  <a class="username" href="/skeptic">@skeptic</a>
  <div class="tweet-content">eth is dumping again</div>
  <span class="tweet-date"><a href="/skeptic/status/2" title="Aug 29, 2026 · 2:10 PM UTC">1h</a></span>
</div>
<div class="timeline-item">
  <div class="tweet-content"></div>
</div>
</body></html>`

func TestNitterSourceParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(nitterSearchPage))
	}))
	defer srv.Close()

	src := NewNitterSource(srv.URL, []string{"bitcoin"}, 1, 100)
	tweets, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// The empty-content item is dropped.
	if len(tweets) != 2 {
		t.Fatalf("got %d tweets, want 2", len(tweets))
	}

	first := tweets[0]
	if first.UserName != "Crypto Whale" || first.UserHandle != "whale" {
		t.Fatalf("author = %q @%q", first.UserName, first.UserHandle)
	}
	if first.Text != "Bitcoin to the moon 🚀" {
		t.Fatalf("text = %q", first.Text)
	}
	if first.CommentCount != "12" || first.RetweetCount != "34" || first.LikeCount != "1,234" {
		t.Fatalf("stats = %s/%s/%s", first.CommentCount, first.RetweetCount, first.LikeCount)
	}
	if first.Timestamp != "Aug 29, 2026 · 2:14 PM UTC" {
		t.Fatalf("timestamp = %q", first.Timestamp)
	}
	if !first.HasMedia {
		t.Fatal("attachments should set HasMedia")
	}
	if first.ScrapeTime.IsZero() {
		t.Fatal("scrape time not set")
	}

	second := tweets[1]
	if second.HasMedia {
		t.Fatal("tweet without attachments flagged as media")
	}
	// Missing stat spans fall back to "0".
	if second.CommentCount != "0" || second.LikeCount != "0" {
		t.Fatalf("missing stats = %s/%s, want 0/0", second.CommentCount, second.LikeCount)
	}
}

func TestNitterSourceEmptyResultsIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html><html><body><div class="timeline"></div></body></html>`))
	}))
	defer srv.Close()

	src := NewNitterSource(srv.URL, []string{"bitcoin", "ethereum"}, 1, 100)
	tweets, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("queries succeeded with no results, Fetch errored: %v", err)
	}
	if len(tweets) != 0 {
		t.Fatalf("got %d tweets, want 0", len(tweets))
	}
}

func TestNitterSourcePartialFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(nitterSearchPage))
	}))
	defer srv.Close()

	src := NewNitterSource(srv.URL, []string{"bitcoin", "ethereum"}, 1, 100)
	tweets, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("one surviving query should carry the batch: %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("got %d tweets, want 2 from the surviving query", len(tweets))
	}
}

func TestNitterSourceAllQueriesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	src := NewNitterSource(srv.URL, []string{"bitcoin", "ethereum"}, 1, 100)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("want error when every query fails")
	}
}
