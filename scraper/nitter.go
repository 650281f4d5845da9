package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"golang.org/x/time/rate"

	"go-sentinel/types"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NitterSource scrapes tweet search results from a Nitter instance. Nitter
// serves plain HTML, so there is no API key involved, but instances are
// rate-sensitive and the limiter is shared across all queries.
type NitterSource struct {
	BaseURL string
	Queries []string
	Pages   int
	limiter *rate.Limiter
	timeout time.Duration
}

// NewNitterSource builds a source for the given instance and search queries.
// rps bounds outgoing requests per second; values <= 0 fall back to 1.
func NewNitterSource(baseURL string, queries []string, pages int, rps float64) *NitterSource {
	if rps <= 0 {
		rps = 1
	}
	if pages < 1 {
		pages = 1
	}
	return &NitterSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Queries: queries,
		Pages:   pages,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		timeout: 15 * time.Second,
	}
}

// Fetch runs every configured query and returns the combined batch. A query
// that fails is logged and skipped so the rest of the batch survives; only
// when every query failed is the batch an error. Queries that succeed with
// zero results are a legitimately empty batch.
func (s *NitterSource) Fetch(ctx context.Context) ([]types.Tweet, error) {
	all := []types.Tweet{}
	failed := 0
	for _, q := range s.Queries {
		tweets, err := s.search(ctx, q)
		if err != nil {
			log.Printf("nitter: query %q failed: %v", q, err)
			failed++
			continue
		}
		all = append(all, tweets...)
	}
	if failed > 0 && failed == len(s.Queries) {
		return nil, fmt.Errorf("nitter: all %d queries failed", len(s.Queries))
	}
	return all, nil
}

func (s *NitterSource) search(ctx context.Context, query string) ([]types.Tweet, error) {
	scrapeTime := time.Now()
	tweets := []types.Tweet{}
	nextCursor := ""

	c := colly.NewCollector(colly.MaxDepth(1))
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", defaultUserAgent)
	})

	c.OnHTML(".timeline-item", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.ChildText(".tweet-content"))
		if text == "" {
			return
		}
		handle := strings.TrimPrefix(strings.TrimSpace(e.ChildText("a.username")), "@")
		stats := e.ChildTexts("span.tweet-stat")
		tweets = append(tweets, types.Tweet{
			UserName:     strings.TrimSpace(e.ChildText("a.fullname")),
			UserHandle:   handle,
			Text:         text,
			CommentCount: statAt(stats, 0),
			RetweetCount: statAt(stats, 1),
			LikeCount:    statAt(stats, 3),
			Timestamp:    e.ChildAttr("span.tweet-date a", "title"),
			HasMedia:     e.DOM.Find(".attachments").Length() > 0,
			ScrapeTime:   scrapeTime,
		})
	})

	// Nitter paginates through a "Load more" link carrying a cursor.
	c.OnHTML(".show-more a", func(e *colly.HTMLElement) {
		nextCursor = e.Attr("href")
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = fmt.Errorf("fetching %s: %w", r.Request.URL, err)
	})

	page := s.BaseURL + "/search?f=tweets&q=" + url.QueryEscape(query)
	for i := 0; i < s.Pages; i++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return tweets, err
		}
		nextCursor = ""
		if err := c.Visit(page); err != nil {
			return tweets, fmt.Errorf("visiting %s: %w", page, err)
		}
		c.Wait()
		if scrapeErr != nil {
			return tweets, scrapeErr
		}
		if nextCursor == "" {
			break
		}
		page = s.BaseURL + "/search" + nextCursor
	}

	log.Printf("nitter: query %q yielded %d tweets", query, len(tweets))
	return tweets, nil
}

func statAt(stats []string, i int) string {
	if i >= len(stats) {
		return "0"
	}
	v := strings.TrimSpace(stats[i])
	if v == "" {
		return "0"
	}
	return v
}
