package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go-sentinel/types"
)

// FileSource replays a JSON fixture file containing an array of tweets.
// Useful for local development and demos when no Nitter instance is
// reachable.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) ([]types.Tweet, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", s.Path, err)
	}
	var tweets []types.Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", s.Path, err)
	}
	now := time.Now()
	for i := range tweets {
		if tweets[i].ScrapeTime.IsZero() {
			tweets[i].ScrapeTime = now
		}
	}
	return tweets, nil
}
