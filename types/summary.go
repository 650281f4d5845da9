package types

import "time"

// TrendEntry is the per-crypto aggregate for one processing batch.
type TrendEntry struct {
	Name      string  `json:"name"`
	Mentions  int     `json:"mentions"`
	Sentiment float64 `json:"sentiment"`
}

// SentimentOverview counts classifications over one batch.
type SentimentOverview struct {
	Bullish int `json:"bullish"`
	Bearish int `json:"bearish"`
	Neutral int `json:"neutral"`
	Total   int `json:"total"`
}

// Summary is the digest produced for one batch. ID is assigned by the store.
type Summary struct {
	ID                int64             `json:"id,omitempty"`
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	SentimentOverview SentimentOverview `json:"sentiment_overview"`
	TrendingCryptos   []TrendEntry      `json:"trending_cryptos"`
	CreatedAt         time.Time         `json:"timestamp"`
}
