package types

import "time"

// Tweet is a raw post as delivered by a feed source. Engagement counts stay
// strings because the feed renders them that way ("1,234", "12.5K").
type Tweet struct {
	UserName     string    `json:"userName"`
	UserHandle   string    `json:"userHandle"`
	Text         string    `json:"text"`
	CommentCount string    `json:"commentCount"`
	RetweetCount string    `json:"retweetCount"`
	LikeCount    string    `json:"likeCount"`
	Timestamp    string    `json:"timestamp"`
	HasMedia     bool      `json:"hasMedia"`
	ScrapeTime   time.Time `json:"scrapeTime"`
}

// Sentiment classification labels derived from the compound score.
const (
	Bullish = "bullish"
	Bearish = "bearish"
	Neutral = "neutral"
)

// SentimentScore holds the lexicon scores for one tweet. Classification is
// always derived from Compound via ClassifyCompound, never set independently.
type SentimentScore struct {
	Compound       float64 `json:"compound"`
	Positive       float64 `json:"positive"`
	Negative       float64 `json:"negative"`
	Neutral        float64 `json:"neutral"`
	Classification string  `json:"classification"`
}

// ClassifyCompound maps a compound score to its three-way label.
// The 0.05 cutoffs are part of the analysis contract.
func ClassifyCompound(compound float64) string {
	switch {
	case compound >= 0.05:
		return Bullish
	case compound <= -0.05:
		return Bearish
	default:
		return Neutral
	}
}

// AnalyzedTweet is a Tweet enriched with sentiment and crypto mentions.
// Built once by the processor and immutable afterwards; ID is assigned by
// the store on read.
type AnalyzedTweet struct {
	Tweet
	ID               int64          `json:"id,omitempty"`
	IsCrypto         bool           `json:"is_crypto"`
	Sentiment        SentimentScore `json:"sentiment"`
	MentionedCryptos []string       `json:"mentioned_cryptos"`
}
