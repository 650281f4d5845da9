package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-sentinel/db"
	"go-sentinel/nlp"
	"go-sentinel/summarization"
	"go-sentinel/types"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatData is everything the rule-based responder can draw on. It is
// loaded once per request so a single message sees a consistent snapshot.
type ChatData struct {
	Summaries     []types.Summary
	Alerts        []types.Alert
	BullishTweets []types.AnalyzedTweet
	BearishTweets []types.AnalyzedTweet
	RecentTweets  []types.AnalyzedTweet
	Trending      []types.TrendEntry
}

// ChatHandler answers simple questions about the stored data. The routing
// is keyword based; there is no LLM behind this endpoint.
func ChatHandler(c *gin.Context, store *db.Store) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusOK, ChatResponse{Response: "Please provide a message to chat about crypto Twitter trends."})
		return
	}

	ctx := c.Request.Context()
	data := ChatData{}
	var err error
	if data.Summaries, err = store.GetSummaries(ctx, 1); err != nil {
		log.Printf("Chat: fetching summaries: %v", err)
	}
	if data.Alerts, err = store.GetAlerts(ctx, 5, false); err != nil {
		log.Printf("Chat: fetching alerts: %v", err)
	}
	if data.BullishTweets, err = store.GetTweets(ctx, 10, true, types.Bullish); err != nil {
		log.Printf("Chat: fetching bullish tweets: %v", err)
	}
	if data.BearishTweets, err = store.GetTweets(ctx, 10, true, types.Bearish); err != nil {
		log.Printf("Chat: fetching bearish tweets: %v", err)
	}
	if data.RecentTweets, err = store.GetTweets(ctx, 20, true, ""); err != nil {
		log.Printf("Chat: fetching recent tweets: %v", err)
	}
	if data.Trending, err = store.GetTrendingCryptos(ctx); err != nil {
		log.Printf("Chat: fetching trending cryptos: %v", err)
	}

	c.JSON(http.StatusOK, ChatResponse{Response: RouteMessage(message, data)})
}

// RouteMessage picks a response for the message from the snapshot. The
// first matching topic wins; anything unrecognized falls back to the
// latest summary.
func RouteMessage(message string, data ChatData) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "trend", "trending", "popular"):
		return trendingReply(data.Trending)
	case containsAny(lower, "sentiment", "mood", "feeling"):
		return sentimentReply(data.Summaries)
	case containsAny(lower, "bull", "bullish", "positive"):
		return tweetListReply("Recent bullish tweets:", "No recent bullish tweets found.", data.BullishTweets)
	case containsAny(lower, "bear", "bearish", "negative"):
		return tweetListReply("Recent bearish tweets:", "No recent bearish tweets found.", data.BearishTweets)
	case containsAny(lower, "bitcoin", "btc"):
		return coinReply("Bitcoin", "bitcoin", data.RecentTweets)
	case containsAny(lower, "ethereum", "eth"):
		return coinReply("Ethereum", "ethereum", data.RecentTweets)
	case containsAny(lower, "alert", "notification", "important"):
		return alertsReply(data.Alerts)
	case strings.Contains(lower, "help"):
		return "I can help you analyze crypto Twitter trends. Try asking me about:\n\n" +
			"- Current sentiment\n" +
			"- Trending cryptocurrencies\n" +
			"- Recent bullish or bearish tweets\n" +
			"- Specific cryptocurrencies like Bitcoin or Ethereum\n" +
			"- Recent alerts or notifications\n\n" +
			"You can also use the refresh button to update the feed data."
	default:
		if len(data.Summaries) > 0 {
			return data.Summaries[0].Content
		}
		return "No recent data available. Try refreshing the feed."
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func trendingReply(trending []types.TrendEntry) string {
	if len(trending) == 0 {
		return "No trending cryptocurrencies detected in recent tweets."
	}
	var b strings.Builder
	b.WriteString("Currently trending cryptocurrencies:\n\n")
	for i, t := range trending {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d mentions, %s sentiment\n",
			nlp.TitleCase(t.Name), t.Mentions, types.ClassifyCompound(t.Sentiment))
	}
	return b.String()
}

func sentimentReply(summaries []types.Summary) string {
	if len(summaries) == 0 {
		return "No recent sentiment analysis available."
	}
	o := summaries[0].SentimentOverview
	if o.Total <= 0 {
		return "Not enough data to determine the current sentiment on crypto Twitter."
	}
	bullishPct := float64(o.Bullish) / float64(o.Total) * 100
	bearishPct := float64(o.Bearish) / float64(o.Total) * 100
	overall := summarization.OverallMood(bullishPct, bearishPct)
	return fmt.Sprintf("The overall sentiment on crypto Twitter is currently %s. "+
		"Out of %d analyzed tweets, %.1f%% are bullish, %.1f%% are bearish, and %.1f%% are neutral.",
		overall, o.Total, bullishPct, bearishPct, 100-bullishPct-bearishPct)
}

func tweetListReply(header, empty string, tweets []types.AnalyzedTweet) string {
	if len(tweets) == 0 {
		return empty
	}
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, t := range tweets {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "@%s: %s...\n\n", t.UserHandle, snippet(t.Text, 100))
	}
	return b.String()
}

func coinReply(display, key string, tweets []types.AnalyzedTweet) string {
	var matched []types.AnalyzedTweet
	for _, t := range tweets {
		for _, m := range t.MentionedCryptos {
			if m == key {
				matched = append(matched, t)
				break
			}
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("No recent %s-related tweets found.", display)
	}

	bullish, bearish := 0, 0
	for _, t := range matched {
		switch t.Sentiment.Classification {
		case types.Bullish:
			bullish++
		case types.Bearish:
			bearish++
		}
	}
	sentiment := types.Neutral
	if bullish > bearish {
		sentiment = types.Bullish
	} else if bearish > bullish {
		sentiment = types.Bearish
	}

	return fmt.Sprintf("%s sentiment is currently %s with %d recent mentions. "+
		"Here's a sample tweet: @%s: %s...",
		display, sentiment, len(matched), matched[0].UserHandle, snippet(matched[0].Text, 100))
}

func alertsReply(alerts []types.Alert) string {
	if len(alerts) == 0 {
		return "No recent alerts found."
	}
	var b strings.Builder
	b.WriteString("Recent alerts:\n\n")
	for i, a := range alerts {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n\n", a.Title, a.Description)
	}
	return b.String()
}

// snippet truncates to at most n runes so multi-byte text never gets cut
// mid-character.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
