package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-sentinel/db"
	"go-sentinel/types"
)

// TweetResponse is the wire shape for a stored tweet. Engagement counts
// stay strings because the scraper keeps abbreviated figures like "1.2K".
type TweetResponse struct {
	ID               int64                `json:"id"`
	UserName         string               `json:"user_name"`
	UserHandle       string               `json:"user_handle"`
	Text             string               `json:"text"`
	Sentiment        types.SentimentScore `json:"sentiment"`
	MentionedCryptos []string             `json:"mentioned_cryptos"`
	Timestamp        string               `json:"timestamp"`
	Likes            string               `json:"likes"`
	Retweets         string               `json:"retweets"`
}

// GetTweetsHandler returns stored tweets, newest first. Query params:
// limit (default 50, max 200), only_crypto (default true), sentiment.
func GetTweetsHandler(c *gin.Context, store *db.Store) {
	limit := clampQueryInt(c, "limit", 50, 1, 200)
	onlyCrypto := c.DefaultQuery("only_crypto", "true") != "false"
	sentiment := c.Query("sentiment")

	tweets, err := store.GetTweets(c.Request.Context(), limit, onlyCrypto, sentiment)
	if err != nil {
		log.Printf("Error fetching tweets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tweets"})
		return
	}

	resp := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		resp = append(resp, TweetResponse{
			ID:               t.ID,
			UserName:         t.UserName,
			UserHandle:       t.UserHandle,
			Text:             t.Text,
			Sentiment:        t.Sentiment,
			MentionedCryptos: t.MentionedCryptos,
			Timestamp:        t.Timestamp,
			Likes:            t.LikeCount,
			Retweets:         t.RetweetCount,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// clampQueryInt parses an int query param and clamps it to [min, max].
func clampQueryInt(c *gin.Context, name string, def, min, max int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
