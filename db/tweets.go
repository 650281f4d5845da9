package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-sentinel/types"
)

// insertTweet writes one analyzed tweet inside tx, skipping silently when a
// row with the same (text, user_handle) already exists. Returns whether a
// new row was written.
func insertTweet(ctx context.Context, tx *sql.Tx, t types.AnalyzedTweet) (bool, error) {
	mentioned, err := json.Marshal(t.MentionedCryptos)
	if err != nil {
		return false, err
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO tweets (
		  user_name, user_handle, text, comment_count, retweet_count,
		  like_count, timestamp, scrape_time, has_media,
		  sentiment_compound, sentiment_positive, sentiment_negative,
		  sentiment_neutral, sentiment_classification, is_crypto, mentioned_cryptos
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(text, user_handle) DO NOTHING`,
		t.UserName, t.UserHandle, t.Text, t.CommentCount, t.RetweetCount,
		t.LikeCount, t.Timestamp, t.ScrapeTime.Unix(), t.HasMedia,
		t.Sentiment.Compound, t.Sentiment.Positive, t.Sentiment.Negative,
		t.Sentiment.Neutral, t.Sentiment.Classification, t.IsCrypto, string(mentioned),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetTweets returns stored tweets, newest scrape first. sentiment filters by
// classification when non-empty.
func (s *Store) GetTweets(ctx context.Context, limit int, onlyCrypto bool, sentiment string) ([]types.AnalyzedTweet, error) {
	query := `
		SELECT id, user_name, user_handle, text, comment_count, retweet_count,
		       like_count, timestamp, scrape_time, has_media,
		       sentiment_compound, sentiment_positive, sentiment_negative,
		       sentiment_neutral, sentiment_classification, is_crypto, mentioned_cryptos
		FROM tweets WHERE 1=1`
	args := []any{}
	if onlyCrypto {
		query += ` AND is_crypto = 1`
	}
	if sentiment != "" {
		query += ` AND sentiment_classification = ?`
		args = append(args, sentiment)
	}
	query += ` ORDER BY scrape_time DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []types.AnalyzedTweet
	for rows.Next() {
		var t types.AnalyzedTweet
		var scrapeUnix int64
		var mentioned string
		if err := rows.Scan(
			&t.ID, &t.UserName, &t.UserHandle, &t.Text, &t.CommentCount,
			&t.RetweetCount, &t.LikeCount, &t.Timestamp, &scrapeUnix, &t.HasMedia,
			&t.Sentiment.Compound, &t.Sentiment.Positive, &t.Sentiment.Negative,
			&t.Sentiment.Neutral, &t.Sentiment.Classification, &t.IsCrypto, &mentioned,
		); err != nil {
			return nil, err
		}
		t.ScrapeTime = time.Unix(scrapeUnix, 0).UTC()
		t.MentionedCryptos = []string{}
		if mentioned != "" {
			if err := json.Unmarshal([]byte(mentioned), &t.MentionedCryptos); err != nil {
				return nil, err
			}
		}
		if t.MentionedCryptos == nil {
			t.MentionedCryptos = []string{}
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}
