package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-sentinel/types"
)

func insertSummary(ctx context.Context, tx *sql.Tx, sm types.Summary) error {
	overview, err := json.Marshal(sm.SentimentOverview)
	if err != nil {
		return err
	}
	trending, err := json.Marshal(sm.TrendingCryptos)
	if err != nil {
		return err
	}
	createdAt := sm.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO summaries (title, content, sentiment_overview, trending_cryptos, created_at)
		VALUES (?,?,?,?,?)`,
		sm.Title, sm.Content, string(overview), string(trending), createdAt.Unix(),
	)
	return err
}

// GetSummaries returns summaries newest first.
func (s *Store) GetSummaries(ctx context.Context, limit int) ([]types.Summary, error) {
	rows, err := s.sql.QueryContext(ctx, `
		SELECT id, title, content, sentiment_overview, trending_cryptos, created_at
		FROM summaries ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []types.Summary
	for rows.Next() {
		var sm types.Summary
		var overview, trending string
		var createdUnix int64
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.Content, &overview, &trending, &createdUnix); err != nil {
			return nil, err
		}
		if overview != "" {
			if err := json.Unmarshal([]byte(overview), &sm.SentimentOverview); err != nil {
				return nil, err
			}
		}
		sm.TrendingCryptos = []types.TrendEntry{}
		if trending != "" {
			if err := json.Unmarshal([]byte(trending), &sm.TrendingCryptos); err != nil {
				return nil, err
			}
		}
		if sm.TrendingCryptos == nil {
			sm.TrendingCryptos = []types.TrendEntry{}
		}
		sm.CreatedAt = time.Unix(createdUnix, 0).UTC()
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

// GetTrendingCryptos returns the trend list embedded in the latest summary,
// or an empty list when no summary exists yet.
func (s *Store) GetTrendingCryptos(ctx context.Context) ([]types.TrendEntry, error) {
	row := s.sql.QueryRowContext(ctx, `SELECT trending_cryptos FROM summaries ORDER BY created_at DESC, id DESC LIMIT 1`)
	var trending string
	if err := row.Scan(&trending); err != nil {
		if err == sql.ErrNoRows {
			return []types.TrendEntry{}, nil
		}
		return nil, err
	}
	entries := []types.TrendEntry{}
	if trending != "" {
		if err := json.Unmarshal([]byte(trending), &entries); err != nil {
			return nil, err
		}
	}
	if entries == nil {
		entries = []types.TrendEntry{}
	}
	return entries, nil
}
