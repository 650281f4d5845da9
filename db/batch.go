package db

import (
	"context"
	"fmt"
	"log"

	"go-sentinel/types"
)

// SaveBatch persists one batch's outputs atomically: the analyzed tweets
// (deduplicated on text + user handle), the batch summary, and any alerts.
// Returns how many tweets were actually new.
func (s *Store) SaveBatch(ctx context.Context, tweets []types.AnalyzedTweet, summary types.Summary, alerts []types.Alert) (int, error) {
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stored := 0
	for _, t := range tweets {
		inserted, err := insertTweet(ctx, tx, t)
		if err != nil {
			return 0, fmt.Errorf("storing tweet by @%s: %w", t.UserHandle, err)
		}
		if inserted {
			stored++
		}
	}

	if err := insertSummary(ctx, tx, summary); err != nil {
		return 0, fmt.Errorf("storing summary: %w", err)
	}

	for _, a := range alerts {
		if err := insertAlert(ctx, tx, a); err != nil {
			return 0, fmt.Errorf("storing alert %q: %w", a.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Printf("Stored %d new tweets (%d duplicates skipped), 1 summary, %d alerts", stored, len(tweets)-stored, len(alerts))
	return stored, nil
}
