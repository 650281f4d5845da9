package db

import (
	"context"
	"database/sql"
	"time"

	"go-sentinel/types"
)

func insertAlert(ctx context.Context, tx *sql.Tx, a types.Alert) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO alerts (alert_type, title, description, crypto, importance, created_at, is_read)
		VALUES (?,?,?,?,?,?,0)`,
		a.AlertType, a.Title, a.Description, a.Crypto, a.Importance, createdAt.Unix(),
	)
	return err
}

// GetAlerts returns alerts newest first, skipping read ones unless
// includeRead is set.
func (s *Store) GetAlerts(ctx context.Context, limit int, includeRead bool) ([]types.Alert, error) {
	query := `SELECT id, alert_type, title, description, crypto, importance, created_at, is_read FROM alerts`
	if !includeRead {
		query += ` WHERE is_read = 0`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := s.sql.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []types.Alert
	for rows.Next() {
		var a types.Alert
		var createdUnix int64
		if err := rows.Scan(&a.ID, &a.AlertType, &a.Title, &a.Description, &a.Crypto, &a.Importance, &createdUnix, &a.IsRead); err != nil {
			return nil, err
		}
		a.CreatedAt = time.Unix(createdUnix, 0).UTC()
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkAlertRead flips is_read on one alert. Returns false when no alert has
// that id.
func (s *Store) MarkAlertRead(ctx context.Context, id int64) (bool, error) {
	res, err := s.sql.ExecContext(ctx, `UPDATE alerts SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
