package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding tweets, summaries, and alerts.
// It is the only component that assigns identities or touches is_read.
type Store struct {
	sql *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL; PRAGMA foreign_keys=ON;`); err != nil {
		_ = d.Close()
		return nil, err
	}
	s := &Store{sql: d}
	if err := s.migrate(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.sql.Close() }

func (s *Store) migrate() error {
	_, err := s.sql.Exec(`
	CREATE TABLE IF NOT EXISTS tweets (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  user_name TEXT,
	  user_handle TEXT,
	  text TEXT,
	  comment_count TEXT,
	  retweet_count TEXT,
	  like_count TEXT,
	  timestamp TEXT,
	  scrape_time INTEGER,
	  has_media INTEGER DEFAULT 0,
	  sentiment_compound REAL,
	  sentiment_positive REAL,
	  sentiment_negative REAL,
	  sentiment_neutral REAL,
	  sentiment_classification TEXT,
	  is_crypto INTEGER DEFAULT 1,
	  mentioned_cryptos TEXT
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_tweets_text_handle ON tweets(text, user_handle);
	CREATE INDEX IF NOT EXISTS idx_tweets_scrape_time ON tweets(scrape_time);

	CREATE TABLE IF NOT EXISTS alerts (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  alert_type TEXT,
	  title TEXT,
	  description TEXT,
	  crypto TEXT,
	  importance INTEGER,
	  created_at INTEGER,
	  is_read INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts(created_at);

	CREATE TABLE IF NOT EXISTS summaries (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  title TEXT,
	  content TEXT,
	  sentiment_overview TEXT,
	  trending_cryptos TEXT,
	  created_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at);
	`)
	return err
}
