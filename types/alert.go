package types

import "time"

// Alert types currently emitted by the rule engine.
const (
	AlertTypeSentiment = "sentiment"
	AlertTypeTrend     = "trend"
)

// Alert is a notable event raised over one batch. Crypto is empty for
// batch-wide alerts. IsRead is the only mutable field in the model and is
// only ever flipped through the store.
type Alert struct {
	ID          int64     `json:"id,omitempty"`
	AlertType   string    `json:"alert_type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Crypto      string    `json:"crypto"`
	Importance  int       `json:"importance"`
	CreatedAt   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
}
