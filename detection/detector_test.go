package detection

import (
	"strings"
	"testing"

	"go-sentinel/types"
)

func TestEvaluateAlertsBullishExtreme(t *testing.T) {
	overview := types.SentimentOverview{Bullish: 8, Bearish: 1, Neutral: 2, Total: 11}
	alerts := EvaluateAlerts(overview, nil)

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	a := alerts[0]
	if a.AlertType != types.AlertTypeSentiment {
		t.Fatalf("alert type = %q", a.AlertType)
	}
	if a.Title != "Strong bullish sentiment detected" {
		t.Fatalf("title = %q", a.Title)
	}
	if a.Importance != 4 {
		t.Fatalf("importance = %d, want 4", a.Importance)
	}
	if !strings.Contains(a.Description, "72.7% positive") {
		t.Fatalf("description = %q", a.Description)
	}
	if !strings.Contains(a.Description, "11 recent tweets") {
		t.Fatalf("description = %q", a.Description)
	}
}

func TestEvaluateAlertsBearishExtreme(t *testing.T) {
	overview := types.SentimentOverview{Bullish: 1, Bearish: 9, Neutral: 2, Total: 12}
	alerts := EvaluateAlerts(overview, nil)

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Title != "Strong bearish sentiment detected" {
		t.Fatalf("title = %q", alerts[0].Title)
	}
}

func TestEvaluateAlertsSmallBatchNeverFires(t *testing.T) {
	// 100% bullish, but the batch is too small to trust.
	overview := types.SentimentOverview{Bullish: 9, Total: 9}
	if alerts := EvaluateAlerts(overview, nil); len(alerts) != 0 {
		t.Fatalf("got %d alerts, want 0", len(alerts))
	}

	// Exactly at the size threshold still does not fire (strict >).
	overview = types.SentimentOverview{Bullish: 10, Total: 10}
	if alerts := EvaluateAlerts(overview, nil); len(alerts) != 0 {
		t.Fatalf("got %d alerts at boundary, want 0", len(alerts))
	}
}

func TestEvaluateAlertsPctBoundary(t *testing.T) {
	// Exactly 70% does not fire; the rule is strict >.
	overview := types.SentimentOverview{Bullish: 14, Bearish: 3, Neutral: 3, Total: 20}
	if alerts := EvaluateAlerts(overview, nil); len(alerts) != 0 {
		t.Fatalf("70%% exactly fired: %+v", alerts)
	}

	overview = types.SentimentOverview{Bullish: 15, Bearish: 3, Neutral: 2, Total: 20}
	if alerts := EvaluateAlerts(overview, nil); len(alerts) != 1 {
		t.Fatalf("75%% should fire once, got %d", len(alerts))
	}
}

func TestEvaluateAlertsTrendLeader(t *testing.T) {
	trending := []types.TrendEntry{
		{Name: "bitcoin", Mentions: 6, Sentiment: 0.3},
		{Name: "ethereum", Mentions: 6, Sentiment: -0.4},
	}
	alerts := EvaluateAlerts(types.SentimentOverview{}, trending)

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1 (only the leader is considered)", len(alerts))
	}
	a := alerts[0]
	if a.AlertType != types.AlertTypeTrend {
		t.Fatalf("alert type = %q", a.AlertType)
	}
	if a.Title != "Bitcoin is trending" {
		t.Fatalf("title = %q", a.Title)
	}
	if a.Description != "Bitcoin is trending with 6 mentions and bullish sentiment." {
		t.Fatalf("description = %q", a.Description)
	}
	if a.Crypto != "bitcoin" {
		t.Fatalf("crypto = %q", a.Crypto)
	}
	if a.Importance != 3 {
		t.Fatalf("importance = %d, want 3", a.Importance)
	}
}

func TestEvaluateAlertsTrendBoundary(t *testing.T) {
	trending := []types.TrendEntry{{Name: "solana", Mentions: 5, Sentiment: 0}}
	if alerts := EvaluateAlerts(types.SentimentOverview{}, trending); len(alerts) != 0 {
		t.Fatalf("5 mentions fired: %+v", alerts)
	}
}

func TestEvaluateAlertsIndependentRules(t *testing.T) {
	overview := types.SentimentOverview{Bullish: 16, Bearish: 2, Neutral: 2, Total: 20}
	trending := []types.TrendEntry{{Name: "dogecoin", Mentions: 12, Sentiment: -0.2}}

	alerts := EvaluateAlerts(overview, trending)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want sentiment + trend", len(alerts))
	}
	if alerts[0].AlertType != types.AlertTypeSentiment || alerts[1].AlertType != types.AlertTypeTrend {
		t.Fatalf("alert order = [%s, %s]", alerts[0].AlertType, alerts[1].AlertType)
	}
}

func TestEvaluateAlertsEmptyBatch(t *testing.T) {
	if alerts := EvaluateAlerts(types.SentimentOverview{}, nil); len(alerts) != 0 {
		t.Fatalf("empty batch produced alerts: %+v", alerts)
	}
}
