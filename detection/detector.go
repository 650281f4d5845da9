package detection

import (
	"fmt"

	"go-sentinel/nlp"
	"go-sentinel/types"
)

// Contract thresholds: these are exact rule values, not tunables.
const (
	// Sentiment-extreme rule: strict > on both gates.
	extremePctThreshold = 70.0
	minBatchSize        = 10

	// Trend-leader rule: strict > on the mention count.
	trendMentionThreshold = 5

	sentimentAlertImportance = 4
	trendAlertImportance     = 3
)

// EvaluateAlerts inspects one batch's aggregate stats and trend list and
// returns zero or more alerts. Every rule is evaluated independently; more
// than one alert can fire for the same batch.
func EvaluateAlerts(overview types.SentimentOverview, trending []types.TrendEntry) []types.Alert {
	var alerts []types.Alert

	var bullishPct, bearishPct float64
	if overview.Total > 0 {
		bullishPct = float64(overview.Bullish) / float64(overview.Total) * 100
		bearishPct = float64(overview.Bearish) / float64(overview.Total) * 100
	}

	if overview.Total > minBatchSize && bullishPct > extremePctThreshold {
		alerts = append(alerts, types.Alert{
			AlertType:   types.AlertTypeSentiment,
			Title:       "Strong bullish sentiment detected",
			Description: fmt.Sprintf("Crypto Twitter sentiment is highly bullish (%.1f%% positive) based on %d recent tweets.", bullishPct, overview.Total),
			Crypto:      "",
			Importance:  sentimentAlertImportance,
		})
	}

	if overview.Total > minBatchSize && bearishPct > extremePctThreshold {
		alerts = append(alerts, types.Alert{
			AlertType:   types.AlertTypeSentiment,
			Title:       "Strong bearish sentiment detected",
			Description: fmt.Sprintf("Crypto Twitter sentiment is highly bearish (%.1f%% negative) based on %d recent tweets.", bearishPct, overview.Total),
			Crypto:      "",
			Importance:  sentimentAlertImportance,
		})
	}

	if len(trending) > 0 && trending[0].Mentions > trendMentionThreshold {
		top := trending[0]
		label := types.ClassifyCompound(top.Sentiment)
		name := nlp.TitleCase(top.Name)
		alerts = append(alerts, types.Alert{
			AlertType:   types.AlertTypeTrend,
			Title:       fmt.Sprintf("%s is trending", name),
			Description: fmt.Sprintf("%s is trending with %d mentions and %s sentiment.", name, top.Mentions, label),
			Crypto:      top.Name,
			Importance:  trendAlertImportance,
		})
	}

	return alerts
}
