package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"go-sentinel/nlp"
	"go-sentinel/types"
)

// moodHysteresisPts is the percentage-point band one side must clear over
// the other before the overall mood leaves neutral. Stops the digest from
// flapping on near-even splits.
const moodHysteresisPts = 10.0

const maxTrendingInDigest = 5

// Summarize reduces a classified batch into its Summary: classification
// counts, an overall mood, and a deterministic textual digest. An empty
// batch produces zero counts and a neutral mood; denominators of zero are
// guarded, never errors.
func Summarize(tweets []types.AnalyzedTweet, trending []types.TrendEntry, now time.Time) types.Summary {
	overview := types.SentimentOverview{Total: len(tweets)}
	for _, t := range tweets {
		switch t.Sentiment.Classification {
		case types.Bullish:
			overview.Bullish++
		case types.Bearish:
			overview.Bearish++
		default:
			overview.Neutral++
		}
	}

	var bullishPct, bearishPct float64
	if overview.Total > 0 {
		bullishPct = float64(overview.Bullish) / float64(overview.Total) * 100
		bearishPct = float64(overview.Bearish) / float64(overview.Total) * 100
	}
	overall := OverallMood(bullishPct, bearishPct)

	var b strings.Builder
	fmt.Fprintf(&b, "The crypto Twitter sentiment is currently %s. ", overall)
	fmt.Fprintf(&b, "Out of %d crypto-related tweets, ", overview.Total)
	fmt.Fprintf(&b, "%d (%.1f%%) are bullish, ", overview.Bullish, bullishPct)
	fmt.Fprintf(&b, "%d (%.1f%%) are bearish, and ", overview.Bearish, bearishPct)
	fmt.Fprintf(&b, "%d (%.1f%%) are neutral.\n\n", overview.Neutral, 100-bullishPct-bearishPct)

	if len(trending) > 0 {
		b.WriteString("Trending cryptocurrencies:\n")
		for i, entry := range trending {
			if i >= maxTrendingInDigest {
				break
			}
			label := types.ClassifyCompound(entry.Sentiment)
			fmt.Fprintf(&b, "- %s: %d mentions, %s sentiment\n", nlp.TitleCase(entry.Name), entry.Mentions, label)
		}
	}

	return types.Summary{
		Title:             "Crypto Twitter Summary " + now.Format("2006-01-02 15:04"),
		Content:           b.String(),
		SentimentOverview: overview,
		TrendingCryptos:   trending,
		CreatedAt:         now,
	}
}

// OverallMood applies the hysteresis band to the two percentages.
func OverallMood(bullishPct, bearishPct float64) string {
	switch {
	case bullishPct > bearishPct+moodHysteresisPts:
		return types.Bullish
	case bearishPct > bullishPct+moodHysteresisPts:
		return types.Bearish
	default:
		return types.Neutral
	}
}

// EnhanceSummary asks OpenAI for a readable rewrite of the digest and
// appends it to the summary content. The deterministic digest and all
// numeric fields stay untouched; on any failure the summary is left as-is.
// An empty model falls back to gpt-4o-mini.
func EnhanceSummary(ctx context.Context, client *openai.Client, model string, summary *types.Summary) {
	if model == "" {
		model = openai.GPT4oMini
	}
	prompt := fmt.Sprintf("Rewrite the following crypto Twitter sentiment digest as a short, readable market note (2-3 sentences maximum). Do not change any numbers or invent new ones:\n\n---\n%s\n---\n\nNote:", summary.Content)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that rewrites crypto market sentiment digests concisely without altering the figures.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		log.Printf("Error getting summary note from OpenAI: %v. Keeping plain digest.", err)
		return
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Println("OpenAI returned an empty summary note. Keeping plain digest.")
		return
	}

	summary.Content += "\nAnalyst note: " + strings.TrimSpace(resp.Choices[0].Message.Content) + "\n"
}
