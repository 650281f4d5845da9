package processor

import (
	"sort"

	"go-sentinel/types"
)

// TrendingCryptos reduces a classified batch to one entry per mentioned
// crypto with its mention count and mean compound sentiment, ranked by
// mention count descending. Ties keep first-seen order (batch iteration
// order); there is deliberately no secondary sort key.
func TrendingCryptos(tweets []types.AnalyzedTweet) []types.TrendEntry {
	type acc struct {
		count int
		sum   float64
	}
	order := []string{}
	data := make(map[string]*acc)

	for _, t := range tweets {
		for _, name := range t.MentionedCryptos {
			a, ok := data[name]
			if !ok {
				a = &acc{}
				data[name] = a
				order = append(order, name)
			}
			a.count++
			a.sum += t.Sentiment.Compound
		}
	}

	trending := make([]types.TrendEntry, 0, len(order))
	for _, name := range order {
		a := data[name]
		trending = append(trending, types.TrendEntry{
			Name:      name,
			Mentions:  a.count,
			Sentiment: a.sum / float64(a.count),
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Mentions > trending[j].Mentions
	})
	return trending
}
