package processor

import (
	"strings"
	"sync"

	"go-sentinel/nlp"
	"go-sentinel/types"
)

// AnalyzeTweet turns one raw tweet into an AnalyzedTweet. Pure: the result is
// a function of the tweet text alone, the input is never mutated. Empty or
// whitespace-only text gets the default neutral score, not an error.
func AnalyzeTweet(analyzer *nlp.Analyzer, tweet types.Tweet) types.AnalyzedTweet {
	analyzed := types.AnalyzedTweet{Tweet: tweet, IsCrypto: true}
	if strings.TrimSpace(tweet.Text) == "" {
		analyzed.Sentiment = nlp.DefaultSentiment()
		analyzed.MentionedCryptos = []string{}
		return analyzed
	}
	analyzed.Sentiment = analyzer.Score(tweet.Text)
	analyzed.MentionedCryptos = nlp.ExtractCryptoMentions(tweet.Text)
	return analyzed
}

// AnalyzeTweets classifies a batch concurrently. Tweets are independent, so
// the map stage fans out one goroutine per tweet; results land by index so
// the batch order survives for the aggregation stage.
func AnalyzeTweets(analyzer *nlp.Analyzer, tweets []types.Tweet) []types.AnalyzedTweet {
	analyzed := make([]types.AnalyzedTweet, len(tweets))
	var wg sync.WaitGroup
	for i := range tweets {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			analyzed[idx] = AnalyzeTweet(analyzer, tweets[idx])
		}(i)
	}
	wg.Wait()
	return analyzed
}
