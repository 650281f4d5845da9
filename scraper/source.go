package scraper

import (
	"context"
	"strings"

	"go-sentinel/types"
)

// Source yields one finite batch of raw tweets per call. Implementations own
// all network concerns; duplicates across calls are fine, the store
// deduplicates on write.
type Source interface {
	Fetch(ctx context.Context) ([]types.Tweet, error)
}

// DefaultCryptoKeywords is the stock relevance filter. Overridable via
// config.
var DefaultCryptoKeywords = []string{
	"bitcoin", "btc", "ethereum", "eth", "solana", "sol",
	"crypto", "blockchain", "nft", "defi", "web3", "altcoin",
	"token", "binance", "coinbase", "$", "bull", "bear",
}

// FilterCryptoTweets keeps only tweets whose text contains at least one
// keyword (case-insensitive substring match).
func FilterCryptoTweets(tweets []types.Tweet, keywords []string) []types.Tweet {
	if len(keywords) == 0 {
		keywords = DefaultCryptoKeywords
	}
	var crypto []types.Tweet
	for _, t := range tweets {
		text := strings.ToLower(t.Text)
		for _, kw := range keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				crypto = append(crypto, t)
				break
			}
		}
	}
	return crypto
}
