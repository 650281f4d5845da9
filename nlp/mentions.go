package nlp

import (
	"regexp"
	"strings"
)

// cryptoEntry maps a canonical crypto name to the surface keywords that count
// as a mention of it.
type cryptoEntry struct {
	name     string
	keywords []string
}

// cryptoTable declaration order is load-bearing: mention extraction appends
// in table order, and trend ranking keeps first-seen order for equal mention
// counts. Keep it a slice, not a map.
var cryptoTable = []cryptoEntry{
	{"bitcoin", []string{"bitcoin", "btc", "₿", "xbt"}},
	{"ethereum", []string{"ethereum", "eth", "ether"}},
	{"solana", []string{"solana", "sol"}},
	{"cardano", []string{"cardano", "ada"}},
	{"binance", []string{"binance", "bnb", "bsc"}},
	{"ripple", []string{"ripple", "xrp"}},
	{"dogecoin", []string{"dogecoin", "doge"}},
	{"polkadot", []string{"polkadot", "dot"}},
	{"avalanche", []string{"avalanche", "avax"}},
	{"shiba inu", []string{"shiba", "shib"}},
	{"litecoin", []string{"litecoin", "ltc"}},
	{"chainlink", []string{"chainlink", "link"}},
	{"polygon", []string{"polygon", "matic"}},
	{"tron", []string{"tron", "trx"}},
	{"uniswap", []string{"uniswap", "uni"}},
	{"cosmos", []string{"cosmos", "atom"}},
}

// tickerAliases resolves cashtag tickers to canonical names. Separate ordered
// list from cryptoTable on purpose (same ordering contract).
var tickerAliases = []struct {
	ticker string
	name   string
}{
	{"btc", "bitcoin"},
	{"eth", "ethereum"},
	{"sol", "solana"},
	{"ada", "cardano"},
}

var cashtagPattern = regexp.MustCompile(`\$([A-Za-z0-9]+)`)

// ExtractCryptoMentions scans the ORIGINAL tweet text (not the normalized
// form) for crypto mentions: first the keyword table, then $TICKER cashtags.
// The result preserves insertion order with duplicates suppressed.
func ExtractCryptoMentions(text string) []string {
	lower := strings.ToLower(text)
	mentioned := []string{}
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			mentioned = append(mentioned, name)
		}
	}

	for _, entry := range cryptoTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				add(entry.name)
				break
			}
		}
	}

	for _, m := range cashtagPattern.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if name, ok := lookupTicker(tag); ok {
			add(name)
			continue
		}
		// Unknown cashtags become their own pseudo-asset, unless the tag is
		// already a keyword the table pass would have resolved.
		if !isKnownKeyword(tag) {
			add(tag)
		}
	}

	return mentioned
}

func lookupTicker(tag string) (string, bool) {
	for _, a := range tickerAliases {
		if a.ticker == tag {
			return a.name, true
		}
	}
	return "", false
}

func isKnownKeyword(tag string) bool {
	for _, entry := range cryptoTable {
		for _, kw := range entry.keywords {
			if kw == tag {
				return true
			}
		}
	}
	return false
}
