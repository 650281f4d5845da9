package nlp

// baseLexicon is a compact general-purpose affective lexicon. Weights follow
// the usual valence convention: roughly -4..4, sign giving polarity. Domain
// overrides are merged on top at construction (see NewAnalyzer).
var baseLexicon = map[string]float64{
	// positive
	"good":        1.9,
	"great":       3.1,
	"awesome":     3.1,
	"amazing":     2.8,
	"excellent":   2.7,
	"best":        3.2,
	"love":        3.2,
	"like":        1.5,
	"happy":       2.7,
	"strong":      2.3,
	"win":         2.8,
	"wins":        2.7,
	"winning":     2.4,
	"profit":      2.3,
	"profits":     2.1,
	"gain":        2.4,
	"gains":       2.4,
	"growth":      2.0,
	"success":     2.7,
	"successful":  2.7,
	"opportunity": 1.7,
	"confident":   2.2,
	"optimistic":  1.5,
	"promising":   1.8,
	"surge":       1.6,
	"surging":     1.6,
	"soar":        1.9,
	"soaring":     1.9,
	"rally":       1.7,
	"recover":     1.4,
	"recovery":    1.4,
	"solid":       1.6,
	"safe":        1.5,
	"easy":        1.2,
	"free":        1.1,
	"new":         0.9,
	"hope":        1.9,
	"nice":        1.8,

	// negative
	"bad":      -2.5,
	"terrible": -3.1,
	"awful":    -2.9,
	"horrible": -2.9,
	"worst":    -3.1,
	"hate":     -2.7,
	"fear":     -2.2,
	"afraid":   -2.0,
	"scared":   -2.0,
	"loss":     -2.3,
	"losses":   -2.3,
	"lose":     -2.4,
	"losing":   -2.4,
	"lost":     -2.2,
	"drop":     -1.6,
	"dropping": -1.6,
	"fall":     -1.5,
	"falling":  -1.5,
	"plunge":   -2.1,
	"collapse": -2.6,
	"panic":    -2.4,
	"weak":     -1.9,
	"risk":     -1.1,
	"risky":    -1.4,
	"fraud":    -3.0,
	"fake":     -2.1,
	"avoid":    -1.5,
	"warning":  -1.7,
	"worried":  -1.9,
	"worry":    -1.8,
	"doubt":    -1.5,
	"down":     -1.1,
	"trouble":  -2.0,
	"danger":   -2.4,
	"ugly":     -2.0,
	"broke":    -1.8,
	"broken":   -1.8,
	"sad":      -2.1,
	"angry":    -2.3,
	"wrong":    -1.7,
	"problem":  -1.6,
	"problems": -1.7,
}

// CryptoLexicon returns the market-slang overrides merged into the analyzer
// at assembly time. Weights carry the bullish/bearish connotation of each
// term; multi-word phrases and emoji are matched as substrings.
func CryptoLexicon() map[string]float64 {
	return map[string]float64{
		// bullish terms
		"hodl":            2.0,
		"mooning":         3.0,
		"to the moon":     3.0,
		"bullish":         2.5,
		"diamond hands":   2.0,
		"buy the dip":     1.5,
		"fomo":            1.0,
		"rocket":          2.0,
		"🚀":               2.5,
		"🌕":               2.0,
		"💎":               1.5,
		"🙌":               1.0,
		"accumulate":      1.0,
		"support":         0.5,
		"breakout":        1.8,
		"adoption":        1.5,
		"bullrun":         2.0,
		"all time high":   2.0,
		"ath":             2.0,
		"beat the market": 1.5,

		// bearish terms
		"bearish":         -2.5,
		"rugpull":         -3.0,
		"dumping":         -2.0,
		"crash":           -2.5,
		"paper hands":     -1.5,
		"fud":             -2.0,
		"ponzi":           -3.0,
		"scam":            -3.0,
		"shitcoin":        -2.5,
		"rekt":            -2.5,
		"liquidated":      -2.0,
		"sell off":        -1.5,
		"bearmarket":      -2.0,
		"bubble":          -1.5,
		"correction":      -1.0,
		"dead cat bounce": -1.5,
		"📉":               -2.0,
		"🧸":               -2.0,
		"💩":               -2.0,
	}
}
