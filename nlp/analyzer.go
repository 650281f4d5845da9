package nlp

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go-sentinel/types"
)

// alpha dampens the compound normalization: compound = sum / sqrt(sum²+alpha).
// Keeps the score in (-1,1), monotonic in the matched weight sum, and
// saturating for texts stacked with strong terms.
const alpha = 15.0

// Analyzer scores text polarity against a merged lexicon. Single ASCII words
// are looked up per token; entries with spaces or non-ASCII runes (phrases,
// emoji, ticker glyphs) are matched as literal substrings.
type Analyzer struct {
	words   map[string]float64
	phrases []phraseEntry
}

type phraseEntry struct {
	text   string
	weight float64
}

// NewAnalyzer builds an Analyzer from the base affective lexicon with the
// given overrides merged on top. Overrides win on key collisions. The
// override table is data handed in at assembly time, not package state.
func NewAnalyzer(overrides map[string]float64) *Analyzer {
	a := &Analyzer{words: make(map[string]float64, len(baseLexicon)+len(overrides))}
	merged := make(map[string]float64, len(baseLexicon)+len(overrides))
	for k, v := range baseLexicon {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	for k, v := range merged {
		if isPhraseKey(k) {
			a.phrases = append(a.phrases, phraseEntry{text: k, weight: v})
		} else {
			a.words[k] = v
		}
	}
	// Fixed phrase order keeps float accumulation identical across processes.
	sort.Slice(a.phrases, func(i, j int) bool { return a.phrases[i].text < a.phrases[j].text })
	return a
}

func isPhraseKey(k string) bool {
	if strings.ContainsRune(k, ' ') {
		return true
	}
	for _, r := range k {
		if r >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// DefaultSentiment is the fallback for empty or whitespace-only text.
func DefaultSentiment() types.SentimentScore {
	return types.SentimentScore{
		Compound:       0,
		Positive:       0,
		Negative:       0,
		Neutral:        1,
		Classification: types.Neutral,
	}
}

// Score normalizes the text and produces the four lexicon scores plus the
// derived classification. Identical input always yields identical output.
func (a *Analyzer) Score(text string) types.SentimentScore {
	norm := Normalize(text)
	if norm == "" {
		return DefaultSentiment()
	}

	var sum, posSum, negSum float64
	neutralTokens := 0

	// Phrase hits are scored then blanked out so their words are not
	// counted a second time in the token pass.
	working := norm
	for _, p := range a.phrases {
		n := strings.Count(working, p.text)
		if n == 0 {
			continue
		}
		w := p.weight * float64(n)
		sum += w
		if w > 0 {
			posSum += w
		} else {
			negSum += -w
		}
		working = strings.ReplaceAll(working, p.text, " ")
	}

	for _, tok := range strings.Fields(working) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok == "" {
			continue
		}
		w, ok := a.words[tok]
		if !ok || w == 0 {
			neutralTokens++
			continue
		}
		sum += w
		if w > 0 {
			posSum += w
		} else {
			negSum += -w
		}
	}

	score := types.SentimentScore{Neutral: 1}
	score.Compound = round4(sum / math.Sqrt(sum*sum+alpha))
	if mass := posSum + negSum + float64(neutralTokens); mass > 0 {
		score.Positive = round4(posSum / mass)
		score.Negative = round4(negSum / mass)
		score.Neutral = round4(float64(neutralTokens) / mass)
	}
	score.Classification = types.ClassifyCompound(score.Compound)
	return score
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
