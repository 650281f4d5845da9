package nlp

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern    = regexp.MustCompile(`@\w+`)
	hashtagPattern    = regexp.MustCompile(`#(\w+)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize prepares tweet text for scoring: lower-case, strip URLs and
// @mentions, keep hashtag words without the marker, collapse whitespace.
// Every step is idempotent, so normalizing twice is harmless.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "$1")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TitleCase upper-cases the first letter of each space-separated word.
// Used for crypto names in generated text ("shiba inu" -> "Shiba Inu").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
