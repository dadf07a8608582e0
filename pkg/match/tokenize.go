package match

import (
	"regexp"
	"strings"
)

var (
	ampJoiner   = regexp.MustCompile(`(\w+)&(\w+)`)
	punctuation = regexp.MustCompile(`[^\w\s.\-]`)
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "of": {},
	"to": {}, "for": {}, "in": {}, "on": {}, "by": {},
}

// Tokenize splits a name into lowercase tokens for set-based comparison.
// Ampersands between words are rewritten so "S&P" survives as one token,
// remaining punctuation other than dots and hyphens becomes a space so
// slash- or comma-joined names split apart, and single-character tokens and
// common filler words are dropped.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	s = ampJoiner.ReplaceAllString(s, "${1}_and_${2}")
	s = punctuation.ReplaceAllString(s, " ")

	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
