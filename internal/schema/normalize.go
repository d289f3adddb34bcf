package schema

import (
	"regexp"
	"strings"
)

var (
	punctRun = regexp.MustCompile(`[_\s\-()]+`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a label for comparison: lower case, dots dropped
// ("M.R.P." and "mrp" normalize identically), and runs of whitespace,
// underscores, hyphens and parentheses collapsed to single spaces.
// Normalizing an already-normalized string returns it unchanged.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ".", "")
	s = punctRun.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// wordSet splits a normalized label into its set of words.
func wordSet(normalized string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}
	return words
}

func isSubset(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; !ok {
			return false
		}
	}
	return true
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
