package college

import (
	"regexp"
	"strings"
)

// Token expansions applied after periods are stripped. "tech" maps to itself
// so the abbreviation table stays the single source of truth for which
// standalone tokens are recognized.
var expansions = map[string]string{
	"st":   "state",
	"u":    "university",
	"tech": "tech",
}

var (
	tokenRe      = regexp.MustCompile(`\b(st|u|tech)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a college name or guess for comparison. The step
// order matters: "St." only becomes "state" because the period is stripped
// before token expansion runs.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = tokenRe.ReplaceAllStringFunc(s, func(tok string) string {
		return expansions[tok]
	})
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Match reports whether a guess names the given college. Equality is exact
// after normalization; there is no partial credit.
func Match(guess, college string) bool {
	return Normalize(guess) == Normalize(college)
}
