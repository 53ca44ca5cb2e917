package optimize

import (
	"regexp"
	"strings"
	"unicode"
)

// numberPattern matches numbers and percentages, the metrics a bullet claims
var numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)*%?`)

// factTokens extracts the tokens a rewrite must not lose: every number or
// percentage, and every capitalized word past the first (names of employers,
// products, and technologies).
func factTokens(text string) []string {
	tokens := numberPattern.FindAllString(text, -1)

	words := strings.Fields(text)
	for i, word := range words {
		if i == 0 {
			continue
		}
		cleaned := strings.Trim(word, ".,;:!?()[]{}\"'`")
		if cleaned == "" {
			continue
		}
		if unicode.IsUpper([]rune(cleaned)[0]) {
			tokens = append(tokens, cleaned)
		}
	}

	return tokens
}

// factsPreserved reports whether every fact token of the original text still
// appears in the rewritten text. Matching is case-insensitive for words so a
// rewrite may move a name to the start of the sentence.
func factsPreserved(original, rewritten string) bool {
	rewrittenLower := strings.ToLower(rewritten)
	for _, token := range factTokens(original) {
		if !strings.Contains(rewrittenLower, strings.ToLower(token)) {
			return false
		}
	}
	return true
}
