// Package scoring computes relevance scores for candidate content against a job description.
package scoring

import "strings"

// tokenize breaks text into a set of normalized tokens: lowercased, with
// surrounding punctuation stripped. Empty tokens are dropped.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(field, ".,;:!?()[]{}\"'`")
		if token != "" {
			tokens[token] = true
		}
	}
	return tokens
}

// addTags folds normalized tag values into an existing token set
func addTags(tokens map[string]bool, tags []string) {
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized != "" {
			tokens[normalized] = true
		}
	}
}

// termMatches reports whether every token of a (possibly multi-word) term is
// present in the token set. Single-word terms also match as whole tags.
func termMatches(tokens map[string]bool, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	// A multi-word tag carries the whole term as one token
	if tokens[term] {
		return true
	}
	for _, part := range strings.Fields(term) {
		if !tokens[part] {
			return false
		}
	}
	return true
}
