// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobDescription is the typed view of a parsed job posting, produced by an
// external normalizer from raw text.
type JobDescription struct {
	Title           string   `json:"title" validate:"required"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
	Seniority       string   `json:"seniority,omitempty"`
}

// Normalize lowercases, trims and deduplicates the skill and keyword sets,
// preserving first-seen order. Safe to call more than once.
func (j *JobDescription) Normalize() {
	j.RequiredSkills = normalizeSet(j.RequiredSkills)
	j.PreferredSkills = normalizeSet(j.PreferredSkills)
	j.Keywords = normalizeSet(j.Keywords)
	j.Seniority = strings.ToLower(strings.TrimSpace(j.Seniority))
}

// normalizeSet lowercases and trims every term and drops duplicates and empties,
// keeping the first occurrence's position
func normalizeSet(terms []string) []string {
	if len(terms) == 0 {
		return terms
	}

	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
