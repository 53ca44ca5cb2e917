// Package scoring computes relevance scores for candidate content against a job description.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/types"
)

// maxFallbackSkills bounds the skills listed when the job names none
const maxFallbackSkills = 6

// BuildSkills returns the skills line for the resume: the job's required and
// preferred skills that the candidate actually evidences somewhere in the
// profile. When the job names no skills at all, it falls back to the
// candidate's first distinct tags in profile order. Only candidate-evidenced
// skills are ever listed.
func BuildSkills(profile *types.CandidateProfile, jd *types.JobDescription) []string {
	evidence := profileTokens(profile)

	jobSkills := make([]string, 0, len(jd.RequiredSkills)+len(jd.PreferredSkills))
	jobSkills = append(jobSkills, jd.RequiredSkills...)
	jobSkills = append(jobSkills, jd.PreferredSkills...)

	if len(jobSkills) > 0 {
		matched := make([]string, 0, len(jobSkills))
		for _, skill := range jobSkills {
			if termMatches(evidence, skill) {
				matched = append(matched, skill)
			}
		}
		return matched
	}

	// Job named no skills: fall back to the candidate's own tags.
	seen := make(map[string]bool)
	fallback := make([]string, 0, maxFallbackSkills)
	appendTag := func(tag string) {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" || seen[normalized] || len(fallback) >= maxFallbackSkills {
			return
		}
		seen[normalized] = true
		fallback = append(fallback, normalized)
	}

	for _, exp := range profile.Experiences {
		for _, tag := range exp.Tags {
			appendTag(tag)
		}
		for _, b := range exp.Bullets {
			for _, tag := range b.Tags {
				appendTag(tag)
			}
		}
	}
	for _, proj := range profile.Projects {
		for _, tag := range proj.Tags {
			appendTag(tag)
		}
	}

	return fallback
}

// profileTokens collects the normalized tokens of every text unit and tag in
// the profile
func profileTokens(profile *types.CandidateProfile) map[string]bool {
	tokens := make(map[string]bool)

	merge := func(text string, tags []string) {
		for token := range tokenize(text) {
			tokens[token] = true
		}
		addTags(tokens, tags)
	}

	for _, exp := range profile.Experiences {
		merge(exp.Title, exp.Tags)
		for _, b := range exp.Bullets {
			merge(b.Text, b.Tags)
		}
	}
	for _, proj := range profile.Projects {
		merge(proj.Name+" "+proj.Description, proj.Tags)
		for _, b := range proj.Bullets {
			merge(b.Text, b.Tags)
		}
	}
	for _, edu := range profile.Education {
		merge(edu.Degree+" "+edu.Institution, nil)
	}

	return tokens
}
