// Package scoring computes relevance scores for candidate content against a job description.
package scoring

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-curator/internal/types"
)

// Default weights for the three job term classes. Required skills count most,
// preferred skills next, generic keywords least.
const (
	defaultRequiredWeight  = 3.0
	defaultPreferredWeight = 2.0
	defaultKeywordWeight   = 1.0
)

// Header cost in lines for an experience or project entry (heading plus
// spacing); a project description adds its own line cost on top.
const entryHeaderCost = 2

// Config holds the scorer parameters. Reference pins the "now" used for
// recency so that scoring stays a pure function of its inputs.
type Config struct {
	RequiredWeight  float64
	PreferredWeight float64
	KeywordWeight   float64
	Recency         RecencyParams
	Reference       time.Time
}

// DefaultConfig returns the default scorer configuration with the given
// reference date.
func DefaultConfig(reference time.Time) Config {
	return Config{
		RequiredWeight:  defaultRequiredWeight,
		PreferredWeight: defaultPreferredWeight,
		KeywordWeight:   defaultKeywordWeight,
		Recency:         RecencyParams{DecayRate: 0.15, Cap: 1.25},
		Reference:       reference,
	}
}

// Scorer computes relevance scores. It holds no mutable state and is safe for
// concurrent use across curation runs.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes one ScoredEntry per profile entry, in the profile's declared
// order: experiences, then projects, then education. Identical inputs always
// yield identical output; ties keep profile order.
func (s *Scorer) Score(profile *types.CandidateProfile, jd *types.JobDescription) []types.ScoredEntry {
	entries := make([]types.ScoredEntry, 0, len(profile.Experiences)+len(profile.Projects)+len(profile.Education))

	for i := range profile.Experiences {
		entries = append(entries, s.scoreExperience(&profile.Experiences[i], jd))
	}
	for i := range profile.Projects {
		entries = append(entries, s.scoreProject(&profile.Projects[i], jd))
	}
	for i := range profile.Education {
		entries = append(entries, s.scoreEducation(&profile.Education[i], jd))
	}

	return entries
}

func (s *Scorer) scoreExperience(exp *types.Experience, jd *types.JobDescription) types.ScoredEntry {
	boost := recencyMultiplier(exp.EndDate, s.cfg.Reference, s.cfg.Recency)

	bullets := make([]types.ScoredBullet, 0, len(exp.Bullets))
	total := 0.0
	for _, b := range exp.Bullets {
		score := s.overlapScore(b.Text, b.Tags, exp.Tags, jd) * boost
		total += score
		bullets = append(bullets, types.ScoredBullet{
			BulletID: b.ID,
			Text:     b.Text,
			Score:    score,
			Cost:     b.Cost,
		})
	}

	return types.ScoredEntry{
		EntryID:    exp.ID,
		Section:    types.SectionExperience,
		Heading:    exp.Employer,
		Subheading: exp.Title,
		Dates:      formatDateRange(exp.StartDate, exp.EndDate),
		HeaderCost: entryHeaderCost,
		SortKey:    endDateSortKey(exp.EndDate),
		Score:      total,
		Bullets:    bullets,
	}
}

func (s *Scorer) scoreProject(proj *types.Project, jd *types.JobDescription) types.ScoredEntry {
	bullets := make([]types.ScoredBullet, 0, len(proj.Bullets))
	total := 0.0
	for _, b := range proj.Bullets {
		score := s.overlapScore(b.Text, b.Tags, proj.Tags, jd)
		total += score
		bullets = append(bullets, types.ScoredBullet{
			BulletID: b.ID,
			Text:     b.Text,
			Score:    score,
			Cost:     b.Cost,
		})
	}

	return types.ScoredEntry{
		EntryID:    proj.ID,
		Section:    types.SectionProjects,
		Heading:    proj.Name,
		Subheading: proj.Description,
		HeaderCost: entryHeaderCost + types.TextLineCost(proj.Description),
		Score:      total,
		Bullets:    bullets,
	}
}

// scoreEducation treats the whole entry as a single selectable unit: a
// zero-cost header with one bullet carrying the entry's line cost.
func (s *Scorer) scoreEducation(edu *types.EducationEntry, jd *types.JobDescription) types.ScoredEntry {
	text := fmt.Sprintf("%s, %s", edu.Degree, edu.Institution)
	score := s.overlapScore(text, nil, nil, jd) * recencyMultiplier(edu.EndDate, s.cfg.Reference, s.cfg.Recency)

	return types.ScoredEntry{
		EntryID:    edu.ID,
		Section:    types.SectionEducation,
		Heading:    edu.Institution,
		Subheading: edu.Degree,
		Dates:      formatDateRange(edu.StartDate, edu.EndDate),
		HeaderCost: 0,
		SortKey:    endDateSortKey(edu.EndDate),
		Score:      score,
		Bullets: []types.ScoredBullet{{
			BulletID: edu.ID,
			Text:     text,
			Score:    score,
			Cost:     edu.Cost,
		}},
	}
}

// overlapScore computes the weighted overlap between a text unit's normalized
// token set (text plus its own and its parent's tags) and the job's term sets.
func (s *Scorer) overlapScore(text string, tags, parentTags []string, jd *types.JobDescription) float64 {
	tokens := tokenize(text)
	addTags(tokens, tags)
	addTags(tokens, parentTags)

	score := 0.0
	for _, skill := range jd.RequiredSkills {
		if termMatches(tokens, skill) {
			score += s.cfg.RequiredWeight
		}
	}
	for _, skill := range jd.PreferredSkills {
		if termMatches(tokens, skill) {
			score += s.cfg.PreferredWeight
		}
	}
	for _, keyword := range jd.Keywords {
		if termMatches(tokens, keyword) {
			score += s.cfg.KeywordWeight
		}
	}
	if jd.Seniority != "" && termMatches(tokens, jd.Seniority) {
		score += s.cfg.KeywordWeight
	}

	return score
}

// formatDateRange renders a date range for display, with absent end dates
// shown as Present
func formatDateRange(start, end string) string {
	if endsAtPresent(end) {
		return start + " – Present"
	}
	return start + " – " + end
}
