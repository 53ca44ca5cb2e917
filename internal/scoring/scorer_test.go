package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-curator/internal/types"
)

var testReference = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Experiences: []types.Experience{
			{
				ID:        "exp-1",
				Employer:  "Acme Corp",
				Title:     "Systems Engineer",
				StartDate: "2023-01",
				EndDate:   "",
				Tags:      []string{"go"},
				Bullets: []types.BulletPoint{
					{ID: "b1", Text: "Rewrote the ingestion service in RUST cutting costs by 30%", Cost: 1},
					{ID: "b2", Text: "Mentored two junior engineers", Cost: 1},
				},
			},
			{
				ID:        "exp-2",
				Employer:  "Beta LLC",
				Title:     "Engineer",
				StartDate: "2015-01",
				EndDate:   "2017-06",
				Bullets: []types.BulletPoint{
					{ID: "b3", Text: "Maintained a rust monolith", Cost: 1},
				},
			},
		},
		Projects: []types.Project{
			{
				ID:   "proj-1",
				Name: "toyvm",
				Tags: []string{"rust"},
				Bullets: []types.BulletPoint{
					{ID: "pb1", Text: "Implemented a bytecode interpreter", Cost: 1},
				},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Institution: "State University", Degree: "BSc Computer Science", StartDate: "2012", EndDate: "2016", Cost: 1},
		},
		Metadata: types.Metadata{Name: "Jordan Doe", Email: "j@example.com"},
	}
}

func rustJob() *types.JobDescription {
	jd := &types.JobDescription{
		Title:          "Systems Engineer",
		RequiredSkills: []string{"rust"},
	}
	jd.Normalize()
	return jd
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	profile := testProfile()
	jd := rustJob()

	first := scorer.Score(profile, jd)
	second := scorer.Score(profile, jd)

	assert.Equal(t, first, second)
}

func TestScore_CaseInsensitiveMatching(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(testProfile(), rustJob())

	// "RUST" in the bullet text matches required skill "rust"
	require.Equal(t, "exp-1", entries[0].EntryID)
	assert.Greater(t, entries[0].Bullets[0].Score, 0.0)
	// "rust" lowercase matches too
	require.Equal(t, "exp-2", entries[1].EntryID)
	assert.Greater(t, entries[1].Bullets[0].Score, 0.0)
	// Tag-only evidence counts
	require.Equal(t, "proj-1", entries[2].EntryID)
	assert.Greater(t, entries[2].Bullets[0].Score, 0.0)
}

func TestScore_UnmatchedBulletScoresZero(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(testProfile(), rustJob())

	assert.Equal(t, 0.0, entries[0].Bullets[1].Score)
}

func TestScore_RecencyBreaksTies(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(testProfile(), rustJob())

	// Both bullets match "rust" with equal weight, but exp-1 is ongoing and
	// exp-2 ended years ago, so recency must rank exp-1's bullet higher.
	assert.Greater(t, entries[0].Bullets[0].Score, entries[1].Bullets[0].Score)
}

func TestScore_WeightOrdering(t *testing.T) {
	profile := &types.CandidateProfile{
		Experiences: []types.Experience{{
			ID: "e", Employer: "X", Title: "T", StartDate: "2020",
			Bullets: []types.BulletPoint{
				{ID: "req", Text: "built with rust", Cost: 1},
				{ID: "pref", Text: "built with kubernetes", Cost: 1},
				{ID: "kw", Text: "built with grpc", Cost: 1},
			},
		}},
	}
	jd := &types.JobDescription{
		Title:           "Engineer",
		RequiredSkills:  []string{"rust"},
		PreferredSkills: []string{"kubernetes"},
		Keywords:        []string{"grpc"},
	}
	jd.Normalize()

	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(profile, jd)

	required := entries[0].Bullets[0].Score
	preferred := entries[0].Bullets[1].Score
	keyword := entries[0].Bullets[2].Score

	assert.Greater(t, required, preferred)
	assert.Greater(t, preferred, keyword)
	assert.Greater(t, keyword, 0.0)
}

func TestScore_MultiWordTermNeedsAllTokens(t *testing.T) {
	profile := &types.CandidateProfile{
		Experiences: []types.Experience{{
			ID: "e", Employer: "X", Title: "T", StartDate: "2020",
			Bullets: []types.BulletPoint{
				{ID: "full", Text: "designed distributed systems at scale", Cost: 1},
				{ID: "partial", Text: "worked on systems", Cost: 1},
			},
		}},
	}
	jd := &types.JobDescription{Title: "Engineer", RequiredSkills: []string{"distributed systems"}}
	jd.Normalize()

	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(profile, jd)

	assert.Greater(t, entries[0].Bullets[0].Score, 0.0)
	assert.Equal(t, 0.0, entries[0].Bullets[1].Score)
}

func TestScore_EducationAsSingleUnit(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(testProfile(), rustJob())

	edu := entries[len(entries)-1]
	assert.Equal(t, types.SectionEducation, edu.Section)
	assert.Equal(t, 0, edu.HeaderCost)
	require.Len(t, edu.Bullets, 1)
	assert.Equal(t, "BSc Computer Science, State University", edu.Bullets[0].Text)
	assert.Equal(t, 1, edu.Bullets[0].Cost)
}

func TestScore_EntryScoreSumsBullets(t *testing.T) {
	scorer := NewScorer(DefaultConfig(testReference))
	entries := scorer.Score(testProfile(), rustJob())

	total := 0.0
	for _, b := range entries[0].Bullets {
		total += b.Score
	}
	assert.InDelta(t, total, entries[0].Score, 1e-9)
}

func TestRecencyMultiplier(t *testing.T) {
	p := RecencyParams{DecayRate: 0.15, Cap: 1.25}

	ongoing := recencyMultiplier("Present", testReference, p)
	recent := recencyMultiplier("2025-06", testReference, p)
	old := recencyMultiplier("2015-06", testReference, p)

	assert.InDelta(t, 1.25, ongoing, 1e-9)
	assert.Greater(t, recent, old)
	assert.GreaterOrEqual(t, old, 1.0)

	// Malformed dates are neutral
	assert.Equal(t, 1.0, recencyMultiplier("June 2015", testReference, p))
	// Disabled recency is neutral
	assert.Equal(t, 1.0, recencyMultiplier("Present", testReference, RecencyParams{Cap: 1.0}))
}

func TestEndDateSortKey(t *testing.T) {
	assert.Greater(t, endDateSortKey("Present"), endDateSortKey("2025-12"))
	assert.Greater(t, endDateSortKey("2023-06"), endDateSortKey("2023-05"))
	assert.Greater(t, endDateSortKey("2023"), endDateSortKey("2022-12"))
	assert.Equal(t, 0, endDateSortKey("garbage"))
}
