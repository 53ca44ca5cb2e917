package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-curator/internal/types"
)

func TestBuildSkills_OnlyEvidencedJobSkills(t *testing.T) {
	profile := testProfile()
	jd := &types.JobDescription{
		Title:           "Engineer",
		RequiredSkills:  []string{"rust", "terraform"},
		PreferredSkills: []string{"go"},
	}
	jd.Normalize()

	skills := BuildSkills(profile, jd)

	// terraform appears nowhere in the profile and must not be claimed
	assert.Equal(t, []string{"rust", "go"}, skills)
}

func TestBuildSkills_FallbackToProfileTags(t *testing.T) {
	profile := testProfile()
	jd := &types.JobDescription{Title: "Engineer"}
	jd.Normalize()

	skills := BuildSkills(profile, jd)

	// With no job skills, the candidate's own tags fill in, deduplicated in
	// profile order
	assert.Equal(t, []string{"go", "rust"}, skills)
}

func TestBuildSkills_NoEvidenceNoSkills(t *testing.T) {
	profile := testProfile()
	jd := &types.JobDescription{Title: "Engineer", RequiredSkills: []string{"cobol"}}
	jd.Normalize()

	skills := BuildSkills(profile, jd)
	assert.Empty(t, skills)
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Rewrote the service (in Go), cutting costs by 30%.")

	assert.True(t, tokens["rewrote"])
	assert.True(t, tokens["go"])
	assert.True(t, tokens["30%"])
	assert.False(t, tokens["Go"])
}

func TestTermMatches_MultiWord(t *testing.T) {
	tokens := tokenize("designed distributed systems at scale")

	assert.True(t, termMatches(tokens, "distributed systems"))
	assert.False(t, termMatches(tokens, "distributed databases"))
}
