package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-curator/internal/scoring"
	"github.com/jonathan/resume-curator/internal/selection"
	"github.com/jonathan/resume-curator/internal/types"
)

var testReference = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Experiences: []types.Experience{
			{
				ID: "exp-1", Employer: "Acme Corp", Title: "Systems Engineer",
				StartDate: "2023-01", EndDate: "", Tags: []string{"go"},
				Bullets: []types.BulletPoint{
					{ID: "b1", Text: "Rewrote the ingestion service in Rust cutting costs by 30%", Cost: 1},
					{ID: "b2", Text: "Mentored two junior engineers", Cost: 1},
				},
			},
			{
				ID: "exp-2", Employer: "Beta LLC", Title: "Engineer",
				StartDate: "2015-01", EndDate: "2017-06",
				Bullets: []types.BulletPoint{
					{ID: "b3", Text: "Maintained a rust monolith", Cost: 1},
				},
			},
		},
		Projects: []types.Project{
			{
				ID: "proj-1", Name: "toyvm", Tags: []string{"rust"},
				Bullets: []types.BulletPoint{
					{ID: "pb1", Text: "Implemented a bytecode interpreter", Cost: 1},
				},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Institution: "State University", Degree: "BSc Computer Science", StartDate: "2012", EndDate: "2016", Cost: 1},
		},
		Metadata: types.Metadata{Name: "Jordan Doe", Email: "jordan@example.com"},
	}
}

func testJD() *types.JobDescription {
	jd := &types.JobDescription{
		Title:          "Senior Systems Engineer",
		RequiredSkills: []string{"Rust"},
		Keywords:       []string{"performance"},
		Seniority:      "Senior",
	}
	jd.Normalize()
	return jd
}

func testOptions() Options {
	return Options{
		Pages:   1,
		Scoring: scoring.DefaultConfig(testReference),
	}
}

func TestRun_EndToEnd(t *testing.T) {
	result, err := Run(context.Background(), testProfile(), testJD(), testOptions())
	require.NoError(t, err)

	require.NotNil(t, result.Resume)
	assert.Equal(t, "Jordan Doe", result.Resume.Name)
	assert.NotEmpty(t, result.Resume.Sections)
	assert.Equal(t, []string{"rust"}, result.Skills)
	assert.Empty(t, result.Warnings)
}

func TestRun_DeterministicWithoutOptimizer(t *testing.T) {
	first, err := Run(context.Background(), testProfile(), testJD(), testOptions())
	require.NoError(t, err)
	second, err := Run(context.Background(), testProfile(), testJD(), testOptions())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first.Resume)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second.Resume)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestRun_CostWithinBudget(t *testing.T) {
	result, err := Run(context.Background(), testProfile(), testJD(), testOptions())
	require.NoError(t, err)

	assert.LessOrEqual(t, result.Selection.TotalCost, result.Selection.Budget)
}

func TestRun_InvalidPages(t *testing.T) {
	for _, pages := range []int{0, -1} {
		opts := testOptions()
		opts.Pages = pages

		_, err := Run(context.Background(), testProfile(), testJD(), opts)
		var invalid *selection.InvalidBudgetError
		require.ErrorAs(t, err, &invalid)
	}
}

func TestRun_BulletCapRespected(t *testing.T) {
	opts := testOptions()
	opts.BulletCap = 1

	result, err := Run(context.Background(), testProfile(), testJD(), opts)
	require.NoError(t, err)

	for _, entry := range result.Selection.Entries {
		assert.LessOrEqual(t, len(entry.Bullets), 1)
	}
}

func TestRun_IncompleteProfileFails(t *testing.T) {
	profile := testProfile()
	profile.Metadata.Email = ""

	_, err := Run(context.Background(), profile, testJD(), testOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact")
}

func TestRunAll_ResultsInJobOrder(t *testing.T) {
	jobs := []*types.JobDescription{
		testJD(),
		{Title: "Compiler Engineer", RequiredSkills: []string{"rust"}},
		{Title: "Platform Engineer", RequiredSkills: []string{"go"}},
	}
	for _, jd := range jobs {
		jd.Normalize()
	}

	results, err := RunAll(context.Background(), testProfile(), jobs, testOptions())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, result := range results {
		require.NotNil(t, result, "result %d missing", i)
		require.NotNil(t, result.Resume)
	}
}

func TestRunAll_FailureCancels(t *testing.T) {
	profile := testProfile()
	profile.Metadata.Email = ""

	_, err := RunAll(context.Background(), profile, []*types.JobDescription{testJD()}, testOptions())
	require.Error(t, err)
}
