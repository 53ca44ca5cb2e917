package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-curator/internal/types"
)

// maxConcurrentRuns bounds parallel curation when tailoring one profile to
// several jobs at once
const maxConcurrentRuns = 4

// RunAll curates the profile against every job description concurrently.
// Results come back in job order. The first failing run cancels the rest.
func RunAll(ctx context.Context, profile *types.CandidateProfile, jobs []*types.JobDescription, opts Options) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)

	for i, jd := range jobs {
		i, jd := i, jd
		g.Go(func() error {
			result, err := Run(gCtx, profile, jd, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
