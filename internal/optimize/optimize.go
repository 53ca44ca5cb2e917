// Package optimize rewrites selected bullet text to better address a job
// description. Optimization is best-effort: any failure falls back to the
// original text rather than failing the run.
package optimize

import (
	"context"

	"github.com/jonathan/resume-curator/internal/types"
)

// Optimizer rewrites the text of a selection. Implementations must preserve
// entry and bullet order, never drop or add bullets, and never let the
// selection's total cost grow past its budget.
type Optimizer interface {
	Optimize(ctx context.Context, sel *types.SelectionResult, jd *types.JobDescription) (*types.SelectionResult, error)
}

// Identity is the no-op optimizer used when no LLM is configured. Runs with it
// are fully deterministic.
type Identity struct{}

// Optimize returns the selection unchanged.
func (Identity) Optimize(_ context.Context, sel *types.SelectionResult, _ *types.JobDescription) (*types.SelectionResult, error) {
	return sel, nil
}
