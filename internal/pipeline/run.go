// Package pipeline provides the high-level orchestration for a curation run:
// score, select, optimize, assemble.
package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-curator/internal/assemble"
	"github.com/jonathan/resume-curator/internal/observability"
	"github.com/jonathan/resume-curator/internal/optimize"
	"github.com/jonathan/resume-curator/internal/scoring"
	"github.com/jonathan/resume-curator/internal/selection"
	"github.com/jonathan/resume-curator/internal/store"
	"github.com/jonathan/resume-curator/internal/types"
)

// Lines reserved off the top of the page budget before content selection:
// the candidate's name and contact block plus surrounding spacing, and one
// line for the skills list when present.
const (
	headerReservedLines = 3
	skillsReservedLines = 1
)

// Options holds configuration for a curation run
type Options struct {
	// Pages is the page budget; must be positive
	Pages int
	// BulletCap limits bullets per entry; zero uses the selector default
	BulletCap int
	// Scoring configures the relevance scorer
	Scoring scoring.Config
	// Optimizer rewrites bullet text; nil skips optimization entirely
	Optimizer optimize.Optimizer
	// DatabaseURL enables artifact storage when set
	DatabaseURL string
	// Verbose prints stage summaries to Out
	Verbose bool
	// Out receives verbose output
	Out io.Writer
	// Log receives structured run logs; nil means no logging
	Log *zap.Logger
}

// Result carries every artifact of a completed run
type Result struct {
	Scored    []types.ScoredEntry    `json:"scored"`
	Selection *types.SelectionResult `json:"selection"`
	Skills    []string               `json:"skills"`
	Resume    *types.ResumeDocument  `json:"resume"`
	RunID     uuid.UUID              `json:"run_id,omitempty"`
	// Warnings lists soft failures, such as unreachable optimization
	Warnings []string `json:"warnings,omitempty"`
}

// Run executes the curation pipeline for one profile and job description.
// Optimization failures degrade to warnings; every other stage error aborts
// the run. With a nil Optimizer the run is fully deterministic.
func Run(ctx context.Context, profile *types.CandidateProfile, jd *types.JobDescription, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var printer *observability.Printer
	if opts.Verbose && opts.Out != nil {
		printer = observability.NewPrinter(opts.Out)
		printer.PrintJobDescription(jd)
	}

	if opts.Pages <= 0 {
		return nil, &selection.InvalidBudgetError{Budget: opts.Pages}
	}

	// Artifact storage is best-effort: a missing or broken database never
	// fails the run.
	var db *store.Store
	var runID uuid.UUID
	result := &Result{}
	if opts.DatabaseURL != "" {
		var err error
		db, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn("database unavailable, continuing without artifact storage", zap.Error(err))
			db = nil
		} else {
			defer db.Close()
			runID, err = db.CreateRun(ctx, jd.Title, types.PagesToLines(opts.Pages))
			if err != nil {
				log.Warn("failed to create run record", zap.Error(err))
			} else {
				result.RunID = runID
			}
		}
	}
	saveArtifact := func(step string, content any) {
		if db == nil || runID == uuid.Nil {
			return
		}
		if err := db.SaveArtifact(ctx, runID, step, content); err != nil {
			log.Warn("failed to save artifact", zap.String("step", step), zap.Error(err))
		}
	}
	saveArtifact(store.StepProfile, profile)
	saveArtifact(store.StepJob, jd)

	log.Info("scoring profile against job",
		zap.String("job_title", jd.Title),
		zap.Int("experiences", len(profile.Experiences)),
		zap.Int("projects", len(profile.Projects)))
	scorer := scoring.NewScorer(opts.Scoring)
	result.Scored = scorer.Score(profile, jd)
	result.Skills = scoring.BuildSkills(profile, jd)
	saveArtifact(store.StepScoring, result.Scored)
	if printer != nil {
		printer.PrintScoredEntries(result.Scored)
	}

	lineBudget := types.PagesToLines(opts.Pages) - headerReservedLines
	if len(result.Skills) > 0 {
		lineBudget -= skillsReservedLines
	}

	if lineBudget < 1 {
		// The page is consumed by the header alone.
		result.Selection = &types.SelectionResult{
			Budget: lineBudget,
			Reason: types.ReasonBudgetTooSmall,
		}
	} else {
		sel, err := selection.Select(result.Scored, lineBudget, selection.Options{BulletCap: opts.BulletCap})
		if err != nil {
			completeRun(ctx, db, runID, store.StatusFailed, log)
			return nil, err
		}
		result.Selection = sel
	}
	log.Info("selection complete",
		zap.Int("entries", len(result.Selection.Entries)),
		zap.Int("lines_used", result.Selection.TotalCost),
		zap.Int("line_budget", lineBudget))
	saveArtifact(store.StepSelection, result.Selection)
	if printer != nil {
		printer.PrintSelection(result.Selection)
	}

	if opts.Optimizer != nil && !result.Selection.Empty() {
		optimized, err := opts.Optimizer.Optimize(ctx, result.Selection, jd)
		if err != nil {
			var unavailable *optimize.UnavailableError
			if errors.As(err, &unavailable) {
				log.Warn("optimization unavailable, using original text", zap.Error(err))
				result.Warnings = append(result.Warnings, unavailable.Error())
			} else {
				completeRun(ctx, db, runID, store.StatusFailed, log)
				return nil, err
			}
		}
		if optimized != nil {
			result.Selection = optimized
			saveArtifact(store.StepOptimize, result.Selection)
		}
	}

	doc, err := assemble.Assemble(&profile.Metadata, result.Selection, result.Skills)
	if err != nil {
		completeRun(ctx, db, runID, store.StatusFailed, log)
		return nil, err
	}
	result.Resume = doc
	saveArtifact(store.StepResume, doc)
	if printer != nil {
		printer.PrintResume(doc)
	}

	completeRun(ctx, db, runID, store.StatusCompleted, log)
	return result, nil
}

// completeRun marks the run record finished, warn-and-continue on failure
func completeRun(ctx context.Context, db *store.Store, runID uuid.UUID, status string, log *zap.Logger) {
	if db == nil || runID == uuid.Nil {
		return
	}
	if err := db.CompleteRun(ctx, runID, status); err != nil {
		log.Warn("failed to complete run record", zap.Error(err))
	}
}
