package optimize

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-curator/internal/llm"
	"github.com/jonathan/resume-curator/internal/types"
)

// Default tuning for LLM-backed optimization
const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 2
	retryBackoff       = 2 * time.Second
)

// Options tunes the LLM optimizer.
type Options struct {
	// Timeout bounds each model call; zero means defaultTimeout
	Timeout time.Duration
	// MaxAttempts is calls per bullet including retries; zero means defaultMaxAttempts
	MaxAttempts int
	// Backoff is the pause before a retry; zero means retryBackoff
	Backoff time.Duration
	// AllowCostIncrease permits rewrites that take more lines than the
	// original, as long as the selection still fits its budget
	AllowCostIncrease bool
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout
}

func (o Options) maxAttempts() int {
	if o.MaxAttempts <= 0 {
		return defaultMaxAttempts
	}
	return o.MaxAttempts
}

func (o Options) backoff() time.Duration {
	if o.Backoff <= 0 {
		return retryBackoff
	}
	return o.Backoff
}

// LLMOptimizer rewrites bullets through an LLM client. Every rewrite is
// guarded: a response that loses facts, blows the length budget, or fails to
// arrive leaves the original bullet in place.
type LLMOptimizer struct {
	client llm.Client
	log    *zap.Logger
	opts   Options
}

// NewLLMOptimizer creates an optimizer over the given client.
func NewLLMOptimizer(client llm.Client, log *zap.Logger, opts Options) *LLMOptimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMOptimizer{client: client, log: log, opts: opts}
}

// Optimize rewrites the selection's bullet text. The input selection is never
// mutated. If the model cannot be reached for any bullet at all, the original
// selection is returned together with an UnavailableError so the caller can
// warn and continue.
func (o *LLMOptimizer) Optimize(ctx context.Context, sel *types.SelectionResult, jd *types.JobDescription) (*types.SelectionResult, error) {
	out := sel.Clone()

	usedVerbs := []string{}
	attempted := 0
	unreachable := 0

	for ei := range out.Entries {
		entry := &out.Entries[ei]
		if entry.Section == types.SectionEducation {
			continue
		}
		for bi := range entry.Bullets {
			bullet := &entry.Bullets[bi]
			attempted++

			maxChars := bullet.Cost * types.CharsPerLine
			prompt := buildOptimizePrompt(bullet.Text, jd, usedVerbs, maxChars)

			response, err := o.generateWithRetry(ctx, prompt)
			if err != nil {
				unreachable++
				o.log.Warn("bullet optimization call failed, keeping original",
					zap.String("bullet_id", bullet.BulletID),
					zap.Error(err))
				continue
			}

			rewritten, err := parseBulletResponse(llm.CleanJSONBlock(response))
			if err != nil {
				o.log.Warn("unparseable optimization response, keeping original",
					zap.String("bullet_id", bullet.BulletID),
					zap.Error(err))
				continue
			}

			if !o.accept(out, bullet, rewritten) {
				continue
			}

			newCost := types.TextLineCost(rewritten)
			if newCost < 1 {
				newCost = 1
			}
			out.TotalCost += newCost - bullet.Cost
			bullet.Text = rewritten
			bullet.Cost = newCost

			if verb := extractLeadingVerb(rewritten); verb != "" {
				usedVerbs = append(usedVerbs, verb)
			}
		}
	}

	if attempted > 0 && unreachable == attempted {
		return sel.Clone(), &UnavailableError{Message: "optimization service unreachable, using original text"}
	}

	return out, nil
}

// accept applies the rewrite guards: facts must survive and the selection must
// still fit its budget.
func (o *LLMOptimizer) accept(out *types.SelectionResult, bullet *types.ScoredBullet, rewritten string) bool {
	if !factsPreserved(bullet.Text, rewritten) {
		o.log.Warn("rewrite dropped facts, keeping original",
			zap.String("bullet_id", bullet.BulletID))
		return false
	}

	newCost := types.TextLineCost(rewritten)
	if newCost < 1 {
		newCost = 1
	}
	if newCost > bullet.Cost && !o.opts.AllowCostIncrease {
		o.log.Warn("rewrite longer than original, keeping original",
			zap.String("bullet_id", bullet.BulletID),
			zap.Int("original_cost", bullet.Cost),
			zap.Int("rewritten_cost", newCost))
		return false
	}
	if out.TotalCost+newCost-bullet.Cost > out.Budget {
		o.log.Warn("rewrite would exceed page budget, keeping original",
			zap.String("bullet_id", bullet.BulletID))
		return false
	}

	return true
}

// generateWithRetry calls the model with a per-call timeout, retrying once on
// failure with a short backoff.
func (o *LLMOptimizer) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < o.opts.maxAttempts(); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(o.opts.backoff()):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, o.opts.timeout())
		response, err := o.client.GenerateContent(callCtx, prompt)
		cancel()
		if err == nil {
			return response, nil
		}
		lastErr = err
	}
	return "", lastErr
}
